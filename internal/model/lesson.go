package model

// Lesson is an educational content page loaded from markdown.
type Lesson struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	ReadTime    int    `json:"readTime"` // minutes
	HTMLContent string `json:"htmlContent,omitempty"`
	Content     string `json:"-"`
}
