package service

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/KarlaRL666/edufinanciero/internal/markdown"
	"github.com/KarlaRL666/edufinanciero/internal/model"
)

// LessonService serves the educational content pages from markdown
// files under lessons/ in the given filesystem. Production uses the
// embedded content; a directory on disk can be mounted instead for
// editing lessons without a rebuild.
type LessonService struct {
	parser  *markdown.Parser
	content fs.FS
}

func NewLessonService(content fs.FS) *LessonService {
	return &LessonService{
		parser:  markdown.NewParser(),
		content: content,
	}
}

func (s *LessonService) Lessons() ([]*model.Lesson, error) {
	files, err := fs.Glob(s.content, "lessons/*.md")
	if err != nil {
		return nil, err
	}

	var lessons []*model.Lesson
	for _, file := range files {
		lesson, err := s.Lesson(strings.TrimSuffix(path.Base(file), ".md"))
		if err != nil {
			continue
		}
		// List view carries metadata only
		lesson.HTMLContent = ""
		lessons = append(lessons, lesson)
	}

	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return lessons[i].Title < lessons[j].Title
	})

	return lessons, nil
}

func (s *LessonService) Lesson(slug string) (*model.Lesson, error) {
	content, err := fs.ReadFile(s.content, path.Join("lessons", slug+".md"))
	if err != nil {
		return nil, fmt.Errorf("lesson not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		Slug:        slug,
		HTMLContent: string(htmlContent),
		Content:     string(content),
	}

	title, ok := meta["title"].(string)
	if ok {
		lesson.Title = title
	}

	description, ok := meta["description"].(string)
	if ok {
		lesson.Description = description
	}

	category, ok := meta["category"].(string)
	if ok {
		lesson.Category = category
	}

	order, ok := meta["order"].(int)
	if ok {
		lesson.Order = order
	} else if orderF, ok := meta["order"].(float64); ok {
		lesson.Order = int(orderF)
	}

	lesson.ReadTime = s.calculateReadTime(string(content))

	return lesson, nil
}

func (s *LessonService) calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
