package model

import (
	"math"
	"time"
)

type Goal struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Title     string     `db:"title" json:"title"`
	Target    float64    `db:"target" json:"target"`
	Saved     float64    `db:"saved" json:"saved"`
	Deadline  *time.Time `db:"deadline" json:"deadline,omitempty"`
	Completed bool       `db:"completed" json:"completed"`
	Expired   bool       `db:"expired" json:"expired"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

// Percentage returns progress as a whole number capped at 100.
func (g *Goal) Percentage() int {
	if g.Target <= 0 {
		return 0
	}
	pct := int(math.Round(g.Saved / g.Target * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// EvaluateStatus re-derives the completed and expired flags from the
// goal's amounts and deadline. Stored flags are never trusted: "today"
// advances independently of writes, so a goal can expire without any
// deposit happening. Completed always wins over expired.
func (g *Goal) EvaluateStatus(today time.Time) {
	g.Completed = g.Saved >= g.Target
	g.Expired = !g.Completed && g.Deadline != nil && dateOnly(*g.Deadline).Before(dateOnly(today))
}

// Closed reports whether the goal no longer accepts deposits.
func (g *Goal) Closed() bool {
	return g.Completed || g.Expired
}

// Remaining returns the largest deposit the goal still accepts.
func (g *Goal) Remaining() float64 {
	r := g.Target - g.Saved
	if r < 0 {
		return 0
	}
	return r
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
