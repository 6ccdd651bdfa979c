package model

import (
	"time"
)

const TransactionKindDeposit = "deposit"

// Transaction is an append-only deposit record against a goal. Rows
// are never mutated or deleted individually; they only disappear when
// their goal is deleted.
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	GoalID    string    `db:"goal_id" json:"goalId"`
	Amount    float64   `db:"amount" json:"amount"`
	Date      time.Time `db:"date" json:"date"`
	Kind      string    `db:"kind" json:"kind"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Activity is a transaction joined with its goal's title, used for the
// dashboard's recent-activity feed.
type Activity struct {
	Transaction
	GoalTitle string `db:"goal_title" json:"goalTitle"`
}
