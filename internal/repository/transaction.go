package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/internal/model"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

type TransactionRepository interface {
	Create(t *model.Transaction) error
	ByGoal(goalID string) ([]*model.Transaction, error)
	RecentByUser(userID string, limit int) ([]*model.Activity, error)
	SumByGoal(goalID string) (float64, error)
	DeleteByGoal(goalID string) error
	WithTx(tx *sqlx.Tx) TransactionRepository
}

type transactionRepository struct {
	db sqlx.Ext
}

func NewTransactionRepository(db *sqlx.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *transactionRepository) WithTx(tx *sqlx.Tx) TransactionRepository {
	return &transactionRepository{db: tx}
}

// Create appends a transaction and fills in its generated id.
func (r *transactionRepository) Create(t *model.Transaction) error {
	query := `INSERT INTO transactions (goal_id, amount, date, kind, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	result, err := r.db.Exec(query, t.GoalID, t.Amount, t.Date, t.Kind, t.CreatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id

	return nil
}

// ByGoal returns a goal's full history, most recent first. Ties on the
// same date resolve to the later-created transaction.
func (r *transactionRepository) ByGoal(goalID string) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	query := `SELECT * FROM transactions WHERE goal_id = $1 ORDER BY date DESC, id DESC`

	err := sqlx.Select(r.db, &transactions, query, goalID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// RecentByUser returns the newest transactions across all of a user's
// goals, joined with the goal titles.
func (r *transactionRepository) RecentByUser(userID string, limit int) ([]*model.Activity, error) {
	var activity []*model.Activity
	query := `SELECT t.*, g.title AS goal_title
	          FROM transactions t
	          JOIN goals g ON g.id = t.goal_id
	          WHERE g.user_id = $1
	          ORDER BY t.date DESC, t.id DESC
	          LIMIT $2`

	err := sqlx.Select(r.db, &activity, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *transactionRepository) SumByGoal(goalID string) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE goal_id = $1`

	err := sqlx.Get(r.db, &sum, query, goalID)
	return sum, err
}

func (r *transactionRepository) DeleteByGoal(goalID string) error {
	query := `DELETE FROM transactions WHERE goal_id = $1`

	_, err := r.db.Exec(query, goalID)
	return err
}
