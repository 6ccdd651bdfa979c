package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
)

var (
	ErrTitleRequired = errors.New("goal title is required")
	ErrInvalidTarget = errors.New("goal target must be greater than zero")
	ErrInvalidAmount = errors.New("deposit amount must be greater than zero")
	ErrGoalClosed    = errors.New("goal no longer accepts deposits")
)

// ExceedsTargetError is returned when a deposit would push a goal past
// its target. The deposit is rejected, not truncated; MaxAllowed
// reports the largest amount the goal still accepts.
type ExceedsTargetError struct {
	MaxAllowed float64
}

func (e *ExceedsTargetError) Error() string {
	return fmt.Sprintf("deposit exceeds goal target, maximum allowed is %.2f", e.MaxAllowed)
}

// DepositResult is the outcome of a successful deposit. Completion is
// nil unless this deposit completed the goal.
type DepositResult struct {
	Goal        *model.Goal        `json:"goal"`
	Transaction *model.Transaction `json:"transaction"`
	Completion  *CompletionResult  `json:"completion,omitempty"`
}

// DashboardSummary aggregates a user's ledger for the dashboard view.
type DashboardSummary struct {
	TotalSaved     float64           `json:"totalSaved"`
	TotalTarget    float64           `json:"totalTarget"`
	ActiveGoals    int               `json:"activeGoals"`
	CompletedGoals int               `json:"completedGoals"`
	ExpiredGoals   int               `json:"expiredGoals"`
	RecentActivity []*model.Activity `json:"recentActivity"`
}

// LedgerService is the facade over goals, deposits and gamification.
// Every mutating operation runs in a single SQL transaction, so the
// read-modify-write of goal amounts is serialized against concurrent
// writers and a completed goal can never commit without its reward.
type LedgerService struct {
	db                    *sqlx.DB
	goalRepository        repository.GoalRepository
	transactionRepository repository.TransactionRepository
	gamifyService         *GamifyService
	now                   func() time.Time
}

func NewLedgerService(
	db *sqlx.DB,
	goalRepository repository.GoalRepository,
	transactionRepository repository.TransactionRepository,
	gamifyService *GamifyService,
) *LedgerService {
	return &LedgerService{
		db:                    db,
		goalRepository:        goalRepository,
		transactionRepository: transactionRepository,
		gamifyService:         gamifyService,
		now:                   time.Now,
	}
}

func (s *LedgerService) CreateGoal(userID, title string, target float64, deadline *time.Time) (*model.Goal, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if target <= 0 {
		return nil, ErrInvalidTarget
	}

	now := s.now()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Target:    target,
		Saved:     0,
		Deadline:  deadline,
		CreatedAt: now,
		UpdatedAt: now,
	}
	goal.EvaluateStatus(now)

	err := s.goalRepository.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// Goals lists a user's goals with completed/expired re-derived against
// today. Stored flags are never returned as-is.
func (s *LedgerService) Goals(userID string) ([]*model.Goal, error) {
	goals, err := s.goalRepository.Goals(userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	for _, goal := range goals {
		goal.EvaluateStatus(today)
	}

	return goals, nil
}

func (s *LedgerService) Goal(userID, goalID string) (*model.Goal, error) {
	goal, err := s.goalRepository.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.EvaluateStatus(s.now())
	return goal, nil
}

// History returns a goal's deposits, most recent first.
func (s *LedgerService) History(userID, goalID string) ([]*model.Transaction, error) {
	// Verify ownership
	_, err := s.goalRepository.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.transactionRepository.ByGoal(goalID)
}

// Deposit records a deposit against a goal. If the deposit completes
// the goal, the gamification award is applied in the same transaction.
func (s *LedgerService) Deposit(userID, goalID string, amount float64, date time.Time) (*DepositResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	goals := s.goalRepository.WithTx(tx)

	goal, err := goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.EvaluateStatus(s.now())
	if goal.Closed() {
		return nil, ErrGoalClosed
	}

	if goal.Saved+amount > goal.Target {
		return nil, &ExceedsTargetError{MaxAllowed: goal.Remaining()}
	}

	transaction := &model.Transaction{
		GoalID:    goalID,
		Amount:    amount,
		Date:      date,
		Kind:      model.TransactionKindDeposit,
		CreatedAt: s.now(),
	}

	err = s.transactionRepository.WithTx(tx).Create(transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	wasCompleted := goal.Completed
	goal.Saved += amount
	goal.EvaluateStatus(s.now())
	goal.UpdatedAt = s.now()

	err = goals.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	result := &DepositResult{
		Goal:        goal,
		Transaction: transaction,
	}

	if goal.Completed && !wasCompleted {
		completion, err := s.gamifyService.AwardGoalCompletion(tx, userID)
		if err != nil {
			return nil, err
		}
		result.Completion = completion
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit deposit: %w", err)
	}

	return result, nil
}

// DeleteGoal removes a goal and its transactions. Irreversible.
// Transactions are cascade-deleted so the ledger never holds orphaned
// deposits for a goal that no longer exists.
func (s *LedgerService) DeleteGoal(userID, goalID string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	goals := s.goalRepository.WithTx(tx)

	// Verify ownership
	_, err = goals.ByID(userID, goalID)
	if err != nil {
		return err
	}

	err = s.transactionRepository.WithTx(tx).DeleteByGoal(goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal transactions: %w", err)
	}

	err = goals.Delete(userID, goalID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// DashboardSummary totals the user's goals and returns their newest
// deposits across all goals.
func (s *LedgerService) DashboardSummary(userID string, activityLimit int) (*DashboardSummary, error) {
	goals, err := s.Goals(userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{}
	for _, goal := range goals {
		summary.TotalSaved += goal.Saved
		summary.TotalTarget += goal.Target
		switch {
		case goal.Completed:
			summary.CompletedGoals++
		case goal.Expired:
			summary.ExpiredGoals++
		default:
			summary.ActiveGoals++
		}
	}

	activity, err := s.transactionRepository.RecentByUser(userID, activityLimit)
	if err != nil {
		return nil, err
	}
	summary.RecentActivity = activity

	return summary, nil
}
