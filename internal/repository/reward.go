package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/internal/model"
)

type RewardRepository interface {
	Create(reward *model.Reward) error
	ByUser(userID string) ([]*model.Reward, error)
	WithTx(tx *sqlx.Tx) RewardRepository
}

type rewardRepository struct {
	db sqlx.Ext
}

func NewRewardRepository(db *sqlx.DB) RewardRepository {
	return &rewardRepository{db: db}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *rewardRepository) WithTx(tx *sqlx.Tx) RewardRepository {
	return &rewardRepository{db: tx}
}

func (r *rewardRepository) Create(reward *model.Reward) error {
	query := `INSERT INTO rewards (id, user_id, reward_id, title, category, granted_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, reward.ID, reward.UserID, reward.RewardID, reward.Title, reward.Category, reward.GrantedAt)
	return err
}

func (r *rewardRepository) ByUser(userID string) ([]*model.Reward, error) {
	var rewards []*model.Reward
	query := `SELECT * FROM rewards WHERE user_id = $1 ORDER BY granted_at DESC, id DESC`

	err := sqlx.Select(r.db, &rewards, query, userID)
	if err != nil {
		return nil, err
	}

	return rewards, nil
}
