package model

import (
	"time"
)

// XPPerLevel is the amount of experience points per level. A user's
// level is always derived from lifetime XP, never stored independently.
const XPPerLevel = 500

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Level        int       `db:"level" json:"level"`
	XP           int       `db:"xp" json:"xp"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// LevelForXP derives the level for a lifetime XP total.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// XPIntoLevel reports how far into the current level the user is.
func (u *User) XPIntoLevel() int {
	return u.XP % XPPerLevel
}
