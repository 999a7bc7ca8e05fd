package models

import (
	"time"

	"gorm.io/gorm"
)

// User carries three maintained counters (like, dislike, accepted) that are
// recomputed transactionally whenever a reaction or correctness mutation
// touches one of the user's answers. The reputation score is derived from
// them on read and never stored.
type User struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Username      string         `json:"username" gorm:"uniqueIndex;not null"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	Password      string         `json:"-" gorm:"not null"`
	ProfilePhoto  string         `json:"profile_photo,omitempty"`
	LikeCount     int            `json:"like_count" gorm:"default:0"`
	DislikeCount  int            `json:"dislike_count" gorm:"default:0"`
	AcceptedCount int            `json:"accepted_count" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// ReputationScore weights the maintained counters the StackOverflow way.
func (u *User) ReputationScore() int {
	return 10*u.LikeCount - 5*u.DislikeCount + 15*u.AcceptedCount
}
