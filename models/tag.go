package models

import "time"

// Tag names are case-sensitive identities; filter queries match them
// case-insensitively. Tags are created on demand and never mutated.
type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
