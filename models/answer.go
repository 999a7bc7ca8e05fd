package models

import (
	"time"

	"gorm.io/gorm"
)

// Answer holds the like and dislike membership sets. A user sits in at most
// one of the two sets for a given answer; SetReaction enforces that by
// clearing the opposite set in the same transaction. At most one answer per
// question has IsCorrect set.
type Answer struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	AuthorID   uint           `json:"author_id" gorm:"not null"`
	Author     User           `json:"author" gorm:"foreignKey:AuthorID"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	Question   *Question      `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	IsCorrect  bool           `json:"is_correct" gorm:"default:false"`
	Likes      []User         `json:"likes,omitempty" gorm:"many2many:answer_likes;"`
	Dislikes   []User         `json:"dislikes,omitempty" gorm:"many2many:answer_dislikes;"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// ReactionAction is the user-supplied token on /answers/:id/:action.
type ReactionAction string

const (
	ReactionLike    ReactionAction = "like"
	ReactionDislike ReactionAction = "dislike"
)
