package repositories

import (
	"errors"

	"stayconnected-api/models"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *models.Answer) error
	GetByID(id uint) (*models.Answer, error)
	GetByQuestion(questionID uint) ([]models.Answer, error)
	SetReaction(answer *models.Answer, user *models.User, action models.ReactionAction) error
	MarkCorrect(question *models.Question, answer *models.Answer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("Author").Preload("Question").First(&answer, id).Error
	return &answer, err
}

func (r *answerRepository) GetByQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("question_id = ?", questionID).
		Preload("Author").
		Preload("Likes").
		Preload("Dislikes").
		Order("created_at asc, id asc").
		Find(&answers).Error
	return answers, err
}

// SetReaction moves the (user, answer) membership to the requested set and
// clears the opposite one, then recomputes the answer author's like/dislike
// counters from the membership tables. Everything runs in one transaction so
// the counters never reflect a half-applied membership change.
func (r *answerRepository) SetReaction(answer *models.Answer, user *models.User, action models.ReactionAction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		likes := tx.Model(answer).Association("Likes")
		dislikes := tx.Model(answer).Association("Dislikes")

		switch action {
		case models.ReactionLike:
			if err := likes.Append(user); err != nil {
				return err
			}
			if err := dislikes.Delete(user); err != nil {
				return err
			}
		case models.ReactionDislike:
			if err := dislikes.Append(user); err != nil {
				return err
			}
			if err := likes.Delete(user); err != nil {
				return err
			}
		}

		return recomputeReactionCounts(tx, answer.AuthorID)
	})
}

// MarkCorrect clears the correct flag on every answer to the question, sets
// it on the target and flips the question to completed, as one transaction.
// Accepted counters are recomputed for the target's author and, when a
// different user's answer got demoted, for that author as well.
func (r *answerRepository) MarkCorrect(question *models.Question, answer *models.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var displaced models.Answer
		hasDisplaced := true
		err := tx.Where("question_id = ? AND is_correct = ?", question.ID, true).First(&displaced).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hasDisplaced = false
		}

		if err := tx.Model(&models.Answer{}).
			Where("question_id = ?", question.ID).
			Update("is_correct", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Answer{}).
			Where("id = ?", answer.ID).
			Update("is_correct", true).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Question{}).
			Where("id = ?", question.ID).
			Update("completed", true).Error; err != nil {
			return err
		}

		if err := recomputeAcceptedCount(tx, answer.AuthorID); err != nil {
			return err
		}
		if hasDisplaced && displaced.AuthorID != answer.AuthorID {
			return recomputeAcceptedCount(tx, displaced.AuthorID)
		}
		return nil
	})
}

// recomputeReactionCounts rebuilds like_count and dislike_count for one user
// as the count of distinct (reactor, answer) pairs over the user's answers.
func recomputeReactionCounts(tx *gorm.DB, authorID uint) error {
	return tx.Exec(`
		UPDATE users SET
			like_count = (
				SELECT COUNT(*) FROM answer_likes
				JOIN answers ON answers.id = answer_likes.answer_id
				WHERE answers.author_id = users.id AND answers.deleted_at IS NULL
			),
			dislike_count = (
				SELECT COUNT(*) FROM answer_dislikes
				JOIN answers ON answers.id = answer_dislikes.answer_id
				WHERE answers.author_id = users.id AND answers.deleted_at IS NULL
			)
		WHERE users.id = ?
	`, authorID).Error
}

func recomputeAcceptedCount(tx *gorm.DB, authorID uint) error {
	return tx.Exec(`
		UPDATE users SET
			accepted_count = (
				SELECT COUNT(*) FROM answers
				WHERE answers.author_id = users.id
					AND answers.is_correct = ?
					AND answers.deleted_at IS NULL
			)
		WHERE users.id = ?
	`, true, authorID).Error
}
