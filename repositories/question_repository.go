package repositories

import (
	"strings"

	"stayconnected-api/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetList(params models.QuestionListParams) ([]models.Question, int64, error)
	GetListByAuthor(authorID uint) ([]models.Question, int64, error)
	Search(query, tag string) ([]models.Question, error)
	Update(question *models.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at asc, answers.id asc")
		}).
		Preload("Answers.Author").
		Preload("Answers.Likes").
		Preload("Answers.Dislikes").
		First(&question, id).Error
	return &question, err
}

// GetList returns newest questions first. Tag names filter with OR semantics
// and case-insensitive exact matching per tag.
func (r *questionRepository) GetList(params models.QuestionListParams) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	query := r.db.Model(&models.Question{}).
		Preload("Author").
		Preload("Tags").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at asc, answers.id asc")
		}).
		Preload("Answers.Author").
		Preload("Answers.Likes").
		Preload("Answers.Dislikes")

	if len(params.Tags) > 0 {
		lowered := make([]string, 0, len(params.Tags))
		for _, name := range params.Tags {
			lowered = append(lowered, strings.ToLower(name))
		}
		query = query.Where(
			"questions.id IN (?)",
			r.db.Table("question_tags").
				Select("question_tags.question_id").
				Joins("JOIN tags ON tags.id = question_tags.tag_id").
				Where("LOWER(tags.name) IN ?", lowered),
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("questions.created_at desc, questions.id desc").
		Offset(offset).Limit(params.Limit).
		Find(&questions).Error

	return questions, total, err
}

func (r *questionRepository) GetListByAuthor(authorID uint) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	query := r.db.Model(&models.Question{}).Where("author_id = ?", authorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").
		Preload("Tags").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at asc, answers.id asc")
		}).
		Preload("Answers.Author").
		Preload("Answers.Likes").
		Preload("Answers.Dislikes").
		Order("created_at desc, id desc").
		Find(&questions).Error

	return questions, total, err
}

// Search matches the query as a case-insensitive substring of title or
// description, optionally restricted to questions carrying an exact tag name.
func (r *questionRepository) Search(query, tag string) ([]models.Question, error) {
	var questions []models.Question

	pattern := "%" + strings.ToLower(query) + "%"
	db := r.db.Model(&models.Question{}).
		Preload("Tags").
		Where("LOWER(questions.title) LIKE ? OR LOWER(questions.description) LIKE ?", pattern, pattern)

	if tag != "" {
		db = db.Where(
			"questions.id IN (?)",
			r.db.Table("question_tags").
				Select("question_tags.question_id").
				Joins("JOIN tags ON tags.id = question_tags.tag_id").
				Where("tags.name = ?", tag),
		)
	}

	err := db.Order("questions.created_at desc, questions.id desc").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}
