package repositories

import (
	"fmt"

	"stayconnected-api/models"

	"gorm.io/gorm"
)

// ReputationRow is one leaderboard entry scanned from the ranking query.
type ReputationRow struct {
	ID            uint
	Username      string
	LikeCount     int
	DislikeCount  int
	AcceptedCount int
	AnswersCount  int64
}

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
	CountAnswers(userID uint) (int64, error)
	ListByReputation(order string, offset, limit int) ([]ReputationRow, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *userRepository) CountAnswers(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Answer{}).Where("author_id = ?", userID).Count(&total).Error
	return total, err
}

// ListByReputation orders users by the derived reputation score with user id
// ascending as tiebreaker, so pagination stays deterministic across pages.
// order must be "asc" or "desc"; callers validate before passing it in.
func (r *userRepository) ListByReputation(order string, offset, limit int) ([]ReputationRow, error) {
	var rows []ReputationRow

	query := fmt.Sprintf(`
		SELECT
			users.id,
			users.username,
			users.like_count,
			users.dislike_count,
			users.accepted_count,
			(SELECT COUNT(*) FROM answers
				WHERE answers.author_id = users.id AND answers.deleted_at IS NULL) AS answers_count
		FROM users
		WHERE users.deleted_at IS NULL
		ORDER BY (users.like_count * 10 - users.dislike_count * 5 + users.accepted_count * 15) %s, users.id ASC
		LIMIT ? OFFSET ?
	`, order)

	err := r.db.Raw(query, limit, offset).Scan(&rows).Error
	return rows, err
}
