package services

import (
	"errors"
	"math"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"gorm.io/gorm"
)

const maxLeaderboardPageSize = 100

type ReputationService interface {
	React(answerID, userID uint, action string) error
	GetReputation(userID uint) (*models.ReputationResponse, error)
	GetLeaderboard(params models.LeaderboardParams) (*models.LeaderboardResponse, error)
}

type reputationService struct {
	answerRepo repositories.AnswerRepository
	userRepo   repositories.UserRepository
}

func NewReputationService(answerRepo repositories.AnswerRepository, userRepo repositories.UserRepository) ReputationService {
	return &reputationService{
		answerRepo: answerRepo,
		userRepo:   userRepo,
	}
}

// React applies a like or dislike from userID to an answer. The membership
// change and the answer author's counter recompute commit together.
func (s *reputationService) React(answerID, userID uint, action string) error {
	reaction := models.ReactionAction(action)
	if reaction != models.ReactionLike && reaction != models.ReactionDislike {
		return models.ErrorValidation{Message: "Invalid action"}
	}

	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Answer not found"}
		}
		return err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "User not found"}
		}
		return err
	}

	return s.answerRepo.SetReaction(answer, user, reaction)
}

func (s *reputationService) GetReputation(userID uint) (*models.ReputationResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, err
	}

	answersCount, err := s.userRepo.CountAnswers(userID)
	if err != nil {
		return nil, err
	}

	return &models.ReputationResponse{
		UserID:          user.ID,
		Likes:           user.LikeCount,
		Dislikes:        user.DislikeCount,
		Reputation:      user.ReputationScore(),
		AnswersCount:    answersCount,
		AcceptedAnswers: user.AcceptedCount,
	}, nil
}

// GetLeaderboard pages users ranked by reputation score. A page past the end
// is a not-found error carrying the total page count.
func (s *reputationService) GetLeaderboard(params models.LeaderboardParams) (*models.LeaderboardResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxLeaderboardPageSize {
		pageSize = maxLeaderboardPageSize
	}
	order := "DESC"
	if params.SortOrder == "asc" {
		order = "ASC"
	}

	total, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return nil, models.ErrorNotFound{
			Message: "Page not found",
			Data:    map[string]interface{}{"total_pages": totalPages},
		}
	}

	rows, err := s.userRepo.ListByReputation(order, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	users := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		score := 10*row.LikeCount - 5*row.DislikeCount + 15*row.AcceptedCount
		users = append(users, models.LeaderboardEntry{
			UserID:          row.ID,
			Username:        row.Username,
			ReputationScore: score,
			Likes:           row.LikeCount,
			Dislikes:        row.DislikeCount,
			AnswersCount:    row.AnswersCount,
			AcceptedAnswers: row.AcceptedCount,
		})
	}

	return &models.LeaderboardResponse{
		Users:       users,
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}
