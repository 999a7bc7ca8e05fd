package services

import (
	"errors"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"gorm.io/gorm"
)

type AnswerService interface {
	CreateAnswer(questionID uint, req models.CreateAnswerRequest, userID uint) (*models.AnswerResponse, error)
	ListForQuestion(questionID uint) (*models.QuestionAnswersResponse, error)
	MarkCorrect(answerID uint, callerID uint) error
}

type answerService struct {
	answerRepo   repositories.AnswerRepository
	questionRepo repositories.QuestionRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository, questionRepo repositories.QuestionRepository) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

func (s *answerService) CreateAnswer(questionID uint, req models.CreateAnswerRequest, userID uint) (*models.AnswerResponse, error) {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Question not found"}
		}
		return nil, err
	}

	answer := &models.Answer{
		Text:       req.Text,
		AuthorID:   userID,
		QuestionID: questionID,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	created, err := s.answerRepo.GetByID(answer.ID)
	if err != nil {
		return nil, err
	}

	resp := models.NewAnswerResponse(created)
	return &resp, nil
}

func (s *answerService) ListForQuestion(questionID uint) (*models.QuestionAnswersResponse, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Question not found"}
		}
		return nil, err
	}

	answers, err := s.answerRepo.GetByQuestion(questionID)
	if err != nil {
		return nil, err
	}

	results := make([]models.AnswerResponse, 0, len(answers))
	for i := range answers {
		results = append(results, models.NewAnswerResponse(&answers[i]))
	}

	return &models.QuestionAnswersResponse{
		QuestionID:    question.ID,
		QuestionTitle: question.Title,
		Description:   question.Description,
		Author:        question.Author.Username,
		Completed:     question.Completed,
		CreatedAt:     question.CreatedAt,
		AnswersCount:  len(results),
		Results:       results,
	}, nil
}

// MarkCorrect selects the accepted answer for a question. Only the question's
// author may call it. Marking an already-correct answer again is a no-op with
// the same postconditions.
func (s *answerService) MarkCorrect(answerID uint, callerID uint) error {
	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Answer not found"}
		}
		return err
	}

	if answer.Question == nil || answer.Question.AuthorID != callerID {
		return models.ErrorForbidden{Message: "Only the question author can mark an answer as correct"}
	}

	return s.answerRepo.MarkCorrect(answer.Question, answer)
}
