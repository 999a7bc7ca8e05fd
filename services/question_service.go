package services

import (
	"errors"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.QuestionResponse, error)
	GetQuestions(params models.QuestionListParams) ([]models.QuestionResponse, int64, error)
	GetMyQuestions(userID uint) (*models.MyQuestionsResponse, error)
	Search(params models.SearchParams) ([]models.SearchResult, error)
}

type questionService struct {
	questionRepo repositories.QuestionRepository
	tagRepo      repositories.TagRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, tagRepo repositories.TagRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
	}
}

func (s *questionService) CreateQuestion(req models.CreateQuestionRequest, userID uint) (*models.QuestionResponse, error) {
	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    userID,
		Tags:        tags,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	created, err := s.questionRepo.GetByID(question.ID)
	if err != nil {
		return nil, err
	}

	resp := models.NewQuestionResponse(created)
	return &resp, nil
}

func (s *questionService) GetQuestions(params models.QuestionListParams) ([]models.QuestionResponse, int64, error) {
	questions, total, err := s.questionRepo.GetList(params)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]models.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, models.NewQuestionResponse(&questions[i]))
	}
	return responses, total, nil
}

func (s *questionService) GetMyQuestions(userID uint) (*models.MyQuestionsResponse, error) {
	questions, total, err := s.questionRepo.GetListByAuthor(userID)
	if err != nil {
		return nil, err
	}

	results := make([]models.QuestionResponse, 0, len(questions))
	for i := range questions {
		results = append(results, models.NewQuestionResponse(&questions[i]))
	}
	return &models.MyQuestionsResponse{TotalQuestions: total, Results: results}, nil
}

func (s *questionService) Search(params models.SearchParams) ([]models.SearchResult, error) {
	questions, err := s.questionRepo.Search(params.Query, params.Tag)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(questions))
	for _, q := range questions {
		tagNames := make([]string, 0, len(q.Tags))
		for _, t := range q.Tags {
			tagNames = append(tagNames, t.Name)
		}
		results = append(results, models.SearchResult{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Tags:        tagNames,
		})
	}
	return results, nil
}

// processTags resolves tag names get-or-create style, exact match in storage.
func (s *questionService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}
