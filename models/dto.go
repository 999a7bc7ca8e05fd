package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthResponse struct {
	Tokens TokenPair `json:"tokens"`
	User   User      `json:"user"`
}

type UpdateSettingsRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
}

type CreateAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type QuestionListParams struct {
	Tags  []string `form:"tags"`
	Page  int      `form:"page,default=1"`
	Limit int      `form:"limit,default=10"`
}

type SearchParams struct {
	Query string `form:"query"`
	Tag   string `form:"tag"`
}

type LeaderboardParams struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=20"`
	SortOrder string `form:"sort_order,default=desc"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AnswerResponse struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	Author       string    `json:"author"`
	IsCorrect    bool      `json:"is_correct"`
	Likes        []uint    `json:"likes"`
	Dislikes     []uint    `json:"dislikes"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuestionResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Author      string           `json:"author"`
	Tags        []TagResponse    `json:"tags"`
	Answers     []AnswerResponse `json:"answers"`
	Completed   bool             `json:"completed"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// QuestionAnswersResponse is the answer listing with its question summary
// header. Answers are ordered by creation time ascending.
type QuestionAnswersResponse struct {
	QuestionID    uint             `json:"question_id"`
	QuestionTitle string           `json:"question_title"`
	Description   string           `json:"description"`
	Author        string           `json:"author"`
	Completed     bool             `json:"completed"`
	CreatedAt     time.Time        `json:"created_at"`
	AnswersCount  int              `json:"answers_count"`
	Results       []AnswerResponse `json:"results"`
}

type MyQuestionsResponse struct {
	TotalQuestions int64              `json:"total_questions"`
	Results        []QuestionResponse `json:"results"`
}

type SearchResult struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ReputationResponse struct {
	UserID          uint  `json:"user_id"`
	Likes           int   `json:"likes"`
	Dislikes        int   `json:"dislikes"`
	Reputation      int   `json:"reputation"`
	AnswersCount    int64 `json:"answers_count"`
	AcceptedAnswers int   `json:"accepted_answers"`
}

type LeaderboardEntry struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	ReputationScore int    `json:"reputation_score"`
	Likes           int    `json:"likes"`
	Dislikes        int    `json:"dislikes"`
	AnswersCount    int64  `json:"answers_count"`
	AcceptedAnswers int    `json:"accepted_answers"`
}

type LeaderboardResponse struct {
	Users       []LeaderboardEntry `json:"users"`
	TotalUsers  int64              `json:"total_users"`
	TotalPages  int                `json:"total_pages"`
	CurrentPage int                `json:"current_page"`
	PageSize    int                `json:"page_size"`
}

// NewAnswerResponse flattens the preloaded author and membership sets.
func NewAnswerResponse(a *Answer) AnswerResponse {
	likes := make([]uint, 0, len(a.Likes))
	for _, u := range a.Likes {
		likes = append(likes, u.ID)
	}
	dislikes := make([]uint, 0, len(a.Dislikes))
	for _, u := range a.Dislikes {
		dislikes = append(dislikes, u.ID)
	}
	return AnswerResponse{
		ID:           a.ID,
		Text:         a.Text,
		Author:       a.Author.Username,
		IsCorrect:    a.IsCorrect,
		Likes:        likes,
		Dislikes:     dislikes,
		LikeCount:    len(likes),
		DislikeCount: len(dislikes),
		CreatedAt:    a.CreatedAt,
	}
}

func NewQuestionResponse(q *Question) QuestionResponse {
	tags := make([]TagResponse, 0, len(q.Tags))
	for _, t := range q.Tags {
		tags = append(tags, TagResponse{ID: t.ID, Name: t.Name})
	}
	answers := make([]AnswerResponse, 0, len(q.Answers))
	for i := range q.Answers {
		answers = append(answers, NewAnswerResponse(&q.Answers[i]))
	}
	return QuestionResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Author:      q.Author.Username,
		Tags:        tags,
		Answers:     answers,
		Completed:   q.Completed,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
