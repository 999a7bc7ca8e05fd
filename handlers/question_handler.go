package handlers

import (
	"net/http"

	"stayconnected-api/helper"
	"stayconnected-api/models"
	"stayconnected-api/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, h *helper.HTTPHelper) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, Helper: h}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(req, userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	questions, total, err := h.questionService.GetQuestions(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	})
}

func (h *QuestionHandler) GetMyQuestions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	response, err := h.questionService.GetMyQuestions(userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *QuestionHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.questionService.Search(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
