package handlers

import (
	"net/http"
	"strconv"

	"stayconnected-api/helper"
	"stayconnected-api/models"
	"stayconnected-api/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService     services.AnswerService
	reputationService services.ReputationService
	Helper            *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService, reputationService services.ReputationService, h *helper.HTTPHelper) *AnswerHandler {
	return &AnswerHandler{
		answerService:     answerService,
		reputationService: reputationService,
		Helper:            h,
	}
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	userID, _ := c.Get("user_id")
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.CreateAnswer(uint(questionID), req, userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, answer)
}

func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	response, err := h.answerService.ListForQuestion(uint(questionID))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AnswerHandler) MarkCorrect(c *gin.Context) {
	userID, _ := c.Get("user_id")
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	if err := h.answerService.MarkCorrect(uint(answerID), userID.(uint)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Answer marked as correct"})
}

// React handles /answers/:id/:action where action is "like" or "dislike".
func (h *AnswerHandler) React(c *gin.Context) {
	userID, _ := c.Get("user_id")
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	action := c.Param("action")
	if err := h.reputationService.React(uint(answerID), userID.(uint), action); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Action performed"})
}
