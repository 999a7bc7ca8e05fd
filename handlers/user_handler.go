package handlers

import (
	"net/http"
	"strconv"

	"stayconnected-api/helper"
	"stayconnected-api/models"
	"stayconnected-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	reputationService services.ReputationService
	Helper            *helper.HTTPHelper
}

func NewUserHandler(reputationService services.ReputationService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{reputationService: reputationService, Helper: h}
}

func (h *UserHandler) GetReputation(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	reputation, err := h.reputationService.GetReputation(uint(userID))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, reputation)
}

func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	var params models.LeaderboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leaderboard, err := h.reputationService.GetLeaderboard(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}
