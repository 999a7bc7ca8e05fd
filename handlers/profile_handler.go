package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"stayconnected-api/helper"
	"stayconnected-api/models"
	"stayconnected-api/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
	uploadDir      string
}

func NewProfileHandler(profileService services.ProfileService, h *helper.HTTPHelper) *ProfileHandler {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &ProfileHandler{profileService: profileService, Helper: h, uploadDir: uploadDir}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.profileService.GetProfile(userID.(uint))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadPhoto stores the multipart "profile_photo" file under the upload dir
// and records its path on the user.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	userID, _ := c.Get("user_id")

	file, err := c.FormFile("profile_photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_photo file is required"})
		return
	}

	filename := fmt.Sprintf("%d_%d%s", userID.(uint), time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadDir, filename)

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileService.SetProfilePhoto(userID.(uint), dst)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) RemovePhoto(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.profileService.RemoveProfilePhoto(userID.(uint)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile photo removed."})
}

func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendBindingValidationError(c, validationErrors)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileService.UpdateSettings(userID.(uint), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
