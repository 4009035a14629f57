package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/types"
)

// maxProfilePictureBytes caps profile picture uploads at 5 MiB.
const maxProfilePictureBytes = 5 << 20

// ProfileService is the surface the profile handler needs.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, nutrition.GoalDecision, error)
	SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error
}

// ImageService uploads profile pictures and returns their public URL.
type ImageService interface {
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, imageData []byte, contentType string) (string, error)
}

type ProfileHandler struct {
	profileService ProfileService
	imageService   ImageService
}

func NewProfileHandler(profileService ProfileService, imageService ImageService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		imageService:   imageService,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, decision, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "profile updated successfully",
		"profile":     profile,
		"goal_source": decision.Source,
	})
}

// UploadProfilePicture accepts an image body, stores it, and records the URL
// on the profile.
func (h *ProfileHandler) UploadProfilePicture(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contentType := c.ContentType()
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProfilePictureBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty image body"})
		return
	}
	if len(data) > maxProfilePictureBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	url, err := h.imageService.UploadProfilePicture(c.Request.Context(), userID, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	if err := h.profileService.SetProfilePicture(c.Request.Context(), userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile picture"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture_url": url})
}
