package userControllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
	"github.com/emmanuel-nwafor/Fore-made-webApp/profile"
)

func sessionFromContext(c *gin.Context) *models.Session {
	uid, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, _ := uid.(string)
	if id == "" {
		return nil
	}
	return &models.Session{
		UID:         id,
		Email:       c.GetString("email"),
		DisplayName: c.GetString("name"),
	}
}

// GET /user
func GetUser(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.View(c.Request.Context(), sessionFromContext(c))
		if err != nil {
			if errors.Is(err, models.ErrAuthRequired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to view your profile."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// PUT /user
func UpdateUser(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input profile.UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		view, err := svc.Update(c.Request.Context(), sessionFromContext(c), input)
		if err != nil {
			if errors.Is(err, models.ErrAuthRequired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to update your profile."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /user/avatar
// Multipart upload, field name "image". The payload is validated (image/*
// under 5 MiB) and stored inline in the profile extras.
func UploadAvatar(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}
		defer f.Close()

		// Read one byte past the cap so oversize uploads are detected
		// without buffering the whole file.
		data, err := io.ReadAll(io.LimitReader(f, profile.MaxAvatarBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}

		view, err := svc.SaveAvatar(c.Request.Context(), sessionFromContext(c), data)
		if err != nil {
			var imgErr *models.InvalidImageError
			switch {
			case errors.As(err, &imgErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": imgErr.Reason})
			case errors.Is(err, models.ErrAuthRequired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to update your profile."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image. Please try again."})
			}
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
