package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkwell/mealvault/backend/internal/repository"
)

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	UploadRecipeImage(ctx context.Context, recipeID int64, data []byte, contentType string) (string, error)
}

type ImageHandler struct {
	repo     *repository.RecipeRepository
	uploader ImageUploader
}

// NewImageHandler creates a new ImageHandler. uploader may be nil when no
// image storage is configured.
func NewImageHandler(repo *repository.RecipeRepository, uploader ImageUploader) *ImageHandler {
	return &ImageHandler{repo: repo, uploader: uploader}
}

// UploadRecipeImage accepts a multipart "image" file, stores it, and records
// the resulting URL on the recipe.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open image file"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}

	url, err := h.uploader.UploadRecipeImage(c.Request.Context(), id, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.repo.SetRecipeImageURL(c.Request.Context(), id, url); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
