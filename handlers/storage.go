package handlers

import (
	"net/http"

	"eventvibe/services/onboarding"
	"eventvibe/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler uploads profile pictures for the photo step.
type StorageHandler struct {
	Cld *cloudinary.Cloudinary
}

// NewStorageHandler wires the handler to the Cloudinary client.
func NewStorageHandler(cld *cloudinary.Cloudinary) *StorageHandler {
	return &StorageHandler{Cld: cld}
}

// UploadProfilePictureHandler validates and uploads a profile photo, returning
// the reference the photo step submits. The step itself remains optional.
func (h *StorageHandler) UploadProfilePictureHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo in request"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := onboarding.ValidatePhoto(contentType, fileHeader.Size); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		getLogger(c).Error("Failed to open uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed, please try again"})
		return
	}
	defer file.Close()

	ref, err := utils.UploadProfilePicture(h.Cld, file)
	if err != nil {
		getLogger(c).Error("Failed to upload profile picture", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profilePicture": ref})
}
