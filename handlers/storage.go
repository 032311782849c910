package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"studeaf/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles image upload endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedFolders defines the permitted upload destinations.
var allowedFolders = map[string]bool{
	"profiles":  true,
	"forums":    true,
	"summaries": true,
}

// UploadImageHandler handles POST /api/storage/:folder. It stages the upload
// in a temp file, pushes it to the media host, and returns the hosted URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'profiles', 'forums' and 'summaries'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadImage(c, tempFilePath, "studeaf/"+folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
