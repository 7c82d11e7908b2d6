package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	imagestorage "github.com/Suvay/sjnhs-web-draft/pkg/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 5 MB is plenty for staff photos and page images.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	images imagestorage.ImageStorage
	folder string
	log    *zap.Logger
}

func NewUploadHandler(images imagestorage.ImageStorage, folder string, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		images: images,
		folder: folder,
		log:    log,
	}
}

// Upload accepts a multipart image under the "file" field and returns the
// hosted URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file too large (max 5MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported file type"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read file"})
		return
	}
	defer f.Close()

	url, err := h.images.UploadImage(c.Request.Context(), f, h.folder, fileHeader.Filename)
	if err != nil {
		h.log.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
