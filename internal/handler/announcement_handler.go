package handler

import (
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/middleware"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnnouncementHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewAnnouncementHandler(store storage.Storage, log *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		store: store,
		log:   log,
	}
}

// GetAnnouncements lists announcements newest first; ?published=true limits
// the list to published ones.
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	var (
		list []entity.Announcement
		err  error
	)
	if c.Query("published") == "true" {
		list, err = h.store.GetPublishedAnnouncements(c.Request.Context())
	} else {
		list, err = h.store.GetAllAnnouncements(c.Request.Context())
	}
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	announcement := &entity.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		announcement.IsPublished = *req.IsPublished
	}
	if user, ok := middleware.CurrentUser(c); ok {
		announcement.CreatedBy = &user.ID
	}

	if err := h.store.CreateAnnouncement(c.Request.Context(), announcement); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	announcement, err := h.store.UpdateAnnouncement(c.Request.Context(), id, storage.AnnouncementUpdate{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
