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

type EventHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewEventHandler(store storage.Storage, log *zap.Logger) *EventHandler {
	return &EventHandler{
		store: store,
		log:   log,
	}
}

// GetEvents lists events newest first by event date; ?published=true limits
// the list to published ones.
func (h *EventHandler) GetEvents(c *gin.Context) {
	var (
		list []entity.Event
		err  error
	)
	if c.Query("published") == "true" {
		list, err = h.store.GetPublishedEvents(c.Request.Context())
	} else {
		list, err = h.store.GetAllEvents(c.Request.Context())
	}
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}
	if user, ok := middleware.CurrentUser(c); ok {
		event.CreatedBy = &user.ID
	}

	if err := h.store.CreateEvent(c.Request.Context(), event); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	event, err := h.store.UpdateEvent(c.Request.Context(), id, storage.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
