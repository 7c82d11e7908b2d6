package handler

import (
	"errors"
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/middleware"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ContentHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewContentHandler(store storage.Storage, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		store: store,
		log:   log,
	}
}

func (h *ContentHandler) GetAllContentPages(c *gin.Context) {
	pages, err := h.store.GetAllContentPages(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pages)
}

func (h *ContentHandler) GetContentPage(c *gin.Context) {
	page, err := h.store.GetContentPage(c.Request.Context(), c.Param("pageKey"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Page not found")
			return
		}
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) CreateContentPage(c *gin.Context) {
	var req dto.CreateContentPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	user, _ := middleware.CurrentUser(c)

	page := &entity.ContentPage{
		PageKey:     req.PageKey,
		Title:       req.Title,
		Content:     datatypes.JSON(req.Content),
		IsPublished: true,
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if user != nil {
		page.ModifiedBy = &user.ID
	}

	if err := h.store.CreateContentPage(c.Request.Context(), page); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			response.Message(c, http.StatusBadRequest, "Page key already exists")
			return
		}
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

func (h *ContentHandler) UpdateContentPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateContentPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	upd := storage.ContentPageUpdate{
		Title:       req.Title,
		Content:     datatypes.JSON(req.Content),
		IsPublished: req.IsPublished,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		upd.ModifiedBy = &user.ID
	}

	page, err := h.store.UpdateContentPage(c.Request.Context(), id, upd)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
