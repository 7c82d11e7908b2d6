package handler

import (
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewSettingHandler(store storage.Storage, log *zap.Logger) *SettingHandler {
	return &SettingHandler{
		store: store,
		log:   log,
	}
}

func (h *SettingHandler) GetAllSiteSettings(c *gin.Context) {
	settings, err := h.store.GetAllSiteSettings(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSiteSetting upserts the setting under :key.
func (h *SettingHandler) UpdateSiteSetting(c *gin.Context) {
	var req dto.UpdateSiteSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	setting, err := h.store.UpdateSiteSetting(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
