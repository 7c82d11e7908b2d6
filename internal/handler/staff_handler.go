package handler

import (
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StaffHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewStaffHandler(store storage.Storage, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		store: store,
		log:   log,
	}
}

// GetStaffMembers lists the directory sorted by order then name;
// ?active=true limits the list to active members.
func (h *StaffHandler) GetStaffMembers(c *gin.Context) {
	var (
		list []entity.StaffMember
		err  error
	)
	if c.Query("active") == "true" {
		list, err = h.store.GetActiveStaffMembers(c.Request.Context())
	} else {
		list, err = h.store.GetAllStaffMembers(c.Request.Context())
	}
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var req dto.CreateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	member := &entity.StaffMember{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		ImageURL:   req.ImageURL,
		IsActive:   true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.Order != nil {
		member.Order = *req.Order
	}

	if err := h.store.CreateStaffMember(c.Request.Context(), member); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	member, err := h.store.UpdateStaffMember(c.Request.Context(), id, storage.StaffMemberUpdate{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		ImageURL:   req.ImageURL,
		IsActive:   req.IsActive,
		Order:      req.Order,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteStaffMember(c.Request.Context(), id); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
