package handler

import (
	"errors"
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	store storage.Storage
	auth  service.AuthService
	log   *zap.Logger
}

func NewUserHandler(store storage.Storage, auth service.AuthService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		store: store,
		auth:  auth,
		log:   log,
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.store.GetAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	hashed, err := h.auth.HashPassword(req.Password)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	user := &entity.User{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			response.Message(c, http.StatusBadRequest, "Username already exists")
			return
		}
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
