package handler

import (
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/internal/dto"
	"github.com/Suvay/sjnhs-web-draft/internal/middleware"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": formatValidationError(err)})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Me returns the authenticated user attached by RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
