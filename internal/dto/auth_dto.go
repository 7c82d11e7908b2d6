package dto

import "github.com/Suvay/sjnhs-web-draft/internal/entity"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user and the bearer token. The
// password hash never serializes: entity.User marks it json:"-".
type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}
