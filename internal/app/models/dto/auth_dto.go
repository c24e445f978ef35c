package dto

import "time"

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank" example:"tpo_admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse carries the session token and the signed in user
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"tpo_admin"`
	Role     string `json:"role" example:"tpo"`
}
