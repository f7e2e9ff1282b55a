package dto

// SignupRequest represents the API request for registering a user
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the API response for a user summary
type UserResponse struct {
	UserID       uint64 `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	UserID       uint64 `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsFirstLogin bool   `json:"isFirstLogin"`
	Token        string `json:"token"`
}

// MessageResponse represents a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
