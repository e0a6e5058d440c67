package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=20"`
	Surname  string `json:"surname" binding:"required,min=2,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: returned from registration and login; AccessToken is
// the opaque session capability to put in the Authorization header.
type AuthResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	AccessToken string `json:"access_token"`
}
