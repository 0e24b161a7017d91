package dto

import "github.com/InkwellBlog/web-client/internal/model"

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        model.UserProfile `json:"user"`
	DisplayName string            `json:"display_name"`
}
