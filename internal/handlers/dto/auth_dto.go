package dto

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// SignUpRequest representa a requisição de cadastro
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=30"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest pede um link de redefinição
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest troca a senha com o token recebido
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// MessageResponse é uma resposta com apenas uma mensagem traduzida
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionResponse é a resposta de login e cadastro
type SessionResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse representa o perfil público do usuário autenticado
type ProfileResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Reputation    int       `json:"reputation"`
	Role          string    `json:"role"`
	Permissions   []string  `json:"permissions"`
	OAuthProvider *string   `json:"oauth_provider,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToProfileResponse converte uma entidade Profile para ProfileResponse
func ToProfileResponse(p *entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		Email:         p.Email.String(),
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		Reputation:    p.Reputation,
		Role:          string(p.Role),
		Permissions:   p.GetPermissions(),
		OAuthProvider: p.OAuthProvider,
		CreatedAt:     p.CreatedAt,
	}
}
