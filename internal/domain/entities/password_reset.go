package entities

import "time"

// PasswordReset é um token de redefinição de senha de uso único.
// Apenas o hash do token é persistido.
type PasswordReset struct {
	ID        string
	ProfileID string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable verifica se o token ainda pode ser usado
func (r *PasswordReset) IsUsable(now time.Time) bool {
	return r.UsedAt == nil && now.Before(r.ExpiresAt)
}

// MarkUsed consome o token
func (r *PasswordReset) MarkUsed(now time.Time) {
	r.UsedAt = &now
}
