package ports

import "context"

// PasswordResetMailer entrega o link de redefinição de senha ao usuário
type PasswordResetMailer interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}
