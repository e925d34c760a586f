// Package mail entrega mensagens transacionais.
package mail

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

// LogMailer registra o link no log em vez de enviar um e-mail.
// Usado enquanto não há provedor de e-mail configurado.
type LogMailer struct {
	logger ports.Logger
}

// NewLogMailer cria um LogMailer
func NewLogMailer(logger ports.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, link string) error {
	m.logger.Info("password reset requested",
		"email", email,
		"link", link,
	)
	return nil
}
