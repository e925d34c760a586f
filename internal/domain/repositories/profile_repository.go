package repositories

import (
	"context"
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// ProfileRepository define a interface para persistência de perfis
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	FindByID(ctx context.Context, id string) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	FindByUsername(ctx context.Context, username string) (*entities.Profile, error)
	FindByOAuth(ctx context.Context, provider, subject string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
}

// PasswordResetRepository define a persistência dos tokens de redefinição
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entities.PasswordReset) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*entities.PasswordReset, error)
	// MarkUsed consome o token só se ainda não foi usado; false quando outra
	// requisição já o consumiu
	MarkUsed(ctx context.Context, reset *entities.PasswordReset, usedAt time.Time) (bool, error)
}
