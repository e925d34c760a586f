package ports

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// TokenIssuer emite e valida tokens de sessão
type TokenIssuer interface {
	Issue(profile *entities.Profile) (string, error)
	Parse(token string) (*SessionClaims, error)
}

// SessionClaims são os dados extraídos de um token válido
type SessionClaims struct {
	ProfileID string
	Role      entities.Role
}

// PasswordHasher gera e compara hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// OAuthIdentity é a conta retornada por um provedor OAuth
type OAuthIdentity struct {
	Provider string
	Subject  string
	Email    string
	Username string
	Name     string
}

// OAuthExchanger troca um código de autorização pela identidade do usuário
type OAuthExchanger interface {
	Exchange(ctx context.Context, provider, code string) (*OAuthIdentity, error)
	AuthCodeURL(provider, state string) (string, error)
}
