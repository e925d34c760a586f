package entities

import (
	"errors"
	"regexp"
	"time"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,30}$`)

// Profile representa a identidade de um usuário no catálogo
type Profile struct {
	ID            string
	Email         valueobjects.Email
	Username      string
	DisplayName   string
	PasswordHash  *string // nil para contas criadas via OAuth
	OAuthProvider *string
	OAuthSubject  *string
	Reputation    int
	Role          Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPermission verifica se o usuário tem uma permissão
func (p *Profile) HasPermission(permission Permission) bool {
	return p.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (p *Profile) GetPermissions() []string {
	perms := p.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, perm := range perms {
		result[i] = string(perm)
	}
	return result
}

// HasPassword indica se a conta aceita login por senha
func (p *Profile) HasPassword() bool {
	return p.PasswordHash != nil && *p.PasswordHash != ""
}

// ValidUsername indica se o username tem 3-30 letras, dígitos, ".", "_" ou "-"
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// Validate valida regras de negócio da entidade Profile
func (p *Profile) Validate() error {
	if p.Email.String() == "" {
		return domainerrors.ErrInvalidEmail
	}

	if !ValidUsername(p.Username) {
		return domainerrors.ErrInvalidUsername
	}

	if !p.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
