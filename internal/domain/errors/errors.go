package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrAuthenticationRequired = errors.New("error.authentication_required")
	ErrAdminRequired          = errors.New("error.admin_required")
	ErrForbidden              = errors.New("error.forbidden")
	ErrInvalidCredentials     = errors.New("error.invalid_credentials")
	ErrEmailAlreadyExists     = errors.New("error.email_already_exists")
	ErrUsernameAlreadyExists  = errors.New("error.username_already_exists")
	ErrProfileNotFound        = errors.New("error.profile_not_found")
	ErrBrandNotFound          = errors.New("error.brand_not_found")
	ErrBrandAlreadyExists     = errors.New("error.brand_already_exists")
	ErrTagNotFound            = errors.New("error.tag_not_found")
	ErrItemNotFound           = errors.New("error.item_not_found")
	ErrItemAlreadyExists      = errors.New("error.item_already_exists")
	ErrInvalidResetToken      = errors.New("error.invalid_reset_token")
	ErrUnknownOAuthProvider   = errors.New("error.unknown_oauth_provider")
	ErrOAuthExchangeFailed    = errors.New("error.oauth_exchange_failed")
	ErrRateLimited            = errors.New("error.rate_limited")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail       = errors.New("error.invalid_email")
	ErrInvalidUsername    = errors.New("error.invalid_username")
	ErrWeakPassword       = errors.New("error.weak_password")
	ErrInvalidName        = errors.New("error.invalid_name")
	ErrInvalidSlug        = errors.New("error.invalid_slug")
	ErrInvalidVoteValue   = errors.New("error.invalid_vote_value")
	ErrInvalidYearRange   = errors.New("error.invalid_year_range")
	ErrInvalidCategory    = errors.New("error.invalid_category")
	ErrInvalidEra         = errors.New("error.invalid_era")
	ErrInvalidImage       = errors.New("error.invalid_image")
	ErrImageTooLarge      = errors.New("error.image_too_large")
	ErrInvalidSearchQuery = errors.New("error.invalid_search_query")
	ErrTextTooLong        = errors.New("error.text_too_long")
	ErrInvalidStorageKey  = errors.New("error.invalid_storage_key")
)

var validationErrors = []error{
	ErrInvalidEmail,
	ErrInvalidUsername,
	ErrWeakPassword,
	ErrInvalidName,
	ErrInvalidSlug,
	ErrInvalidVoteValue,
	ErrInvalidYearRange,
	ErrInvalidCategory,
	ErrInvalidEra,
	ErrInvalidImage,
	ErrImageTooLarge,
	ErrInvalidSearchQuery,
	ErrTextTooLong,
	ErrInvalidStorageKey,
}

// IsValidation indica se o erro é de validação de entrada
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var businessErrors = []error{
	ErrAuthenticationRequired,
	ErrAdminRequired,
	ErrForbidden,
	ErrInvalidCredentials,
	ErrEmailAlreadyExists,
	ErrUsernameAlreadyExists,
	ErrProfileNotFound,
	ErrBrandNotFound,
	ErrBrandAlreadyExists,
	ErrTagNotFound,
	ErrItemNotFound,
	ErrItemAlreadyExists,
	ErrInvalidResetToken,
	ErrUnknownOAuthProvider,
	ErrOAuthExchangeFailed,
	ErrRateLimited,
}

// MessageID retorna a chave i18n do primeiro erro conhecido na cadeia de err.
// Erros desconhecidos viram "error.generic".
func MessageID(err error) string {
	for _, list := range [][]error{businessErrors, validationErrors} {
		for _, target := range list {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
	}
	return "error.generic"
}

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeRateLimited  = "/problems/rate-limited"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// BrandExistsError é retornado quando o slug já pertence a outra marca.
// Carrega o nome e o estado de verificação da marca existente, que são
// devolvidos ao usuário.
type BrandExistsError struct {
	Name   string
	Status string
}

func (e *BrandExistsError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrBrandAlreadyExists.Error(), e.Name, e.Status)
}

func (e *BrandExistsError) Unwrap() error {
	return ErrBrandAlreadyExists
}

// Params retorna os parâmetros de interpolação para i18n
func (e *BrandExistsError) Params() map[string]interface{} {
	return map[string]interface{}{"Name": e.Name, "Status": e.Status}
}
