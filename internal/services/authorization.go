package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
)

// requireCaller falha quando a requisição não tem sessão
func requireCaller(callerID string) error {
	if callerID == "" {
		return errors.ErrAuthenticationRequired
	}
	return nil
}

// requireAdmin relê o perfil do chamador a cada chamada; o papel contido no
// token não é suficiente para operações de moderação.
func requireAdmin(
	ctx context.Context,
	profiles repositories.ProfileRepository,
	logger ports.Logger,
	callerID string,
	permission entities.Permission,
	action string,
) (*entities.Profile, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	profile, err := profiles.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if profile == nil || !profile.HasPermission(permission) {
		logger.Warn("moderation denied",
			"action", action,
			"permission", string(permission),
			"caller_id", callerID,
		)
		return nil, errors.ErrAdminRequired
	}

	return profile, nil
}

// validID descarta identificadores que não são UUID antes de chegar ao banco
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// clampLimit aplica default e limites a um parâmetro de quantidade
func clampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
