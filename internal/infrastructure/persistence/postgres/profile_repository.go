package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(db *gorm.DB, logger ports.Logger) repositories.ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	model := r.toModel(profile)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicate
		}
		return logError(r.logger, "profile_create_failed", err, "email", model.Email)
	}

	profile.CreatedAt = time.Unix(model.CreatedAt, 0)
	profile.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*entities.Profile, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *ProfileRepository) FindByOAuth(ctx context.Context, provider, subject string) (*entities.Profile, error) {
	return r.findOne(ctx, "oauth_provider = ? AND oauth_subject = ?", provider, subject)
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	model := r.toModel(profile)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicate
		}
		return logError(r.logger, "profile_update_failed", err, "profile_id", model.ID)
	}
	return nil
}

func (r *ProfileRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Profile, error) {
	var model ProfileModel

	db := r.getDB(ctx)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "profile_find_failed", err)
	}

	return r.toEntity(&model)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ProfileRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *ProfileRepository) toModel(profile *entities.Profile) *ProfileModel {
	model := &ProfileModel{
		ID:            profile.ID,
		Email:         profile.Email.String(),
		Username:      profile.Username,
		DisplayName:   profile.DisplayName,
		PasswordHash:  profile.PasswordHash,
		OAuthProvider: profile.OAuthProvider,
		OAuthSubject:  profile.OAuthSubject,
		Reputation:    profile.Reputation,
		Role:          string(profile.Role),
	}
	if !profile.CreatedAt.IsZero() {
		model.CreatedAt = profile.CreatedAt.Unix()
	}
	return model
}

func (r *ProfileRepository) toEntity(model *ProfileModel) (*entities.Profile, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Profile{
		ID:            model.ID,
		Email:         email,
		Username:      model.Username,
		DisplayName:   model.DisplayName,
		PasswordHash:  model.PasswordHash,
		OAuthProvider: model.OAuthProvider,
		OAuthSubject:  model.OAuthSubject,
		Reputation:    model.Reputation,
		Role:          entities.Role(model.Role),
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}, nil
}

// PasswordResetRepository implementa repositories.PasswordResetRepository
type PasswordResetRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewPasswordResetRepository cria um novo PasswordResetRepository
func NewPasswordResetRepository(db *gorm.DB, logger ports.Logger) repositories.PasswordResetRepository {
	return &PasswordResetRepository{db: db, logger: logger}
}

func (r *PasswordResetRepository) Create(ctx context.Context, reset *entities.PasswordReset) error {
	if reset.ID == "" {
		reset.ID = uuid.NewString()
	}
	model := &PasswordResetModel{
		ID:        reset.ID,
		ProfileID: reset.ProfileID,
		TokenHash: reset.TokenHash,
		ExpiresAt: reset.ExpiresAt.Unix(),
		UsedAt:    toUnixPtr(reset.UsedAt),
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return logError(r.logger, "password_reset_create_failed", err, "profile_id", reset.ProfileID)
	}
	reset.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PasswordResetRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entities.PasswordReset, error) {
	var model PasswordResetModel
	if err := dbFromContext(ctx, r.db).Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "password_reset_find_failed", err)
	}

	return &entities.PasswordReset{
		ID:        model.ID,
		ProfileID: model.ProfileID,
		TokenHash: model.TokenHash,
		ExpiresAt: time.Unix(model.ExpiresAt, 0),
		UsedAt:    fromUnixPtr(model.UsedAt),
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, reset *entities.PasswordReset, usedAt time.Time) (bool, error) {
	result := dbFromContext(ctx, r.db).
		Model(&PasswordResetModel{}).
		Where("id = ? AND used_at IS NULL", reset.ID).
		Update("used_at", usedAt.Unix())
	if result.Error != nil {
		return false, logError(r.logger, "password_reset_mark_used_failed", result.Error, "reset_id", reset.ID)
	}
	if result.RowsAffected != 1 {
		return false, nil
	}

	reset.MarkUsed(usedAt)
	return true, nil
}
