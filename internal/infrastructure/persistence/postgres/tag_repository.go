package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
)

// TagRepository implementa repositories.TagRepository
type TagRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewTagRepository cria um novo TagRepository
func NewTagRepository(db *gorm.DB, logger ports.Logger) repositories.TagRepository {
	return &TagRepository{db: db, logger: logger}
}

func (r *TagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	model := r.toModel(tag)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return logError(r.logger, "tag_create_failed", err,
			"brand_id", tag.BrandID,
			"submitted_by", tag.SubmittedBy,
		)
	}

	tag.CreatedAt = time.Unix(model.CreatedAt, 0)
	tag.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*entities.Tag, error) {
	var model TagModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "tag_find_failed", err, "tag_id", id)
	}

	return r.toEntity(&model), nil
}

// FindByIDForUpdate trava a linha da etiqueta até o fim da transação do contexto
func (r *TagRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Tag, error) {
	var model TagModel

	err := r.getDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "tag_lock_failed", err, "tag_id", id)
	}

	return r.toEntity(&model), nil
}

func (r *TagRepository) ListByBrand(ctx context.Context, brandID string, page, pageSize int) ([]*entities.Tag, error) {
	var models []*TagModel

	limit, offset := pagination(page, pageSize)
	err := r.getDB(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).
		Error
	if err != nil {
		return nil, logError(r.logger, "tag_list_by_brand_failed", err, "brand_id", brandID)
	}

	tags := make([]*entities.Tag, 0, len(models))
	for _, model := range models {
		tags = append(tags, r.toEntity(model))
	}
	return tags, nil
}

func (r *TagRepository) UpdateScore(ctx context.Context, tagID string, score int) error {
	err := r.getDB(ctx).
		Model(&TagModel{}).
		Where("id = ?", tagID).
		Updates(map[string]any{
			"verification_score": score,
			"updated_at":         time.Now().Unix(),
		}).
		Error
	if err != nil {
		return logError(r.logger, "tag_update_score_failed", err, "tag_id", tagID)
	}
	return nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *TagRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *TagRepository) toModel(tag *entities.Tag) *TagModel {
	return &TagModel{
		ID:                tag.ID,
		BrandID:           tag.BrandID,
		ClothingItemID:    tag.ClothingItemID,
		Category:          string(tag.Category),
		Era:               tag.Era,
		YearStart:         tag.YearStart,
		YearEnd:           tag.YearEnd,
		StitchType:        tag.StitchType,
		OriginCountry:     tag.OriginCountry,
		Description:       tag.Description,
		ImageURL:          tag.ImageURL,
		ImageKey:          tag.ImageKey,
		SubmittedBy:       tag.SubmittedBy,
		Status:            string(tag.Status),
		VerificationScore: tag.VerificationScore,
	}
}

func (r *TagRepository) toEntity(model *TagModel) *entities.Tag {
	return &entities.Tag{
		ID:                model.ID,
		BrandID:           model.BrandID,
		ClothingItemID:    model.ClothingItemID,
		Category:          entities.TagCategory(model.Category),
		Era:               model.Era,
		YearStart:         model.YearStart,
		YearEnd:           model.YearEnd,
		StitchType:        model.StitchType,
		OriginCountry:     model.OriginCountry,
		Description:       model.Description,
		ImageURL:          model.ImageURL,
		ImageKey:          model.ImageKey,
		SubmittedBy:       model.SubmittedBy,
		Status:            entities.TagStatus(model.Status),
		VerificationScore: model.VerificationScore,
		CreatedAt:         time.Unix(model.CreatedAt, 0),
		UpdatedAt:         time.Unix(model.UpdatedAt, 0),
	}
}
