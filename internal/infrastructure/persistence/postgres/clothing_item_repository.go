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
)

// ClothingItemRepository implementa repositories.ClothingItemRepository
type ClothingItemRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewClothingItemRepository cria um novo ClothingItemRepository
func NewClothingItemRepository(db *gorm.DB, logger ports.Logger) repositories.ClothingItemRepository {
	return &ClothingItemRepository{db: db, logger: logger}
}

func (r *ClothingItemRepository) Create(ctx context.Context, item *entities.ClothingItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	model := r.toModel(item)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicate
		}
		return logError(r.logger, "item_create_failed", err, "slug", item.Slug)
	}

	item.CreatedAt = time.Unix(model.CreatedAt, 0)
	item.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *ClothingItemRepository) FindByID(ctx context.Context, id string) (*entities.ClothingItem, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ClothingItemRepository) FindBySlug(ctx context.Context, slug string) (*entities.ClothingItem, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *ClothingItemRepository) UpdateStatus(ctx context.Context, item *entities.ClothingItem) error {
	err := r.getDB(ctx).
		Model(&ClothingItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"status":     string(item.Status),
			"updated_at": time.Now().Unix(),
		}).
		Error
	if err != nil {
		return logError(r.logger, "item_update_status_failed", err, "item_id", item.ID)
	}
	return nil
}

func (r *ClothingItemRepository) List(ctx context.Context, filters repositories.ItemFilters) ([]*entities.ClothingItem, error) {
	var models []*ClothingItemModel

	query := r.getDB(ctx).Model(&ClothingItemModel{})
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.BrandID != nil {
		query = query.Where("brand_id = ?", *filters.BrandID)
	}

	limit, offset := pagination(filters.Page, filters.PageSize)
	if err := query.Order("LOWER(name) ASC, name ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, logError(r.logger, "item_list_failed", err)
	}

	items := make([]*entities.ClothingItem, 0, len(models))
	for _, model := range models {
		items = append(items, r.toEntity(model))
	}
	return items, nil
}

func (r *ClothingItemRepository) findOne(ctx context.Context, query string, args ...any) (*entities.ClothingItem, error) {
	var model ClothingItemModel

	if err := r.getDB(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "item_find_failed", err)
	}

	return r.toEntity(&model), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ClothingItemRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *ClothingItemRepository) toModel(item *entities.ClothingItem) *ClothingItemModel {
	return &ClothingItemModel{
		ID:          item.ID,
		Name:        item.Name,
		Slug:        item.Slug,
		BrandID:     item.BrandID,
		Category:    item.Category,
		Description: item.Description,
		Status:      string(item.Status),
		SubmittedBy: item.SubmittedBy,
	}
}

func (r *ClothingItemRepository) toEntity(model *ClothingItemModel) *entities.ClothingItem {
	return &entities.ClothingItem{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		BrandID:     model.BrandID,
		Category:    model.Category,
		Description: model.Description,
		Status:      entities.ItemStatus(model.Status),
		SubmittedBy: model.SubmittedBy,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
