package repositories

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// ClothingItemRepository define a interface para persistência de peças
type ClothingItemRepository interface {
	Create(ctx context.Context, item *entities.ClothingItem) error
	FindByID(ctx context.Context, id string) (*entities.ClothingItem, error)
	FindBySlug(ctx context.Context, slug string) (*entities.ClothingItem, error)
	UpdateStatus(ctx context.Context, item *entities.ClothingItem) error
	List(ctx context.Context, filters ItemFilters) ([]*entities.ClothingItem, error)
}

// ItemFilters contém filtros para listagem de peças
type ItemFilters struct {
	Status   *entities.ItemStatus
	BrandID  *string
	Page     int
	PageSize int
}
