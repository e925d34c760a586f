package repositories

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// BrandRepository define a interface para persistência de marcas
type BrandRepository interface {
	// Create insere a marca; retorna ErrDuplicate se o slug já existir
	Create(ctx context.Context, brand *entities.Brand) error
	FindByID(ctx context.Context, id string) (*entities.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Brand, error)
	UpdateVerification(ctx context.Context, brand *entities.Brand) error
	List(ctx context.Context, filters BrandFilters) ([]*entities.Brand, error)
	// Search busca por substring do nome, verificadas primeiro e depois por nome
	Search(ctx context.Context, query string, limit int) ([]*entities.Brand, error)
}

// BrandFilters contém filtros para listagem de marcas
type BrandFilters struct {
	Status   *entities.VerificationStatus
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
