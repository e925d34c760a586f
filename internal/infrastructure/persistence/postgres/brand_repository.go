package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BrandRepository implementa repositories.BrandRepository
type BrandRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewBrandRepository cria um novo BrandRepository
func NewBrandRepository(db *gorm.DB, logger ports.Logger) repositories.BrandRepository {
	return &BrandRepository{db: db, logger: logger}
}

// Create insere a marca confiando no índice único do slug.
// Não há checagem prévia: a corrida entre duas criações iguais é resolvida
// pelo banco e o perdedor recebe repositories.ErrDuplicate.
func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	model := r.toModel(brand)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicate
		}
		return logError(r.logger, "brand_create_failed", err, "slug", brand.Slug)
	}

	brand.CreatedAt = time.Unix(model.CreatedAt, 0)
	brand.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*entities.Brand, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *BrandRepository) FindBySlug(ctx context.Context, slug string) (*entities.Brand, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *BrandRepository) UpdateVerification(ctx context.Context, brand *entities.Brand) error {
	db := r.getDB(ctx)
	result := db.Model(&BrandModel{}).
		Where("id = ?", brand.ID).
		Updates(map[string]any{
			"verified":            brand.Verified,
			"verification_status": string(brand.VerificationStatus),
			"updated_at":          time.Now().Unix(),
		})
	if result.Error != nil {
		return logError(r.logger, "brand_update_verification_failed", result.Error, "brand_id", brand.ID)
	}
	return nil
}

func (r *BrandRepository) List(ctx context.Context, filters repositories.BrandFilters) ([]*entities.Brand, error) {
	var models []*BrandModel

	query := r.getDB(ctx).Model(&BrandModel{})

	// Aplicar filtros
	if filters.Status != nil {
		query = query.Where("verification_status = ?", string(*filters.Status))
	}

	// Paginação
	limit, offset := pagination(filters.Page, filters.PageSize)
	query = query.Order("LOWER(name) ASC, name ASC").Limit(limit).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, logError(r.logger, "brand_list_failed", err)
	}

	return r.toEntities(models), nil
}

// Search faz a busca do typeahead: substring do nome sem diferenciar
// maiúsculas, verificadas primeiro e em ordem alfabética dentro de cada grupo.
func (r *BrandRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Brand, error) {
	var models []*BrandModel

	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	err := r.getDB(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("verified DESC").
		Order("LOWER(name) ASC, name ASC").
		Limit(limit).
		Find(&models).
		Error
	if err != nil {
		return nil, logError(r.logger, "brand_search_failed", err, "query", query)
	}

	return r.toEntities(models), nil
}

func (r *BrandRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Brand, error) {
	var model BrandModel

	if err := r.getDB(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "brand_find_failed", err)
	}

	return r.toEntity(&model), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *BrandRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *BrandRepository) toModel(brand *entities.Brand) *BrandModel {
	return &BrandModel{
		ID:                 brand.ID,
		Name:               brand.Name,
		Slug:               brand.Slug,
		Verified:           brand.Verified,
		VerificationStatus: string(brand.VerificationStatus),
		LogoURL:            brand.LogoURL,
		FoundedYear:        brand.FoundedYear,
		Country:            brand.Country,
		Description:        brand.Description,
		EbayURL:            brand.Links.EbayURL,
		EtsyURL:            brand.Links.EtsyURL,
		PoshmarkURL:        brand.Links.PoshmarkURL,
		CreatedBy:          brand.CreatedBy,
	}
}

func (r *BrandRepository) toEntity(model *BrandModel) *entities.Brand {
	return &entities.Brand{
		ID:                 model.ID,
		Name:               model.Name,
		Slug:               model.Slug,
		Verified:           model.Verified,
		VerificationStatus: entities.VerificationStatus(model.VerificationStatus),
		LogoURL:            model.LogoURL,
		FoundedYear:        model.FoundedYear,
		Country:            model.Country,
		Description:        model.Description,
		Links: entities.MarketplaceLinks{
			EbayURL:     model.EbayURL,
			EtsyURL:     model.EtsyURL,
			PoshmarkURL: model.PoshmarkURL,
		},
		CreatedBy: model.CreatedBy,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}

func (r *BrandRepository) toEntities(models []*BrandModel) []*entities.Brand {
	brands := make([]*entities.Brand, 0, len(models))
	for _, model := range models {
		brands = append(brands, r.toEntity(model))
	}
	return brands
}
