package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	sitemapPageSize    = 100
)

// BrandService contém a lógica de negócio para marcas
type BrandService struct {
	brandRepo   repositories.BrandRepository
	profileRepo repositories.ProfileRepository
	logger      ports.Logger
}

// NewBrandService cria um novo BrandService
func NewBrandService(
	brandRepo repositories.BrandRepository,
	profileRepo repositories.ProfileRepository,
	logger ports.Logger,
) *BrandService {
	return &BrandService{
		brandRepo:   brandRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateBrandInput representa os dados para criar uma marca.
// Não há campo de verificação: toda marca nasce pendente.
type CreateBrandInput struct {
	Name        string
	LogoURL     *string
	FoundedYear *int
	Country     *string
	Description *string
	Links       entities.MarketplaceLinks
}

// CreateBrand cria uma marca pendente.
// A duplicidade é detectada pelo índice único do slug; quando ocorre, o erro
// traz o nome e o estado da marca que já existe.
func (s *BrandService) CreateBrand(ctx context.Context, callerID string, input CreateBrandInput) (*entities.Brand, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	brand, err := entities.NewBrand(input.Name, callerID)
	if err != nil {
		return nil, err
	}

	if input.FoundedYear != nil {
		if _, err := valueobjects.NewYearRange(input.FoundedYear, nil, currentYear()); err != nil {
			return nil, err
		}
	}
	if err := checkTextLength(input.Description, input.Country); err != nil {
		return nil, err
	}

	brand.LogoURL = input.LogoURL
	brand.FoundedYear = input.FoundedYear
	brand.Country = trimmedOrNil(input.Country)
	brand.Description = trimmedOrNil(input.Description)
	brand.Links = input.Links

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, s.duplicateError(ctx, brand.Slug)
		}
		return nil, err
	}

	s.logger.Info("brand created",
		"brand_id", brand.ID,
		"slug", brand.Slug,
		"created_by", callerID,
	)

	return brand, nil
}

func (s *BrandService) duplicateError(ctx context.Context, slug string) error {
	existing, err := s.brandRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.ErrBrandAlreadyExists
	}
	return &errors.BrandExistsError{
		Name:   existing.Name,
		Status: string(existing.VerificationStatus),
	}
}

// GetBrand busca uma marca por ID
func (s *BrandService) GetBrand(ctx context.Context, id string) (*entities.Brand, error) {
	if !validID(id) {
		return nil, errors.ErrBrandNotFound
	}
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.ErrBrandNotFound
	}
	return brand, nil
}

// GetBrandBySlug busca uma marca pelo slug público
func (s *BrandService) GetBrandBySlug(ctx context.Context, slug string) (*entities.Brand, error) {
	brand, err := s.brandRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.ErrBrandNotFound
	}
	return brand, nil
}

// ListBrands lista marcas com filtros
func (s *BrandService) ListBrands(ctx context.Context, filters repositories.BrandFilters) ([]*entities.Brand, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		filters.Status = nil
	}
	return s.brandRepo.List(ctx, filters)
}

// SearchBrands busca marcas pelo nome para o autocomplete
func (s *BrandService) SearchBrands(ctx context.Context, callerID, query string, limit int) ([]*entities.Brand, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ErrInvalidSearchQuery
	}

	return s.brandRepo.Search(ctx, query, clampLimit(limit, DefaultSearchLimit, MaxSearchLimit))
}

// VerifiedSlugs retorna os slugs de todas as marcas verificadas
func (s *BrandService) VerifiedSlugs(ctx context.Context) ([]string, error) {
	status := entities.VerificationVerified
	var slugs []string

	for page := 1; ; page++ {
		brands, err := s.brandRepo.List(ctx, repositories.BrandFilters{
			Status:   &status,
			Page:     page,
			PageSize: sitemapPageSize,
		})
		if err != nil {
			return nil, err
		}
		for _, b := range brands {
			slugs = append(slugs, b.Slug)
		}
		if len(brands) < sitemapPageSize {
			return slugs, nil
		}
	}
}

// Verify marca a marca como verificada (somente admin)
func (s *BrandService) Verify(ctx context.Context, callerID, brandID string) error {
	return s.moderate(ctx, callerID, brandID, "verify", (*entities.Brand).Verify)
}

// Reject marca a marca como rejeitada (somente admin)
func (s *BrandService) Reject(ctx context.Context, callerID, brandID string) error {
	return s.moderate(ctx, callerID, brandID, "reject", (*entities.Brand).Reject)
}

func (s *BrandService) moderate(
	ctx context.Context,
	callerID, brandID, action string,
	transition func(*entities.Brand),
) error {
	if _, err := requireAdmin(ctx, s.profileRepo, s.logger, callerID, entities.PermissionBrandModerate, "brand."+action); err != nil {
		return err
	}

	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return err
	}

	previous := brand.VerificationStatus
	transition(brand)

	if err := s.brandRepo.UpdateVerification(ctx, brand); err != nil {
		return err
	}

	s.logger.Info("brand verification changed",
		"action", action,
		"brand_id", brand.ID,
		"from", string(previous),
		"to", string(brand.VerificationStatus),
		"admin_id", callerID,
	)

	return nil
}
