package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
)

// ClothingItemService contém a lógica de negócio para peças
type ClothingItemService struct {
	itemRepo    repositories.ClothingItemRepository
	brandRepo   repositories.BrandRepository
	profileRepo repositories.ProfileRepository
	logger      ports.Logger
}

// NewClothingItemService cria um novo ClothingItemService
func NewClothingItemService(
	itemRepo repositories.ClothingItemRepository,
	brandRepo repositories.BrandRepository,
	profileRepo repositories.ProfileRepository,
	logger ports.Logger,
) *ClothingItemService {
	return &ClothingItemService{
		itemRepo:    itemRepo,
		brandRepo:   brandRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateItemInput representa os dados para cadastrar uma peça
type CreateItemInput struct {
	Name        string
	BrandID     *string
	Category    string
	Description *string
}

// CreateItem cadastra uma peça pendente de revisão
func (s *ClothingItemService) CreateItem(ctx context.Context, callerID string, input CreateItemInput) (*entities.ClothingItem, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, errors.ErrInvalidCategory
	}

	item, err := entities.NewClothingItem(input.Name, category, callerID)
	if err != nil {
		return nil, err
	}
	if err := checkTextLength(input.Description); err != nil {
		return nil, err
	}

	if brandID := trimmedOrNil(input.BrandID); brandID != nil {
		if !validID(*brandID) {
			return nil, errors.ErrBrandNotFound
		}
		brand, err := s.brandRepo.FindByID(ctx, *brandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, errors.ErrBrandNotFound
		}
		item.BrandID = brandID
	}
	item.Description = trimmedOrNil(input.Description)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, errors.ErrItemAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("clothing item created", "item_id", item.ID, "slug", item.Slug, "submitted_by", callerID)
	return item, nil
}

// GetItem busca uma peça pelo slug
func (s *ClothingItemService) GetItem(ctx context.Context, slug string) (*entities.ClothingItem, error) {
	item, err := s.itemRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrItemNotFound
	}
	return item, nil
}

// ListItems lista peças com filtros
func (s *ClothingItemService) ListItems(ctx context.Context, filters repositories.ItemFilters) ([]*entities.ClothingItem, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		filters.Status = nil
	}
	return s.itemRepo.List(ctx, filters)
}

// Approve aprova uma peça (somente admin)
func (s *ClothingItemService) Approve(ctx context.Context, callerID, itemID string) error {
	return s.review(ctx, callerID, itemID, "approve", (*entities.ClothingItem).Approve)
}

// Reject rejeita uma peça (somente admin)
func (s *ClothingItemService) Reject(ctx context.Context, callerID, itemID string) error {
	return s.review(ctx, callerID, itemID, "reject", (*entities.ClothingItem).Reject)
}

func (s *ClothingItemService) review(
	ctx context.Context,
	callerID, itemID, action string,
	transition func(*entities.ClothingItem),
) error {
	if _, err := requireAdmin(ctx, s.profileRepo, s.logger, callerID, entities.PermissionItemModerate, "item."+action); err != nil {
		return err
	}

	if !validID(itemID) {
		return errors.ErrItemNotFound
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.ErrItemNotFound
	}

	previous := item.Status
	transition(item)

	if err := s.itemRepo.UpdateStatus(ctx, item); err != nil {
		return err
	}

	s.logger.Info("clothing item reviewed",
		"action", action,
		"item_id", item.ID,
		"from", string(previous),
		"to", string(item.Status),
		"admin_id", callerID,
	)
	return nil
}
