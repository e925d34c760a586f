package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// Prefixos das chaves de upload: <prefixo>/<user_id>/<unix_nanos>.<ext>
const (
	TagImagePrefix      = "tags"
	EvidenceImagePrefix = "evidence"
)

// TagService contém a lógica de envio e consulta de etiquetas
type TagService struct {
	tagRepo       repositories.TagRepository
	brandRepo     repositories.BrandRepository
	itemRepo      repositories.ClothingItemRepository
	evidenceRepo  repositories.EvidenceRepository
	voteRepo      repositories.VoteRepository
	profileRepo   repositories.ProfileRepository
	storage       ports.ObjectStorage
	cache         ports.TagDetailCache
	logger        ports.Logger
	maxImageBytes int
	now           func() time.Time
}

// NewTagService cria um novo TagService
func NewTagService(
	tagRepo repositories.TagRepository,
	brandRepo repositories.BrandRepository,
	itemRepo repositories.ClothingItemRepository,
	evidenceRepo repositories.EvidenceRepository,
	voteRepo repositories.VoteRepository,
	profileRepo repositories.ProfileRepository,
	storage ports.ObjectStorage,
	cache ports.TagDetailCache,
	logger ports.Logger,
	maxImageBytes int,
) *TagService {
	return &TagService{
		tagRepo:       tagRepo,
		brandRepo:     brandRepo,
		itemRepo:      itemRepo,
		evidenceRepo:  evidenceRepo,
		voteRepo:      voteRepo,
		profileRepo:   profileRepo,
		storage:       storage,
		cache:         cache,
		logger:        logger,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
	}
}

// SubmitTagInput representa os dados de envio de uma etiqueta
type SubmitTagInput struct {
	BrandID        string
	ClothingItemID *string
	Category       string
	Era            string
	YearStart      *int
	YearEnd        *int
	StitchType     *string
	OriginCountry  *string
	Description    *string
	ImageBase64    string
}

// SubmitTag grava a imagem e cria a etiqueta pendente com pontuação zero.
// Se a inserção falhar depois do upload o objeto fica órfão e é apenas logado.
func (s *TagService) SubmitTag(ctx context.Context, callerID string, input SubmitTagInput) (*entities.Tag, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	category, err := entities.ParseTagCategory(input.Category)
	if err != nil {
		return nil, err
	}
	era, err := entities.ParseEra(input.Era)
	if err != nil {
		return nil, err
	}
	years, err := valueobjects.NewYearRange(input.YearStart, input.YearEnd, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}
	if err := checkTextLength(input.Description, input.StitchType, input.OriginCountry); err != nil {
		return nil, err
	}

	image, err := decodeImage(input.ImageBase64, s.maxImageBytes)
	if err != nil {
		return nil, err
	}

	if err := s.ensureBrand(ctx, input.BrandID); err != nil {
		return nil, err
	}
	itemID := trimmedOrNil(input.ClothingItemID)
	if itemID != nil {
		if err := s.ensureItem(ctx, *itemID); err != nil {
			return nil, err
		}
	}

	key, url, err := s.upload(ctx, TagImagePrefix, callerID, image)
	if err != nil {
		return nil, err
	}

	tag := &entities.Tag{
		BrandID:           input.BrandID,
		ClothingItemID:    itemID,
		Category:          category,
		Era:               era,
		YearStart:         years.Start,
		YearEnd:           years.End,
		StitchType:        trimmedOrNil(input.StitchType),
		OriginCountry:     trimmedOrNil(input.OriginCountry),
		Description:       trimmedOrNil(input.Description),
		ImageURL:          url,
		ImageKey:          key,
		SubmittedBy:       callerID,
		Status:            entities.TagStatusPending,
		VerificationScore: 0,
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		s.logger.Error("tag insert failed after upload, object left orphaned",
			"image_key", key,
			"submitted_by", callerID,
			"error", err.Error(),
		)
		return nil, err
	}

	s.logger.Info("tag submitted",
		"tag_id", tag.ID,
		"brand_id", tag.BrandID,
		"category", string(tag.Category),
		"submitted_by", callerID,
	)

	return tag, nil
}

// GetTag retorna o detalhe da etiqueta com a marca e a contagem de votos
func (s *TagService) GetTag(ctx context.Context, id string) (*entities.TagDetail, error) {
	if detail, ok := s.cache.Get(id); ok {
		return detail, nil
	}
	version := s.cache.Version(id)

	tag, err := s.findTag(ctx, id)
	if err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.FindByID(ctx, tag.BrandID)
	if err != nil {
		return nil, err
	}

	tally, err := s.voteRepo.Tally(ctx, tag.ID)
	if err != nil {
		return nil, err
	}

	detail := &entities.TagDetail{Tag: tag, Tally: tally}
	if brand != nil {
		detail.BrandName = brand.Name
		detail.BrandSlug = brand.Slug
	}

	if !s.cache.Set(id, version, detail) {
		s.logger.Debug("tag detail not cached, invalidated during read", "tag_id", id)
	}
	return detail, nil
}

// ListTagsByBrand lista as etiquetas de uma marca, mais recentes primeiro
func (s *TagService) ListTagsByBrand(ctx context.Context, brandSlug string, page, pageSize int) ([]*entities.Tag, error) {
	brand, err := s.brandRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(brandSlug)))
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.ErrBrandNotFound
	}
	return s.tagRepo.ListByBrand(ctx, brand.ID, page, pageSize)
}

// AddEvidenceInput representa uma foto adicional de uma etiqueta
type AddEvidenceInput struct {
	ImageBase64 string
	Note        *string
}

// AddEvidence anexa uma foto de apoio a uma etiqueta existente
func (s *TagService) AddEvidence(ctx context.Context, callerID, tagID string, input AddEvidenceInput) (*entities.TagEvidence, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := checkTextLength(input.Note); err != nil {
		return nil, err
	}

	image, err := decodeImage(input.ImageBase64, s.maxImageBytes)
	if err != nil {
		return nil, err
	}

	if _, err := s.findTag(ctx, tagID); err != nil {
		return nil, err
	}

	key, url, err := s.upload(ctx, EvidenceImagePrefix, callerID, image)
	if err != nil {
		return nil, err
	}

	evidence := &entities.TagEvidence{
		TagID:       tagID,
		ImageURL:    url,
		ImageKey:    key,
		Note:        trimmedOrNil(input.Note),
		SubmittedBy: callerID,
	}
	if err := s.evidenceRepo.Create(ctx, evidence); err != nil {
		s.logger.Error("evidence insert failed after upload, object left orphaned",
			"image_key", key,
			"tag_id", tagID,
			"error", err.Error(),
		)
		return nil, err
	}

	s.logger.Info("evidence added", "evidence_id", evidence.ID, "tag_id", tagID, "submitted_by", callerID)
	return evidence, nil
}

// ListEvidence lista as fotos de apoio de uma etiqueta
func (s *TagService) ListEvidence(ctx context.Context, tagID string) ([]*entities.TagEvidence, error) {
	if _, err := s.findTag(ctx, tagID); err != nil {
		return nil, err
	}
	return s.evidenceRepo.ListByTag(ctx, tagID)
}

// DeleteImage remove um objeto enviado. Só o dono (segmento <user_id> da
// chave) ou um admin podem remover.
func (s *TagService) DeleteImage(ctx context.Context, callerID, key string) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}

	owner, err := imageOwner(key)
	if err != nil {
		return err
	}

	if owner != callerID {
		if _, err := requireAdmin(ctx, s.profileRepo, s.logger, callerID, entities.PermissionUploadPurge, "upload.delete"); err != nil {
			if stderrors.Is(err, errors.ErrAdminRequired) {
				return errors.ErrForbidden
			}
			return err
		}
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("image delete failed", "image_key", key, "error", err.Error())
		return err
	}

	s.logger.Info("image deleted", "image_key", key, "deleted_by", callerID)
	return nil
}

func (s *TagService) upload(ctx context.Context, prefix, callerID string, image *decodedImage) (string, string, error) {
	key := fmt.Sprintf("%s/%s/%d.%s", prefix, callerID, s.now().UnixNano(), image.Extension)

	url, err := s.storage.Put(ctx, key, image.ContentType, image.Data)
	if err != nil {
		s.logger.Error("image upload failed", "image_key", key, "error", err.Error())
		return "", "", err
	}
	return key, url, nil
}

func (s *TagService) findTag(ctx context.Context, id string) (*entities.Tag, error) {
	if !validID(id) {
		return nil, errors.ErrTagNotFound
	}
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errors.ErrTagNotFound
	}
	return tag, nil
}

func (s *TagService) ensureBrand(ctx context.Context, id string) error {
	if !validID(id) {
		return errors.ErrBrandNotFound
	}
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return errors.ErrBrandNotFound
	}
	return nil
}

func (s *TagService) ensureItem(ctx context.Context, id string) error {
	if !validID(id) {
		return errors.ErrItemNotFound
	}
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.ErrItemNotFound
	}
	return nil
}

// imageOwner extrai o <user_id> de uma chave <prefixo>/<user_id>/<arquivo>
func imageOwner(key string) (string, error) {
	if key == "" || path.Clean(key) != key {
		return "", errors.ErrInvalidStorageKey
	}

	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", errors.ErrInvalidStorageKey
	}
	if parts[0] != TagImagePrefix && parts[0] != EvidenceImagePrefix {
		return "", errors.ErrInvalidStorageKey
	}

	return parts[1], nil
}

func checkTextLength(values ...*string) error {
	for _, v := range values {
		if v != nil && len(*v) > MaxTextLength {
			return errors.ErrTextTooLong
		}
	}
	return nil
}
