package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
)

// EvidenceRepository implementa repositories.EvidenceRepository
type EvidenceRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewEvidenceRepository cria um novo EvidenceRepository
func NewEvidenceRepository(db *gorm.DB, logger ports.Logger) repositories.EvidenceRepository {
	return &EvidenceRepository{db: db, logger: logger}
}

func (r *EvidenceRepository) Create(ctx context.Context, evidence *entities.TagEvidence) error {
	if evidence.ID == "" {
		evidence.ID = uuid.NewString()
	}
	model := &TagEvidenceModel{
		ID:          evidence.ID,
		TagID:       evidence.TagID,
		ImageURL:    evidence.ImageURL,
		ImageKey:    evidence.ImageKey,
		Note:        evidence.Note,
		SubmittedBy: evidence.SubmittedBy,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return logError(r.logger, "evidence_create_failed", err, "tag_id", evidence.TagID)
	}
	evidence.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *EvidenceRepository) ListByTag(ctx context.Context, tagID string) ([]*entities.TagEvidence, error) {
	var models []*TagEvidenceModel

	err := dbFromContext(ctx, r.db).
		Where("tag_id = ?", tagID).
		Order("created_at ASC").
		Find(&models).
		Error
	if err != nil {
		return nil, logError(r.logger, "evidence_list_failed", err, "tag_id", tagID)
	}

	result := make([]*entities.TagEvidence, 0, len(models))
	for _, m := range models {
		result = append(result, &entities.TagEvidence{
			ID:          m.ID,
			TagID:       m.TagID,
			ImageURL:    m.ImageURL,
			ImageKey:    m.ImageKey,
			Note:        m.Note,
			SubmittedBy: m.SubmittedBy,
			CreatedAt:   time.Unix(m.CreatedAt, 0),
		})
	}
	return result, nil
}
