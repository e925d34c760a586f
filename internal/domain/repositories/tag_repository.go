package repositories

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// TagRepository define a interface para persistência de etiquetas
type TagRepository interface {
	Create(ctx context.Context, tag *entities.Tag) error
	FindByID(ctx context.Context, id string) (*entities.Tag, error)
	// FindByIDForUpdate bloqueia a linha (SELECT ... FOR UPDATE); só faz sentido dentro de transação
	FindByIDForUpdate(ctx context.Context, id string) (*entities.Tag, error)
	ListByBrand(ctx context.Context, brandID string, page, pageSize int) ([]*entities.Tag, error)
	UpdateScore(ctx context.Context, tagID string, score int) error
}

// VoteRepository define a interface para persistência de votos
type VoteRepository interface {
	// Upsert grava o voto, sobrescrevendo o voto anterior do mesmo usuário na etiqueta
	Upsert(ctx context.Context, vote *entities.Vote) error
	// Delete remove o voto; não é erro se não existir
	Delete(ctx context.Context, userID, tagID string) error
	Find(ctx context.Context, userID, tagID string) (*entities.Vote, error)
	Tally(ctx context.Context, tagID string) (entities.VoteTally, error)
}

// EvidenceRepository define a persistência das evidências extras de etiquetas
type EvidenceRepository interface {
	Create(ctx context.Context, evidence *entities.TagEvidence) error
	ListByTag(ctx context.Context, tagID string) ([]*entities.TagEvidence, error)
}
