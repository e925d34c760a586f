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
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// VoteRepository implementa repositories.VoteRepository
type VoteRepository struct {
	db     *gorm.DB
	logger ports.Logger
}

// NewVoteRepository cria um novo VoteRepository
func NewVoteRepository(db *gorm.DB, logger ports.Logger) repositories.VoteRepository {
	return &VoteRepository{db: db, logger: logger}
}

// Upsert grava o voto com ON CONFLICT (user_id, tag_id) DO UPDATE.
// O índice único é a única garantia de um voto por usuário e etiqueta.
func (r *VoteRepository) Upsert(ctx context.Context, vote *entities.Vote) error {
	if vote.ID == "" {
		vote.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	model := &VoteModel{
		ID:        vote.ID,
		UserID:    vote.UserID,
		TagID:     vote.TagID,
		VoteValue: vote.Value.Int(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tag_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote_value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return logError(r.logger, "vote_upsert_failed", err,
			"user_id", vote.UserID,
			"tag_id", vote.TagID,
		)
	}
	return nil
}

func (r *VoteRepository) Delete(ctx context.Context, userID, tagID string) error {
	err := r.getDB(ctx).
		Where("user_id = ? AND tag_id = ?", userID, tagID).
		Delete(&VoteModel{}).
		Error
	if err != nil {
		return logError(r.logger, "vote_delete_failed", err,
			"user_id", userID,
			"tag_id", tagID,
		)
	}
	return nil
}

func (r *VoteRepository) Find(ctx context.Context, userID, tagID string) (*entities.Vote, error) {
	var model VoteModel

	err := r.getDB(ctx).
		Where("user_id = ? AND tag_id = ?", userID, tagID).
		First(&model).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, logError(r.logger, "vote_find_failed", err, "user_id", userID, "tag_id", tagID)
	}

	value, err := valueobjects.NewVoteValue(model.VoteValue)
	if err != nil {
		return nil, err
	}

	return &entities.Vote{
		ID:        model.ID,
		UserID:    model.UserID,
		TagID:     model.TagID,
		Value:     value,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *VoteRepository) Tally(ctx context.Context, tagID string) (entities.VoteTally, error) {
	var row struct {
		Upvotes   int
		Downvotes int
	}

	err := r.getDB(ctx).
		Model(&VoteModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN vote_value > 0 THEN 1 ELSE 0 END), 0) AS upvotes, "+
				"COALESCE(SUM(CASE WHEN vote_value < 0 THEN 1 ELSE 0 END), 0) AS downvotes",
		).
		Where("tag_id = ?", tagID).
		Scan(&row).
		Error
	if err != nil {
		return entities.VoteTally{}, logError(r.logger, "vote_tally_failed", err, "tag_id", tagID)
	}

	return entities.VoteTally{Upvotes: row.Upvotes, Downvotes: row.Downvotes}, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *VoteRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
