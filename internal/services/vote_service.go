package services

import (
	"context"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// VoteService agrega os votos da comunidade nas etiquetas
type VoteService struct {
	voteRepo repositories.VoteRepository
	tagRepo  repositories.TagRepository
	uow      ports.UnitOfWork
	cache    ports.TagDetailCache
	notifier ports.ScoreNotifier
	logger   ports.Logger
}

// NewVoteService cria um novo VoteService
func NewVoteService(
	voteRepo repositories.VoteRepository,
	tagRepo repositories.TagRepository,
	uow ports.UnitOfWork,
	cache ports.TagDetailCache,
	notifier ports.ScoreNotifier,
	logger ports.Logger,
) *VoteService {
	return &VoteService{
		voteRepo: voteRepo,
		tagRepo:  tagRepo,
		uow:      uow,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Cast registra ou substitui o voto do usuário na etiqueta
func (s *VoteService) Cast(ctx context.Context, callerID, tagID string, value int) (entities.VoteTally, error) {
	if err := requireCaller(callerID); err != nil {
		return entities.VoteTally{}, err
	}

	voteValue, err := valueobjects.NewVoteValue(value)
	if err != nil {
		return entities.VoteTally{}, err
	}

	tally, err := s.mutate(ctx, tagID, func(txCtx context.Context) error {
		return s.voteRepo.Upsert(txCtx, &entities.Vote{
			UserID: callerID,
			TagID:  tagID,
			Value:  voteValue,
		})
	})
	if err != nil {
		return entities.VoteTally{}, err
	}

	s.logger.Info("vote cast",
		"tag_id", tagID,
		"user_id", callerID,
		"value", voteValue.Int(),
		"score", tally.Score(),
	)
	return tally, nil
}

// Remove apaga o voto do usuário. Remover um voto inexistente não é erro.
func (s *VoteService) Remove(ctx context.Context, callerID, tagID string) (entities.VoteTally, error) {
	if err := requireCaller(callerID); err != nil {
		return entities.VoteTally{}, err
	}

	tally, err := s.mutate(ctx, tagID, func(txCtx context.Context) error {
		return s.voteRepo.Delete(txCtx, callerID, tagID)
	})
	if err != nil {
		return entities.VoteTally{}, err
	}

	s.logger.Info("vote removed",
		"tag_id", tagID,
		"user_id", callerID,
		"score", tally.Score(),
	)
	return tally, nil
}

// MyVote retorna o voto atual do usuário (0 quando não votou)
func (s *VoteService) MyVote(ctx context.Context, callerID, tagID string) (int, error) {
	if err := requireCaller(callerID); err != nil {
		return 0, err
	}
	if !validID(tagID) {
		return 0, errors.ErrTagNotFound
	}

	vote, err := s.voteRepo.Find(ctx, callerID, tagID)
	if err != nil {
		return 0, err
	}
	if vote == nil {
		return 0, nil
	}
	return vote.Value.Int(), nil
}

// mutate aplica a alteração e recalcula verification_score na mesma transação.
// Depois do commit invalida o cache e avisa os assinantes ao vivo.
func (s *VoteService) mutate(ctx context.Context, tagID string, change func(context.Context) error) (entities.VoteTally, error) {
	if !validID(tagID) {
		return entities.VoteTally{}, errors.ErrTagNotFound
	}

	var tally entities.VoteTally
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		// votos concorrentes na mesma etiqueta serializam aqui
		tag, err := s.tagRepo.FindByIDForUpdate(txCtx, tagID)
		if err != nil {
			return err
		}
		if tag == nil {
			return errors.ErrTagNotFound
		}

		if err := change(txCtx); err != nil {
			return err
		}

		tally, err = s.voteRepo.Tally(txCtx, tagID)
		if err != nil {
			return err
		}
		return s.tagRepo.UpdateScore(txCtx, tagID, tally.Score())
	})
	if err != nil {
		return entities.VoteTally{}, err
	}

	s.cache.Invalidate(tagID)
	s.notifier.NotifyTagScore(tagID, tally.Score(), tally)

	return tally, nil
}
