package ports

import "github.com/rafabene/threaddate-backend/internal/domain/entities"

// ScoreNotifier publica mudanças de pontuação de etiquetas para assinantes ao vivo
type ScoreNotifier interface {
	NotifyTagScore(tagID string, score int, tally entities.VoteTally)
}
