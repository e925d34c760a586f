package entities

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// Vote é o voto de um usuário em uma etiqueta.
// Existe no máximo um voto por par (usuário, etiqueta).
type Vote struct {
	ID        string
	UserID    string
	TagID     string
	Value     valueobjects.VoteValue
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoteTally é a contagem de votos de uma etiqueta
type VoteTally struct {
	Upvotes   int
	Downvotes int
}

// Score retorna a soma assinada dos votos
func (t VoteTally) Score() int {
	return t.Upvotes - t.Downvotes
}
