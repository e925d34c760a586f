package valueobjects

import (
	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
)

// VoteValue é o valor assinado de um voto: +1 ou -1
type VoteValue int

const (
	Upvote   VoteValue = 1
	Downvote VoteValue = -1
)

// NewVoteValue valida o valor de um voto
func NewVoteValue(v int) (VoteValue, error) {
	switch VoteValue(v) {
	case Upvote, Downvote:
		return VoteValue(v), nil
	default:
		return 0, domainerrors.ErrInvalidVoteValue
	}
}

// Int retorna o valor como inteiro
func (v VoteValue) Int() int {
	return int(v)
}
