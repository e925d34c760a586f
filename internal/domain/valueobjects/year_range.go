package valueobjects

import (
	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
)

// MinYear é o ano mais antigo aceito para datação de etiquetas
const MinYear = 1800

// YearRange é o intervalo opcional de anos de produção de uma etiqueta
type YearRange struct {
	Start *int
	End   *int
}

// NewYearRange valida um intervalo de anos.
// Ambos os limites são opcionais; quando presentes devem estar entre MinYear
// e currentYear e start <= end.
func NewYearRange(start, end *int, currentYear int) (YearRange, error) {
	for _, y := range []*int{start, end} {
		if y != nil && (*y < MinYear || *y > currentYear) {
			return YearRange{}, domainerrors.ErrInvalidYearRange
		}
	}

	if start != nil && end != nil && *start > *end {
		return YearRange{}, domainerrors.ErrInvalidYearRange
	}

	return YearRange{Start: start, End: end}, nil
}
