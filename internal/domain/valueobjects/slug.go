package valueobjects

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
)

var (
	apostrophes     = strings.NewReplacer("'", "", "’", "", "‘", "", "`", "")
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slug é o identificador de URL derivado de um nome.
// "  Levi's  " -> "levis", "Tommy Hilfiger" -> "tommy-hilfiger", "Hermès" -> "hermes".
type Slug struct {
	value string
}

// NewSlug deriva um slug de forma determinística a partir de um nome
func NewSlug(name string) (Slug, error) {
	s := apostrophes.Replace(strings.TrimSpace(name))

	// Decompor acentos e descartar o que não for ASCII
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return Slug{}, domainerrors.ErrInvalidSlug
	}

	return Slug{value: s}, nil
}

// ParseSlug aceita um slug já normalizado (ex.: vindo da URL)
func ParseSlug(raw string) (Slug, error) {
	slug, err := NewSlug(raw)
	if err != nil {
		return Slug{}, err
	}
	if slug.value != strings.TrimSpace(raw) {
		return Slug{}, domainerrors.ErrInvalidSlug
	}
	return slug, nil
}

// String retorna o valor do slug
func (s Slug) String() string {
	return s.value
}
