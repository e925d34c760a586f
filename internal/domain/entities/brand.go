package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

const (
	BrandNameMinLength = 2
	BrandNameMaxLength = 100
)

// VerificationStatus é o estado de moderação de uma marca
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// IsValid verifica se o status é conhecido
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// MarketplaceLinks são links de busca da marca em marketplaces de segunda mão
type MarketplaceLinks struct {
	EbayURL     *string
	EtsyURL     *string
	PoshmarkURL *string
}

// Brand representa uma marca de roupas moderada pela administração
type Brand struct {
	ID                 string
	Name               string
	Slug               string
	Verified           bool
	VerificationStatus VerificationStatus
	LogoURL            *string
	FoundedYear        *int
	Country            *string
	Description        *string
	Links              MarketplaceLinks
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewBrand cria uma marca pendente de verificação com slug derivado do nome
func NewBrand(name, createdBy string) (*Brand, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	slug, err := valueobjects.NewSlug(name)
	if err != nil {
		return nil, err
	}

	return &Brand{
		Name:               name,
		Slug:               slug.String(),
		Verified:           false,
		VerificationStatus: VerificationPending,
		CreatedBy:          createdBy,
	}, nil
}

// Verify promove a marca para verificada
func (b *Brand) Verify() {
	b.Verified = true
	b.VerificationStatus = VerificationVerified
}

// Reject marca a marca como rejeitada.
// Uma marca rejeitada pode voltar a ser verificada com Verify.
func (b *Brand) Reject() {
	b.Verified = false
	b.VerificationStatus = VerificationRejected
}

// NormalizeName remove espaços das pontas e valida o tamanho do nome
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < BrandNameMinLength || n > BrandNameMaxLength {
		return "", domainerrors.ErrInvalidName
	}
	return name, nil
}
