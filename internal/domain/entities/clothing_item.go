package entities

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/valueobjects"
)

// ItemStatus é o estado de revisão de uma peça
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusApproved ItemStatus = "approved"
	ItemStatusRejected ItemStatus = "rejected"
)

// IsValid verifica se o status é conhecido
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected:
		return true
	}
	return false
}

// ClothingItem é uma peça de roupa à qual etiquetas podem ser associadas
type ClothingItem struct {
	ID          string
	Name        string
	Slug        string
	BrandID     *string
	Category    string
	Description *string
	Status      ItemStatus
	SubmittedBy string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewClothingItem cria uma peça pendente de revisão
func NewClothingItem(name, category, submittedBy string) (*ClothingItem, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	slug, err := valueobjects.NewSlug(name)
	if err != nil {
		return nil, err
	}

	return &ClothingItem{
		Name:        name,
		Slug:        slug.String(),
		Category:    category,
		Status:      ItemStatusPending,
		SubmittedBy: submittedBy,
	}, nil
}

// Approve aprova a peça
func (i *ClothingItem) Approve() {
	i.Status = ItemStatusApproved
}

// Reject rejeita a peça
func (i *ClothingItem) Reject() {
	i.Status = ItemStatusRejected
}
