package dto

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// CreateItemRequest representa a requisição para cadastrar uma peça
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	BrandID     *string `json:"brand_id"`
	Category    string  `json:"category" binding:"required,max=50"`
	Description *string `json:"description"`
}

// ListItemsQuery filtra a listagem de peças
type ListItemsQuery struct {
	PageQuery
	Status  string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	BrandID string `form:"brand_id"`
}

// ItemResponse representa a resposta de uma peça
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	BrandID     *string   `json:"brand_id,omitempty"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToItemResponse converte uma entidade ClothingItem para ItemResponse
func ToItemResponse(i *entities.ClothingItem) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Slug:        i.Slug,
		BrandID:     i.BrandID,
		Category:    i.Category,
		Description: i.Description,
		Status:      string(i.Status),
		SubmittedBy: i.SubmittedBy,
		CreatedAt:   i.CreatedAt,
	}
}

// ToItemResponses converte uma lista de peças
func ToItemResponses(items []*entities.ClothingItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
