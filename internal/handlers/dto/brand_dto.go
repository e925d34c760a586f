package dto

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// CreateBrandRequest representa a requisição para criar uma marca.
// Não aceita campos de verificação: toda marca nasce pendente.
type CreateBrandRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url,max=500"`
	FoundedYear *int    `json:"founded_year" binding:"omitempty,min=1800"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	EbayURL     *string `json:"ebay_url" binding:"omitempty,url,max=500"`
	EtsyURL     *string `json:"etsy_url" binding:"omitempty,url,max=500"`
	PoshmarkURL *string `json:"poshmark_url" binding:"omitempty,url,max=500"`
}

// ListBrandsQuery filtra a listagem de marcas
type ListBrandsQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=pending verified rejected"`
}

// SearchBrandsQuery são os parâmetros do autocomplete
type SearchBrandsQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit"`
}

// BrandResponse representa a resposta de uma marca
type BrandResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Verified           bool      `json:"verified"`
	VerificationStatus string    `json:"verification_status"`
	LogoURL            *string   `json:"logo_url,omitempty"`
	FoundedYear        *int      `json:"founded_year,omitempty"`
	Country            *string   `json:"country,omitempty"`
	Description        *string   `json:"description,omitempty"`
	EbayURL            *string   `json:"ebay_url,omitempty"`
	EtsyURL            *string   `json:"etsy_url,omitempty"`
	PoshmarkURL        *string   `json:"poshmark_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// BrandSearchResult é a versão enxuta usada no autocomplete
type BrandSearchResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Verified bool   `json:"verified"`
}

// ToBrandResponse converte uma entidade Brand para BrandResponse
func ToBrandResponse(b *entities.Brand) BrandResponse {
	return BrandResponse{
		ID:                 b.ID,
		Name:               b.Name,
		Slug:               b.Slug,
		Verified:           b.Verified,
		VerificationStatus: string(b.VerificationStatus),
		LogoURL:            b.LogoURL,
		FoundedYear:        b.FoundedYear,
		Country:            b.Country,
		Description:        b.Description,
		EbayURL:            b.Links.EbayURL,
		EtsyURL:            b.Links.EtsyURL,
		PoshmarkURL:        b.Links.PoshmarkURL,
		CreatedAt:          b.CreatedAt,
	}
}

// ToBrandResponses converte uma lista de marcas
func ToBrandResponses(brands []*entities.Brand) []BrandResponse {
	responses := make([]BrandResponse, len(brands))
	for i, b := range brands {
		responses[i] = ToBrandResponse(b)
	}
	return responses
}

// ToBrandSearchResults converte o resultado da busca
func ToBrandSearchResults(brands []*entities.Brand) []BrandSearchResult {
	results := make([]BrandSearchResult, len(brands))
	for i, b := range brands {
		results[i] = BrandSearchResult{ID: b.ID, Name: b.Name, Slug: b.Slug, Verified: b.Verified}
	}
	return results
}
