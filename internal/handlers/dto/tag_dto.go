package dto

import (
	"time"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
)

// SubmitTagRequest representa o envio de uma etiqueta.
// A imagem vem em base64 (ou data URL) no próprio JSON.
type SubmitTagRequest struct {
	BrandID        string  `json:"brand_id" binding:"required"`
	ClothingItemID *string `json:"clothing_item_id"`
	Category       string  `json:"category" binding:"required,tag_category"`
	Era            string  `json:"era" binding:"required,era"`
	YearStart      *int    `json:"year_start"`
	YearEnd        *int    `json:"year_end"`
	StitchType     *string `json:"stitch_type" binding:"omitempty,max=100"`
	OriginCountry  *string `json:"origin_country" binding:"omitempty,max=100"`
	Description    *string `json:"description"`
	Image          string  `json:"image" binding:"required"`
}

// VoteRequest representa um voto
type VoteRequest struct {
	Value int `json:"value" binding:"required,vote_value"`
}

// MyVoteResponse é o voto atual do usuário (0 quando não votou)
type MyVoteResponse struct {
	Value int `json:"value"`
}

// AddEvidenceRequest anexa uma foto de apoio
type AddEvidenceRequest struct {
	Image string  `json:"image" binding:"required"`
	Note  *string `json:"note"`
}

// TagResponse representa a resposta de uma etiqueta
type TagResponse struct {
	ID                string    `json:"id"`
	BrandID           string    `json:"brand_id"`
	ClothingItemID    *string   `json:"clothing_item_id,omitempty"`
	Category          string    `json:"category"`
	Era               string    `json:"era"`
	YearStart         *int      `json:"year_start,omitempty"`
	YearEnd           *int      `json:"year_end,omitempty"`
	StitchType        *string   `json:"stitch_type,omitempty"`
	OriginCountry     *string   `json:"origin_country,omitempty"`
	Description       *string   `json:"description,omitempty"`
	ImageURL          string    `json:"image_url"`
	SubmittedBy       string    `json:"submitted_by"`
	Status            string    `json:"status"`
	VerificationScore int       `json:"verification_score"`
	CreatedAt         time.Time `json:"created_at"`
}

// TagDetailResponse acrescenta a marca e a contagem de votos
type TagDetailResponse struct {
	TagResponse
	BrandName string `json:"brand_name"`
	BrandSlug string `json:"brand_slug"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Score     int    `json:"score"`
}

// EvidenceResponse representa uma foto de apoio
type EvidenceResponse struct {
	ID          string    `json:"id"`
	TagID       string    `json:"tag_id"`
	ImageURL    string    `json:"image_url"`
	Note        *string   `json:"note,omitempty"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTagResponse converte uma entidade Tag para TagResponse
func ToTagResponse(t *entities.Tag) TagResponse {
	return TagResponse{
		ID:                t.ID,
		BrandID:           t.BrandID,
		ClothingItemID:    t.ClothingItemID,
		Category:          string(t.Category),
		Era:               t.Era,
		YearStart:         t.YearStart,
		YearEnd:           t.YearEnd,
		StitchType:        t.StitchType,
		OriginCountry:     t.OriginCountry,
		Description:       t.Description,
		ImageURL:          t.ImageURL,
		SubmittedBy:       t.SubmittedBy,
		Status:            string(t.Status),
		VerificationScore: t.VerificationScore,
		CreatedAt:         t.CreatedAt,
	}
}

// ToTagResponses converte uma lista de etiquetas
func ToTagResponses(tags []*entities.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = ToTagResponse(t)
	}
	return responses
}

// ToTagDetailResponse converte o detalhe de uma etiqueta
func ToTagDetailResponse(d *entities.TagDetail) TagDetailResponse {
	return TagDetailResponse{
		TagResponse: ToTagResponse(d.Tag),
		BrandName:   d.BrandName,
		BrandSlug:   d.BrandSlug,
		Upvotes:     d.Tally.Upvotes,
		Downvotes:   d.Tally.Downvotes,
		Score:       d.Tally.Score(),
	}
}

// ToEvidenceResponses converte uma lista de evidências
func ToEvidenceResponses(list []*entities.TagEvidence) []EvidenceResponse {
	responses := make([]EvidenceResponse, len(list))
	for i, e := range list {
		responses[i] = EvidenceResponse{
			ID:          e.ID,
			TagID:       e.TagID,
			ImageURL:    e.ImageURL,
			Note:        e.Note,
			SubmittedBy: e.SubmittedBy,
			CreatedAt:   e.CreatedAt,
		}
	}
	return responses
}
