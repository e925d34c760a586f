package entities

import (
	"time"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
)

// TagStatus é o ciclo de vida de uma etiqueta enviada
type TagStatus string

const (
	TagStatusPending TagStatus = "pending"
)

// TagCategory classifica o tipo de identificador fotografado
type TagCategory string

const (
	CategoryBrandTag   TagCategory = "brand_tag"
	CategoryCareLabel  TagCategory = "care_label"
	CategoryUnionLabel TagCategory = "union_label"
	CategoryRNNumber   TagCategory = "rn_number"
	CategoryButton     TagCategory = "button"
	CategoryZipper     TagCategory = "zipper"
	CategoryStitching  TagCategory = "stitching"
	CategoryOther      TagCategory = "other"
)

// TagCategories lista as categorias aceitas
var TagCategories = []TagCategory{
	CategoryBrandTag,
	CategoryCareLabel,
	CategoryUnionLabel,
	CategoryRNNumber,
	CategoryButton,
	CategoryZipper,
	CategoryStitching,
	CategoryOther,
}

// ParseTagCategory valida uma categoria
func ParseTagCategory(raw string) (TagCategory, error) {
	for _, c := range TagCategories {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", domainerrors.ErrInvalidCategory
}

// Eras lista as décadas aceitas para datação
var Eras = []string{
	"pre-1920s",
	"1920s",
	"1930s",
	"1940s",
	"1950s",
	"1960s",
	"1970s",
	"1980s",
	"1990s",
	"2000s",
	"2010s",
	"2020s",
}

// ParseEra valida uma era
func ParseEra(raw string) (string, error) {
	for _, e := range Eras {
		if e == raw {
			return e, nil
		}
	}
	return "", domainerrors.ErrInvalidEra
}

// Tag é uma evidência fotográfica enviada pela comunidade
type Tag struct {
	ID                string
	BrandID           string
	ClothingItemID    *string
	Category          TagCategory
	Era               string
	YearStart         *int
	YearEnd           *int
	StitchType        *string
	OriginCountry     *string
	Description       *string
	ImageURL          string
	ImageKey          string
	SubmittedBy       string
	Status            TagStatus
	VerificationScore int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TagDetail é a visão de detalhe de uma etiqueta
type TagDetail struct {
	Tag       *Tag
	BrandName string
	BrandSlug string
	Tally     VoteTally
}
