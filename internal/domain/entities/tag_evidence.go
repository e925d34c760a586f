package entities

import "time"

// TagEvidence é uma foto adicional que sustenta uma etiqueta
type TagEvidence struct {
	ID          string
	TagID       string
	ImageURL    string
	ImageKey    string
	Note        *string
	SubmittedBy string
	CreatedAt   time.Time
}
