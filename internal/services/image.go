package services

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/rafabene/threaddate-backend/internal/domain/errors"
)

// imageExtensions são os tipos de imagem aceitos, identificados pelo conteúdo
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// decodedImage é uma imagem já decodificada e validada
type decodedImage struct {
	Data        []byte
	ContentType string
	Extension   string
}

// decodeImage aceita base64 puro ou data URL ("data:image/png;base64,...").
// O tipo declarado na data URL é ignorado; vale o detectado nos bytes.
func decodeImage(raw string, maxBytes int) (*decodedImage, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.ErrInvalidImage
	}

	if strings.HasPrefix(raw, "data:") {
		comma := strings.IndexByte(raw, ',')
		if comma < 0 || !strings.HasSuffix(raw[:comma], ";base64") {
			return nil, errors.ErrInvalidImage
		}
		raw = raw[comma+1:]
	}

	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(raw)) > maxBytes+2 {
		return nil, errors.ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.ErrInvalidImage
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, errors.ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, errors.ErrInvalidImage
	}

	return &decodedImage{Data: data, ContentType: contentType, Extension: ext}, nil
}
