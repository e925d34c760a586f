package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/services"
)

// ScoreStream mantém uma conexão inscrita nas mudanças de score de uma etiqueta
type ScoreStream interface {
	Serve(w http.ResponseWriter, r *http.Request, tagID string) error
}

// RealtimeHandler expõe o websocket de scores
type RealtimeHandler struct {
	tagService *services.TagService
	stream     ScoreStream
	logger     ports.Logger
}

// NewRealtimeHandler cria um novo RealtimeHandler
func NewRealtimeHandler(tagService *services.TagService, stream ScoreStream, logger ports.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		tagService: tagService,
		stream:     stream,
		logger:     logger,
	}
}

// SubscribeTag godoc
// @Summary      Websocket com o score ao vivo de uma etiqueta
// @Tags         tags
// @Param        id   path  string  true  "ID da etiqueta"
// @Success      101
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ws/tags/{id} [get]
func (h *RealtimeHandler) SubscribeTag(c *gin.Context) {
	tagID := c.Param("id")
	if _, err := h.tagService.GetTag(c.Request.Context(), tagID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.stream.Serve(c.Writer, c.Request, tagID); err != nil {
		// o upgrader já respondeu ao cliente
		h.logger.Warn("websocket upgrade failed", "tag_id", tagID, "error", err.Error())
	}
}
