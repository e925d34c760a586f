package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/handlers/dto"
	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/services"
)

// TagHandler lida com etiquetas, votos, evidências e uploads
type TagHandler struct {
	tagService  *services.TagService
	voteService *services.VoteService
	logger      ports.Logger
}

// NewTagHandler cria um novo TagHandler
func NewTagHandler(tagService *services.TagService, voteService *services.VoteService, logger ports.Logger) *TagHandler {
	return &TagHandler{
		tagService:  tagService,
		voteService: voteService,
		logger:      logger,
	}
}

// SubmitTag godoc
// @Summary      Envia uma etiqueta para revisão
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.SubmitTagRequest  true  "Etiqueta com imagem em base64"
// @Success      201      {object}  dto.ActionResult
// @Failure      400      {object}  dto.ActionResult
// @Failure      401      {object}  dto.ActionResult
// @Router       /tags [post]
func (h *TagHandler) SubmitTag(c *gin.Context) {
	var req dto.SubmitTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondActionBindingError(c, err)
		return
	}

	tag, err := h.tagService.SubmitTag(c.Request.Context(), middleware.CallerID(c), services.SubmitTagInput{
		BrandID:        req.BrandID,
		ClothingItemID: req.ClothingItemID,
		Category:       req.Category,
		Era:            req.Era,
		YearStart:      req.YearStart,
		YearEnd:        req.YearEnd,
		StitchType:     req.StitchType,
		OriginCountry:  req.OriginCountry,
		Description:    req.Description,
		ImageBase64:    req.Image,
	})
	if err != nil {
		respondActionError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ActionResult{Success: true, ID: tag.ID})
}

// GetTag godoc
// @Summary      Detalhe de uma etiqueta
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "ID da etiqueta"
// @Success      200  {object}  dto.TagDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	detail, err := h.tagService.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagDetailResponse(detail))
}

// ListBrandTags godoc
// @Summary      Lista as etiquetas de uma marca
// @Tags         tags
// @Produce      json
// @Param        slug       path      string  true   "Slug da marca"
// @Param        page       query     int     false  "Página"
// @Param        page_size  query     int     false  "Itens por página"
// @Success      200        {array}   dto.TagResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /brands/{slug}/tags [get]
func (h *TagHandler) ListBrandTags(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	tags, err := h.tagService.ListTagsByBrand(c.Request.Context(), c.Param("slug"), q.Page, q.PageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

// CastVote godoc
// @Summary      Vota em uma etiqueta (+1 ou -1)
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string           true  "ID da etiqueta"
// @Param        request  body      dto.VoteRequest  true  "Voto"
// @Success      200      {object}  dto.ActionResult
// @Failure      400      {object}  dto.ActionResult
// @Failure      401      {object}  dto.ActionResult
// @Router       /tags/{id}/vote [post]
func (h *TagHandler) CastVote(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondActionBindingError(c, err)
		return
	}

	if _, err := h.voteService.Cast(c.Request.Context(), middleware.CallerID(c), c.Param("id"), req.Value); err != nil {
		respondActionError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}

// RemoveVote godoc
// @Summary      Remove o voto do usuário
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da etiqueta"
// @Success      200  {object}  dto.ActionResult
// @Failure      401  {object}  dto.ActionResult
// @Router       /tags/{id}/vote [delete]
func (h *TagHandler) RemoveVote(c *gin.Context) {
	if _, err := h.voteService.Remove(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}

// MyVote godoc
// @Summary      Voto atual do usuário na etiqueta
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da etiqueta"
// @Success      200  {object}  dto.MyVoteResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /tags/{id}/vote [get]
func (h *TagHandler) MyVote(c *gin.Context) {
	value, err := h.voteService.MyVote(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MyVoteResponse{Value: value})
}

// AddEvidence godoc
// @Summary      Anexa uma foto de apoio à etiqueta
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "ID da etiqueta"
// @Param        request  body      dto.AddEvidenceRequest  true  "Foto em base64"
// @Success      201      {object}  dto.ActionResult
// @Failure      400      {object}  dto.ActionResult
// @Router       /tags/{id}/evidence [post]
func (h *TagHandler) AddEvidence(c *gin.Context) {
	var req dto.AddEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondActionBindingError(c, err)
		return
	}

	evidence, err := h.tagService.AddEvidence(c.Request.Context(), middleware.CallerID(c), c.Param("id"), services.AddEvidenceInput{
		ImageBase64: req.Image,
		Note:        req.Note,
	})
	if err != nil {
		respondActionError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ActionResult{Success: true, ID: evidence.ID})
}

// ListEvidence godoc
// @Summary      Lista as fotos de apoio
// @Tags         tags
// @Produce      json
// @Param        id   path      string  true  "ID da etiqueta"
// @Success      200  {array}   dto.EvidenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tags/{id}/evidence [get]
func (h *TagHandler) ListEvidence(c *gin.Context) {
	list, err := h.tagService.ListEvidence(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEvidenceResponses(list))
}

// DeleteUpload godoc
// @Summary      Remove uma imagem enviada (dono ou admin)
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        key  query     string  true  "Chave do objeto"
// @Success      200  {object}  dto.ActionResult
// @Failure      403  {object}  dto.ActionResult
// @Router       /uploads [delete]
func (h *TagHandler) DeleteUpload(c *gin.Context) {
	if err := h.tagService.DeleteImage(c.Request.Context(), middleware.CallerID(c), c.Query("key")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}
