package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/handlers/dto"
	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/services"
)

// BrandHandler lida com requisições HTTP relacionadas a marcas
type BrandHandler struct {
	brandService *services.BrandService
	logger       ports.Logger
}

// NewBrandHandler cria um novo BrandHandler
func NewBrandHandler(brandService *services.BrandService, logger ports.Logger) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
	}
}

// CreateBrand godoc
// @Summary      Cadastra uma marca (sempre pendente de verificação)
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateBrandRequest  true  "Marca"
// @Success      201      {object}  dto.BrandResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), middleware.CallerID(c), services.CreateBrandInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		FoundedYear: req.FoundedYear,
		Country:     req.Country,
		Description: req.Description,
		Links: entities.MarketplaceLinks{
			EbayURL:     req.EbayURL,
			EtsyURL:     req.EtsyURL,
			PoshmarkURL: req.PoshmarkURL,
		},
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// ListBrands godoc
// @Summary      Lista marcas
// @Tags         brands
// @Produce      json
// @Param        status     query     string  false  "pending, verified ou rejected"
// @Param        page       query     int     false  "Página"
// @Param        page_size  query     int     false  "Itens por página"
// @Success      200        {array}   dto.BrandResponse
// @Router       /brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	var q dto.ListBrandsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	filters := repositories.BrandFilters{Page: q.Page, PageSize: q.PageSize}
	if q.Status != "" {
		status := entities.VerificationStatus(q.Status)
		filters.Status = &status
	}

	brands, err := h.brandService.ListBrands(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponses(brands))
}

// SearchBrands godoc
// @Summary      Autocomplete de marcas
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        q      query     string  true   "Trecho do nome"
// @Param        limit  query     int     false  "Máximo de resultados (1-50, padrão 10)"
// @Success      200    {array}   dto.BrandSearchResult
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      401    {object}  dto.ErrorResponse
// @Router       /brands/search [get]
func (h *BrandHandler) SearchBrands(c *gin.Context) {
	var q dto.SearchBrandsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	brands, err := h.brandService.SearchBrands(c.Request.Context(), middleware.CallerID(c), q.Q, q.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandSearchResults(brands))
}

// GetBrand godoc
// @Summary      Busca uma marca pelo slug
// @Tags         brands
// @Produce      json
// @Param        slug  path      string  true  "Slug da marca"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /brands/{slug} [get]
func (h *BrandHandler) GetBrand(c *gin.Context) {
	brand, err := h.brandService.GetBrandBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// VerifyBrand godoc
// @Summary      Verifica uma marca (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da marca"
// @Success      200  {object}  dto.ActionResult
// @Failure      403  {object}  dto.ActionResult
// @Router       /admin/brands/{id}/verify [post]
func (h *BrandHandler) VerifyBrand(c *gin.Context) {
	if err := h.brandService.Verify(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}

// RejectBrand godoc
// @Summary      Rejeita uma marca (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da marca"
// @Success      200  {object}  dto.ActionResult
// @Failure      403  {object}  dto.ActionResult
// @Router       /admin/brands/{id}/reject [post]
func (h *BrandHandler) RejectBrand(c *gin.Context) {
	if err := h.brandService.Reject(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}
