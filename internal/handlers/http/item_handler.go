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

// ItemHandler lida com requisições HTTP relacionadas a peças
type ItemHandler struct {
	itemService *services.ClothingItemService
	logger      ports.Logger
}

// NewItemHandler cria um novo ItemHandler
func NewItemHandler(itemService *services.ClothingItemService, logger ports.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// CreateItem godoc
// @Summary      Cadastra uma peça (pendente de revisão)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateItemRequest  true  "Peça"
// @Success      201      {object}  dto.ItemResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), middleware.CallerID(c), services.CreateItemInput{
		Name:        req.Name,
		BrandID:     req.BrandID,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// ListItems godoc
// @Summary      Lista peças
// @Tags         items
// @Produce      json
// @Param        status     query     string  false  "pending, approved ou rejected"
// @Param        brand_id   query     string  false  "Filtra por marca"
// @Param        page       query     int     false  "Página"
// @Param        page_size  query     int     false  "Itens por página"
// @Success      200        {array}   dto.ItemResponse
// @Router       /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	var q dto.ListItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	filters := repositories.ItemFilters{Page: q.Page, PageSize: q.PageSize}
	if q.Status != "" {
		status := entities.ItemStatus(q.Status)
		filters.Status = &status
	}
	if q.BrandID != "" {
		filters.BrandID = &q.BrandID
	}

	items, err := h.itemService.ListItems(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// GetItem godoc
// @Summary      Busca uma peça pelo slug
// @Tags         items
// @Produce      json
// @Param        slug  path      string  true  "Slug da peça"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /items/{slug} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// ApproveItem godoc
// @Summary      Aprova uma peça (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da peça"
// @Success      200  {object}  dto.ActionResult
// @Failure      403  {object}  dto.ActionResult
// @Router       /admin/items/{id}/approve [post]
func (h *ItemHandler) ApproveItem(c *gin.Context) {
	if err := h.itemService.Approve(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}

// RejectItem godoc
// @Summary      Rejeita uma peça (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da peça"
// @Success      200  {object}  dto.ActionResult
// @Failure      403  {object}  dto.ActionResult
// @Router       /admin/items/{id}/reject [post]
func (h *ItemHandler) RejectItem(c *gin.Context) {
	if err := h.itemService.Reject(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		respondActionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResult{Success: true})
}
