package staff

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
	"github.com/VPodolski/MakiMora/internal/service"
)

// CategoryRequest carries category fields.
type CategoryRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// CreateCategory adds a menu section to a location.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, ok := categoryInputFromRequest(c, req)
	if !ok {
		return
	}

	category, err := h.CategoryService.CreateCategory(input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, category)
}

// ListCategories lists menu sections of a location.
func (h *Handler) ListCategories(c *gin.Context) {
	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	if locationID == uuid.Nil {
		response.BadRequest(c, "location_id is required")
		return
	}
	onlyActive := c.DefaultQuery("only_active", "false") == "true"

	categories, err := h.CategoryService.ListCategories(locationID, onlyActive)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, categories)
}

// UpdateCategory edits a menu section.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, ok := categoryInputFromRequest(c, req)
	if !ok {
		return
	}

	category, err := h.CategoryService.UpdateCategory(id, input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a menu section.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.DeleteCategory(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, nil)
}

func categoryInputFromRequest(c *gin.Context, req CategoryRequest) (service.CategoryInput, bool) {
	locationID, err := uuid.Parse(strings.TrimSpace(req.LocationID))
	if err != nil {
		response.BadRequest(c, "invalid location_id")
		return service.CategoryInput{}, false
	}
	return service.CategoryInput{
		LocationID: locationID,
		Name:       req.Name,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	}, true
}

// ProductRequest carries menu item fields.
type ProductRequest struct {
	LocationID      string `json:"location_id" binding:"required"`
	CategoryID      string `json:"category_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           string `json:"price" binding:"required"`
	ImageURL        string `json:"image_url"`
	IsAvailable     *bool  `json:"is_available"`
	PreparationTime int    `json:"preparation_time"`
}

func productInputFromRequest(c *gin.Context, req ProductRequest) (service.ProductInput, bool) {
	locationID, err := uuid.Parse(strings.TrimSpace(req.LocationID))
	if err != nil {
		response.BadRequest(c, "invalid location_id")
		return service.ProductInput{}, false
	}
	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		response.BadRequest(c, "invalid category_id")
		return service.ProductInput{}, false
	}
	price, err := models.NewMoneyFromString(req.Price)
	if err != nil {
		response.BadRequest(c, "invalid price")
		return service.ProductInput{}, false
	}
	return service.ProductInput{
		LocationID:      locationID,
		CategoryID:      categoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           price,
		ImageURL:        req.ImageURL,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
	}, true
}

// CreateProduct adds a menu item.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, ok := productInputFromRequest(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.CreateProduct(input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}

// GetProduct returns one menu item.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetProduct(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}

// ListProducts returns a filtered page of menu items.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	categoryID, ok := shared.ParseUUIDQuery(c, "category_id")
	if !ok {
		return
	}

	products, total, err := h.ProductService.ListProducts(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		LocationID:   locationID,
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, products, total, page, pageSize)
}

// UpdateProduct edits a menu item.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	input, ok := productInputFromRequest(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.UpdateProduct(id, input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}

// StopListRequest toggles stop-list membership.
type StopListRequest struct {
	OnStopList bool `json:"on_stop_list"`
}

// SetStopList puts a product on or off the stop list without touching
// its base availability flag.
func (h *Handler) SetStopList(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req StopListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	product, err := h.ProductService.SetStopList(id, req.OnStopList)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a menu item.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.DeleteProduct(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, nil)
}
