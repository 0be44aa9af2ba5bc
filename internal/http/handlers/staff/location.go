package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

// LocationRequest carries outlet fields.
type LocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

// CreateLocation opens a new outlet.
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	location, err := h.LocationService.CreateLocation(service.LocationInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, location)
}

// ListLocations returns all outlets including inactive ones.
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.LocationService.ListAllLocations()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, locations)
}

// GetLocation returns one outlet.
func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	location, err := h.LocationService.GetLocation(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, location)
}

// UpdateLocation edits an outlet.
func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	location, err := h.LocationService.UpdateLocation(id, service.LocationInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, location)
}

// DeactivateLocation takes an outlet off the storefront.
func (h *Handler) DeactivateLocation(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.LocationService.DeactivateLocation(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, nil)
}
