package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

// ListLocations returns the active outlets customers can order from.
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.LocationService.ListActiveLocations()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load locations", err)
		return
	}
	response.Success(c, locations)
}

// GetMenu returns the storefront menu for a location: active
// categories with their orderable products.
func (h *Handler) GetMenu(c *gin.Context) {
	locationID, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	menu, err := h.ProductService.Menu(locationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationNotFound):
			response.NotFound(c, "location not found")
		case errors.Is(err, service.ErrLocationInactive):
			shared.RespondError(c, response.CodeBadRequest, "location is not accepting orders", nil)
		default:
			shared.RespondError(c, response.CodeInternal, "failed to load menu", err)
		}
		return
	}

	response.Success(c, menu)
}
