package staff

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/ws"
)

// SubscribeOrders upgrades to a WebSocket subscribed to a location's
// order events. Browsers cannot set the Authorization header on
// WebSocket requests, so the bearer token travels as a query
// parameter.
func (h *Handler) SubscribeOrders(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		response.Unauthorized(c, "missing token")
		return
	}
	claims, err := h.AuthService.ParseToken(token)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		return
	}

	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	if locationID == uuid.Nil {
		response.BadRequest(c, "location_id is required")
		return
	}

	user, err := h.UserRepo.GetByID(userID)
	if err != nil || user == nil || !user.IsActive {
		response.Unauthorized(c, "invalid token")
		return
	}
	if !user.WorksAt(locationID.String()) {
		response.Forbidden(c, "no access to this location")
		return
	}

	ws.ServeConn(h.Hub, c.Writer, c.Request, locationID)
}
