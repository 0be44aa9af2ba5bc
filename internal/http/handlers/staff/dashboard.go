package staff

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
)

// Dashboard returns the manager overview: order counts per status and
// delivered revenue. Defaults to today when no period is given.
func (h *Handler) Dashboard(c *gin.Context) {
	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	from, ok := shared.ParseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := shared.ParseDateQuery(c, "to")
	if !ok {
		return
	}

	if from == nil && to == nil {
		summary, err := h.DashboardService.Today(locationID)
		if err != nil {
			shared.RespondError(c, response.CodeInternal, "failed to build dashboard", err)
			return
		}
		response.Success(c, summary)
		return
	}

	now := time.Now()
	if from == nil {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		from = &dayStart
	}
	if to == nil {
		to = &now
	}

	summary, err := h.DashboardService.Summary(locationID, *from, *to)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to build dashboard", err)
		return
	}
	response.Success(c, summary)
}
