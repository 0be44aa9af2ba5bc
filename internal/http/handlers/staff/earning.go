package staff

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
	"github.com/VPodolski/MakiMora/internal/service"
)

// ListEarnings returns a page of the courier compensation ledger.
// Couriers see only their own rows; managers and HR can filter by
// courier.
func (h *Handler) ListEarnings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	courierID, ok := shared.ParseUUIDQuery(c, "courier_id")
	if !ok {
		return
	}
	if !user.HasRole(constants.RoleManager) && !user.HasRole(constants.RoleHR) {
		courierID = user.ID
	}
	dateFrom, ok := shared.ParseDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := shared.ParseDateQuery(c, "date_to")
	if !ok {
		return
	}

	earnings, total, err := h.EarningService.ListEarnings(repository.EarningListFilter{
		Page:        page,
		PageSize:    pageSize,
		CourierID:   courierID,
		EarningType: strings.TrimSpace(c.Query("earning_type")),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	})
	if err != nil {
		respondEarningError(c, err)
		return
	}
	response.SuccessWithPage(c, earnings, total, page, pageSize)
}

// EarningSummary totals one courier's earnings in a period. Couriers
// may only query themselves.
func (h *Handler) EarningSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	courierID, ok := shared.ParseUUIDQuery(c, "courier_id")
	if !ok {
		return
	}
	if courierID == uuid.Nil {
		courierID = user.ID
	}
	if courierID != user.ID && !user.HasRole(constants.RoleManager) && !user.HasRole(constants.RoleHR) {
		response.Forbidden(c, "couriers may only view their own earnings")
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
	now := time.Now()
	if to == nil {
		to = &now
	}
	if from == nil {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = &monthStart
	}

	summary, err := h.EarningService.Summarize(courierID, *from, *to)
	if err != nil {
		respondEarningError(c, err)
		return
	}
	response.Success(c, summary)
}

// RecordAdjustmentRequest is a manual bonus or penalty entry.
type RecordAdjustmentRequest struct {
	CourierID   uuid.UUID  `json:"courier_id" binding:"required"`
	OrderID     uuid.UUID  `json:"order_id" binding:"required"`
	Amount      string     `json:"amount" binding:"required"`
	EarningType string     `json:"earning_type" binding:"required"`
	Date        *time.Time `json:"date"`
}

// RecordAdjustment lets a manager write a bonus or penalty row.
func (h *Handler) RecordAdjustment(c *gin.Context) {
	var req RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	amount, err := models.NewMoneyFromString(req.Amount)
	if err != nil {
		response.BadRequest(c, "invalid amount")
		return
	}

	input := service.RecordAdjustmentInput{
		CourierID:   req.CourierID,
		OrderID:     req.OrderID,
		Amount:      amount,
		EarningType: req.EarningType,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	earning, err := h.EarningService.RecordAdjustment(input)
	if err != nil {
		respondEarningError(c, err)
		return
	}
	response.Success(c, earning)
}
