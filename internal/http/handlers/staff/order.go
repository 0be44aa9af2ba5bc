package staff

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

// GetOrder returns the full order aggregate with items and history.
func (h *Handler) GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrder(id)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	response.Success(c, order)
}

// ListOrders returns a filtered page of orders.
func (h *Handler) ListOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	startDate, ok := shared.ParseDateQuery(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := shared.ParseDateQuery(c, "end_date")
	if !ok {
		return
	}
	if locationID != uuid.Nil && !requireLocationAccess(c, user, locationID) {
		return
	}

	orders, total, err := h.OrderService.ListOrders(service.ListOrdersInput{
		Page:        page,
		PageSize:    pageSize,
		LocationID:  locationID,
		Status:      strings.TrimSpace(c.Query("status")),
		OrderNumber: strings.TrimSpace(c.Query("order_number")),
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}

	response.SuccessWithPage(c, orders, total, page, pageSize)
}

// UpdateOrderStatusRequest is the transition request body.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Note    string `json:"note"`
	Version *int64 `json:"version"`
}

// UpdateOrderStatus moves an order along the lifecycle graph.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.GetOrder(id)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	updated, err := h.OrderService.TransitionOrder(shared.ActorFrom(user), service.TransitionInput{
		OrderID: id,
		Target:  req.Status,
		Note:    req.Note,
		Version: req.Version,
	})
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}

	response.Success(c, updated)
}
