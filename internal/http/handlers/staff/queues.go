package staff

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

func (h *Handler) queueLocation(c *gin.Context) (uuid.UUID, bool) {
	user, ok := currentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return uuid.Nil, false
	}
	if locationID == uuid.Nil {
		response.BadRequest(c, "location_id is required")
		return uuid.Nil, false
	}
	if !requireLocationAccess(c, user, locationID) {
		return uuid.Nil, false
	}
	return locationID, true
}

// KitchenQueue lists orders holding items the kitchen still has to
// prepare at the location.
func (h *Handler) KitchenQueue(c *gin.Context) {
	locationID, ok := h.queueLocation(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.KitchenQueue(locationID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, orders)
}

// PackingQueue lists orders ready for assembly at the location.
func (h *Handler) PackingQueue(c *gin.Context) {
	locationID, ok := h.queueLocation(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.PackingQueue(locationID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, orders)
}

// CourierQueue lists assembled unassigned orders plus the courier's
// own in-flight deliveries at the location.
func (h *Handler) CourierQueue(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	locationID, ok := h.queueLocation(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.CourierQueue(locationID, user.ID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, orders)
}

// UpdateItemStatusRequest is the item transition request body.
type UpdateItemStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Note    string `json:"note"`
	Version *int64 `json:"version"`
}

// UpdateItemStatus moves one order item along the item graph and
// returns the refreshed parent order.
func (h *Handler) UpdateItemStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := shared.ParseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	var req UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.GetOrder(orderID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	updated, err := h.OrderService.TransitionItem(shared.ActorFrom(user), service.ItemTransitionInput{
		OrderID: orderID,
		ItemID:  itemID,
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

// VersionedRequest carries only the optimistic concurrency token.
type VersionedRequest struct {
	Version *int64 `json:"version"`
}

// MarkPacked records the packer finishing assembly: ready to
// assembled, stamping the packer as assembler.
func (h *Handler) MarkPacked(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req VersionedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
			return
		}
	}

	order, err := h.OrderService.GetOrder(orderID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	updated, err := h.OrderService.MarkPacked(shared.ActorFrom(user), orderID, req.Version)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, updated)
}

// AssignCourierRequest optionally names the courier; the caller
// becomes the courier when omitted.
type AssignCourierRequest struct {
	CourierID *uuid.UUID `json:"courier_id"`
	Version   *int64     `json:"version"`
}

// AssignCourier assigns a courier and marks the order picked up in
// one step.
func (h *Handler) AssignCourier(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req AssignCourierRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
			return
		}
	}

	order, err := h.OrderService.GetOrder(orderID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	courierID := user.ID
	if req.CourierID != nil {
		courierID = *req.CourierID
	}

	updated, err := h.OrderService.AssignCourier(shared.ActorFrom(user), orderID, courierID, req.Version)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, updated)
}

// MarkDelivered completes the delivery. Only the assigned courier or a
// manager may close the order.
func (h *Handler) MarkDelivered(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req VersionedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
			return
		}
	}

	order, err := h.OrderService.GetOrder(orderID)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	if !requireLocationAccess(c, user, order.LocationID) {
		return
	}

	updated, err := h.OrderService.MarkDelivered(shared.ActorFrom(user), orderID, req.Version)
	if err != nil {
		respondOrderWorkflowError(c, err)
		return
	}
	response.Success(c, updated)
}
