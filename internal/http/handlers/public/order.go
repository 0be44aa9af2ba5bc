package public

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/service"
)

// OrderItemRequest is one requested line.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the customer order submission.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	Address       string             `json:"address" binding:"required"`
	LocationID    uuid.UUID          `json:"location_id" binding:"required"`
	DeliveryFee   string             `json:"delivery_fee"`
	Comment       string             `json:"comment"`
	DeliveryTime  *time.Time         `json:"delivery_time"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder accepts a customer order and returns the persisted
// aggregate with its tracking number.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	deliveryFee := models.Money{}
	if strings.TrimSpace(req.DeliveryFee) != "" {
		fee, err := models.NewMoneyFromString(req.DeliveryFee)
		if err != nil {
			shared.RespondError(c, response.CodeBadRequest, "invalid delivery fee", err)
			return
		}
		deliveryFee = fee
	}

	items := make([]service.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		LocationID:    req.LocationID,
		DeliveryFee:   deliveryFee,
		Comment:       req.Comment,
		DeliveryTime:  req.DeliveryTime,
		Items:         items,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	location := fmt.Sprintf("/api/v1/orders/track/%s", order.OrderNumber)
	response.Created(c, location, order)
}

// TrackOrder returns the public tracking projection for an order
// number. No customer data beyond the submitted name.
func (h *Handler) TrackOrder(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		response.BadRequest(c, "order number is required")
		return
	}

	track, err := h.TrackingService.Track(number)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		shared.RespondError(c, response.CodeInternal, "failed to load order", err)
		return
	}

	response.Success(c, track)
}
