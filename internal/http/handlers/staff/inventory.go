package staff

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
	"github.com/VPodolski/MakiMora/internal/service"
)

// SupplyItemRequest is one supply line.
type SupplyItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
	UnitCost string `json:"unit_cost" binding:"required"`
}

// CreateSupplyRequest is the supply batch creation body.
type CreateSupplyRequest struct {
	LocationID   uuid.UUID           `json:"location_id" binding:"required"`
	SupplierName string              `json:"supplier_name" binding:"required"`
	SupplyDate   time.Time           `json:"supply_date" binding:"required"`
	ExpectedDate *time.Time          `json:"expected_date"`
	Comment      string              `json:"comment"`
	Items        []SupplyItemRequest `json:"items" binding:"required"`
}

// CreateSupply records a supply batch for a location.
func (h *Handler) CreateSupply(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req CreateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if !requireLocationAccess(c, user, req.LocationID) {
		return
	}

	items := make([]service.SupplyItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		unitCost, err := models.NewMoneyFromString(line.UnitCost)
		if err != nil {
			response.BadRequest(c, "invalid unit cost")
			return
		}
		items = append(items, service.SupplyItemInput{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			UnitCost: unitCost,
		})
	}

	supply, err := h.InventoryService.CreateSupply(service.CreateSupplyInput{
		LocationID:   req.LocationID,
		ManagerID:    user.ID,
		SupplierName: req.SupplierName,
		SupplyDate:   req.SupplyDate,
		ExpectedDate: req.ExpectedDate,
		Comment:      req.Comment,
		Items:        items,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	response.Success(c, supply)
}

// GetSupply returns one supply batch with its lines.
func (h *Handler) GetSupply(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	supply, err := h.InventoryService.GetSupply(id)
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	response.Success(c, supply)
}

// ListSupplies returns a filtered page of supply batches.
func (h *Handler) ListSupplies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}
	dateFrom, ok := shared.ParseDateQuery(c, "date_from")
	if !ok {
		return
	}
	dateTo, ok := shared.ParseDateQuery(c, "date_to")
	if !ok {
		return
	}

	supplies, total, err := h.InventoryService.ListSupplies(repository.SupplyListFilter{
		Page:       page,
		PageSize:   pageSize,
		LocationID: locationID,
		Status:     strings.TrimSpace(c.Query("status")),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	response.SuccessWithPage(c, supplies, total, page, pageSize)
}

// UpdateSupplyStatusRequest moves a batch between statuses.
type UpdateSupplyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSupplyStatus marks a batch delivered or cancelled.
func (h *Handler) UpdateSupplyStatus(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSupplyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	supply, err := h.InventoryService.UpdateSupplyStatus(id, req.Status)
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	response.Success(c, supply)
}
