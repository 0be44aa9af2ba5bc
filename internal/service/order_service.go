package service

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// EventPublisher pushes committed transition events to subscribers of
// a location channel. Implementations must not block.
type EventPublisher interface {
	PublishOrderEvent(locationID uuid.UUID, eventType string, payload interface{})
}

// TaskEnqueuer hands post-commit side effects to the async queue.
type TaskEnqueuer interface {
	EnqueueOrderStatusNotify(orderID uuid.UUID, status string) error
	EnqueueCourierEarningAccrue(orderID uuid.UUID) error
	EnqueueOrderTimeoutCancel(orderID uuid.UUID, delay time.Duration) error
}

// OrderService owns the order lifecycle: creation, status
// transitions, courier handoff and the role-specific queue views. It
// enforces state legality, atomicity and optimistic concurrency;
// role gates stay at the API boundary.
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	statuses     *StatusRegistry
	events       EventPublisher
	tasks        TaskEnqueuer

	// timeoutCancelMinutes > 0 schedules an automatic cancel for
	// orders still pending after that many minutes.
	timeoutCancelMinutes int
}

// NewOrderService wires the order service. events and tasks may be
// nil when push and queueing are disabled.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	statuses *StatusRegistry,
	events EventPublisher,
	tasks TaskEnqueuer,
	timeoutCancelMinutes int,
) *OrderService {
	return &OrderService{
		orderRepo:            orderRepo,
		productRepo:          productRepo,
		locationRepo:         locationRepo,
		userRepo:             userRepo,
		statuses:             statuses,
		events:               events,
		tasks:                tasks,
		timeoutCancelMinutes: timeoutCancelMinutes,
	}
}

// CreateOrderItemInput is one requested line.
type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput is the order creation request.
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	LocationID    uuid.UUID
	DeliveryFee   models.Money
	Comment       string
	DeliveryTime  *time.Time
	Items         []CreateOrderItemInput
}

// TransitionInput is a status transition request. A nil Version skips
// the optimistic check and uses the currently stored version.
type TransitionInput struct {
	OrderID uuid.UUID
	Target  string
	Note    string
	Version *int64
}

// CreateOrder validates the request, snapshots product prices,
// computes totals and persists header, items and the initial history
// rows in one transaction.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	location, err := s.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if !location.IsActive {
		return nil, ErrLocationInactive
	}

	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	pendingOrder, err := s.statuses.OrderStatus(constants.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	pendingItem, err := s.statuses.ItemStatus(constants.ItemStatusPending)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	total := models.NewMoneyFromDecimal(decimal.Zero)
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, ok := productByID[line.ProductID]
		if !ok || product.LocationID != input.LocationID {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		if !product.Orderable() {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}
		lineTotal := product.Price.MulInt(line.Quantity)
		total = total.Add(lineTotal)
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
			StatusID:   pendingItem.ID,
		})
	}

	order := &models.Order{
		OrderNumber:   generateOrderNumber(now),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		LocationID:    input.LocationID,
		StatusID:      pendingOrder.ID,
		TotalAmount:   total,
		DeliveryFee:   input.DeliveryFee,
		Comment:       input.Comment,
		DeliveryTime:  input.DeliveryTime,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		if err := repo.Create(order, items); err != nil {
			return err
		}
		if err := repo.AppendHistory(&models.OrderStatusHistory{
			OrderID:   order.ID,
			StatusID:  pendingOrder.ID,
			ChangedAt: now,
		}); err != nil {
			return err
		}
		for i := range items {
			if err := repo.AppendItemHistory(&models.OrderItemStatusHistory{
				OrderItemID: items[i].ID,
				StatusID:    pendingItem.ID,
				ChangedAt:   now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(created, constants.WSEventOrderCreated)
	s.scheduleTimeoutCancel(created)
	logger.Infow("order_created",
		"order_id", created.ID,
		"order_number", created.OrderNumber,
		"location_id", created.LocationID,
		"total", created.TotalAmount.String(),
	)
	return created, nil
}

// GetOrder loads the aggregate by id.
func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrderByNumber loads the aggregate by its public number.
func (s *OrderService) GetOrderByNumber(number string) (*models.Order, error) {
	order, err := s.orderRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// TransitionOrder moves an order along the legal graph and appends
// the audit row in the same transaction. Re-requesting the current
// status is a no-op returning current state. A stale version fails
// with ErrVersionConflict and the caller may retry.
func (s *OrderService) TransitionOrder(actor Actor, input TransitionInput) (*models.Order, error) {
	order, err := s.GetOrder(input.OrderID)
	if err != nil {
		return nil, err
	}
	current, err := s.statuses.OrderStatusByID(order.StatusID)
	if err != nil {
		return nil, err
	}
	target, err := s.statuses.OrderStatus(input.Target)
	if err != nil {
		return nil, err
	}

	if current.Name == target.Name {
		return order, nil
	}
	if !CanTransitionOrder(current.Name, target.Name) {
		return nil, newOrderTransitionError(current.Name, target.Name)
	}
	if target.Name == constants.OrderStatusDelivered && order.CourierID == nil {
		return nil, ErrNoCourierAssigned
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status_id":  target.ID,
		"updated_at": now,
	}
	if target.Name == constants.OrderStatusDelivered {
		updates["completed_at"] = now
	}

	version := order.Version
	if input.Version != nil {
		version = *input.Version
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		affected, err := repo.UpdateGuarded(order.ID, version, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrVersionConflict
		}
		if err := repo.AppendHistory(&models.OrderStatusHistory{
			OrderID:     order.ID,
			StatusID:    target.ID,
			ChangedByID: actor.userIDRef(),
			ChangedAt:   now,
			Note:        input.Note,
		}); err != nil {
			return err
		}
		if target.Name == constants.OrderStatusCancelled {
			return s.cancelItems(repo, order.ID, actor, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetOrder(order.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(updated, constants.WSEventOrderStatus)
	s.enqueueStatusNotify(updated, target.Name)
	if target.Name == constants.OrderStatusDelivered {
		s.enqueueEarningAccrue(updated)
	}
	logger.Infow("order_status_changed",
		"order_id", updated.ID,
		"from", current.Name,
		"to", target.Name,
		"actor", actor.UserID,
	)
	return updated, nil
}

// cancelItems cascades cancellation to every non-terminal item inside
// the same transaction as the order cancel.
func (s *OrderService) cancelItems(repo *repository.GormOrderRepository, orderID uuid.UUID, actor Actor, now time.Time) error {
	cancelled, err := s.statuses.ItemStatus(constants.ItemStatusCancelled)
	if err != nil {
		return err
	}
	items, err := repo.ListItems(orderID)
	if err != nil {
		return err
	}
	for _, item := range items {
		current, err := s.statuses.ItemStatusByID(item.StatusID)
		if err != nil {
			return err
		}
		if IsTerminalItemStatus(current.Name) {
			continue
		}
		affected, err := repo.UpdateItemGuarded(item.ID, item.Version, map[string]interface{}{
			"status_id":  cancelled.ID,
			"updated_at": now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrVersionConflict
		}
		if err := repo.AppendItemHistory(&models.OrderItemStatusHistory{
			OrderItemID: item.ID,
			StatusID:    cancelled.ID,
			ChangedByID: actor.userIDRef(),
			ChangedAt:   now,
			Note:        "order cancelled",
		}); err != nil {
			return err
		}
	}
	return nil
}

// ItemTransitionInput is an item status transition request.
type ItemTransitionInput struct {
	OrderID uuid.UUID
	ItemID  uuid.UUID
	Target  string
	Note    string
	Version *int64
}

// TransitionItem moves one item along the item graph, stamping the
// actor as preparer or assembler, and returns the freshly re-read
// parent aggregate so callers observe the whole order.
func (s *OrderService) TransitionItem(actor Actor, input ItemTransitionInput) (*models.Order, error) {
	order, err := s.GetOrder(input.OrderID)
	if err != nil {
		return nil, err
	}
	item, err := s.orderRepo.GetItem(order.ID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	current, err := s.statuses.ItemStatusByID(item.StatusID)
	if err != nil {
		return nil, err
	}
	target, err := s.statuses.ItemStatus(input.Target)
	if err != nil {
		return nil, err
	}

	if current.Name == target.Name {
		return order, nil
	}
	if !CanTransitionItem(current.Name, target.Name) {
		return nil, newItemTransitionError(current.Name, target.Name)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status_id":  target.ID,
		"updated_at": now,
	}
	switch target.Name {
	case constants.ItemStatusPreparing:
		updates["prepared_by_id"] = actor.userIDRef()
	case constants.ItemStatusPrepared:
		updates["prepared_by_id"] = actor.userIDRef()
		updates["prepared_at"] = now
	case constants.ItemStatusAssembled:
		updates["assembled_by_id"] = actor.userIDRef()
		updates["assembled_at"] = now
	}

	version := item.Version
	if input.Version != nil {
		version = *input.Version
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		affected, err := repo.UpdateItemGuarded(item.ID, version, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrVersionConflict
		}
		return repo.AppendItemHistory(&models.OrderItemStatusHistory{
			OrderItemID: item.ID,
			StatusID:    target.ID,
			ChangedByID: actor.userIDRef(),
			ChangedAt:   now,
			Note:        input.Note,
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetOrder(order.ID)
	if err != nil {
		return nil, err
	}
	s.publishEvent(updated, constants.WSEventOrderItemStatus)
	logger.Infow("order_item_status_changed",
		"order_id", order.ID,
		"item_id", item.ID,
		"from", current.Name,
		"to", target.Name,
		"actor", actor.UserID,
	)
	return updated, nil
}

// AssignCourier sets the courier and moves the order from assembled
// to picked_up as one action, so no order ever holds a courier while
// still waiting on the shelf. A nil courierID assigns the actor.
func (s *OrderService) AssignCourier(actor Actor, orderID uuid.UUID, courierID uuid.UUID, version *int64) (*models.Order, error) {
	if courierID == uuid.Nil {
		courierID = actor.UserID
	}
	courier, err := s.userRepo.GetByID(courierID)
	if err != nil {
		return nil, err
	}
	if courier == nil || !courier.HasRole(constants.RoleCourier) {
		return nil, ErrCourierNotFound
	}

	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	current, err := s.statuses.OrderStatusByID(order.StatusID)
	if err != nil {
		return nil, err
	}
	target, err := s.statuses.OrderStatus(constants.OrderStatusPickedUp)
	if err != nil {
		return nil, err
	}
	if current.Name == target.Name && order.CourierID != nil && *order.CourierID == courierID {
		return order, nil
	}
	if !CanTransitionOrder(current.Name, target.Name) {
		return nil, newOrderTransitionError(current.Name, target.Name)
	}

	now := time.Now()
	ver := order.Version
	if version != nil {
		ver = *version
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		affected, err := repo.UpdateGuarded(order.ID, ver, map[string]interface{}{
			"courier_id": courierID,
			"status_id":  target.ID,
			"updated_at": now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrVersionConflict
		}
		return repo.AppendHistory(&models.OrderStatusHistory{
			OrderID:     order.ID,
			StatusID:    target.ID,
			ChangedByID: actor.userIDRef(),
			ChangedAt:   now,
			Note:        "courier assigned",
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetOrder(order.ID)
	if err != nil {
		return nil, err
	}
	s.publishEvent(updated, constants.WSEventOrderStatus)
	s.enqueueStatusNotify(updated, target.Name)
	logger.Infow("order_courier_assigned",
		"order_id", order.ID,
		"courier_id", courierID,
		"actor", actor.UserID,
	)
	return updated, nil
}

// MarkPacked moves the order from ready to assembled and stamps the
// packer as assembler.
func (s *OrderService) MarkPacked(actor Actor, orderID uuid.UUID, version *int64) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	current, err := s.statuses.OrderStatusByID(order.StatusID)
	if err != nil {
		return nil, err
	}
	target, err := s.statuses.OrderStatus(constants.OrderStatusAssembled)
	if err != nil {
		return nil, err
	}
	if current.Name == target.Name {
		return order, nil
	}
	if !CanTransitionOrder(current.Name, target.Name) {
		return nil, newOrderTransitionError(current.Name, target.Name)
	}

	now := time.Now()
	ver := order.Version
	if version != nil {
		ver = *version
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		affected, err := repo.UpdateGuarded(order.ID, ver, map[string]interface{}{
			"status_id":    target.ID,
			"assembler_id": actor.userIDRef(),
			"updated_at":   now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrVersionConflict
		}
		return repo.AppendHistory(&models.OrderStatusHistory{
			OrderID:     order.ID,
			StatusID:    target.ID,
			ChangedByID: actor.userIDRef(),
			ChangedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.GetOrder(order.ID)
	if err != nil {
		return nil, err
	}
	s.publishEvent(updated, constants.WSEventOrderStatus)
	s.enqueueStatusNotify(updated, target.Name)
	return updated, nil
}

// MarkDelivered completes the order. The order must be picked_up by
// an assigned courier; couriers may only complete their own orders.
func (s *OrderService) MarkDelivered(actor Actor, orderID uuid.UUID, version *int64) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.CourierID == nil {
		return nil, ErrNoCourierAssigned
	}
	if actor.UserID != uuid.Nil && !actor.Can(constants.RoleManager) && *order.CourierID != actor.UserID {
		return nil, ErrCourierMismatch
	}
	return s.TransitionOrder(actor, TransitionInput{
		OrderID: orderID,
		Target:  constants.OrderStatusDelivered,
		Version: version,
	})
}

func (s *OrderService) publishEvent(order *models.Order, eventType string) {
	if s.events == nil || order == nil {
		return
	}
	statusName := ""
	if status, err := s.statuses.OrderStatusByID(order.StatusID); err == nil {
		statusName = status.Name
	}
	s.events.PublishOrderEvent(order.LocationID, eventType, map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       statusName,
		"updated_at":   order.UpdatedAt,
	})
}

func (s *OrderService) enqueueStatusNotify(order *models.Order, status string) {
	if s.tasks == nil || order == nil {
		return
	}
	if err := s.tasks.EnqueueOrderStatusNotify(order.ID, status); err != nil {
		logger.Warnw("enqueue_order_status_notify_failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) scheduleTimeoutCancel(order *models.Order) {
	if s.tasks == nil || order == nil || s.timeoutCancelMinutes <= 0 {
		return
	}
	delay := time.Duration(s.timeoutCancelMinutes) * time.Minute
	if err := s.tasks.EnqueueOrderTimeoutCancel(order.ID, delay); err != nil {
		logger.Warnw("enqueue_order_timeout_cancel_failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) enqueueEarningAccrue(order *models.Order) {
	if s.tasks == nil || order == nil {
		return
	}
	if err := s.tasks.EnqueueCourierEarningAccrue(order.ID); err != nil {
		logger.Warnw("enqueue_courier_earning_accrue_failed", "order_id", order.ID, "error", err)
	}
}

// generateOrderNumber builds "ORD" + timestamp + random 3-digit
// suffix. The suffix comes from crypto/rand so concurrent creations
// in the same second stay distinct; the column's unique index is the
// final guard.
func generateOrderNumber(now time.Time) string {
	var buf [2]byte
	suffix := 100
	if _, err := rand.Read(buf[:]); err == nil {
		suffix = 100 + int(binary.BigEndian.Uint16(buf[:]))%900
	}
	return fmt.Sprintf("ORD%s%d", now.Format("20060102150405"), suffix)
}
