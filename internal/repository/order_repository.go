package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// OrderRepository is the order aggregate data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetByNumber(number string) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	ListKitchen(locationID uuid.UUID, itemStatusIDs, excludeOrderStatusIDs []uuid.UUID) ([]models.Order, error)
	ListByStatus(locationID, statusID uuid.UUID) ([]models.Order, error)
	ListCourier(locationID, availableStatusID uuid.UUID, courierID uuid.UUID, excludeStatusIDs []uuid.UUID) ([]models.Order, error)
	UpdateGuarded(id uuid.UUID, version int64, updates map[string]interface{}) (int64, error)
	AppendHistory(h *models.OrderStatusHistory) error
	GetItem(orderID, itemID uuid.UUID) (*models.OrderItem, error)
	ListItems(orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateItemGuarded(id uuid.UUID, version int64, updates map[string]interface{}) (int64, error)
	AppendItemHistory(h *models.OrderItemStatusHistory) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withAggregate(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Status").
		Preload("Location").
		Preload("Courier").
		Preload("Assembler").
		Preload("Items").
		Preload("Items.Status").
		Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc")
		}).
		Preload("StatusHistory.Status")
}

// Create inserts the order header and its items.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads the full aggregate, nil when absent.
func (r *GormOrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.withAggregate(r.db).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByNumber loads the full aggregate by order number, nil when absent.
func (r *GormOrderRepository) GetByNumber(number string) (*models.Order, error) {
	var order models.Order
	if err := r.withAggregate(r.db).First(&order, "order_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns a filtered page of orders.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.LocationID != uuid.Nil {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.StatusID != uuid.Nil {
		query = query.Where("status_id = ?", filter.StatusID)
	}
	if filter.CourierID != uuid.Nil {
		query = query.Where("courier_id = ?", filter.CourierID)
	}
	if filter.OrderNumber != "" {
		query = query.Where("order_number = ?", filter.OrderNumber)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := r.withAggregate(query).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListKitchen returns non-terminal orders at a location containing at
// least one item whose status is in itemStatusIDs.
func (r *GormOrderRepository) ListKitchen(locationID uuid.UUID, itemStatusIDs, excludeOrderStatusIDs []uuid.UUID) ([]models.Order, error) {
	sub := r.db.Model(&models.OrderItem{}).
		Select("order_id").
		Where("status_id IN ?", itemStatusIDs)

	query := r.db.Model(&models.Order{}).
		Where("location_id = ?", locationID).
		Where("id IN (?)", sub)
	if len(excludeOrderStatusIDs) > 0 {
		query = query.Where("status_id NOT IN ?", excludeOrderStatusIDs)
	}

	var orders []models.Order
	if err := r.withAggregate(query).Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus returns orders at a location in one status, oldest
// first so the queue drains in arrival order.
func (r *GormOrderRepository) ListByStatus(locationID, statusID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).
		Where("location_id = ? AND status_id = ?", locationID, statusID)
	if err := r.withAggregate(query).Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListCourier returns unassigned orders ready for pickup plus the
// courier's own not-yet-finished orders at the location.
func (r *GormOrderRepository) ListCourier(locationID, availableStatusID uuid.UUID, courierID uuid.UUID, excludeStatusIDs []uuid.UUID) ([]models.Order, error) {
	query := r.db.Model(&models.Order{}).
		Where("location_id = ?", locationID).
		Where(
			r.db.Where("status_id = ? AND courier_id IS NULL", availableStatusID).
				Or("courier_id = ? AND status_id NOT IN ?", courierID, excludeStatusIDs),
		)

	var orders []models.Order
	if err := r.withAggregate(query).Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateGuarded applies updates only when the stored version matches,
// bumping the version in the same statement. Returns affected rows;
// zero means the caller lost the race or the order is gone.
func (r *GormOrderRepository) UpdateGuarded(id uuid.UUID, version int64, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["version"] = gorm.Expr("version + 1")
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// AppendHistory inserts one audit row.
func (r *GormOrderRepository) AppendHistory(h *models.OrderStatusHistory) error {
	return r.db.Create(h).Error
}

// GetItem loads one item of an order, nil when absent.
func (r *GormOrderRepository) GetItem(orderID, itemID uuid.UUID) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Preload("Status").Preload("Product").
		First(&item, "id = ? AND order_id = ?", itemID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListItems returns all items of an order.
func (r *GormOrderRepository) ListItems(orderID uuid.UUID) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Preload("Status").Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemGuarded is UpdateGuarded at item granularity.
func (r *GormOrderRepository) UpdateItemGuarded(id uuid.UUID, version int64, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["version"] = gorm.Expr("version + 1")
	result := r.db.Model(&models.OrderItem{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// AppendItemHistory inserts one item audit row.
func (r *GormOrderRepository) AppendItemHistory(h *models.OrderItemStatusHistory) error {
	return r.db.Create(h).Error
}
