package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// CourierEarningRepository is the earning ledger data access
// interface.
type CourierEarningRepository interface {
	Create(earning *models.CourierEarning) error
	ExistsForOrder(orderID uuid.UUID, earningType string) (bool, error)
	List(filter EarningListFilter) ([]models.CourierEarning, int64, error)
	SumByCourier(courierID uuid.UUID, from, to time.Time) (models.Money, error)
	WithTx(tx *gorm.DB) *GormCourierEarningRepository
}

// GormCourierEarningRepository is the GORM implementation.
type GormCourierEarningRepository struct {
	db *gorm.DB
}

// NewCourierEarningRepository creates the earning repository.
func NewCourierEarningRepository(db *gorm.DB) *GormCourierEarningRepository {
	return &GormCourierEarningRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormCourierEarningRepository) WithTx(tx *gorm.DB) *GormCourierEarningRepository {
	if tx == nil {
		return r
	}
	return &GormCourierEarningRepository{db: tx}
}

// Create inserts one ledger row.
func (r *GormCourierEarningRepository) Create(earning *models.CourierEarning) error {
	return r.db.Create(earning).Error
}

// ExistsForOrder reports whether an earning of the given type was
// already accrued for the order. Keeps the accrual task idempotent.
func (r *GormCourierEarningRepository) ExistsForOrder(orderID uuid.UUID, earningType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CourierEarning{}).
		Where("order_id = ? AND earning_type = ?", orderID, earningType).
		Count(&count).Error
	return count > 0, err
}

// List returns a filtered page of earnings.
func (r *GormCourierEarningRepository) List(filter EarningListFilter) ([]models.CourierEarning, int64, error) {
	query := r.db.Model(&models.CourierEarning{})

	if filter.CourierID != uuid.Nil {
		query = query.Where("courier_id = ?", filter.CourierID)
	}
	if filter.EarningType != "" {
		query = query.Where("earning_type = ?", filter.EarningType)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var earnings []models.CourierEarning
	if err := query.Preload("Order").Order("date desc").Find(&earnings).Error; err != nil {
		return nil, 0, err
	}
	return earnings, total, nil
}

// SumByCourier totals a courier's earnings in a period.
func (r *GormCourierEarningRepository) SumByCourier(courierID uuid.UUID, from, to time.Time) (models.Money, error) {
	var sum decimal.NullDecimal
	err := r.db.Model(&models.CourierEarning{}).
		Select("SUM(amount)").
		Where("courier_id = ? AND date >= ? AND date <= ?", courierID, from, to).
		Scan(&sum).Error
	if err != nil {
		return models.Money{}, err
	}
	if !sum.Valid {
		return models.NewMoneyFromDecimal(decimal.Zero), nil
	}
	return models.NewMoneyFromDecimal(sum.Decimal), nil
}
