package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// StatusCount is one row of the per-status order breakdown.
type StatusCount struct {
	StatusID uuid.UUID
	Count    int64
}

// DashboardRepository aggregates order figures for the manager view.
type DashboardRepository interface {
	CountByStatus(locationID uuid.UUID, from, to time.Time) ([]StatusCount, error)
	Revenue(locationID, deliveredStatusID uuid.UUID, from, to time.Time) (models.Money, error)
	CountOrders(locationID uuid.UUID, from, to time.Time) (int64, error)
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates the dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CountByStatus groups order counts per status in the period.
func (r *GormDashboardRepository) CountByStatus(locationID uuid.UUID, from, to time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	query := r.db.Model(&models.Order{}).
		Select("status_id, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("status_id")
	if locationID != uuid.Nil {
		query = query.Where("location_id = ?", locationID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Revenue sums delivered order totals in the period.
func (r *GormDashboardRepository) Revenue(locationID, deliveredStatusID uuid.UUID, from, to time.Time) (models.Money, error) {
	var sum decimal.NullDecimal
	query := r.db.Model(&models.Order{}).
		Select("SUM(total_amount)").
		Where("status_id = ?", deliveredStatusID).
		Where("completed_at >= ? AND completed_at <= ?", from, to)
	if locationID != uuid.Nil {
		query = query.Where("location_id = ?", locationID)
	}
	if err := query.Scan(&sum).Error; err != nil {
		return models.Money{}, err
	}
	if !sum.Valid {
		return models.NewMoneyFromDecimal(decimal.Zero), nil
	}
	return models.NewMoneyFromDecimal(sum.Decimal), nil
}

// CountOrders counts orders created in the period.
func (r *GormDashboardRepository) CountOrders(locationID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	query := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at <= ?", from, to)
	if locationID != uuid.Nil {
		query = query.Where("location_id = ?", locationID)
	}
	err := query.Count(&count).Error
	return count, err
}
