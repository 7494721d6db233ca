package orderrepo

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order with an optimistic-concurrency guard.
// The write applies only while the stored version matches the version the
// aggregate was loaded at; a lost race surfaces as a conflict so that of two
// drivers accepting the same order exactly one wins.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"customer_name":          dto.CustomerName,
			"customer_phone":         dto.CustomerPhone,
			"customer_address":       dto.CustomerAddress,
			"delivery_fee":           dto.DeliveryFee,
			"total":                  dto.Total,
			"status":                 dto.Status,
			"added_by_id":            dto.AddedByID,
			"delivery_by_id":         dto.DeliveryByID,
			"application_percentage": dto.ApplicationPercentage,
			"application_fee":        dto.ApplicationFee,
			"notes":                  dto.Notes,
			"version":                aggregate.Version() + 1,
			"updated_at":             time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order permanently.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetCompletedInRange retrieves completed orders created within the range.
func (r *GormOrderRepository) GetCompletedInRange(
	ctx context.Context,
	start, end *time.Time,
) ([]*order.Order, error) {
	query := r.completedInRange(ctx, start, end)
	return r.find(query)
}

// GetCompletedByDriverInRange retrieves completed orders delivered by the driver.
func (r *GormOrderRepository) GetCompletedByDriverInRange(
	ctx context.Context,
	driverID kernel.UUID,
	start, end *time.Time,
) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	query := r.completedInRange(ctx, start, end).Where("delivery_by_id = ?", driverID.Bytes())
	return r.find(query)
}

// GetCompletedByShopInRange retrieves completed orders created by the shop.
func (r *GormOrderRepository) GetCompletedByShopInRange(
	ctx context.Context,
	shopID kernel.UUID,
	start, end *time.Time,
) ([]*order.Order, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	query := r.completedInRange(ctx, start, end).Where("added_by_id = ?", shopID.Bytes())
	return r.find(query)
}

// completedInRange builds the shared completed-orders filter. Bounds are
// inclusive by day: the start bound snaps to the beginning of its day, the
// end bound extends to the end of its day.
func (r *GormOrderRepository) completedInRange(ctx context.Context, start, end *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ?", int(order.Completed)).
		Order("created_at")

	if start != nil {
		query = query.Where("created_at >= ?", startOfDay(*start))
	}
	if end != nil {
		query = query.Where("created_at < ?", startOfDay(*end).AddDate(0, 0, 1))
	}

	return query
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
