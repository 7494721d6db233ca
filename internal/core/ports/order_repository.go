// Package ports defines the contracts between the core and its collaborators:
// persistence for orders, the external account store, and the notification
// dispatcher. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with an
	// optimistic-concurrency guard: the write only applies if the stored
	// version still matches the aggregate's loaded version. A lost race
	// returns errs.ErrConcurrentModification; a missing row returns
	// errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order permanently.
	// Returns errs.ErrObjectNotFound if the order is already absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetCompletedInRange retrieves completed orders created within the
	// date range. Bounds are inclusive by day; a nil bound is unbounded.
	GetCompletedInRange(ctx context.Context, start, end *time.Time) ([]*order.Order, error)

	// GetCompletedByDriverInRange retrieves completed orders delivered by the
	// given driver within the date range.
	GetCompletedByDriverInRange(ctx context.Context, driverID kernel.UUID, start, end *time.Time) ([]*order.Order, error)

	// GetCompletedByShopInRange retrieves completed orders created by the
	// given shop within the date range.
	GetCompletedByShopInRange(ctx context.Context, shopID kernel.UUID, start, end *time.Time) ([]*order.Order, error)
}
