package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// Report handlers read committed state only and never join a write
// transaction, so they depend on narrow reader interfaces instead of the
// unit of work.
type (
	// OrderReader provides the completed-order scans reports aggregate over.
	OrderReader interface {
		GetCompletedInRange(ctx context.Context, start, end *time.Time) ([]*order.Order, error)
		GetCompletedByDriverInRange(ctx context.Context, driverID kernel.UUID, start, end *time.Time) ([]*order.Order, error)
		GetCompletedByShopInRange(ctx context.Context, shopID kernel.UUID, start, end *time.Time) ([]*order.Order, error)
	}

	// AccountReader provides the user lookups reports need for roles, rates,
	// and participation counts.
	AccountReader interface {
		Get(ctx context.Context, id kernel.UUID) (account.Account, error)
		ListActiveApproved(ctx context.Context, role account.Role) ([]account.Account, error)
		CountApproved(ctx context.Context, role account.Role) (int64, error)
	}
)
