package ports

import (
	"context"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
)

// AccountStore is the read-only view onto the external user service.
// The core consults roles, commission rates, and flags; it never writes.
type AccountStore interface {
	// Get retrieves the commission-relevant view of a user.
	// Returns errs.ErrObjectNotFound if the user does not exist.
	// A NULL commission rate is surfaced as kernel.ZeroPercentage.
	Get(ctx context.Context, id kernel.UUID) (account.Account, error)

	// ListActiveApproved retrieves all active, approved users with the
	// given role, in a stable order.
	ListActiveApproved(ctx context.Context, role account.Role) ([]account.Account, error)

	// CountApproved counts all approved users with the given role,
	// regardless of activity.
	CountApproved(ctx context.Context, role account.Role) (int64, error)
}
