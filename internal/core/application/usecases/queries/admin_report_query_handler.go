package queries

import (
	"context"
	"errors"
	"sort"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AdminReportQueryHandler computes the platform-wide financial summary.
//
// The scan walks completed orders in the period once. Each order accrues a
// shop-side bucket when its owning user currently holds the Shop role, and a
// driver-side bucket when its delivery user holds the Driver role; users
// that were removed or changed role contribute to the overall totals but to
// no bucket. Buckets keep first-seen order, so equal order counts rank in
// scan order.
type AdminReportQueryHandler struct {
	orders   OrderReader
	accounts AccountReader
}

// NewAdminReportQueryHandler creates a handler for admin report queries.
func NewAdminReportQueryHandler(orders OrderReader, accounts AccountReader) AdminReportQueryHandler {
	return AdminReportQueryHandler{orders: orders, accounts: accounts}
}

// reportBucket accrues one entity's activity at full precision.
type reportBucket struct {
	info       EntityInfo
	orders     int
	amount     decimal.Decimal
	commission decimal.Decimal
}

// bucketSet keeps buckets in first-seen order for stable ranking.
type bucketSet struct {
	index map[kernel.UUID]*reportBucket
	list  []*reportBucket
}

func newBucketSet() *bucketSet {
	return &bucketSet{index: make(map[kernel.UUID]*reportBucket)}
}

func (s *bucketSet) accrue(acct account.Account, amount decimal.Decimal) {
	b, ok := s.index[acct.ID()]
	if !ok {
		b = &reportBucket{info: EntityInfo{
			ID:                   acct.ID(),
			Name:                 acct.Name(),
			Phone:                acct.Phone(),
			CommissionPercentage: acct.CommissionPercentage().Rate(),
		}}
		s.index[acct.ID()] = b
		s.list = append(s.list, b)
	}

	b.orders++
	b.amount = b.amount.Add(amount)
	b.commission = b.commission.Add(amount.Mul(acct.CommissionPercentage().Rate()).Div(oneHundred))
}

func (s *bucketSet) commissionTotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.list {
		total = total.Add(b.commission)
	}
	return total
}

// top returns the n most active buckets by order count, rounded for output.
func (s *bucketSet) top(n int) []EntityActivity {
	ranked := make([]*reportBucket, len(s.list))
	copy(ranked, s.list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].orders > ranked[j].orders
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	result := make([]EntityActivity, 0, len(ranked))
	for _, b := range ranked {
		result = append(result, EntityActivity{
			Info:       b.info,
			Orders:     b.orders,
			Amount:     b.amount.Round(2),
			Commission: b.commission.Round(2),
		})
	}
	return result
}

// accountCache memoizes per-user lookups across the order scan.
// A nil entry records a user known to be absent.
type accountCache struct {
	reader AccountReader
	seen   map[kernel.UUID]*account.Account
}

func newAccountCache(reader AccountReader) *accountCache {
	return &accountCache{reader: reader, seen: make(map[kernel.UUID]*account.Account)}
}

func (c *accountCache) get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if acct, ok := c.seen[id]; ok {
		return acct, nil
	}

	acct, err := c.reader.Get(ctx, id)
	switch {
	case err == nil:
		c.seen[id] = &acct
		return &acct, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		c.seen[id] = nil
		return nil, nil
	default:
		return nil, err
	}
}

// Handle computes the admin report for the query's period.
func (h AdminReportQueryHandler) Handle(ctx context.Context, query AdminReportQuery) (AdminReportResponse, error) {
	if err := query.Validate(); err != nil {
		return AdminReportResponse{}, err
	}

	period := query.Period()
	completed, err := h.orders.GetCompletedInRange(ctx, period.Start(), period.End())
	if err != nil {
		return AdminReportResponse{}, errs.NewOperationFailedError("failed to build admin report", err)
	}

	cache := newAccountCache(h.accounts)
	shops := newBucketSet()
	drivers := newBucketSet()
	ordersTotal := decimal.Zero
	feesTotal := decimal.Zero

	for _, o := range completed {
		ordersTotal = ordersTotal.Add(o.Total().Amount())
		feesTotal = feesTotal.Add(o.DeliveryFee().Amount())

		if shopID := o.AddedBy(); shopID != nil {
			acct, cacheErr := cache.get(ctx, *shopID)
			if cacheErr != nil {
				return AdminReportResponse{}, errs.NewOperationFailedError("failed to build admin report", cacheErr)
			}
			if acct != nil && acct.Role() == account.RoleShop {
				shops.accrue(*acct, o.Total().Amount())
			}
		}

		if driverID := o.DeliveryBy(); driverID != nil {
			acct, cacheErr := cache.get(ctx, *driverID)
			if cacheErr != nil {
				return AdminReportResponse{}, errs.NewOperationFailedError("failed to build admin report", cacheErr)
			}
			if acct != nil && acct.Role() == account.RoleDriver {
				drivers.accrue(*acct, o.DeliveryFee().Amount())
			}
		}
	}

	approvedShops, err := h.accounts.CountApproved(ctx, account.RoleShop)
	if err != nil {
		return AdminReportResponse{}, errs.NewOperationFailedError("failed to build admin report", err)
	}
	approvedDrivers, err := h.accounts.CountApproved(ctx, account.RoleDriver)
	if err != nil {
		return AdminReportResponse{}, errs.NewOperationFailedError("failed to build admin report", err)
	}

	shopCommission := shops.commissionTotal()
	driverCommission := drivers.commissionTotal()

	return AdminReportResponse{
		Period:                period.String(),
		CompletedOrders:       len(completed),
		OrdersTotal:           ordersTotal.Round(2),
		DeliveryFeesTotal:     feesTotal.Round(2),
		ShopCommissionTotal:   shopCommission.Round(2),
		DriverCommissionTotal: driverCommission.Round(2),
		PlatformRevenue:       shopCommission.Add(driverCommission).Round(2),
		ApprovedShops:         approvedShops,
		ApprovedDrivers:       approvedDrivers,
		ActiveShops:           len(shops.list),
		ActiveDrivers:         len(drivers.list),
		TopShops:              shops.top(10),
		TopDrivers:            drivers.top(10),
	}, nil
}
