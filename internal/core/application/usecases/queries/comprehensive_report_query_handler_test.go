package queries_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComprehensiveReportQueryHandler_Handle_ComposesSubReports(t *testing.T) {
	ctx := t.Context()

	driver := queryAccount(t, "Driver", account.RoleDriver, "5")
	shop := queryAccount(t, "Shop", account.RoleShop, "10")
	driverID, shopID := driver.ID(), shop.ID()

	completed := []*order.Order{
		completedOrder(t, &shopID, &driverID, "100.00", "10.00"),
	}

	orderReader := new(MockOrderReader)
	orderReader.On("GetCompletedInRange", ctx, (*time.Time)(nil), (*time.Time)(nil)).
		Return(completed, nil).Once()
	orderReader.On("GetCompletedByDriverInRange", ctx, driverID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(completed, nil).Once()
	orderReader.On("GetCompletedByShopInRange", ctx, shopID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(completed, nil).Once()

	accountReader := new(MockAccountReader)
	accountReader.On("Get", ctx, driverID).Return(driver, nil)
	accountReader.On("Get", ctx, shopID).Return(shop, nil)
	accountReader.On("CountApproved", ctx, account.RoleShop).Return(int64(1), nil).Once()
	accountReader.On("CountApproved", ctx, account.RoleDriver).Return(int64(1), nil).Once()
	accountReader.On("ListActiveApproved", ctx, account.RoleDriver).
		Return([]account.Account{driver}, nil).Once()
	accountReader.On("ListActiveApproved", ctx, account.RoleShop).
		Return([]account.Account{shop}, nil).Once()

	h := queries.NewComprehensiveReportQueryHandler(
		queries.NewAdminReportQueryHandler(orderReader, accountReader),
		queries.NewDeliveryReportQueryHandler(orderReader, accountReader),
		queries.NewShopReportQueryHandler(orderReader, accountReader),
		accountReader,
		quietLogger(),
	)

	report, err := h.Handle(ctx, queries.NewComprehensiveReportQuery(queries.Period{}))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Admin.CompletedOrders)
	require.Len(t, report.Deliveries, 1)
	assert.Equal(t, "Driver", report.Deliveries[0].Driver.Name)
	require.Len(t, report.Shops, 1)
	assert.Equal(t, "Shop", report.Shops[0].Shop.Name)
}

func TestComprehensiveReportQueryHandler_Handle_SkipsFailingSubReports(t *testing.T) {
	ctx := t.Context()

	goodDriver := queryAccount(t, "Good Driver", account.RoleDriver, "5")
	badDriver := queryAccount(t, "Bad Driver", account.RoleDriver, "5")
	goodDriverID, badDriverID := goodDriver.ID(), badDriver.ID()

	orderReader := new(MockOrderReader)
	orderReader.On("GetCompletedInRange", ctx, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]*order.Order{}, nil).Once()
	orderReader.On("GetCompletedByDriverInRange", ctx, goodDriverID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]*order.Order{}, nil).Once()
	orderReader.On("GetCompletedByDriverInRange", ctx, badDriverID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, errors.New("database error")).Once()

	accountReader := new(MockAccountReader)
	accountReader.On("Get", ctx, goodDriverID).Return(goodDriver, nil)
	accountReader.On("Get", ctx, badDriverID).Return(badDriver, nil)
	accountReader.On("CountApproved", ctx, account.RoleShop).Return(int64(0), nil).Once()
	accountReader.On("CountApproved", ctx, account.RoleDriver).Return(int64(2), nil).Once()
	accountReader.On("ListActiveApproved", ctx, account.RoleDriver).
		Return([]account.Account{goodDriver, badDriver}, nil).Once()
	accountReader.On("ListActiveApproved", ctx, account.RoleShop).
		Return([]account.Account{}, nil).Once()

	h := queries.NewComprehensiveReportQueryHandler(
		queries.NewAdminReportQueryHandler(orderReader, accountReader),
		queries.NewDeliveryReportQueryHandler(orderReader, accountReader),
		queries.NewShopReportQueryHandler(orderReader, accountReader),
		accountReader,
		quietLogger(),
	)

	report, err := h.Handle(ctx, queries.NewComprehensiveReportQuery(queries.Period{}))

	// one driver's scan failed; the report still succeeds without it
	require.NoError(t, err)
	require.Len(t, report.Deliveries, 1)
	assert.Equal(t, "Good Driver", report.Deliveries[0].Driver.Name)
	assert.Empty(t, report.Shops)
}

func TestComprehensiveReportQueryHandler_Handle_AdminFailureIsFatal(t *testing.T) {
	ctx := t.Context()

	orderReader := new(MockOrderReader)
	orderReader.On("GetCompletedInRange", ctx, (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, errors.New("database error")).Once()

	accountReader := new(MockAccountReader)

	h := queries.NewComprehensiveReportQueryHandler(
		queries.NewAdminReportQueryHandler(orderReader, accountReader),
		queries.NewDeliveryReportQueryHandler(orderReader, accountReader),
		queries.NewShopReportQueryHandler(orderReader, accountReader),
		accountReader,
		quietLogger(),
	)

	_, err := h.Handle(ctx, queries.NewComprehensiveReportQuery(queries.Period{}))

	require.Error(t, err)
	accountReader.AssertNotCalled(t, "ListActiveApproved")
}
