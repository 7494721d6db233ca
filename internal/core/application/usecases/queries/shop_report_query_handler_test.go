package queries_test

import (
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopReportQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	shop := queryAccount(t, "Shop", account.RoleShop, "12.5")
	shopID := shop.ID()

	completed := []*order.Order{
		completedOrder(t, &shopID, nil, "100.00", "10.00"),
		completedOrder(t, &shopID, nil, "60.00", "6.00"),
	}

	orderReader := new(MockOrderReader)
	orderReader.On("GetCompletedByShopInRange", ctx, shopID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(completed, nil).Once()

	accountReader := new(MockAccountReader)
	accountReader.On("Get", ctx, shopID).Return(shop, nil).Once()

	query, err := queries.NewShopReportQuery(shopID, queries.Period{})
	require.NoError(t, err)

	h := queries.NewShopReportQueryHandler(orderReader, accountReader)
	report, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 2, report.CompletedOrders)
	assert.Equal(t, "160.00", report.OrdersTotal.StringFixed(2))
	assert.Equal(t, "16.00", report.DeliveryFeesTotal.StringFixed(2))
	// 160.00 x 12.5% = 20.00
	assert.Equal(t, "20.00", report.Commission.StringFixed(2))
	assert.Equal(t, "140.00", report.Net.StringFixed(2))
	assert.Equal(t, "Shop", report.Shop.Name)
}

func TestShopReportQueryHandler_Handle_NotAShop(t *testing.T) {
	ctx := t.Context()

	driver := queryAccount(t, "Driver", account.RoleDriver, "5")

	accountReader := new(MockAccountReader)
	accountReader.On("Get", ctx, driver.ID()).Return(driver, nil).Once()

	query, err := queries.NewShopReportQuery(driver.ID(), queries.Period{})
	require.NoError(t, err)

	h := queries.NewShopReportQueryHandler(new(MockOrderReader), accountReader)
	_, err = h.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestShopReportQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := t.Context()

	h := queries.NewShopReportQueryHandler(new(MockOrderReader), new(MockAccountReader))
	_, err := h.Handle(ctx, queries.ShopReportQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrShopReportQueryIsNotConstructed)
}
