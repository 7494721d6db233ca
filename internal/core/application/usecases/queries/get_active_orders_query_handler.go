package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists orders out for delivery straight from
// the database, bypassing aggregate reconstruction.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order listings.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_address,
			delivery_fee,
			total,
			status,
			delivery_by_id,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
	`, order.Accepted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var deliveryByID *uuid.UUID
		var fee, total decimal.Decimal
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.CustomerAddress,
			&fee,
			&total,
			&status,
			&deliveryByID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if deliveryByID != nil {
			driverID, idErr := kernel.UUIDFromBytes((*deliveryByID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DeliveryBy = &driverID
		}

		resp.DeliveryFee = fee
		resp.Total = total
		resp.Status = order.Status(status)
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
