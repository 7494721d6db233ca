// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns are fixed-point decimals with two-digit scale; the version
// column backs the optimistic-concurrency guard on updates.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName          string
	CustomerPhone         string
	CustomerAddress       string
	DeliveryFee           decimal.Decimal `gorm:"type:decimal(10,2)"`
	Total                 decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status                int             `gorm:"index"`
	AddedByID             *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryByID          *uuid.UUID      `gorm:"type:uuid;index"`
	ApplicationPercentage decimal.Decimal `gorm:"type:decimal(5,2)"`
	ApplicationFee        decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes                 string
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var addedByID, deliveryByID *uuid.UUID
	if id := aggregate.AddedBy(); id != nil {
		raw := id.Bytes()
		addedByID = &raw
	}
	if id := aggregate.DeliveryBy(); id != nil {
		raw := id.Bytes()
		deliveryByID = &raw
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerName:          aggregate.CustomerName(),
		CustomerPhone:         aggregate.CustomerPhone(),
		CustomerAddress:       aggregate.CustomerAddress(),
		DeliveryFee:           aggregate.DeliveryFee().Round2(),
		Total:                 aggregate.Total().Round2(),
		Status:                int(aggregate.Status()),
		AddedByID:             addedByID,
		DeliveryByID:          deliveryByID,
		ApplicationPercentage: aggregate.ApplicationPercentage().Rate(),
		ApplicationFee:        aggregate.ApplicationFee().Round2(),
		Notes:                 aggregate.Notes(),
		Version:               aggregate.Version(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var addedByID, deliveryByID *kernel.UUID
	if dto.AddedByID != nil {
		shopID, idErr := kernel.UUIDFromBytes((*dto.AddedByID)[:])
		if idErr != nil {
			return nil, idErr
		}
		addedByID = &shopID
	}
	if dto.DeliveryByID != nil {
		driverID, idErr := kernel.UUIDFromBytes((*dto.DeliveryByID)[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryByID = &driverID
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	applicationPercentage, err := kernel.NewPercentage(dto.ApplicationPercentage)
	if err != nil {
		return nil, err
	}
	applicationFee, err := kernel.NewMoney(dto.ApplicationFee)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerAddress,
		deliveryFee,
		total,
		order.Status(dto.Status),
		addedByID,
		deliveryByID,
		applicationPercentage,
		applicationFee,
		dto.Notes,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
