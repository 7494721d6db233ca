// Package accountrepo provides the read-only view onto the users table.
// User lifecycle is owned by the external account service; the back office
// only consults roles, commission rates, and participation flags.
package accountrepo

import (
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO represents the commission-relevant columns of the users table.
// The commission rate is nullable: users without a configured rate pay zero.
type AccountDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Phone                string
	Role                 int              `gorm:"index"`
	CommissionPercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	IsActive             bool
	IsApproved           bool
	IsAvailable          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for user entities.
func (AccountDTO) TableName() string {
	return "users"
}

// toDomain converts a database row to an account view.
// A NULL commission rate maps to the zero percentage.
func toDomain(dto AccountDTO) (account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.Account{}, err
	}

	rate := kernel.ZeroPercentage()
	if dto.CommissionPercentage != nil {
		rate, err = kernel.NewPercentage(*dto.CommissionPercentage)
		if err != nil {
			return account.Account{}, err
		}
	}

	return account.NewAccount(
		id,
		dto.Name,
		dto.Phone,
		account.Role(dto.Role),
		rate,
		dto.IsActive,
		dto.IsApproved,
		dto.IsAvailable,
	)
}
