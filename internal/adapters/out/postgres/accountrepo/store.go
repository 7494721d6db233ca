package accountrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountStore implements AccountStore using GORM. All operations are
// reads; the back office never mutates user rows.
type GormAccountStore struct {
	db *gorm.DB
}

// NewGormAccountStore creates a new GORM account store.
func NewGormAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

// Get retrieves the commission-relevant view of a user.
func (s *GormAccountStore) Get(ctx context.Context, id kernel.UUID) (account.Account, error) {
	if err := id.Validate(); err != nil {
		return account.Account{}, err
	}

	var dto AccountDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return account.Account{}, err
	}

	return toDomain(dto)
}

// ListActiveApproved retrieves all active, approved users with the given
// role, oldest first for stable report ordering.
func (s *GormAccountStore) ListActiveApproved(
	ctx context.Context,
	role account.Role,
) ([]account.Account, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []AccountDTO
	err := s.db.WithContext(ctx).
		Where("role = ? AND is_active = ? AND is_approved = ?", int(role), true, true).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]account.Account, 0, len(dtos))
	for _, dto := range dtos {
		acct, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		accounts = append(accounts, acct)
	}

	return accounts, nil
}

// CountApproved counts approved users with the given role regardless of activity.
func (s *GormAccountStore) CountApproved(ctx context.Context, role account.Role) (int64, error) {
	if err := role.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("role = ? AND is_approved = ?", int(role), true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
