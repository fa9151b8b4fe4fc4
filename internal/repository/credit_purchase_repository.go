package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// CreditPurchaseRepository defines the append-only purchase ledger.
type CreditPurchaseRepository interface {
	Create(ctx context.Context, purchase *model.CreditPurchase) error
	// SumPurchasedCredits totals purchased_credits across every purchase the
	// user ever made. Returns 0 when the user has no purchases.
	SumPurchasedCredits(ctx context.Context, userID uuid.UUID) (int64, error)
}

type creditPurchaseRepository struct {
	db *gorm.DB
}

// NewCreditPurchaseRepository creates a new credit purchase repository.
func NewCreditPurchaseRepository(db *gorm.DB) CreditPurchaseRepository {
	return &creditPurchaseRepository{db: db}
}

func (r *creditPurchaseRepository) Create(ctx context.Context, purchase *model.CreditPurchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *creditPurchaseRepository) SumPurchasedCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.CreditPurchase{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(purchased_credits), 0)").
		Scan(&total).Error
	return total, err
}
