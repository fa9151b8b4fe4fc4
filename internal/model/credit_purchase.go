package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditPurchase records one purchase transaction. Rows are append-only;
// purchased credits and price are copied from the package at purchase time
// so later package edits do not rewrite history.
type CreditPurchase struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	CreditPackageID  uuid.UUID       `json:"credit_package_id" gorm:"type:char(36);not null;index"`
	PurchasedCredits int             `json:"purchased_credits" gorm:"not null"`
	PricePaid        decimal.Decimal `json:"price_paid" gorm:"type:decimal(10,2);not null"`
	PurchaseAt       time.Time       `json:"purchase_at" gorm:"not null"`

	User          User          `json:"-" gorm:"foreignKey:UserID"`
	CreditPackage CreditPackage `json:"-" gorm:"foreignKey:CreditPackageID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *CreditPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
