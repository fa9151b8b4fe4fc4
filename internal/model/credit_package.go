package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditPackage is a purchasable bundle of course credits.
type CreditPackage struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string          `json:"name" gorm:"uniqueIndex;size:50;not null"`
	CreditAmount int             `json:"credit_amount" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *CreditPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
