package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// CreditPackageService manages purchasable credit packages and records
// purchases into the credit ledger.
type CreditPackageService interface {
	ListPackages(ctx context.Context) ([]model.CreditPackage, error)
	CreatePackage(ctx context.Context, name string, creditAmount int, price decimal.Decimal) (*model.CreditPackage, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
	// PurchasePackage appends a purchase row snapshotting the package's
	// credit amount and price at purchase time.
	PurchasePackage(ctx context.Context, userID, packageID uuid.UUID) (*model.CreditPurchase, error)
}

type creditPackageService struct {
	packageRepo  repository.CreditPackageRepository
	purchaseRepo repository.CreditPurchaseRepository
}

// NewCreditPackageService creates a new credit package service.
func NewCreditPackageService(packageRepo repository.CreditPackageRepository, purchaseRepo repository.CreditPurchaseRepository) CreditPackageService {
	return &creditPackageService{
		packageRepo:  packageRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *creditPackageService) ListPackages(ctx context.Context) ([]model.CreditPackage, error) {
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *creditPackageService) CreatePackage(ctx context.Context, name string, creditAmount int, price decimal.Decimal) (*model.CreditPackage, error) {
	_, err := s.packageRepo.FindByName(ctx, name)
	if err == nil {
		return nil, errors.ErrDuplicateName
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check package name: %w", err)
	}

	pkg := &model.CreditPackage{
		Name:         name,
		CreditAmount: creditAmount,
		Price:        price,
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrDuplicateName
		}
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (s *creditPackageService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	affected, err := s.packageRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if affected == 0 {
		return errors.ErrInvalidID
	}
	return nil
}

func (s *creditPackageService) PurchasePackage(ctx context.Context, userID, packageID uuid.UUID) (*model.CreditPurchase, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidID
		}
		return nil, fmt.Errorf("find package: %w", err)
	}

	purchase := &model.CreditPurchase{
		UserID:           userID,
		CreditPackageID:  pkg.ID,
		PurchasedCredits: pkg.CreditAmount,
		PricePaid:        pkg.Price,
		PurchaseAt:       time.Now(),
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	return purchase, nil
}
