package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// CreditPackageRepository defines credit package persistence operations.
type CreditPackageRepository interface {
	List(ctx context.Context) ([]model.CreditPackage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CreditPackage, error)
	FindByName(ctx context.Context, name string) (*model.CreditPackage, error)
	Create(ctx context.Context, pkg *model.CreditPackage) error
	// Delete removes a package by id, returning affected rows.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type creditPackageRepository struct {
	db *gorm.DB
}

// NewCreditPackageRepository creates a new credit package repository.
func NewCreditPackageRepository(db *gorm.DB) CreditPackageRepository {
	return &creditPackageRepository{db: db}
}

func (r *creditPackageRepository) List(ctx context.Context) ([]model.CreditPackage, error) {
	var packages []model.CreditPackage
	if err := r.db.WithContext(ctx).Order("created_at").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *creditPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CreditPackage, error) {
	var pkg model.CreditPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *creditPackageRepository) FindByName(ctx context.Context, name string) (*model.CreditPackage, error) {
	var pkg model.CreditPackage
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *creditPackageRepository) Create(ctx context.Context, pkg *model.CreditPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *creditPackageRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CreditPackage{})
	return res.RowsAffected, res.Error
}
