package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitcoach/internal/config"
	"fitcoach/internal/db"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// Seed inserts the default reference data (skills and credit packages).
// Rows already present by name are left untouched, so running it twice is safe.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Skill{}, &model.CreditPackage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	skills := []string{"重訓", "瑜伽", "有氧運動", "復健訓練"}
	skillRepo := repository.NewSkillRepository(gormDB)
	for _, name := range skills {
		if _, err := skillRepo.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check skill %q: %v", name, err)
		}
		if err := skillRepo.Create(ctx, &model.Skill{Name: name}); err != nil {
			log.Fatalf("Failed to create skill %q: %v", name, err)
		}
		log.Printf("Seeded skill %q", name)
	}

	packages := []model.CreditPackage{
		{Name: "7 堂組合包方案", CreditAmount: 7, Price: decimal.NewFromFloat(1400)},
		{Name: "14 堂組合包方案", CreditAmount: 14, Price: decimal.NewFromFloat(2520)},
		{Name: "21 堂組合包方案", CreditAmount: 21, Price: decimal.NewFromFloat(4800)},
	}
	packageRepo := repository.NewCreditPackageRepository(gormDB)
	for _, pkg := range packages {
		if _, err := packageRepo.FindByName(ctx, pkg.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check package %q: %v", pkg.Name, err)
		}
		p := pkg
		if err := packageRepo.Create(ctx, &p); err != nil {
			log.Fatalf("Failed to create package %q: %v", pkg.Name, err)
		}
		log.Printf("Seeded credit package %q", pkg.Name)
	}

	log.Println("Seed completed")
}
