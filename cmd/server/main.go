package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fitcoach/internal/auth"
	"fitcoach/internal/cache"
	"fitcoach/internal/config"
	"fitcoach/internal/db"
	"fitcoach/internal/handler"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
	"fitcoach/internal/router"
	"fitcoach/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Coach{},
		&model.Skill{},
		&model.Course{},
		&model.CreditPackage{},
		&model.CreditPurchase{},
		&model.CourseBooking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	coachRepo := repository.NewCoachRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	packageRepo := repository.NewCreditPackageRepository(gormDB)
	purchaseRepo := repository.NewCreditPurchaseRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	coachService := service.NewCoachService(coachRepo, userRepo, courseRepo, cacheClient)
	courseService := service.NewCourseService(courseRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo)
	packageService := service.NewCreditPackageService(packageRepo, purchaseRepo)
	bookingService := service.NewBookingService(bookingRepo, purchaseRepo)

	// Handlers
	userHandler := handler.NewUserHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService, bookingService)
	skillHandler := handler.NewSkillHandler(skillService)
	packageHandler := handler.NewCreditPackageHandler(packageService)
	coachHandler := handler.NewCoachHandler(coachService)

	router.Register(
		e,
		jwtService,
		userRepo,
		userHandler,
		courseHandler,
		skillHandler,
		packageHandler,
		coachHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
