package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"fitcoach/internal/auth"
	domainerrors "fitcoach/internal/errors"
	"fitcoach/internal/handler"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
	"fitcoach/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	skillHandler *handler.SkillHandler,
	packageHandler *handler.CreditPackageHandler,
	coachHandler *handler.CoachHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	authRequired := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	})
	coachRequired := coachGate(userRepo)

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/signup", userHandler.SignUp)
	users.POST("/login", userHandler.Login)
	users.POST("/refresh", userHandler.Refresh)
	users.POST("/logout", userHandler.Logout)
	users.GET("/profile", userHandler.GetProfile, authRequired)
	users.PUT("/profile", userHandler.UpdateProfile, authRequired)

	packages := api.Group("/credit-package")
	packages.GET("", packageHandler.ListPackages)
	packages.POST("", packageHandler.CreatePackage)
	packages.POST("/:creditPackageId", packageHandler.PurchasePackage, authRequired)
	packages.DELETE("/:creditPackageId", packageHandler.DeletePackage)

	skills := api.Group("/skill")
	skills.GET("", skillHandler.ListSkills)
	skills.POST("", skillHandler.CreateSkill)
	skills.DELETE("/:skillId", skillHandler.DeleteSkill)

	courses := api.Group("/courses")
	courses.GET("", courseHandler.ListCourses)
	courses.POST("/:courseId", courseHandler.BookCourse, authRequired)
	courses.DELETE("/:courseId", courseHandler.CancelBooking, authRequired)

	admin := api.Group("/admin")
	admin.POST("/coaches/:userId", coachHandler.PromoteCoach)
	admin.POST("/coaches/courses", coachHandler.CreateCourse, authRequired, coachRequired)
	admin.PUT("/coaches/courses/:courseId", coachHandler.UpdateCourse, authRequired, coachRequired)
}

// coachGate rejects callers whose role is not COACH. It runs after the JWT
// middleware, so the claims are already in context.
func coachGate(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cl, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			user, err := userRepo.FindByID(c.Request().Context(), cl.UserID)
			if err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return response.Failed(c, http.StatusUnauthorized, domainerrors.ErrNotCoach.Error())
				}
				return response.Error(c, http.StatusInternalServerError, "伺服器錯誤")
			}
			if user.Role != model.RoleCoach {
				return response.Failed(c, http.StatusUnauthorized, domainerrors.ErrNotCoach.Error())
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
