package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobboard/internal/auth"
	"jobboard/internal/handler"
	"jobboard/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"msg": "Hello World"})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Protected routes accept the token from the Authorization header (Bearer
	// scheme) or the access_token cookie. Verification is delegated to the
	// token service; CurrentUser then resolves the subject to a User.
	requireUser := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:Authorization:Bearer ,cookie:" + auth.AccessTokenCookie,
			ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
				return jwtService.ValidateToken(tokenString)
			},
		}),
		auth.CurrentUser(userRepo),
	}

	login := e.Group("/login")
	login.POST("/token", authHandler.Login)
	login.POST("/refresh", authHandler.Refresh)
	login.POST("/logout", authHandler.Logout)

	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.GET("/", userHandler.ListUsers)

	jobs := e.Group("/jobs")
	jobs.GET("/get/:id", jobHandler.GetJob)
	jobs.GET("/all", jobHandler.ListJobs)
	jobs.POST("/create", jobHandler.CreateJob, requireUser...)
	jobs.PUT("/update/:id", jobHandler.UpdateJob, requireUser...)
	jobs.DELETE("/delete/:id", jobHandler.DeleteJob, requireUser...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
