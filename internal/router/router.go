package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"noticeboard/internal/auth"
	"noticeboard/internal/config"
	"noticeboard/internal/handler"
	"noticeboard/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	noticeHandler *handler.NoticeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Embedded single-page client
	e.FileFS("/", "index.html", web.FS)
	e.FileFS("/app.js", "app.js", web.FS)
	e.FileFS("/styles.css", "styles.css", web.FS)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/notices", noticeHandler.ListNotices)
	api.GET("/notices/:id", noticeHandler.GetNotice)

	// Any valid token, no role requirement
	api.GET("/me", authHandler.Me, auth.Authenticate(cfg.JWTSecret))

	// Admin routes: bearer token plus admin role, checked in that order.
	secured := api.Group("/notices", auth.Authenticate(cfg.JWTSecret), auth.AdminOnly)
	secured.POST("", noticeHandler.CreateNotice)
	secured.PUT("/:id", noticeHandler.UpdateNotice)
	secured.DELETE("/:id", noticeHandler.DeleteNotice)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
