package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"voxform/internal/handler"
	"voxform/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.Store,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	speechHandler *handler.SpeechHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(session.Middleware(sessions))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Pages
	e.GET("/", pageHandler.Home)
	e.GET("/success", pageHandler.Success)

	// Accounts
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// Enrollment
	e.GET("/form", enrollmentHandler.FormPage)
	e.POST("/form", enrollmentHandler.Submit)

	// Speech transcription
	e.POST("/transcribe", speechHandler.Transcribe)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
