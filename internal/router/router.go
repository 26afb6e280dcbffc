package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gatepass/internal/handler"
)

// availableRoutes is returned on unmatched paths.
var availableRoutes = []string{
	"POST /api/login",
	"POST /api/requests",
	"GET /api/requests",
	"GET /api/requests/student/:studentId",
	"PUT /api/requests/:id/review",
	"GET /api/verify/:studentId",
	"PUT /api/requests/:id/use",
	"GET /api/stats",
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	requestHandler *handler.RequestHandler,
	gateHandler *handler.GateHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	// Any origin may call the API; the frontend is served separately.
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/login", authHandler.Login)

	api.POST("/requests", requestHandler.Create)
	api.GET("/requests", requestHandler.ListAll)
	api.GET("/requests/student/:studentId", requestHandler.ListByStudent)
	api.PUT("/requests/:id/review", requestHandler.Review)

	api.GET("/verify/:studentId", gateHandler.Verify)
	api.PUT("/requests/:id/use", gateHandler.MarkUsed)

	api.GET("/stats", statsHandler.Stats)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"success":         false,
			"message":         "API endpoint not found",
			"availableRoutes": availableRoutes,
		})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
