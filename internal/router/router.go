package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"acmedash/internal/config"
	"acmedash/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	invoiceHandler *handler.InvoiceHandler,
	customerHandler *handler.CustomerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Dashboard routes
	secured.GET("/dashboard/revenue", dashboardHandler.Revenue)
	secured.GET("/dashboard/latest-invoices", dashboardHandler.LatestInvoices)
	secured.GET("/dashboard/cards", dashboardHandler.Cards)

	// Invoice routes
	secured.GET("/invoices", invoiceHandler.ListInvoices)
	secured.GET("/invoices/pages", invoiceHandler.InvoicePages)
	secured.GET("/invoices/:id", invoiceHandler.GetInvoice)
	secured.POST("/invoices", invoiceHandler.CreateInvoice)
	secured.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
	secured.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

	// Customer routes
	secured.GET("/customers", customerHandler.ListCustomers)
	secured.GET("/customers/table", customerHandler.CustomerTable)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
