package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Router holds everything RegisterRoutes mounts. Metrics may be nil.
type Router struct {
	Health     *Handler
	Auth       *AuthHandler
	Loans      *LoanHandler
	Repayments *RepaymentHandler
	Admin      *AdminHandler

	Authenticate echo.MiddlewareFunc
	RequireAdmin echo.MiddlewareFunc
	Idempotency  echo.MiddlewareFunc
	Metrics      http.Handler
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	api := e.Group("/api")
	api.POST("/auth/register", r.Auth.Register)
	api.POST("/auth/login", r.Auth.Login)
	api.GET("/loan_types", r.Loans.LoanTypes)

	user := api.Group("", r.Authenticate)
	user.POST("/reservations", r.Loans.CreateReservation, r.idempotent()...)
	user.GET("/reservations", r.Loans.ListReservations)
	user.GET("/reservations/:loan_id", r.Loans.GetReservation)
	user.GET("/user/dashboard", r.Loans.ListReservations)
	user.POST("/repayments", r.Repayments.CreateRepayment, r.idempotent()...)
	user.GET("/repayments", r.Repayments.ListRepayments)

	admin := api.Group("", r.Authenticate, r.RequireAdmin)
	admin.GET("/admin/dashboard", r.Admin.Dashboard)
	admin.PUT("/admin/reservations/:loan_id", r.Admin.UpdateReservationStatus)
	admin.GET("/customers", r.Admin.Customers)
}

func (r *Router) idempotent() []echo.MiddlewareFunc {
	if r.Idempotency == nil {
		return nil
	}
	return []echo.MiddlewareFunc{r.Idempotency}
}
