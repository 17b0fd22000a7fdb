package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Check is one dependency probed by /health.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	checks  []Check
	timeout time.Duration
}

func NewHandler(checks ...Check) *Handler {
	return &Handler{checks: checks, timeout: 2 * time.Second}
}

// Health answers 200 when every dependency pings, 503 otherwise.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			deps[chk.Name] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[chk.Name] = "ok"
	}

	body := map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	return c.JSON(code, body)
}
