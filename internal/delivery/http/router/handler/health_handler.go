package handler

import (
	"net/http"
	"time"

	"authgate/config"

	"github.com/labstack/echo/v4"
)

// healthView is the liveness probe payload.
type healthView struct {
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check reports that the server is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, healthView{
		Message:     "Server is running",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Env.Env,
	})
}
