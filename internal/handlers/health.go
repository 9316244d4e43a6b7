package handlers

import (
	"net/http"

	"github.com/diewo77/invoice-hub/httpx"
	"github.com/diewo77/invoice-hub/internal/db"
	"github.com/diewo77/invoice-hub/internal/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewHealthHandler(conn *gorm.DB, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{db: conn, log: log}
}

// Health reports liveness only.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Healthz also checks the database with a SELECT 1.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := db.Ping(r.Context(), h.db); err != nil {
		middleware.Entry(h.log, r).WithError(err).Warn("database health check failed")
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
