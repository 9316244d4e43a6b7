package main

import (
	"net/http"
	"path/filepath"

	"github.com/diewo77/invoice-hub/internal/config"
	"github.com/diewo77/invoice-hub/internal/handlers"
	"github.com/diewo77/invoice-hub/internal/metrics"
	"github.com/diewo77/invoice-hub/internal/middleware"
	"github.com/diewo77/invoice-hub/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	handler http.Handler
	db      *gorm.DB
	cfg     config.ServerConfig
	log     logrus.FieldLogger
}

// NewApp creates a new application with all routes and middleware configured.
func NewApp(db *gorm.DB, cfg config.ServerConfig, log logrus.FieldLogger) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
		cfg: cfg,
		log: log,
	}
	app.setupRoutes()

	// Recover must stay inside RequestLogger, metrics and Prefs.
	var h http.Handler = app.mux
	if cfg.RateLimitRPS > 0 {
		h = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log).Handler(h)
	}
	h = middleware.Recover(log)(h)
	h = middleware.Prefs(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)
	h = metrics.InstrumentHandler(h)
	app.handler = middleware.RequestLogger(log)(h)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	ch := handlers.NewClientHandler(services.NewClientService(a.db), a.log)
	ih := handlers.NewItemHandler(services.NewItemService(a.db), a.log)
	inv := handlers.NewInvoiceHandler(services.NewInvoiceService(a.db), a.log)
	hh := handlers.NewHealthHandler(a.db, a.log)

	// API
	a.mux.HandleFunc("GET /api/clients", ch.List)
	a.mux.HandleFunc("POST /api/clients", ch.Create)
	a.mux.HandleFunc("GET /api/items", ih.List)
	a.mux.HandleFunc("POST /api/items", ih.Create)
	a.mux.HandleFunc("GET /api/invoices", inv.List)
	a.mux.HandleFunc("POST /api/invoices", inv.Create)
	a.mux.HandleFunc("GET /api/invoices/{id}", inv.Get)
	a.mux.HandleFunc("DELETE /api/invoices/{id}", inv.Delete)
	a.mux.HandleFunc("GET /api/invoices/{id}/pdf", inv.PDF)
	a.mux.HandleFunc("GET /api/stats", inv.Stats)

	// Operations
	a.mux.HandleFunc("GET /health", hh.Health)
	a.mux.HandleFunc("GET /healthz", hh.Healthz)
	a.mux.Handle("GET /metrics", metrics.Handler())

	// Front end
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(a.cfg.StaticDir))))
	a.mux.HandleFunc("GET /{$}", a.index)
}

func (a *App) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(a.cfg.StaticDir, "index.html"))
}
