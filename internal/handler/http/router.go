package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/config"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/middleware"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler *AuthHandler,
	workerHandler *WorkerHandler,
	attendanceHandler *AttendanceHandler,
	paymentHandler *PaymentHandler,
	payrollHandler *PayrollHandler,
	inventoryHandler *InventoryHandler,
	legacyHandler *LegacyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workshop-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored worker photos and color swatches.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	// Spreadsheet-era dispatcher. The original endpoint was open; the frontend
	// that calls it predates token auth.
	r.Get("/exec", legacyHandler.Dispatch)
	r.Post("/exec", legacyHandler.Dispatch)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		r.Get("/attendance", attendanceHandler.List)
		r.Get("/payments", paymentHandler.List)
		r.Get("/payroll/summary", payrollHandler.Summary)
		r.Get("/workers", workerHandler.List)
		r.Get("/inventory", inventoryHandler.StockLevels)
		r.Get("/colors", inventoryHandler.ListColors)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/attendance", attendanceHandler.Mark)
			r.Post("/payments", paymentHandler.Save)

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", workerHandler.Create)
				r.Put("/{id}", workerHandler.UpdateRate)
				r.Delete("/{id}", workerHandler.Delete)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Post("/stock", inventoryHandler.AddStock)
				r.Post("/usage", inventoryHandler.UseStock)
			})

			r.Route("/colors", func(r chi.Router) {
				r.Post("/", inventoryHandler.AddColor)
				r.Delete("/{colorName}", inventoryHandler.DeleteColor)
			})
		})
	})
	return r
}
