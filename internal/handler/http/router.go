package http

import (
	"log/slog"
	"os"

	"github.com/begoneskadedjur/kundportal-sub011/internal/handler/http/middleware"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	analyticsHandler AnalyticsHandler,
	assistantHandler AssistantHandler,
	technicianHandler TechnicianHandler,
	jobHandler JobHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kundportal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", analyticsHandler.GetDashboard)
				r.Get("/gaps", analyticsHandler.GetGaps)
				r.Get("/utilization", analyticsHandler.GetUtilization)
				// Commission figures are restricted to admins
				r.Route("/provisions", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", analyticsHandler.GetProvisions)
					r.Get("/monthly", analyticsHandler.GetMonthlySummaries)
					r.Get("/graph", analyticsHandler.GetGraphSeries)
				})
				r.Get("/pricing-patterns", analyticsHandler.GetPricingPatterns)
			})

			r.Post("/assistant/ask", assistantHandler.Ask)

			r.Route("/technicians", func(r chi.Router) {
				r.Get("/", technicianHandler.List)
				r.Get("/{id}", technicianHandler.GetByID)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", jobHandler.List)
				r.Get("/{id}", jobHandler.GetByID)
			})
		})
	})
	return r
}
