package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nilehr/attendance-backend-go/internal/config"
	"github.com/nilehr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/nilehr/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	reportHandler ReportHandler,
	holidayHandler HolidayHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/expenses", attendanceHandler.AddExpense)
				r.Get("/records", attendanceHandler.ListMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/records", attendanceHandler.Create)
					r.Put("/records/{id}/times", attendanceHandler.UpdateCheckTimes)
					r.Put("/records/{id}/overtime", attendanceHandler.SetOvertime)
					r.Put("/records/{id}/day-type", attendanceHandler.SetDayType)
					r.Delete("/records/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Get("/my", summaryHandler.GetMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{userID}", summaryHandler.Get)
					r.Post("/{userID}/recalculate", summaryHandler.Recalculate)
					r.Put("/{userID}/bonus", summaryHandler.SetBonus)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", reportHandler.Dashboard)
				r.Get("/monthly", reportHandler.MyMonthly)
				r.Get("/full", reportHandler.MyFull)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/monthly/all", reportHandler.AllUsersMonthly)
					r.Get("/monthly/{userID}", reportHandler.UserMonthly)
					r.Get("/full/{userID}", reportHandler.UserFull)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{date}", holidayHandler.Delete)
				})
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Get("/{userID}", userHandler.Get)
				r.Put("/{userID}/minute-cost", userHandler.SetMinuteCost)
				r.Put("/{userID}/vacation-allowance", userHandler.SetVacationAllowance)
			})
		})
	})
	return r
}
