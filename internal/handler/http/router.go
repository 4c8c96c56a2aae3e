package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/config"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/middleware"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	permissionHandler PermissionHandler,
	weekOffHandler WeekOffHandler,
	announcementHandler AnnouncementHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tyro-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Post("/logout", authHandler.Logout)
				r.Patch("/update-profile", authHandler.UpdateProfile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/today", attendanceHandler.Today)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/report", attendanceHandler.Report)
				})
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Post("/", permissionHandler.Create)
				r.Get("/my", permissionHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/all", permissionHandler.ListAll)
					r.Patch("/{id}/status", permissionHandler.Decide)
				})
			})

			// Admin only
			r.Route("/weekoffs", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", weekOffHandler.List)
				r.Post("/", weekOffHandler.Assign)
				r.Delete("/{id}", weekOffHandler.Remove)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.List)

				// Broadcast roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireBroadcaster)
					r.Post("/", announcementHandler.Create)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/stats", adminHandler.Stats)
				r.Get("/employees", adminHandler.ListEmployees)
				r.Patch("/employees/{id}", adminHandler.UpdateEmployee)
				r.Delete("/employees/{id}", adminHandler.DeleteEmployee)
			})
		})
	})
	return r
}
