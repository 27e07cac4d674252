package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/quickcart/payroll-backend-go/internal/config"
	"github.com/quickcart/payroll-backend-go/internal/handler/http/middleware"
	"github.com/quickcart/payroll-backend-go/internal/pkg/jwt"
)

// Handlers groups the route handlers mounted under /api/v1.
type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Salary     SalaryHandler
	Report     ReportHandler
}

// NewRouter builds the HTTP surface.
func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Get("/salaries", h.Employee.ListSalaries)
					r.Get("/attendance", h.Employee.ListAttendance)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", h.Employee.UpdateEmployee)
						r.Delete("/", h.Employee.DeleteEmployee)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Attendance.Mark)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.Salary.List)
				r.Get("/report", h.Report.GetSalaryReport)
				r.Get("/{id}", h.Salary.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Salary.Calculate)
					r.Post("/report/export", h.Report.ExportSalaryReport)
					r.Put("/{id}", h.Salary.Update)
					r.Put("/{id}/approve", h.Salary.Approve)
					r.Put("/{id}/approve-attendance", h.Salary.ApproveAttendance)
					r.Post("/{id}/slip", h.Report.ExportSalarySlip)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.ListReports)
				r.Get("/{id}", h.Report.GetReport)
				r.Get("/{id}/download", h.Report.DownloadReport)
			})
		})
	})
	return r
}
