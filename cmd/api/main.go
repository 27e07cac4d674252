package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/config"
	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	appHTTP "github.com/quickcart/payroll-backend-go/internal/handler/http"
	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
	"github.com/quickcart/payroll-backend-go/internal/pkg/jwt"
	"github.com/quickcart/payroll-backend-go/internal/pkg/storage"
	"github.com/quickcart/payroll-backend-go/internal/repository/memory"
	"github.com/quickcart/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/quickcart/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/quickcart/payroll-backend-go/internal/service/employee"
	payrollService "github.com/quickcart/payroll-backend-go/internal/service/payroll"
	reportService "github.com/quickcart/payroll-backend-go/internal/service/report"
)

type repositories struct {
	tx          database.Transactor
	employees   employee.EmployeeRepository
	attendances attendance.AttendanceRepository
	salaries    payroll.SalaryRepository
	reports     report.ReportRepository
	close       func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		slog.Warn("Using in-memory storage, data is lost on restart")
		return &repositories{
			tx:          memory.NewTransactor(),
			employees:   store.Employees(),
			attendances: store.Attendances(),
			salaries:    store.Salaries(),
			reports:     store.Reports(),
			close:       func() {},
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
		})
		if err != nil {
			return nil, err
		}
		return &repositories{
			tx:          postgresql.NewTransactor(db),
			employees:   postgresql.NewEmployeeRepository(db),
			attendances: postgresql.NewAttendanceRepository(db),
			salaries:    postgresql.NewSalaryRepository(db),
			reports:     postgresql.NewReportRepository(db),
			close:       db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		slog.Error("Failed to initialize local storage", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(repos.tx, repos.employees, repos.salaries)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendances, repos.employees)
	salarySvc := payrollService.NewSalaryService(repos.tx, repos.salaries, repos.employees, repos.attendances)
	reportSvc := reportService.NewReportService(repos.salaries, repos.reports, fileStorage)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, salarySvc, attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
