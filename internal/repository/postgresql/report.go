package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

const reportColumns = `id, employee_id, salary_id, report_type, file_path, generated_at`

func scanReport(row pgx.Row) (report.Report, error) {
	var rep report.Report
	err := row.Scan(&rep.ID, &rep.EmployeeID, &rep.SalaryID, &rep.ReportType, &rep.FilePath, &rep.GeneratedAt)
	return rep, err
}

// Create implements report.ReportRepository.
func (r *reportRepositoryImpl) Create(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (employee_id, salary_id, report_type, file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reportColumns

	created, err := scanReport(q.QueryRow(ctx, query, rep.EmployeeID, rep.SalaryID, rep.ReportType, rep.FilePath))
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to create report: %w", err)
	}
	return created, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	rep, err := scanReport(q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report %s: %w", id, err)
	}
	return rep, nil
}

// List implements report.ReportRepository.
func (r *reportRepositoryImpl) List(ctx context.Context, filter report.ReportFilter) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.ReportType != nil && *filter.ReportType != "" {
		conditions = append(conditions, fmt.Sprintf("report_type = $%d", argIdx))
		args = append(args, *filter.ReportType)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY generated_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return []report.Report{}, nil
		}
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
