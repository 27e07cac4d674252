package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

const salarySelect = `
	SELECT s.id, s.employee_id, s.month, s.year,
		   s.basic_salary, s.days_worked, s.overtime_pay, s.manual_deductions, s.attendance_details,
		   s.bonus, s.epf, s.etf, s.net_salary,
		   s.approval_status, s.approved_by, s.approved_at,
		   s.attendance_approval_status, s.attendance_approved_by, s.attendance_approved_at,
		   s.created_at, s.updated_at,
		   e.name, e.position, e.status
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id
`

func scanSalary(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	var detailsJSON []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BasicSalary, &rec.DaysWorked, &rec.OvertimePay, &rec.ManualDeductions, &detailsJSON,
		&rec.Bonus, &rec.EPF, &rec.ETF, &rec.NetSalary,
		&rec.ApprovalStatus, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.AttendanceApprovalStatus, &rec.AttendanceApprovedBy, &rec.AttendanceApprovedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeePosition, &rec.EmployeeStatus,
	)
	if err != nil {
		return payroll.SalaryRecord{}, err
	}

	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &rec.AttendanceDetails); err != nil {
			return payroll.SalaryRecord{}, fmt.Errorf("failed to decode attendance details: %w", err)
		}
	}
	return rec, nil
}

func marshalMarks(marks []payroll.AttendanceMark) ([]byte, error) {
	if marks == nil {
		marks = []payroll.AttendanceMark{}
	}
	return json.Marshal(marks)
}

// Create implements payroll.SalaryRepository.
func (r *salaryRepository) Create(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	detailsJSON, err := marshalMarks(rec.AttendanceDetails)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to encode attendance details: %w", err)
	}

	query := `
		INSERT INTO salaries (
			employee_id, month, year, basic_salary, days_worked, overtime_pay, manual_deductions,
			attendance_details, bonus, epf, etf, net_salary, approval_status, attendance_approval_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	var id string
	err = q.QueryRow(ctx, query,
		rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear, rec.BasicSalary, rec.DaysWorked,
		rec.OvertimePay, rec.ManualDeductions, detailsJSON,
		rec.Bonus, rec.EPF, rec.ETF, rec.NetSalary, rec.ApprovalStatus, rec.AttendanceApprovalStatus,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "uk_salary_employee_period") {
			return payroll.SalaryRecord{}, payroll.ErrDuplicatePeriod
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements payroll.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanSalary(q.QueryRow(ctx, salarySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record %s: %w", id, err)
	}
	return rec, nil
}

// GetByEmployeePeriod implements payroll.SalaryRepository.
func (r *salaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := salarySelect + ` WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record for period: %w", err)
	}
	return rec, nil
}

// List implements payroll.SalaryRepository.
func (r *salaryRepository) List(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryRecord, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := salarySelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.created_at ASC, s.id ASC"

	return r.query(ctx, query, args...)
}

// ListByEmployee implements payroll.SalaryRepository.
func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryRecord, error) {
	query := salarySelect + ` WHERE s.employee_id = $1 ORDER BY s.year DESC, s.month DESC`
	return r.query(ctx, query, employeeID)
}

func (r *salaryRepository) query(ctx context.Context, query string, args ...interface{}) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return []payroll.SalaryRecord{}, nil
		}
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	records := []payroll.SalaryRecord{}
	for rows.Next() {
		rec, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Save implements payroll.SalaryRepository.
func (r *salaryRepository) Save(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	detailsJSON, err := marshalMarks(rec.AttendanceDetails)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to encode attendance details: %w", err)
	}

	query := `
		UPDATE salaries SET
			basic_salary = $2, days_worked = $3, overtime_pay = $4, manual_deductions = $5,
			attendance_details = $6, bonus = $7, epf = $8, etf = $9, net_salary = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.BasicSalary, rec.DaysWorked, rec.OvertimePay, rec.ManualDeductions,
		detailsJSON, rec.Bonus, rec.EPF, rec.ETF, rec.NetSalary,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to save salary record %s: %w", rec.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}

	return r.GetByID(ctx, rec.ID)
}

// MarkApproved implements payroll.SalaryRepository.
func (r *salaryRepository) MarkApproved(ctx context.Context, id string, track payroll.ApprovalTrack, approvedBy *string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	switch track {
	case payroll.TrackSalary:
		query = `
			UPDATE salaries
			SET approval_status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND approval_status = $4
		`
	case payroll.TrackAttendance:
		query = `
			UPDATE salaries
			SET attendance_approval_status = $2, attendance_approved_by = $3,
				attendance_approved_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND attendance_approval_status = $4
		`
	default:
		return payroll.SalaryRecord{}, fmt.Errorf("unknown approval track %q", track)
	}

	_, err := q.Exec(ctx, query, id, payroll.ApprovalStatusApproved, approvedBy, payroll.ApprovalStatusPending)
	if err != nil {
		if isInvalidUUID(err) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to approve salary record %s: %w", id, err)
	}

	// Zero rows means missing or already approved; GetByID tells them apart.
	return r.GetByID(ctx, id)
}

// CountByEmployee implements payroll.SalaryRepository.
func (r *salaryRepository) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salaries WHERE employee_id = $1`, employeeID).Scan(&count)
	if err != nil {
		if isInvalidUUID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count salary records: %w", err)
	}
	return count, nil
}
