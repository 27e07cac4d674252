package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at, e.name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Date, a.Status).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "uk_attendance_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return a, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1`
	args := []interface{}{employeeID}

	if filter.Month != nil && filter.Year != nil {
		start, end := attendance.PeriodBounds(*filter.Month, *filter.Year)
		query += ` AND a.date >= $2 AND a.date < $3`
		args = append(args, start, end)
	}
	query += ` ORDER BY a.date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return []attendance.Attendance{}, nil
		}
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE attendances SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		if isInvalidUUID(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// CountPresentDays implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresentDays(ctx context.Context, employeeID string, from, toExclusive time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1 AND status = $2 AND date >= $3 AND date < $4
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, attendance.StatusPresent, from, toExclusive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count present days: %w", err)
	}
	return count, nil
}
