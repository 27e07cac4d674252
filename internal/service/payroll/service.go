package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	tx           database.Transactor
	salaryRepo   payroll.SalaryRepository
	employeeRepo employee.EmployeeRepository
	aggregator   *AttendanceAggregator
}

func NewSalaryService(
	tx database.Transactor,
	salaryRepo payroll.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.SalaryService {
	return &SalaryServiceImpl{
		tx:           tx,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		aggregator:   NewAttendanceAggregator(attendanceRepo),
	}
}

// approverFromContext returns the user_id claim, or nil when the request
// carries no token or the claim is absent.
func approverFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

// CalculateSalary implements payroll.SalaryService.
func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, req payroll.CalculateSalaryRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	var created payroll.SalaryRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		_, err = s.salaryRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
		if err == nil {
			return payroll.ErrDuplicatePeriod
		}
		if !errors.Is(err, payroll.ErrSalaryRecordNotFound) {
			return err
		}

		marks := payroll.NormalizeMarks(req.AttendanceDetails)
		daysWorked, err := s.resolveDaysWorked(ctx, req, marks)
		if err != nil {
			return err
		}

		rec := payroll.SalaryRecord{
			EmployeeID:        emp.ID,
			PeriodMonth:       req.Month,
			PeriodYear:        req.Year,
			BasicSalary:       emp.BasicSalary,
			DaysWorked:        daysWorked,
			OvertimePay:       decimalOrZero(req.OvertimePay),
			ManualDeductions:  decimalOrZero(req.ManualDeductions),
			AttendanceDetails: marks,
			ApprovalStatus:    payroll.ApprovalStatusPending,
		}

		breakdown := ComputeSalary(inputFor(rec))
		applyBreakdown(&rec, breakdown)
		rec.AttendanceApprovalStatus = breakdown.AttendanceSufficiency

		created, err = s.salaryRepo.Create(ctx, rec)
		return err
	})
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicatePeriod) {
			slog.Warn("Duplicate salary period rejected",
				"employee_id", req.EmployeeID, "month", req.Month, "year", req.Year)
		}
		return payroll.SalaryRecordResponse{}, err
	}

	slog.Info("Salary computed",
		"salary_id", created.ID, "employee_id", created.EmployeeID,
		"month", created.PeriodMonth, "year", created.PeriodYear,
		"net_salary", created.NetSalary.String())

	return payroll.NewSalaryRecordResponse(created), nil
}

// resolveDaysWorked prefers the explicit value, then the supplied marks,
// then the attendance log.
func (s *SalaryServiceImpl) resolveDaysWorked(ctx context.Context, req payroll.CalculateSalaryRequest, marks []payroll.AttendanceMark) (int, error) {
	if req.DaysWorked != nil {
		return *req.DaysWorked, nil
	}
	if req.AttendanceDetails != nil {
		return payroll.CountPresent(marks), nil
	}
	return s.aggregator.PresentDays(ctx, req.EmployeeID, req.Month, req.Year)
}

// GetSalary implements payroll.SalaryService.
func (s *SalaryServiceImpl) GetSalary(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return payroll.NewSalaryRecordResponse(rec), nil
}

// ListSalaries implements payroll.SalaryService.
func (s *SalaryServiceImpl) ListSalaries(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	return toResponses(records), nil
}

// ListByEmployee implements payroll.SalaryService.
func (s *SalaryServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryRecordResponse, error) {
	records, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records for employee: %w", err)
	}
	return toResponses(records), nil
}

// UpdateSalary implements payroll.SalaryService. Bonus, statutory funds and
// net salary are re-derived on every call.
func (s *SalaryServiceImpl) UpdateSalary(ctx context.Context, req payroll.UpdateSalaryRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	var updated payroll.SalaryRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.salaryRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if (req.Month != nil && *req.Month != rec.PeriodMonth) ||
			(req.Year != nil && *req.Year != rec.PeriodYear) {
			return payroll.ErrPeriodImmutable
		}
		if err := req.ValidateForPeriod(rec.PeriodMonth, rec.PeriodYear); err != nil {
			return err
		}

		if req.BasicSalary != nil {
			rec.BasicSalary = *req.BasicSalary
		}
		if req.DaysWorked != nil {
			rec.DaysWorked = *req.DaysWorked
		}
		if req.OvertimePay != nil {
			rec.OvertimePay = *req.OvertimePay
		}
		if req.ManualDeductions != nil {
			rec.ManualDeductions = *req.ManualDeductions
		}
		if req.AttendanceDetails != nil {
			rec.AttendanceDetails = payroll.NormalizeMarks(*req.AttendanceDetails)
			if rec.AttendanceDetails == nil {
				rec.AttendanceDetails = []payroll.AttendanceMark{}
			}
		}

		applyBreakdown(&rec, ComputeSalary(inputFor(rec)))

		updated, err = s.salaryRepo.Save(ctx, rec)
		return err
	})
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	slog.Info("Salary recomputed",
		"salary_id", updated.ID, "employee_id", updated.EmployeeID,
		"days_worked", updated.DaysWorked, "net_salary", updated.NetSalary.String())

	return payroll.NewSalaryRecordResponse(updated), nil
}

// ApproveSalary implements payroll.SalaryService.
func (s *SalaryServiceImpl) ApproveSalary(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	return s.approve(ctx, id, payroll.TrackSalary)
}

// ApproveAttendance implements payroll.SalaryService.
func (s *SalaryServiceImpl) ApproveAttendance(ctx context.Context, id string) (payroll.SalaryRecordResponse, error) {
	return s.approve(ctx, id, payroll.TrackAttendance)
}

func (s *SalaryServiceImpl) approve(ctx context.Context, id string, track payroll.ApprovalTrack) (payroll.SalaryRecordResponse, error) {
	approver := approverFromContext(ctx)

	var rec payroll.SalaryRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.salaryRepo.MarkApproved(ctx, id, track, approver)
		return err
	})
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	slog.Info("Salary approval recorded",
		"salary_id", rec.ID, "employee_id", rec.EmployeeID, "track", string(track))

	return payroll.NewSalaryRecordResponse(rec), nil
}

func inputFor(rec payroll.SalaryRecord) payroll.SalaryInput {
	return payroll.SalaryInput{
		BasicSalary:      rec.BasicSalary,
		DaysWorked:       rec.DaysWorked,
		OvertimePay:      rec.OvertimePay,
		ManualDeductions: rec.ManualDeductions,
		TotalDaysInMonth: attendance.DaysInMonth(rec.PeriodMonth, rec.PeriodYear),
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toResponses(records []payroll.SalaryRecord) []payroll.SalaryRecordResponse {
	responses := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.NewSalaryRecordResponse(rec))
	}
	return responses
}
