package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ApproveAttendance(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService payroll.SalaryService
}

func NewSalaryHandler(salaryService payroll.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Calculate handles POST /salaries
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.CalculateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary calculated", result)
}

// List handles GET /salaries?month=&year=&employee_id=
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, ok := optionalIntQuery(r, "month")
	if !ok {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}
	year, ok := optionalIntQuery(r, "year")
	if !ok {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	filter := payroll.SalaryFilter{
		Month:      month,
		Year:       year,
		EmployeeID: optionalStringQuery(r, "employee_id"),
	}

	result, err := h.salaryService.ListSalaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /salaries/{id}
func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	result, err := h.salaryService.GetSalary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /salaries/{id}
func (h *salaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	var req payroll.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.salaryService.UpdateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated", result)
}

// Approve handles PUT /salaries/{id}/approve
func (h *salaryHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	result, err := h.salaryService.ApproveSalary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary approved", result)
}

// ApproveAttendance handles PUT /salaries/{id}/approve-attendance
func (h *salaryHandlerImpl) ApproveAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	result, err := h.salaryService.ApproveAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved", result)
}
