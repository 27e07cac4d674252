package employee

import (
	"time"

	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Position    string          `json:"position" validate:"required,max=100"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.Name) && !hasField(errs, "name") {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	errs = append(errs, validator.Money("basic_salary", r.BasicSalary)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Position    *string          `json:"position,omitempty" validate:"omitempty,max=100"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be empty"})
	}
	if r.BasicSalary != nil {
		errs = append(errs, validator.Money("basic_salary", *r.BasicSalary)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Status *string `json:"status,omitempty"`
	Search *string `json:"search,omitempty"`
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Position    string          `json:"position"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Position:    e.Position,
		BasicSalary: e.BasicSalary,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func hasField(errs validator.ValidationErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
