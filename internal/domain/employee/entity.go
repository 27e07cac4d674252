package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	Name        string
	Position    string
	BasicSalary decimal.Decimal
	Status      EmploymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "Active"
	EmploymentStatusInactive EmploymentStatus = "Inactive"
)

func (s EmploymentStatus) IsValid() bool {
	return s == EmploymentStatusActive || s == EmploymentStatusInactive
}
