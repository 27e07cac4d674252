package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "year", Message: "required"},
	}
	got := errs.Error()
	want := "month: invalid; year: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "year", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"month": "invalid", "year": "required"}
	assert.Equal(t, want, got)
}

type periodPayload struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Month      int     `json:"month" validate:"min=1,max=12"`
	Year       int     `json:"year" validate:"min=2000"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

func TestStruct_Valid(t *testing.T) {
	status := "Active"
	errs := Struct(periodPayload{EmployeeID: "emp-1", Month: 12, Year: 2024, Status: &status})
	assert.Nil(t, errs)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	status := "Retired"
	errs := Struct(periodPayload{Month: 13, Year: 1999, Status: &status})
	require.Len(t, errs, 4)

	got := errs.ToMap()
	assert.Equal(t, "is required", got["employee_id"])
	assert.Equal(t, "must be at most 12", got["month"])
	assert.Equal(t, "must be at least 2000", got["year"])
	assert.Equal(t, "must be one of: Active, Inactive", got["status"])
}

func TestMoney(t *testing.T) {
	cases := []struct {
		amount  string
		wantMsg string
	}{
		{"0", ""},
		{"1000.0050", ""},
		{"1000.00500", ""},
		{"-0.01", "must be non-negative"},
		{"1000.00501", "must have at most 4 decimal places"},
	}
	for _, c := range cases {
		errs := Money("basic_salary", decimal.RequireFromString(c.amount))
		if c.wantMsg == "" {
			assert.Nil(t, errs, c.amount)
			continue
		}
		require.Len(t, errs, 1, c.amount)
		assert.Equal(t, "basic_salary", errs[0].Field)
		assert.Equal(t, c.wantMsg, errs[0].Message)
	}
}
