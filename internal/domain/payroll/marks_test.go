package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMarks(t *testing.T) {
	marks := []AttendanceMark{
		{Day: 5, Status: MarkPresent},
		{Day: 1, Status: MarkAbsent},
		{Day: 5, Status: MarkHoliday},
		{Day: 3, Status: MarkPresent},
	}

	got := NormalizeMarks(marks)

	assert.Equal(t, []AttendanceMark{
		{Day: 1, Status: MarkAbsent},
		{Day: 3, Status: MarkPresent},
		{Day: 5, Status: MarkHoliday},
	}, got)
}

func TestNormalizeMarks_NilAndEmpty(t *testing.T) {
	assert.Nil(t, NormalizeMarks(nil))

	empty := NormalizeMarks([]AttendanceMark{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// A day counts once, using its last mark
func TestCountPresent(t *testing.T) {
	tests := []struct {
		name  string
		marks []AttendanceMark
		want  int
	}{
		{"none", nil, 0},
		{"distinct", []AttendanceMark{{1, MarkPresent}, {2, MarkPresent}, {3, MarkWeekend}}, 2},
		{"repeated present", []AttendanceMark{{1, MarkPresent}, {1, MarkPresent}}, 1},
		{"overridden", []AttendanceMark{{1, MarkPresent}, {1, MarkAbsent}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountPresent(tt.marks))
		})
	}
}

func TestValidateMarks(t *testing.T) {
	errs := validateMarks("attendance_details", []AttendanceMark{
		{Day: 0, Status: MarkPresent},
		{Day: 29, Status: MarkPresent},
		{Day: 10, Status: "late"},
		{Day: 28, Status: MarkHoliday},
	}, 28)

	fields := errs.ToMap()
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "attendance_details[0].day")
	assert.Contains(t, fields, "attendance_details[1].day")
	assert.Contains(t, fields, "attendance_details[2].status")
}
