package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAttendanceRepo struct {
	attendance.AttendanceRepository

	from, to time.Time
	count    int
	err      error
}

func (r *countingAttendanceRepo) CountPresentDays(ctx context.Context, employeeID string, from, toExclusive time.Time) (int, error) {
	r.from, r.to = from, toExclusive
	return r.count, r.err
}

// December must roll over into January of the next year
func TestAttendanceAggregator_PresentDays_DecemberWindow(t *testing.T) {
	repo := &countingAttendanceRepo{count: 19}
	agg := NewAttendanceAggregator(repo)

	days, err := agg.PresentDays(context.Background(), "emp-1", 12, 2024)
	require.NoError(t, err)

	assert.Equal(t, 19, days)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), repo.to)
}

func TestAttendanceAggregator_PresentDays_Error(t *testing.T) {
	boom := errors.New("boom")
	agg := NewAttendanceAggregator(&countingAttendanceRepo{err: boom})

	_, err := agg.PresentDays(context.Background(), "emp-1", 2, 2024)
	assert.ErrorIs(t, err, boom)
}
