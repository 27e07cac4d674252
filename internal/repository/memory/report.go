package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
)

type reportRepository struct {
	s *Store
}

func (r *reportRepository) Create(ctx context.Context, rep report.Report) (report.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep.ID = uuid.NewString()
	rep.GeneratedAt = r.s.now()

	r.s.reports[rep.ID] = rep
	r.s.track(rep.ID)
	return rep, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (report.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return report.Report{}, report.ErrReportNotFound
	}
	return rep, nil
}

func (r *reportRepository) List(ctx context.Context, filter report.ReportFilter) ([]report.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := []report.Report{}
	for _, rep := range r.s.reports {
		if filter.ReportType != nil && *filter.ReportType != "" && string(rep.ReportType) != *filter.ReportType {
			continue
		}
		if filter.EmployeeID != nil && *filter.EmployeeID != "" &&
			(rep.EmployeeID == nil || *rep.EmployeeID != *filter.EmployeeID) {
			continue
		}
		result = append(result, rep)
	}

	// newest first
	sort.Slice(result, func(i, j int) bool {
		return r.s.order[result[i].ID] > r.s.order[result[j].ID]
	})
	return result, nil
}
