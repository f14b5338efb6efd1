package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/format"
)

type Service interface {
	// Overview aggregates the headline numbers, distribution maps and the
	// growth chart series for the requested year.
	Overview(ctx context.Context, year int) (employee.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	employeeRepo employee.Repository
}

func NewDashboardService(employeeRepo employee.Repository) Service {
	return &DashboardServiceImpl{employeeRepo: employeeRepo}
}

// Overview implements Service. The list is read once; the stat pass and the
// growth series run concurrently over the shared snapshot.
func (s *DashboardServiceImpl) Overview(ctx context.Context, year int) (employee.DashboardResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.DashboardResponse{}, err
	}

	now := time.Now()
	if year == 0 {
		year = now.Year()
	}

	var (
		stats  employee.Stats
		growth []employee.MonthCount
		years  []int
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats = employee.ComputeStats(employees, now)
		return nil
	})
	g.Go(func() error {
		growth = employee.GrowthSeries(employees, year)
		years = employee.HireYears(employees)
		return nil
	})
	if err := g.Wait(); err != nil {
		return employee.DashboardResponse{}, err
	}

	return employee.DashboardResponse{
		TotalEmployees:        stats.TotalEmployees,
		NewlyHired:            len(stats.NewlyHired),
		OnProbation:           len(stats.OnProbation),
		OnLeave:               len(stats.OnLeave),
		TotalPayroll:          stats.TotalPayroll,
		TotalPayrollFormatted: format.Currency(stats.TotalPayroll),
		DepartmentCounts:      stats.DepartmentCounts,
		StatusCounts:          stats.StatusCounts,
		TopDepartments:        stats.TopDepartments,
		Growth:                growth,
		GrowthYears:           years,
	}, nil
}
