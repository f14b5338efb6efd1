package employee

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentCount is one entry of the top-departments leaderboard.
type DepartmentCount struct {
	Department Department `json:"department"`
	Count      int        `json:"count"`
}

// Stats is the aggregate view the dashboard renders. All fields derive from
// the input list in a single pass and are fully deterministic.
type Stats struct {
	TotalEmployees   int
	NewlyHired       []Employee
	OnProbation      []Employee
	OnLeave          []Employee
	TotalPayroll     decimal.Decimal
	DepartmentCounts map[Department]int
	StatusCounts     map[EmploymentStatus]int
	TopDepartments   []DepartmentCount
}

// ComputeStats aggregates the list relative to now: total count, hires within
// the last 30 days, employees on probation (status Probation or probation
// status "In Probation"), employees off-boarding, payroll sum with missing
// salaries counted as zero, per-department and per-status counts, and the top
// three departments by count with ties broken by first-encountered order.
func ComputeStats(employees []Employee, now time.Time) Stats {
	stats := Stats{
		NewlyHired:       []Employee{},
		OnProbation:      []Employee{},
		OnLeave:          []Employee{},
		TotalPayroll:     decimal.Zero,
		DepartmentCounts: make(map[Department]int),
		StatusCounts:     make(map[EmploymentStatus]int),
		TopDepartments:   []DepartmentCount{},
	}
	if len(employees) == 0 {
		return stats
	}

	thirtyDaysAgo := now.AddDate(0, 0, -30)
	departmentOrder := make([]Department, 0, len(Departments))

	for _, emp := range employees {
		stats.TotalEmployees++

		if !emp.HireDate.Before(thirtyDaysAgo) {
			stats.NewlyHired = append(stats.NewlyHired, emp)
		}
		if emp.Status == StatusProbation || emp.ProbationStatus == ProbationInProgress {
			stats.OnProbation = append(stats.OnProbation, emp)
		}
		if emp.Status == StatusOffboarding {
			stats.OnLeave = append(stats.OnLeave, emp)
		}
		if emp.Salary != nil {
			stats.TotalPayroll = stats.TotalPayroll.Add(*emp.Salary)
		}

		if _, seen := stats.DepartmentCounts[emp.Department]; !seen {
			departmentOrder = append(departmentOrder, emp.Department)
		}
		stats.DepartmentCounts[emp.Department]++
		stats.StatusCounts[emp.Status]++
	}

	top := make([]DepartmentCount, 0, len(departmentOrder))
	for _, d := range departmentOrder {
		top = append(top, DepartmentCount{Department: d, Count: stats.DepartmentCounts[d]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 3 {
		top = top[:3]
	}
	stats.TopDepartments = top

	return stats
}

// MonthCount is one point of the growth series.
type MonthCount struct {
	Month     string `json:"month"`
	Employees int    `json:"employees"`
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// GrowthSeries buckets hires of the given year by calendar month, returning
// twelve points January through December.
func GrowthSeries(employees []Employee, year int) []MonthCount {
	var counts [12]int
	for _, emp := range employees {
		if emp.HireDate.IsZero() || emp.HireDate.Year() != year {
			continue
		}
		counts[int(emp.HireDate.Month())-1]++
	}

	series := make([]MonthCount, 12)
	for i, label := range monthLabels {
		series[i] = MonthCount{Month: label, Employees: counts[i]}
	}
	return series
}

// HireYears returns the distinct hire years present in the list, most recent
// first, for the growth chart's year selector.
func HireYears(employees []Employee) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, emp := range employees {
		if emp.HireDate.IsZero() {
			continue
		}
		y := emp.HireDate.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
