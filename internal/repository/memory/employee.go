// Package memory holds in-memory repository implementations used by tests
// and local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
)

type EmployeeRepository struct {
	mu          sync.RWMutex
	employees   map[string]employee.Employee
	supervisors map[employee.Department][]employee.SupervisorOption
	now         func() time.Time
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees:   make(map[string]employee.Employee),
		supervisors: make(map[employee.Department][]employee.SupervisorOption),
		now:         time.Now,
	}
}

// SetClock overrides the timestamp source, used by tests to control ordering.
func (r *EmployeeRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Seed inserts records directly, keeping their ids and timestamps.
func (r *EmployeeRepository) Seed(employees ...employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, emp := range employees {
		r.employees[emp.ID] = emp
	}
}

// SeedSupervisors registers the selectable supervisors for a department.
func (r *EmployeeRepository) SeedSupervisors(department employee.Department, options ...employee.SupervisorOption) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.supervisors[department] = append(r.supervisors[department], options...)
}

// List implements employee.Repository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, employee.Normalize(emp))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Create implements employee.Repository. The provisional id on the input is
// discarded in favor of a store-assigned one.
func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.ID = uuid.NewString()
	now := r.now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp.ID, nil
}

// Update implements employee.Repository.
func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = r.now()
	r.employees[emp.ID] = emp
	return nil
}

// Delete implements employee.Repository.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// FetchSupervisors implements employee.Repository.
func (r *EmployeeRepository) FetchSupervisors(ctx context.Context, department employee.Department) ([]employee.SupervisorOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	options := make([]employee.SupervisorOption, 0, len(r.supervisors[department]))
	options = append(options, r.supervisors[department]...)
	return options, nil
}
