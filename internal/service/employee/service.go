package employee

import (
	"context"
	"io"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	fileService  file.FileService
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	fileService file.FileService,
) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// ListEmployees implements employee.Service.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filters employee.Filters) (employee.ListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListResponse{}, err
	}

	visible := filters.Apply(employees)
	return employee.ListResponse{
		Total:     len(visible),
		Employees: employee.ToResponses(visible),
	}, nil
}

// GetEmployee implements employee.Service.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.findByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

// CreateEmployee implements employee.Service. The stored record is re-read
// after the write so the caller sees exactly what the store holds.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, draft employee.Draft) (employee.Response, error) {
	if err := draft.Validate(); err != nil {
		return employee.Response{}, err
	}

	id, err := s.employeeRepo.Create(ctx, draft.ToEmployee(""))
	if err != nil {
		return employee.Response{}, err
	}

	return s.GetEmployee(ctx, id)
}

// UpdateEmployee implements employee.Service. The record is overwritten as a
// whole; fields the draft does not carry keep the stored values.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, draft employee.Draft) (employee.Response, error) {
	if err := draft.Validate(); err != nil {
		return employee.Response{}, err
	}

	existing, err := s.findByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}

	updated := draft.ToEmployee(id)
	updated.Salary = existing.Salary
	updated.ProbationStatus = existing.ProbationStatus
	updated.CreatedAt = existing.CreatedAt

	if err := s.employeeRepo.Update(ctx, updated); err != nil {
		return employee.Response{}, err
	}

	return s.GetEmployee(ctx, id)
}

// DeleteEmployee implements employee.Service. The stored profile photo goes
// with the record.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if id == "" {
		return employee.ErrInvalidID
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.fileService.DeleteProfilePhoto(ctx, id)
}

// UploadPhoto implements employee.Service.
func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, id string, f io.Reader, filename string) (employee.Response, error) {
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}

	url, err := s.fileService.UploadProfilePhoto(ctx, id, f, filename)
	if err != nil {
		return employee.Response{}, err
	}

	existing.ProfilePhoto = url
	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.Response{}, err
	}

	return s.GetEmployee(ctx, id)
}

// TablePage implements employee.Service.
func (s *EmployeeServiceImpl) TablePage(ctx context.Context, query employee.TableQuery) (employee.Page, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Page{}, err
	}

	state := employee.NewTableState()
	if query.PageSize > 0 {
		state.SetPageSize(query.PageSize)
	}
	state.SetGlobalFilter(query.GlobalFilter)
	if query.SortBy != "" {
		state.ToggleSort(query.SortBy)
		if _, desc := state.Sort(); desc != query.SortDesc {
			state.ToggleSort(query.SortBy)
		}
	}
	state.SetPage(query.Page)

	return state.Render(employees), nil
}

// FilterOptions implements employee.Service.
func (s *EmployeeServiceImpl) FilterOptions(ctx context.Context) (employee.FilterOptionsResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.FilterOptionsResponse{}, err
	}

	return employee.FilterOptionsResponse{
		Departments: employee.UniqueDepartments(employees),
		JobTitles:   employee.UniqueJobTitles(employees),
	}, nil
}

// Supervisors implements employee.Service.
func (s *EmployeeServiceImpl) Supervisors(ctx context.Context, department employee.Department) ([]employee.SupervisorOption, error) {
	return s.employeeRepo.FetchSupervisors(ctx, department)
}

// Export implements employee.Service. The same filters the list view applies
// shape the exported rows.
func (s *EmployeeServiceImpl) Export(ctx context.Context, filters employee.Filters, f employee.ExportFormat) ([]byte, string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, "", err
	}

	visible := filters.Apply(employees)

	switch f {
	case employee.ExportCSV:
		return employee.ExportCSVBytes(visible), "text/csv", nil
	case employee.ExportJSON:
		data, err := employee.ExportJSONBytes(visible)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	default:
		return nil, "", employee.ErrUnsupportedFormat
	}
}

// findByID re-reads the full list and picks the record, matching how every
// mutation is followed by a fresh read of the store.
func (s *EmployeeServiceImpl) findByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == "" {
		return employee.Employee{}, employee.ErrInvalidID
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
