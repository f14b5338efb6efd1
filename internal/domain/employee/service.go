package employee

import (
	"context"
	"io"
)

// TableQuery carries the table view state across the wire: zero-based page,
// free-text filter and single-column sort.
type TableQuery struct {
	Page         int
	PageSize     int
	GlobalFilter string
	SortBy       ColumnID
	SortDesc     bool
}

type Service interface {
	ListEmployees(ctx context.Context, filters Filters) (ListResponse, error)
	GetEmployee(ctx context.Context, id string) (Response, error)
	CreateEmployee(ctx context.Context, draft Draft) (Response, error)
	UpdateEmployee(ctx context.Context, id string, draft Draft) (Response, error)
	DeleteEmployee(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (Response, error)
	TablePage(ctx context.Context, query TableQuery) (Page, error)
	FilterOptions(ctx context.Context) (FilterOptionsResponse, error)
	Supervisors(ctx context.Context, department Department) ([]SupervisorOption, error)
	Export(ctx context.Context, filters Filters, f ExportFormat) (data []byte, contentType string, err error)
}
