package employee

import "context"

// Repository is the gateway to the hosted employee store. Operations are not
// retried here; callers decide. After a successful mutation the core re-reads
// the full list instead of patching incrementally. Implementations must run
// Normalize on every record they hand out.
type Repository interface {
	// List returns every employee, most recently created first.
	List(ctx context.Context) ([]Employee, error)

	// Create persists a new record and returns the definitive id assigned
	// by the store; any provisional id on the input is discarded.
	Create(ctx context.Context, emp Employee) (string, error)

	// Update overwrites the full record identified by emp.ID.
	Update(ctx context.Context, emp Employee) error

	// Delete removes the record permanently; there is no soft delete.
	Delete(ctx context.Context, id string) error

	// FetchSupervisors lists the selectable supervisors for a department.
	FetchSupervisors(ctx context.Context, department Department) ([]SupervisorOption, error)
}
