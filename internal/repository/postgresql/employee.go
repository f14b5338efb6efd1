package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, first_name, last_name, email, phone, profile_photo,
	department, job_title, contract_type, status, hire_date, supervisor_id,
	emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
	probation_end_date, probation_status, salary, created_at, updated_at
`

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee.Normalize(emp))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return employees, nil
}

// Create implements employee.Repository. The store assigns the definitive id;
// any provisional id on the input is discarded.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (string, error) {
	query := `
		INSERT INTO employees (
			first_name, last_name, email, phone, profile_photo,
			department, job_title, contract_type, status, hire_date, supervisor_id,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
			probation_end_date, probation_status, salary
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.ProfilePhoto,
		string(emp.Department), emp.JobTitle, string(emp.ContractType), string(emp.Status),
		emp.HireDate, emp.SupervisorID,
		emp.EmergencyContact.Name, emp.EmergencyContact.Phone, emp.EmergencyContact.Relationship,
		emp.ProbationEndDate, string(emp.ProbationStatus), emp.Salary,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create employee: %w", err)
	}

	return id, nil
}

// Update implements employee.Repository. The record is overwritten as a whole.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	query := `
		UPDATE employees SET
			first_name = $1, last_name = $2, email = $3, phone = $4, profile_photo = $5,
			department = $6, job_title = $7, contract_type = $8, status = $9,
			hire_date = $10, supervisor_id = $11,
			emergency_contact_name = $12, emergency_contact_phone = $13,
			emergency_contact_relationship = $14,
			probation_end_date = $15, probation_status = $16, salary = $17,
			updated_at = NOW()
		WHERE id = $18
	`

	tag, err := r.db.Exec(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.ProfilePhoto,
		string(emp.Department), emp.JobTitle, string(emp.ContractType), string(emp.Status),
		emp.HireDate, emp.SupervisorID,
		emp.EmergencyContact.Name, emp.EmergencyContact.Phone, emp.EmergencyContact.Relationship,
		emp.ProbationEndDate, string(emp.ProbationStatus), emp.Salary,
		emp.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.Repository. The delete is permanent.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// FetchSupervisors implements employee.Repository.
func (r *employeeRepositoryImpl) FetchSupervisors(ctx context.Context, department employee.Department) ([]employee.SupervisorOption, error) {
	query := `
		SELECT id, display_name, email
		FROM users
		WHERE role = 'supervisor' AND department = $1
		ORDER BY display_name
	`

	rows, err := r.db.Query(ctx, query, string(department))
	if err != nil {
		return nil, fmt.Errorf("fetch supervisors: %w", err)
	}
	defer rows.Close()

	options := make([]employee.SupervisorOption, 0)
	for rows.Next() {
		var opt employee.SupervisorOption
		if err := rows.Scan(&opt.ID, &opt.DisplayName, &opt.Email); err != nil {
			return nil, fmt.Errorf("scan supervisor: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch supervisors: %w", err)
	}

	return options, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp                                    employee.Employee
		department, contractType, status, prob string
	)

	err := row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.ProfilePhoto,
		&department,
		&emp.JobTitle,
		&contractType,
		&status,
		&emp.HireDate,
		&emp.SupervisorID,
		&emp.EmergencyContact.Name,
		&emp.EmergencyContact.Phone,
		&emp.EmergencyContact.Relationship,
		&emp.ProbationEndDate,
		&prob,
		&emp.Salary,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Department = employee.Department(department)
	emp.ContractType = employee.ContractType(contractType)
	emp.Status = employee.EmploymentStatus(status)
	emp.ProbationStatus = employee.ProbationStatus(prob)

	return emp, nil
}
