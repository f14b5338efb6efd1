package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response is the employee record as served over the wire. Optional fields
// are omitted rather than sent as empty strings.
type Response struct {
	ID               string                    `json:"id"`
	FirstName        string                    `json:"first_name"`
	LastName         string                    `json:"last_name"`
	Email            string                    `json:"email"`
	Phone            string                    `json:"phone"`
	ProfilePhoto     string                    `json:"profile_photo,omitempty"`
	Department       string                    `json:"department"`
	JobTitle         string                    `json:"job_title"`
	ContractType     string                    `json:"contract_type"`
	Status           string                    `json:"status"`
	HireDate         string                    `json:"hire_date"`
	SupervisorID     *string                   `json:"supervisor_id,omitempty"`
	EmergencyContact EmergencyContactResponse  `json:"emergency_contact"`
	ProbationEndDate *string                   `json:"probation_end_date,omitempty"`
	ProbationStatus  string                    `json:"probation_status"`
	Salary           *decimal.Decimal          `json:"salary,omitempty"`
	CreatedAt        string                    `json:"created_at"`
	UpdatedAt        string                    `json:"updated_at"`
}

type EmergencyContactResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// ToResponse maps a record to its wire shape; dates are ISO-8601 calendar
// dates, timestamps full RFC 3339.
func ToResponse(emp Employee) Response {
	resp := Response{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		ProfilePhoto: emp.ProfilePhoto,
		Department:   string(emp.Department),
		JobTitle:     emp.JobTitle,
		ContractType: string(emp.ContractType),
		Status:       string(emp.Status),
		HireDate:     emp.HireDate.Format(dateLayout),
		SupervisorID: emp.SupervisorID,
		EmergencyContact: EmergencyContactResponse{
			Name:         emp.EmergencyContact.Name,
			Phone:        emp.EmergencyContact.Phone,
			Relationship: emp.EmergencyContact.Relationship,
		},
		ProbationStatus: string(emp.ProbationStatus),
		Salary:          emp.Salary,
		CreatedAt:       emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.ProbationEndDate != nil {
		s := emp.ProbationEndDate.Format(dateLayout)
		resp.ProbationEndDate = &s
	}
	return resp
}

// ToResponses maps a whole list.
func ToResponses(employees []Employee) []Response {
	responses := make([]Response, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, ToResponse(emp))
	}
	return responses
}

// ListResponse is the list payload together with the filter option sets the
// UI needs to populate its dropdowns.
type ListResponse struct {
	Total     int        `json:"total"`
	Employees []Response `json:"employees"`
}

// FilterOptionsResponse carries the deduplicated dropdown option sets.
type FilterOptionsResponse struct {
	Departments []string `json:"departments"`
	JobTitles   []string `json:"job_titles"`
}

// SupervisorOption is one selectable supervisor for a department.
type SupervisorOption struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// DashboardResponse is the aggregate payload behind the dashboard view.
type DashboardResponse struct {
	TotalEmployees        int                      `json:"total_employees"`
	NewlyHired            int                      `json:"newly_hired"`
	OnProbation           int                      `json:"on_probation"`
	OnLeave               int                      `json:"on_leave"`
	TotalPayroll          decimal.Decimal          `json:"total_payroll"`
	TotalPayrollFormatted string                   `json:"total_payroll_formatted"`
	DepartmentCounts      map[Department]int       `json:"department_counts"`
	StatusCounts          map[EmploymentStatus]int `json:"status_counts"`
	TopDepartments        []DepartmentCount        `json:"top_departments"`
	Growth                []MonthCount             `json:"growth"`
	GrowthYears           []int                    `json:"growth_years"`
}
