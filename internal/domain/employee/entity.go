package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the canonical persisted record. The id is assigned by the
// store on create and immutable afterwards.
type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	ProfilePhoto     string
	Department       Department
	JobTitle         string
	ContractType     ContractType
	Status           EmploymentStatus
	HireDate         time.Time
	SupervisorID     *string
	EmergencyContact EmergencyContact
	ProbationEndDate *time.Time
	ProbationStatus  ProbationStatus
	Salary           *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EmergencyContact is required as a whole: when present, all three fields
// must be non-empty.
type EmergencyContact struct {
	Name         string
	Phone        string
	Relationship string
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Department string

const (
	DepartmentExecutive       Department = "Executive"
	DepartmentEngineering     Department = "Engineering"
	DepartmentMarketing       Department = "Marketing"
	DepartmentSales           Department = "Sales"
	DepartmentHR              Department = "Human Resources"
	DepartmentFinance         Department = "Finance"
	DepartmentOperations      Department = "Operations"
	DepartmentCustomerSupport Department = "Customer Support"
	DepartmentIT              Department = "Information Technology"
	DepartmentProduct         Department = "Product"
	DepartmentLegal           Department = "Legal"
)

// Departments lists every recognized department in display order.
var Departments = []Department{
	DepartmentExecutive,
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentCustomerSupport,
	DepartmentIT,
	DepartmentProduct,
	DepartmentLegal,
}

type ContractType string

const (
	ContractTypePermanent ContractType = "Permanent"
	ContractTypeContract  ContractType = "Contract"
	ContractTypeIntern    ContractType = "Intern"
)

var ContractTypes = []ContractType{
	ContractTypePermanent,
	ContractTypeContract,
	ContractTypeIntern,
}

type EmploymentStatus string

const (
	StatusActive      EmploymentStatus = "Active"
	StatusOnboarding  EmploymentStatus = "Onboarding"
	StatusOffboarding EmploymentStatus = "Off-boarding"
	StatusProbation   EmploymentStatus = "Probation"
	StatusDismissed   EmploymentStatus = "Dismissed"
)

var EmploymentStatuses = []EmploymentStatus{
	StatusActive,
	StatusOnboarding,
	StatusOffboarding,
	StatusProbation,
	StatusDismissed,
}

type ProbationStatus string

const (
	ProbationInProgress ProbationStatus = "In Probation"
	ProbationCompleted  ProbationStatus = "Completed"
	ProbationNA         ProbationStatus = "N/A"
)

// ToDepartment maps a raw string onto a recognized department. Unrecognized
// input coerces to Engineering instead of failing, so stale or foreign values
// coming off the wire never reject a record.
func ToDepartment(s string) Department {
	for _, d := range Departments {
		if string(d) == s {
			return d
		}
	}
	return DepartmentEngineering
}

// ToContractType coerces unrecognized input to Permanent.
func ToContractType(s string) ContractType {
	for _, c := range ContractTypes {
		if string(c) == s {
			return c
		}
	}
	return ContractTypePermanent
}

// ToEmploymentStatus coerces unrecognized input to Active.
func ToEmploymentStatus(s string) EmploymentStatus {
	for _, st := range EmploymentStatuses {
		if string(st) == s {
			return st
		}
	}
	return StatusActive
}

// ToProbationStatus coerces unrecognized input to N/A.
func ToProbationStatus(s string) ProbationStatus {
	switch ProbationStatus(s) {
	case ProbationInProgress, ProbationCompleted, ProbationNA:
		return ProbationStatus(s)
	}
	return ProbationNA
}

// Normalize applies the wire-level coercions every gateway implementation
// must run before a record enters the core: categorical fields snap to their
// enumerated values and an unset probation status defaults to N/A.
func Normalize(e Employee) Employee {
	e.Department = ToDepartment(string(e.Department))
	e.ContractType = ToContractType(string(e.ContractType))
	e.Status = ToEmploymentStatus(string(e.Status))
	e.ProbationStatus = ToProbationStatus(string(e.ProbationStatus))
	return e
}

// StatusColor returns the badge color class the UI renders for a status.
func StatusColor(status EmploymentStatus) string {
	switch status {
	case StatusActive:
		return "bg-green-100 text-green-800"
	case StatusProbation:
		return "bg-orange-100 text-orange-800"
	case StatusOnboarding:
		return "bg-blue-100 text-blue-800"
	case StatusOffboarding:
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
