package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// Draft is the mutable in-progress form state for a create/edit flow. All
// fields are strings as entered; the emergency contact is flattened. A draft
// is distinct from the persisted record and never touches the network itself.
type Draft struct {
	FirstName                    string `json:"first_name"`
	LastName                     string `json:"last_name"`
	Email                        string `json:"email"`
	Phone                        string `json:"phone"`
	Department                   string `json:"department"`
	JobTitle                     string `json:"job_title"`
	ContractType                 string `json:"contract_type"`
	Status                       string `json:"status"`
	HireDate                     string `json:"hire_date"`
	SupervisorID                 string `json:"supervisor_id"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
	ProbationEndDate             string `json:"probation_end_date"`
	ProfilePhoto                 string `json:"profile_photo"`
}

// NewDraft returns an empty draft with the create-flow defaults: Engineering,
// Permanent, Active, hired today.
func NewDraft() Draft {
	return Draft{
		Department:   string(DepartmentEngineering),
		ContractType: string(ContractTypePermanent),
		Status:       string(StatusActive),
		HireDate:     time.Now().Format(dateLayout),
	}
}

// DraftFromEmployee projects a persisted record into editable form state,
// flattening the emergency contact. The projection is lossless for the
// draft's field set.
func DraftFromEmployee(emp Employee) Draft {
	d := Draft{
		FirstName:                    emp.FirstName,
		LastName:                     emp.LastName,
		Email:                        emp.Email,
		Phone:                        emp.Phone,
		Department:                   string(emp.Department),
		JobTitle:                     emp.JobTitle,
		ContractType:                 string(emp.ContractType),
		Status:                       string(emp.Status),
		HireDate:                     emp.HireDate.Format(dateLayout),
		EmergencyContactName:         emp.EmergencyContact.Name,
		EmergencyContactPhone:        emp.EmergencyContact.Phone,
		EmergencyContactRelationship: emp.EmergencyContact.Relationship,
		ProfilePhoto:                 emp.ProfilePhoto,
	}
	if emp.SupervisorID != nil {
		d.SupervisorID = *emp.SupervisorID
	}
	if emp.ProbationEndDate != nil {
		d.ProbationEndDate = emp.ProbationEndDate.Format(dateLayout)
	}
	return d
}

// ToEmployee is the inverse projection. A zero existingID means a create
// flow, in which case a provisional time-based id is assigned; the store
// replaces it with the definitive id on write. Empty optional fields become
// nil so the gateway can omit them from the write payload.
func (d Draft) ToEmployee(existingID string) Employee {
	id := existingID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	hireDate, _ := time.Parse(dateLayout, d.HireDate)

	emp := Employee{
		ID:           id,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        strings.ToLower(d.Email),
		Phone:        d.Phone,
		ProfilePhoto: d.ProfilePhoto,
		Department:   ToDepartment(d.Department),
		JobTitle:     d.JobTitle,
		ContractType: ToContractType(d.ContractType),
		Status:       ToEmploymentStatus(d.Status),
		HireDate:     hireDate,
		EmergencyContact: EmergencyContact{
			Name:         d.EmergencyContactName,
			Phone:        d.EmergencyContactPhone,
			Relationship: d.EmergencyContactRelationship,
		},
		ProbationStatus: ProbationNA,
	}
	if d.SupervisorID != "" {
		supervisorID := d.SupervisorID
		emp.SupervisorID = &supervisorID
	}
	if d.ProbationEndDate != "" {
		if t, err := time.Parse(dateLayout, d.ProbationEndDate); err == nil {
			emp.ProbationEndDate = &t
		}
	}
	return emp
}

// Validate checks the draft and returns the first failure as a single
// human-readable message, or nil when every check passes. The precedence is
// fixed: required fields, then name syntax, email syntax, phone syntax,
// emergency contact phone, hire date not in the future, emergency contact
// name syntax, and minimum lengths for job title and relationship.
func (d Draft) Validate() error {
	return d.validateAt(time.Now())
}

func (d Draft) validateAt(now time.Time) error {
	fail := func(field, message string) error {
		return validator.ValidationErrors{{Field: field, Message: message}}
	}

	if validator.IsEmpty(d.FirstName) {
		return fail("first_name", "First name is required")
	}
	if validator.IsEmpty(d.LastName) {
		return fail("last_name", "Last name is required")
	}
	if validator.IsEmpty(d.Email) {
		return fail("email", "Email is required")
	}
	if validator.IsEmpty(d.Phone) {
		return fail("phone", "Phone number is required")
	}
	if validator.IsEmpty(d.JobTitle) {
		return fail("job_title", "Job title is required")
	}
	if validator.IsEmpty(d.HireDate) {
		return fail("hire_date", "Hire date is required")
	}
	if validator.IsEmpty(d.EmergencyContactName) {
		return fail("emergency_contact_name", "Emergency contact name is required")
	}
	if validator.IsEmpty(d.EmergencyContactPhone) {
		return fail("emergency_contact_phone", "Emergency contact phone is required")
	}
	if validator.IsEmpty(d.EmergencyContactRelationship) {
		return fail("emergency_contact_relationship", "Emergency contact relationship is required")
	}

	if !validator.IsValidName(d.FirstName) {
		return fail("first_name", "First name must contain only letters, spaces, hyphens, and apostrophes, and be at least 2 characters long")
	}
	if !validator.IsValidName(d.LastName) {
		return fail("last_name", "Last name must contain only letters, spaces, hyphens, and apostrophes, and be at least 2 characters long")
	}
	if !validator.IsValidEmail(d.Email) {
		return fail("email", "Please enter a valid email address")
	}
	if !validator.IsValidPhoneNumber(d.Phone) {
		return fail("phone", "Please enter a valid phone number (10-15 digits, various formats accepted)")
	}
	if !validator.IsValidPhoneNumber(d.EmergencyContactPhone) {
		return fail("emergency_contact_phone", "Please enter a valid emergency contact phone number")
	}
	if !validator.IsNotFutureDate(d.HireDate, now) {
		return fail("hire_date", "Hire date cannot be in the future")
	}
	if !validator.IsValidName(d.EmergencyContactName) {
		return fail("emergency_contact_name", "Emergency contact name must contain only letters, spaces, hyphens, and apostrophes, and be at least 2 characters long")
	}
	if len(strings.TrimSpace(d.JobTitle)) < 2 {
		return fail("job_title", "Job title must be at least 2 characters long")
	}
	if len(strings.TrimSpace(d.EmergencyContactRelationship)) < 2 {
		return fail("emergency_contact_relationship", "Emergency contact relationship must be at least 2 characters long")
	}

	return nil
}
