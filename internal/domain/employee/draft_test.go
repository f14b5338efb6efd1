package employee

import (
	"errors"
	"testing"
	"time"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
)

func validDraft() Draft {
	return Draft{
		FirstName:                    "Jane",
		LastName:                     "Doe",
		Email:                        "Jane.Doe@Example.com",
		Phone:                        "555-123-4567",
		Department:                   "Marketing",
		JobTitle:                     "Brand Manager",
		ContractType:                 "Contract",
		Status:                       "Onboarding",
		HireDate:                     "2024-02-01",
		EmergencyContactName:         "John Doe",
		EmergencyContactPhone:        "555-987-6543",
		EmergencyContactRelationship: "Spouse",
	}
}

func firstMessage(t *testing.T, err error) (string, string) {
	t.Helper()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single failure, got %d: %v", len(errs), errs)
	}
	return errs[0].Field, errs[0].Message
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	if d.Department != "Engineering" {
		t.Errorf("Department = %q", d.Department)
	}
	if d.ContractType != "Permanent" {
		t.Errorf("ContractType = %q", d.ContractType)
	}
	if d.Status != "Active" {
		t.Errorf("Status = %q", d.Status)
	}
	if d.HireDate != time.Now().Format("2006-01-02") {
		t.Errorf("HireDate = %q, want today", d.HireDate)
	}
}

func TestDraftValidateOK(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := validDraft().validateAt(now); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
}

func TestDraftValidateMessages(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
		wantMsg   string
	}{
		{
			"missing first name",
			func(d *Draft) { d.FirstName = "  " },
			"first_name", "First name is required",
		},
		{
			"missing email",
			func(d *Draft) { d.Email = "" },
			"email", "Email is required",
		},
		{
			"bad first name syntax",
			func(d *Draft) { d.FirstName = "J4ne" },
			"first_name", "First name must contain only letters, spaces, hyphens, and apostrophes, and be at least 2 characters long",
		},
		{
			"bad email syntax",
			func(d *Draft) { d.Email = "jane@nowhere" },
			"email", "Please enter a valid email address",
		},
		{
			"bad phone",
			func(d *Draft) { d.Phone = "12345" },
			"phone", "Please enter a valid phone number (10-15 digits, various formats accepted)",
		},
		{
			"bad emergency contact phone",
			func(d *Draft) { d.EmergencyContactPhone = "911" },
			"emergency_contact_phone", "Please enter a valid emergency contact phone number",
		},
		{
			"future hire date",
			func(d *Draft) { d.HireDate = "2024-06-02" },
			"hire_date", "Hire date cannot be in the future",
		},
		{
			"bad emergency contact name",
			func(d *Draft) { d.EmergencyContactName = "J0hn" },
			"emergency_contact_name", "Emergency contact name must contain only letters, spaces, hyphens, and apostrophes, and be at least 2 characters long",
		},
		{
			"short job title",
			func(d *Draft) { d.JobTitle = "X" },
			"job_title", "Job title must be at least 2 characters long",
		},
		{
			"short relationship",
			func(d *Draft) { d.EmergencyContactRelationship = "A" },
			"emergency_contact_relationship", "Emergency contact relationship must be at least 2 characters long",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDraft()
			c.mutate(&d)
			field, msg := firstMessage(t, d.validateAt(now))
			if field != c.wantField || msg != c.wantMsg {
				t.Errorf("got (%q, %q), want (%q, %q)", field, msg, c.wantField, c.wantMsg)
			}
		})
	}
}

func TestDraftValidatePrecedence(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// With several problems at once, required-field checks win over syntax.
	d := validDraft()
	d.FirstName = "J4ne"  // syntax failure
	d.HireDate = ""       // required failure, checked earlier
	field, _ := firstMessage(t, d.validateAt(now))
	if field != "hire_date" {
		t.Errorf("first failure = %q, want hire_date", field)
	}

	// Among syntax checks, name precedes email.
	d = validDraft()
	d.FirstName = "J4ne"
	d.Email = "broken"
	field, _ = firstMessage(t, d.validateAt(now))
	if field != "first_name" {
		t.Errorf("first failure = %q, want first_name", field)
	}
}

func TestDraftValidateHireDateToday(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)

	d := validDraft()
	d.HireDate = "2024-06-01"
	if err := d.validateAt(now); err != nil {
		t.Errorf("today's hire date rejected: %v", err)
	}
}

func TestToEmployeeCoercesAndLowercases(t *testing.T) {
	d := validDraft()
	d.Email = "Jane.Doe@Example.com"
	d.Department = "Gibberish"
	d.ContractType = "Zero-hours"
	d.Status = "Retired"

	emp := d.ToEmployee("emp-7")

	if emp.ID != "emp-7" {
		t.Errorf("ID = %q", emp.ID)
	}
	if emp.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q", emp.Email)
	}
	if emp.Department != DepartmentEngineering {
		t.Errorf("Department = %q, want coerced default", emp.Department)
	}
	if emp.ContractType != ContractTypePermanent {
		t.Errorf("ContractType = %q, want coerced default", emp.ContractType)
	}
	if emp.Status != StatusActive {
		t.Errorf("Status = %q, want coerced default", emp.Status)
	}
	if emp.ProbationStatus != ProbationNA {
		t.Errorf("ProbationStatus = %q, want N/A", emp.ProbationStatus)
	}
	if emp.SupervisorID != nil {
		t.Errorf("SupervisorID = %v, want nil for empty field", *emp.SupervisorID)
	}
}

func TestToEmployeeAssignsProvisionalID(t *testing.T) {
	emp := validDraft().ToEmployee("")
	if emp.ID == "" {
		t.Error("expected a provisional id for the create flow")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	supervisor := "sup-1"
	probationEnd := day(2024, 9, 1)
	emp := Employee{
		FirstName:        "Carol",
		LastName:         "Jones",
		Email:            "carol@corp.com",
		Phone:            "555-111-2222",
		Department:       DepartmentFinance,
		JobTitle:         "Controller",
		ContractType:     ContractTypeContract,
		Status:           StatusOnboarding,
		HireDate:         day(2024, 4, 10),
		SupervisorID:     &supervisor,
		ProbationEndDate: &probationEnd,
		EmergencyContact: EmergencyContact{
			Name:         "Dan Jones",
			Phone:        "555-333-4444",
			Relationship: "Brother",
		},
	}

	got := DraftFromEmployee(emp).ToEmployee(emp.ID)

	if got.FirstName != emp.FirstName || got.LastName != emp.LastName ||
		got.Email != emp.Email || got.Phone != emp.Phone ||
		got.Department != emp.Department || got.JobTitle != emp.JobTitle ||
		got.ContractType != emp.ContractType || got.Status != emp.Status {
		t.Errorf("scalar fields changed in round trip: %+v", got)
	}
	if !got.HireDate.Equal(emp.HireDate) {
		t.Errorf("HireDate = %v, want %v", got.HireDate, emp.HireDate)
	}
	if got.SupervisorID == nil || *got.SupervisorID != supervisor {
		t.Errorf("SupervisorID = %v", got.SupervisorID)
	}
	if got.ProbationEndDate == nil || !got.ProbationEndDate.Equal(probationEnd) {
		t.Errorf("ProbationEndDate = %v", got.ProbationEndDate)
	}
	if got.EmergencyContact != emp.EmergencyContact {
		t.Errorf("EmergencyContact = %+v", got.EmergencyContact)
	}
}
