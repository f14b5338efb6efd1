package employee

import "testing"

func TestCoercionDefaults(t *testing.T) {
	if got := ToDepartment("Unknown Dept"); got != DepartmentEngineering {
		t.Errorf("ToDepartment = %q", got)
	}
	if got := ToDepartment("Human Resources"); got != DepartmentHR {
		t.Errorf("ToDepartment = %q", got)
	}
	if got := ToContractType("Zero-hours"); got != ContractTypePermanent {
		t.Errorf("ToContractType = %q", got)
	}
	if got := ToContractType("Intern"); got != ContractTypeIntern {
		t.Errorf("ToContractType = %q", got)
	}
	if got := ToEmploymentStatus("Retired"); got != StatusActive {
		t.Errorf("ToEmploymentStatus = %q", got)
	}
	if got := ToEmploymentStatus("Off-boarding"); got != StatusOffboarding {
		t.Errorf("ToEmploymentStatus = %q", got)
	}
	if got := ToProbationStatus(""); got != ProbationNA {
		t.Errorf("ToProbationStatus = %q", got)
	}
	if got := ToProbationStatus("In Probation"); got != ProbationInProgress {
		t.Errorf("ToProbationStatus = %q", got)
	}
}

func TestCoercionIsCaseSensitive(t *testing.T) {
	// Lowercase variants are not the enumerated values and snap to defaults.
	if got := ToDepartment("engineering"); got != DepartmentEngineering {
		t.Errorf("ToDepartment = %q", got)
	}
	if got := ToEmploymentStatus("active"); got != StatusActive {
		t.Errorf("ToEmploymentStatus = %q", got)
	}
	if got := ToContractType("contract"); got != ContractTypePermanent {
		t.Errorf("ToContractType = %q, lowercase must not match Contract", got)
	}
}

func TestNormalize(t *testing.T) {
	emp := Normalize(Employee{
		Department:   "Warehouse",
		ContractType: "Seasonal",
		Status:       "Suspended",
	})

	if emp.Department != DepartmentEngineering {
		t.Errorf("Department = %q", emp.Department)
	}
	if emp.ContractType != ContractTypePermanent {
		t.Errorf("ContractType = %q", emp.ContractType)
	}
	if emp.Status != StatusActive {
		t.Errorf("Status = %q", emp.Status)
	}
	if emp.ProbationStatus != ProbationNA {
		t.Errorf("ProbationStatus = %q", emp.ProbationStatus)
	}
}

func TestFullName(t *testing.T) {
	emp := Employee{FirstName: "Jane", LastName: "Doe"}
	if got := emp.FullName(); got != "Jane Doe" {
		t.Errorf("FullName = %q", got)
	}
}

func TestStatusColor(t *testing.T) {
	cases := []struct {
		status EmploymentStatus
		want   string
	}{
		{StatusActive, "bg-green-100 text-green-800"},
		{StatusProbation, "bg-orange-100 text-orange-800"},
		{StatusOnboarding, "bg-blue-100 text-blue-800"},
		{StatusOffboarding, "bg-red-100 text-red-800"},
		{StatusDismissed, "bg-gray-100 text-gray-800"},
		{EmploymentStatus("Whatever"), "bg-gray-100 text-gray-800"},
	}
	for _, c := range cases {
		if got := StatusColor(c.status); got != c.want {
			t.Errorf("StatusColor(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}
