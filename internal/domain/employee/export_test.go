package employee

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExportCSVBytes(t *testing.T) {
	employees := []Employee{
		{
			FirstName: "Alice", LastName: "Nguyen", Email: "alice@corp.com",
			JobTitle: "Backend Engineer", Department: DepartmentEngineering,
			ContractType: ContractTypePermanent, Status: StatusActive,
			HireDate: day(2024, 3, 1),
		},
		{
			FirstName: "Bob", LastName: "Smith", Email: "bob@corp.com",
			JobTitle: "Account Executive", Department: DepartmentSales,
			ContractType: ContractTypeContract, Status: StatusProbation,
			HireDate: day(2024, 5, 20),
		},
	}

	lines := strings.Split(string(ExportCSVBytes(employees)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "First Name,Last Name,Email,Job Title,Department,Employment Type,Status,Hire Date" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Alice,Nguyen,alice@corp.com,Backend Engineer,Engineering,Permanent,Active,2024-03-01" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Bob,Smith,bob@corp.com,Account Executive,Sales,Contract,Probation,2024-05-20" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestExportCSVBytesDoesNotEscape(t *testing.T) {
	employees := []Employee{{
		FirstName: "Ann", LastName: "Lee", Email: "ann@corp.com",
		JobTitle: "VP, Operations", Department: DepartmentOperations,
		ContractType: ContractTypePermanent, Status: StatusActive,
		HireDate: day(2024, 1, 1),
	}}

	lines := strings.Split(string(ExportCSVBytes(employees)), "\n")
	// The embedded comma passes through unescaped and shifts the columns.
	if !strings.Contains(lines[1], "VP, Operations") {
		t.Errorf("row = %q, want raw unquoted field", lines[1])
	}
	if strings.Contains(lines[1], `"`) {
		t.Errorf("row = %q, fields must not be quoted", lines[1])
	}
}

func TestExportCSVBytesEmpty(t *testing.T) {
	got := string(ExportCSVBytes(nil))
	if got != strings.Join(csvHeader, ",") {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestExportJSONBytes(t *testing.T) {
	employees := []Employee{{
		ID: "1", FirstName: "Alice", LastName: "Nguyen", Email: "alice@corp.com",
		JobTitle: "Backend Engineer", Department: DepartmentEngineering,
		ContractType: ContractTypePermanent, Status: StatusActive,
		ProbationStatus: ProbationNA,
		HireDate:        day(2024, 3, 1),
		CreatedAt:       day(2024, 3, 1), UpdatedAt: day(2024, 3, 1),
	}}

	data, err := ExportJSONBytes(employees)
	if err != nil {
		t.Fatalf("ExportJSONBytes: %v", err)
	}

	var decoded []Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("record count = %d", len(decoded))
	}
	if decoded[0].FirstName != "Alice" || decoded[0].HireDate != "2024-03-01" {
		t.Errorf("decoded = %+v", decoded[0])
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("export should be pretty-printed")
	}
}
