package employee

import (
	"encoding/json"
	"strings"
)

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

var csvHeader = []string{
	"First Name",
	"Last Name",
	"Email",
	"Job Title",
	"Department",
	"Employment Type",
	"Status",
	"Hire Date",
}

// ExportCSVBytes renders the list as a header row plus one comma-joined row
// per employee. Fields are not quoted or escaped, so embedded commas break
// columns; this mirrors the export the product ships and is a documented
// limitation.
func ExportCSVBytes(employees []Employee) []byte {
	lines := make([]string, 0, len(employees)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, emp := range employees {
		lines = append(lines, strings.Join([]string{
			emp.FirstName,
			emp.LastName,
			emp.Email,
			emp.JobTitle,
			string(emp.Department),
			string(emp.ContractType),
			string(emp.Status),
			emp.HireDate.Format(dateLayout),
		}, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// ExportJSONBytes renders the list as a pretty-printed array of full records.
func ExportJSONBytes(employees []Employee) ([]byte, error) {
	return json.MarshalIndent(ToResponses(employees), "", "  ")
}
