package employee

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	SortByName SortOption = "name"
	SortByDate SortOption = "date"
)

// Filters is the filter specification applied to the canonical list to
// produce a derived view. Zero values mean "no filter"; StatusFilter
// additionally treats the literal "All" as a no-op, and the categorical
// filters treat "all" the same way.
type Filters struct {
	SearchQuery          string
	StatusFilter         string
	DepartmentFilter     string
	EmploymentTypeFilter string
	JobTitleFilter       string
	SortBy               SortOption
}

func categoricalSet(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

// Apply returns a new filtered and sorted slice. The input is never mutated;
// an empty result is a valid outcome, not an error.
//
// Search matches case-insensitively against first name, last name, email and
// job title. Categorical filters are exact matches. SortByName orders
// ascending by first name with locale-aware comparison, SortByDate orders by
// hire date descending, and the unset option falls back to most recently
// created first.
func (f Filters) Apply(employees []Employee) []Employee {
	filtered := make([]Employee, 0, len(employees))

	query := strings.ToLower(f.SearchQuery)
	for _, emp := range employees {
		if query != "" {
			if !strings.Contains(strings.ToLower(emp.FirstName), query) &&
				!strings.Contains(strings.ToLower(emp.LastName), query) &&
				!strings.Contains(strings.ToLower(emp.Email), query) &&
				!strings.Contains(strings.ToLower(emp.JobTitle), query) {
				continue
			}
		}
		if f.StatusFilter != "" && f.StatusFilter != "All" && string(emp.Status) != f.StatusFilter {
			continue
		}
		if categoricalSet(f.DepartmentFilter) && string(emp.Department) != f.DepartmentFilter {
			continue
		}
		if categoricalSet(f.EmploymentTypeFilter) && string(emp.ContractType) != f.EmploymentTypeFilter {
			continue
		}
		if categoricalSet(f.JobTitleFilter) && emp.JobTitle != f.JobTitleFilter {
			continue
		}
		filtered = append(filtered, emp)
	}

	switch f.SortBy {
	case SortByName:
		coll := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return coll.CompareString(filtered[i].FirstName, filtered[j].FirstName) < 0
		})
	case SortByDate:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].HireDate.After(filtered[j].HireDate)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

// UniqueDepartments returns the deduplicated, lexicographically sorted
// departments present in the list, for filter option dropdowns.
func UniqueDepartments(employees []Employee) []string {
	return uniqueSorted(employees, func(e Employee) string { return string(e.Department) })
}

// UniqueJobTitles returns the deduplicated, lexicographically sorted job
// titles present in the list.
func UniqueJobTitles(employees []Employee) []string {
	return uniqueSorted(employees, func(e Employee) string { return e.JobTitle })
}

func uniqueSorted(employees []Employee, key func(Employee) string) []string {
	seen := make(map[string]struct{}, len(employees))
	values := make([]string, 0, len(employees))
	for _, emp := range employees {
		k := key(emp)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}
