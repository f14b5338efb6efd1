package employee

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/format"
)

// EmployeesPerPage is the fixed table page size.
const EmployeesPerPage = 5

type ColumnID string

const (
	ColumnSelect       ColumnID = "select"
	ColumnName         ColumnID = "name"
	ColumnHireDate     ColumnID = "hire_date"
	ColumnJobTitle     ColumnID = "job_title"
	ColumnContractType ColumnID = "contract_type"
	ColumnActions      ColumnID = "actions"
)

// Column describes one column of the fixed employee table layout.
type Column struct {
	ID           ColumnID `json:"id"`
	Header       string   `json:"header"`
	Sortable     bool     `json:"sortable"`
	GlobalFilter bool     `json:"global_filter"`
}

// Columns returns the fixed column set: the selection checkbox and actions
// menu are neither sortable nor filterable, and only the composite name cell
// participates in the global filter.
func Columns() []Column {
	return []Column{
		{ID: ColumnSelect, Header: "", Sortable: false, GlobalFilter: false},
		{ID: ColumnName, Header: "Name", Sortable: true, GlobalFilter: true},
		{ID: ColumnHireDate, Header: "Hire Date", Sortable: true, GlobalFilter: false},
		{ID: ColumnJobTitle, Header: "Job Title", Sortable: true, GlobalFilter: false},
		{ID: ColumnContractType, Header: "Employment Type", Sortable: true, GlobalFilter: false},
		{ID: ColumnActions, Header: "", Sortable: false, GlobalFilter: false},
	}
}

// GlobalFilterMatch is the table's free-text predicate: a case-insensitive
// substring match against first name, last name, the concatenated full name,
// or email. It is independent of Filters.Apply's search; in composed usage
// both may run in sequence.
func GlobalFilterMatch(emp Employee, query string) bool {
	q := strings.ToLower(query)
	firstName := strings.ToLower(emp.FirstName)
	lastName := strings.ToLower(emp.LastName)
	email := strings.ToLower(emp.Email)
	fullName := firstName + " " + lastName

	return strings.Contains(firstName, q) ||
		strings.Contains(lastName, q) ||
		strings.Contains(fullName, q) ||
		strings.Contains(email, q)
}

// Row is one rendered table row.
type Row struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AvatarURL    string `json:"avatar_url"`
	HireDate     string `json:"hire_date"`
	JobTitle     string `json:"job_title"`
	ContractType string `json:"contract_type"`
	Status       string `json:"status"`
	StatusColor  string `json:"status_color"`
	Selected     bool   `json:"selected"`
}

// Page is the rendered view state for the current page.
type Page struct {
	Rows                []Row  `json:"rows"`
	PageIndex           int    `json:"page_index"`
	PageCount           int    `json:"page_count"`
	TotalRows           int    `json:"total_rows"`
	Showing             string `json:"showing"`
	CanPrev             bool   `json:"can_prev"`
	CanNext             bool   `json:"can_next"`
	AllPageRowsSelected bool   `json:"all_page_rows_selected"`
	SelectedCount       int    `json:"selected_count"`
}

// TableState projects an employee list into paginated, sortable,
// multi-selectable tabular view state. It holds no data itself: Render
// recomputes the page from whatever list it is handed.
type TableState struct {
	pageSize     int
	page         int
	sortKey      ColumnID
	sortDesc     bool
	globalFilter string
	selected     map[string]struct{}
}

func NewTableState() *TableState {
	return &TableState{
		pageSize: EmployeesPerPage,
		selected: make(map[string]struct{}),
	}
}

// SetPageSize overrides the default page size; values below 1 are ignored.
func (s *TableState) SetPageSize(n int) {
	if n >= 1 {
		s.pageSize = n
	}
}

// SetGlobalFilter replaces the free-text filter and returns to the first
// page.
func (s *TableState) SetGlobalFilter(query string) {
	s.globalFilter = query
	s.page = 0
}

// ToggleSort activates single-column sorting on a sortable column: the last
// clicked column wins, and repeated clicks on the same column flip the
// direction. Non-sortable columns are ignored.
func (s *TableState) ToggleSort(col ColumnID) {
	sortable := false
	for _, c := range Columns() {
		if c.ID == col && c.Sortable {
			sortable = true
			break
		}
	}
	if !sortable {
		return
	}
	if s.sortKey == col {
		s.sortDesc = !s.sortDesc
		return
	}
	s.sortKey = col
	s.sortDesc = false
}

// Sort reports the active sort column and direction.
func (s *TableState) Sort() (ColumnID, bool) {
	return s.sortKey, s.sortDesc
}

func (s *TableState) NextPage() { s.page++ }

func (s *TableState) PrevPage() {
	if s.page > 0 {
		s.page--
	}
}

// SetPage jumps to a zero-based page index; Render clamps it to range.
func (s *TableState) SetPage(p int) {
	if p >= 0 {
		s.page = p
	}
}

// ToggleRow flips the selection of a single row.
func (s *TableState) ToggleRow(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

func (s *TableState) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *TableState) SelectedCount() int {
	return len(s.selected)
}

// ClearSelection drops every selected row.
func (s *TableState) ClearSelection() {
	s.selected = make(map[string]struct{})
}

// ToggleAllPageRows selects every row on the current page of the given list,
// or clears them when all are already selected. There is no cross-page
// "select all matching filter".
func (s *TableState) ToggleAllPageRows(employees []Employee) {
	page := s.Render(employees)
	if page.AllPageRowsSelected {
		for _, row := range page.Rows {
			delete(s.selected, row.ID)
		}
		return
	}
	for _, row := range page.Rows {
		s.selected[row.ID] = struct{}{}
	}
}

// Render computes the current page: global filter, then sort, then
// pagination with the page index clamped into range.
func (s *TableState) Render(employees []Employee) Page {
	rows := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if s.globalFilter != "" && !GlobalFilterMatch(emp, s.globalFilter) {
			continue
		}
		rows = append(rows, emp)
	}

	s.sortRows(rows)

	total := len(rows)
	pageCount := (total + s.pageSize - 1) / s.pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if s.page > pageCount-1 {
		s.page = pageCount - 1
	}

	start := s.page * s.pageSize
	end := start + s.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := Page{
		Rows:          make([]Row, 0, end-start),
		PageIndex:     s.page,
		PageCount:     pageCount,
		TotalRows:     total,
		CanPrev:       s.page > 0,
		CanNext:       s.page < pageCount-1,
		SelectedCount: len(s.selected),
	}

	if total == 0 {
		page.Showing = "0 of 0"
		return page
	}
	page.Showing = fmt.Sprintf("%d-%d of %d", start+1, end, total)

	allSelected := end > start
	for _, emp := range rows[start:end] {
		selected := s.IsSelected(emp.ID)
		if !selected {
			allSelected = false
		}
		avatar := emp.ProfilePhoto
		if avatar == "" {
			avatar = format.AvatarURL(emp.FirstName, emp.LastName)
		}
		page.Rows = append(page.Rows, Row{
			ID:           emp.ID,
			Name:         emp.FullName(),
			Email:        strings.ToLower(emp.Email),
			AvatarURL:    avatar,
			HireDate:     format.Date(emp.HireDate),
			JobTitle:     emp.JobTitle,
			ContractType: string(emp.ContractType),
			Status:       string(emp.Status),
			StatusColor:  StatusColor(emp.Status),
			Selected:     selected,
		})
	}
	page.AllPageRowsSelected = allSelected

	return page
}

func (s *TableState) sortRows(rows []Employee) {
	var less func(a, b Employee) bool
	switch s.sortKey {
	case ColumnName:
		coll := collate.New(language.English)
		less = func(a, b Employee) bool {
			return coll.CompareString(a.FullName(), b.FullName()) < 0
		}
	case ColumnHireDate:
		less = func(a, b Employee) bool { return a.HireDate.Before(b.HireDate) }
	case ColumnJobTitle:
		less = func(a, b Employee) bool { return a.JobTitle < b.JobTitle }
	case ColumnContractType:
		less = func(a, b Employee) bool { return a.ContractType < b.ContractType }
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if s.sortDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
