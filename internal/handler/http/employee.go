package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/handler/http/response"
	"github.com/peopledesk/peopledesk-backend/internal/service/file"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	TablePage(w http.ResponseWriter, r *http.Request)
	FilterOptions(w http.ResponseWriter, r *http.Request)
	Supervisors(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
	fileService     file.FileService
}

func NewEmployeeHandler(employeeService employee.Service, fileService file.FileService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		fileService:     fileService,
	}
}

// filtersFromQuery reads the list filter set off the query string. Absent
// parameters leave their filters inactive.
func filtersFromQuery(r *http.Request) employee.Filters {
	q := r.URL.Query()
	return employee.Filters{
		SearchQuery:          q.Get("search"),
		StatusFilter:         q.Get("status"),
		DepartmentFilter:     q.Get("department"),
		EmploymentTypeFilter: q.Get("employment_type"),
		JobTitleFilter:       q.Get("job_title"),
		SortBy:               employee.SortOption(q.Get("sort_by")),
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context(), filtersFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), draft)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), id, draft)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// UploadPhoto implements EmployeeHandler
func (h *employeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	f, fileHeader, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer f.Close()

	result, err := h.employeeService.UploadPhoto(r.Context(), id, f, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded successfully", result)
}

// TablePage implements EmployeeHandler
func (h *employeeHandlerImpl) TablePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := employee.TableQuery{
		GlobalFilter: q.Get("global_filter"),
		SortBy:       employee.ColumnID(q.Get("sort_by")),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		query.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil {
		query.PageSize = size
	}
	query.SortDesc = q.Get("sort_desc") == "true"

	result, err := h.employeeService.TablePage(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FilterOptions implements EmployeeHandler
func (h *employeeHandlerImpl) FilterOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.FilterOptions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Supervisors implements EmployeeHandler
func (h *employeeHandlerImpl) Supervisors(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		response.BadRequest(w, "Query parameter 'department' is required", nil)
		return
	}

	result, err := h.employeeService.Supervisors(r.Context(), employee.ToDepartment(department))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements EmployeeHandler
func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := employee.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = employee.ExportCSV
	}

	data, contentType, err := h.employeeService.Export(r.Context(), filtersFromQuery(r), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "employees." + string(format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeDraft reads an employee draft from either a JSON body or a multipart
// form carrying the JSON in 'data' plus an optional inline 'photo'. An inline
// photo is embedded as a data URL, matching how the form submits it.
func (h *employeeHandlerImpl) decodeDraft(w http.ResponseWriter, r *http.Request) (employee.Draft, bool) {
	var draft employee.Draft

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return employee.Draft{}, false
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return employee.Draft{}, false
		}

		if err := json.Unmarshal([]byte(dataJSON), &draft); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return employee.Draft{}, false
		}

		if f, _, err := r.FormFile("photo"); err == nil {
			defer f.Close()
			dataURL, err := h.fileService.EncodeDataURL(f)
			if err != nil {
				response.HandleError(w, err)
				return employee.Draft{}, false
			}
			draft.ProfilePhoto = dataURL
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return employee.Draft{}, false
		}
	}

	return draft, true
}
