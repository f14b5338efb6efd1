package http

import (
	"net/http"
	"strconv"

	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/handler/http/response"
	"github.com/peopledesk/peopledesk-backend/internal/service/dashboard"
)

type DashboardHandler interface {
	// GetDashboard returns the combined dashboard payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetGrowth returns the hire growth series for a year
	GetGrowth(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year")) // default: current year

	result, err := h.dashboardService.Overview(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGrowth handles GET /dashboard/growth
func (h *dashboardHandlerImpl) GetGrowth(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year")) // default: current year

	result, err := h.dashboardService.Overview(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, struct {
		Growth      []employee.MonthCount `json:"growth"`
		GrowthYears []int                 `json:"growth_years"`
	}{
		Growth:      result.Growth,
		GrowthYears: result.GrowthYears,
	})
}
