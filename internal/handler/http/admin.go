package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/dashboard"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	dashboardService dashboard.DashboardService
	employeeService  user.EmployeeService
}

func NewAdminHandler(dashboardService dashboard.DashboardService, employeeService user.EmployeeService) AdminHandler {
	return &adminHandlerImpl{
		dashboardService: dashboardService,
		employeeService:  employeeService,
	}
}

// Stats implements AdminHandler.
func (h *adminHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	var filter dashboard.StatsFilter
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Skip = n
		}
	}

	result, err := h.dashboardService.GetStats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements AdminHandler.
func (h *adminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEmployee implements AdminHandler.
func (h *adminHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// DeleteEmployee implements AdminHandler.
func (h *adminHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	actorID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id, actorID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
