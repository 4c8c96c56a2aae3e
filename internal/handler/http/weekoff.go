package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/response"
)

type WeekOffHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type weekOffHandlerImpl struct {
	weekOffService weekoff.WeekOffService
}

func NewWeekOffHandler(weekOffService weekoff.WeekOffService) WeekOffHandler {
	return &weekOffHandlerImpl{
		weekOffService: weekOffService,
	}
}

// Assign implements WeekOffHandler.
func (h *weekOffHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	adminID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req weekoff.AssignWeekOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.AdminID = adminID

	result, err := h.weekOffService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Week-off assigned", result)
}

// List implements WeekOffHandler.
func (h *weekOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.weekOffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Remove implements WeekOffHandler.
func (h *weekOffHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.weekOffService.Remove(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week-off removed", nil)
}
