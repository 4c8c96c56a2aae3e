package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{
		permissionService: permissionService,
	}
}

// Create implements PermissionHandler.
func (h *permissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req permission.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.UserID = userID

	result, err := h.permissionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission request submitted", result)
}

// ListMine implements PermissionHandler.
func (h *permissionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.permissionService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements PermissionHandler.
func (h *permissionHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements PermissionHandler.
func (h *permissionHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	adminID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req permission.DecidePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.AdminID = adminID

	result, err := h.permissionService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request updated", result)
}
