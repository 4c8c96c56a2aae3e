package http

import (
	"encoding/json"
	"net/http"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// Create implements AnnouncementHandler.
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	senderID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.SenderID = senderID

	result, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted", result)
}

// List implements AnnouncementHandler.
func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.announcementService.List(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
