package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"youthchain-server/middleware"
	"youthchain-server/models"
	"youthchain-server/services"
	"youthchain-server/utils/errors"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.GetAllEvents(r.Context())
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]

	event, err := h.eventService.GetEvent(r.Context(), eventID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

// CreateEvent responds with the generated eventId as a bare JSON string.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input models.EventCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	eventID, err := h.eventService.CreateEvent(r.Context(), input)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(eventID)
}
