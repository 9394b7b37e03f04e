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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateOrGetUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	user, err := h.userService.CreateOrGetUser(r.Context(), input)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetUserProjects(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["ethereumAddress"]

	projects, err := h.userService.GetUserProjects(r.Context(), address)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *UserHandler) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["ethereumAddress"]

	events, err := h.userService.GetUserEvents(r.Context(), address)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (h *UserHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var input struct {
		EthereumAddress string `json:"ethereum_address"`
		ProjectID       string `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	message, err := h.userService.AddToWatchlist(r.Context(), input.EthereumAddress, input.ProjectID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (h *UserHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	var input struct {
		EthereumAddress string `json:"ethereum_address"`
		ProjectID       string `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	message, err := h.userService.RemoveFromWatchlist(r.Context(), input.EthereumAddress, input.ProjectID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (h *UserHandler) AssociateProject(w http.ResponseWriter, r *http.Request) {
	var input struct {
		EthereumAddress string `json:"ethereumAddress"`
		ProjectID       string `json:"projectId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	if err := h.userService.AssociateProject(r.Context(), input.EthereumAddress, input.ProjectID); err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Project associated successfully"})
}

func (h *UserHandler) AssociateEvent(w http.ResponseWriter, r *http.Request) {
	var input struct {
		EthereumAddress string `json:"ethereumAddress"`
		EventID         string `json:"eventId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	if err := h.userService.AssociateEvent(r.Context(), input.EthereumAddress, input.EventID); err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Event associated successfully"})
}
