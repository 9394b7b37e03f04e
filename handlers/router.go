package handlers

import (
	"github.com/gorilla/mux"

	"youthchain-server/middleware"
)

// NewRouter wires every route of the public API. Paths match the frontend's
// existing expectations, trailing slashes included.
func NewRouter(userHandler *UserHandler, projectHandler *ProjectHandler, eventHandler *EventHandler) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ErrorMiddleware())

	// User routes
	r.HandleFunc("/user/", userHandler.CreateOrGetUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/user/projects/{ethereumAddress}/", userHandler.GetUserProjects).Methods("GET", "OPTIONS")
	r.HandleFunc("/user/events/{ethereumAddress}/", userHandler.GetUserEvents).Methods("GET", "OPTIONS")
	r.HandleFunc("/user/add-to-watchlist/", userHandler.AddToWatchlist).Methods("POST", "OPTIONS")
	r.HandleFunc("/user/remove-from-watchlist/", userHandler.RemoveFromWatchlist).Methods("POST", "OPTIONS")

	// Project routes
	r.HandleFunc("/projects/", projectHandler.GetAllProjects).Methods("GET", "OPTIONS")
	r.HandleFunc("/projects/{projectId}", projectHandler.GetProject).Methods("GET", "OPTIONS")
	r.HandleFunc("/addProjects/", projectHandler.CreateProject).Methods("POST", "OPTIONS")
	r.HandleFunc("/associateProject", userHandler.AssociateProject).Methods("POST", "OPTIONS")

	// Event routes
	r.HandleFunc("/events/", eventHandler.GetAllEvents).Methods("GET", "OPTIONS")
	r.HandleFunc("/events/{eventId}", eventHandler.GetEvent).Methods("GET", "OPTIONS")
	r.HandleFunc("/addEvents/", eventHandler.CreateEvent).Methods("POST", "OPTIONS")
	r.HandleFunc("/associateEvent", userHandler.AssociateEvent).Methods("POST", "OPTIONS")

	return r
}
