package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"youthchain-server/models"
	"youthchain-server/services"
	"youthchain-server/store"
)

func newTestRouter() *mux.Router {
	userStore := store.NewMemoryUserStore()
	projectStore := store.NewMemoryProjectStore()
	eventStore := store.NewMemoryEventStore()

	userService := services.NewUserService(userStore, projectStore, eventStore)
	projectService := services.NewProjectService(projectStore, nil)
	eventService := services.NewEventService(eventStore, nil)

	return NewRouter(
		NewUserHandler(userService),
		NewProjectHandler(projectService),
		NewEventHandler(eventService),
	)
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateOrGetUserEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, "POST", "/user/", map[string]any{"ethereumAddress": "0xabc"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var user models.User
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if user.EthereumAddress != "0xabc" {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.ID == "" {
		t.Fatal("expected _id on the creation response")
	}

	// Same address again: no second user, lists unchanged.
	resp = doJSON(t, router, "POST", "/user/", map[string]any{
		"ethereumAddress": "0xabc",
		"projects":        []string{"p1"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(user.Projects) != 0 {
		t.Fatalf("existing user was modified: %+v", user)
	}
}

func TestCreateOrGetUserMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/user/", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", recorder.Code)
	}
}

func TestProjectEndpoints(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, "GET", "/projects/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}

	resp = doJSON(t, router, "GET", "/projects/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown project, got %d", resp.Code)
	}

	// Client-supplied id and vote count must be ignored.
	resp = doJSON(t, router, "POST", "/addProjects/", map[string]any{
		"Industry":    "Energy",
		"ProjectName": "Solar Farm",
		"Raised":      10.5,
		"DaysLeft":    12,
		"projectId":   "client-chosen",
		"Votes":       99,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var projectID string
	if err := json.Unmarshal(resp.Body.Bytes(), &projectID); err != nil {
		t.Fatalf("expected a JSON string id, got %s", resp.Body.String())
	}
	if projectID == "" || projectID == "client-chosen" {
		t.Fatalf("expected a server-generated projectId, got %q", projectID)
	}

	resp = doJSON(t, router, "GET", "/projects/"+projectID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var project models.Project
	if err := json.Unmarshal(resp.Body.Bytes(), &project); err != nil {
		t.Fatalf("invalid project body: %v", err)
	}
	if project.Votes != 0 || project.ProjectName != "Solar Farm" {
		t.Fatalf("unexpected project %+v", project)
	}
}

func TestEventEndpoints(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, "GET", "/events/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, router, "GET", "/events/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown event, got %d", resp.Code)
	}

	resp = doJSON(t, router, "POST", "/addEvents/", map[string]any{
		"eventName":   "Demo Day",
		"startDate":   "2024-06-01",
		"endDate":     "2024-06-02",
		"neededVotes": 50,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var eventID string
	if err := json.Unmarshal(resp.Body.Bytes(), &eventID); err != nil {
		t.Fatalf("expected a JSON string id, got %s", resp.Body.String())
	}

	resp = doJSON(t, router, "GET", "/events/"+eventID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var event models.Event
	if err := json.Unmarshal(resp.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid event body: %v", err)
	}
	if event.Votes != 0 || event.NeededVotes != 50 {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestWatchlistEndpoints(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, "POST", "/user/", map[string]any{"ethereumAddress": "0xabc"})

	watchBody := map[string]any{"ethereum_address": "0xabc", "project_id": "p1"}

	resp := doJSON(t, router, "POST", "/user/add-to-watchlist/", watchBody)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "added to the watchlist") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}

	resp = doJSON(t, router, "POST", "/user/add-to-watchlist/", watchBody)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate add, got %d", resp.Code)
	}

	resp = doJSON(t, router, "POST", "/user/remove-from-watchlist/", watchBody)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, "POST", "/user/remove-from-watchlist/", watchBody)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent entry, got %d", resp.Code)
	}

	// Unknown user
	resp = doJSON(t, router, "POST", "/user/add-to-watchlist/", map[string]any{
		"ethereum_address": "0xnope", "project_id": "p1",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.Code)
	}
}

func TestAssociationEndpoints(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, "POST", "/user/", map[string]any{"ethereumAddress": "0xabc"})

	resp := doJSON(t, router, "POST", "/associateProject", map[string]any{
		"ethereumAddress": "0xabc", "projectId": "p1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, "POST", "/associateEvent", map[string]any{
		"ethereumAddress": "0xabc", "eventId": "e1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, "POST", "/associateProject", map[string]any{
		"ethereumAddress": "0xnope", "projectId": "p1",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.Code)
	}
}

func TestUserProjectsAndEventsEndpoints(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, "GET", "/user/projects/0xnope/", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.Code)
	}
	resp = doJSON(t, router, "GET", "/user/events/0xnope/", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.Code)
	}

	// Seed two projects, associate one, query membership.
	resp = doJSON(t, router, "POST", "/addProjects/", map[string]any{"ProjectName": "A"})
	var wantedID string
	if err := json.Unmarshal(resp.Body.Bytes(), &wantedID); err != nil {
		t.Fatalf("bad create response: %s", resp.Body.String())
	}
	doJSON(t, router, "POST", "/addProjects/", map[string]any{"ProjectName": "B"})

	doJSON(t, router, "POST", "/user/", map[string]any{"ethereumAddress": "0xabc"})
	doJSON(t, router, "POST", "/associateProject", map[string]any{
		"ethereumAddress": "0xabc", "projectId": wantedID,
	})

	resp = doJSON(t, router, "GET", "/user/projects/0xabc/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var projects []models.Project
	if err := json.Unmarshal(resp.Body.Bytes(), &projects); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(projects) != 1 || projects[0].ProjectID != wantedID {
		t.Fatalf("expected only the associated project, got %+v", projects)
	}
}

func TestPreflightRequests(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/projects/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", recorder.Code)
	}
	if recorder.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("missing CORS header: %v", recorder.Header())
	}
}
