package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"youthchain-server/models"
)

// In-memory store implementations, used by tests and cache-less local runs.
// Semantics mirror the Mongo stores: AddToWatchlist behaves like $addToSet,
// RemoveFromWatchlist like $pull, Push* like $push.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) FindByAddress(ctx context.Context, address string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[address]
	if !ok {
		return models.User{}, ErrNoDocument
	}
	return user, nil
}

func (s *MemoryUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.EthereumAddress] = user
	return uuid.New().String(), nil
}

func (s *MemoryUserStore) AddToWatchlist(ctx context.Context, address, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[address]
	if !ok {
		return nil
	}
	for _, id := range user.Watchlist {
		if id == projectID {
			return nil
		}
	}
	user.Watchlist = append(user.Watchlist, projectID)
	s.users[address] = user
	return nil
}

func (s *MemoryUserStore) RemoveFromWatchlist(ctx context.Context, address, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[address]
	if !ok {
		return nil
	}
	kept := make([]string, 0, len(user.Watchlist))
	for _, id := range user.Watchlist {
		if id != projectID {
			kept = append(kept, id)
		}
	}
	user.Watchlist = kept
	s.users[address] = user
	return nil
}

func (s *MemoryUserStore) PushProject(ctx context.Context, address, projectID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[address]
	if !ok {
		return 0, nil
	}
	user.Projects = append(user.Projects, projectID)
	s.users[address] = user
	return 1, nil
}

func (s *MemoryUserStore) PushEvent(ctx context.Context, address, eventID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[address]
	if !ok {
		return 0, nil
	}
	user.Events = append(user.Events, eventID)
	s.users[address] = user
	return 1, nil
}

type MemoryProjectStore struct {
	mu       sync.RWMutex
	projects map[string]models.Project
}

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{projects: make(map[string]models.Project)}
}

func (s *MemoryProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *MemoryProjectStore) FindByID(ctx context.Context, projectID string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[projectID]
	if !ok {
		return models.Project{}, ErrNoDocument
	}
	return project, nil
}

func (s *MemoryProjectStore) FindByIDs(ctx context.Context, projectIDs []string) ([]models.Project, error) {
	wanted := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var projects []models.Project
	for id, project := range s.projects {
		if wanted[id] {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (s *MemoryProjectStore) Insert(ctx context.Context, project models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ProjectID] = project
	return nil
}

type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{events: make(map[string]models.Event)}
}

func (s *MemoryEventStore) FindAll(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	return events, nil
}

func (s *MemoryEventStore) FindByID(ctx context.Context, eventID string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[eventID]
	if !ok {
		return models.Event{}, ErrNoDocument
	}
	return event, nil
}

func (s *MemoryEventStore) FindByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error) {
	wanted := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []models.Event
	for id, event := range s.events {
		if wanted[id] {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *MemoryEventStore) Insert(ctx context.Context, event models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.EventID] = event
	return nil
}
