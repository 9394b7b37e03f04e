package services

import (
	"context"
	"fmt"

	"youthchain-server/models"
	"youthchain-server/store"
	"youthchain-server/utils/errors"
)

type UserService struct {
	users    store.UserStore
	projects store.ProjectStore
	events   store.EventStore
}

func NewUserService(users store.UserStore, projects store.ProjectStore, events store.EventStore) *UserService {
	return &UserService{
		users:    users,
		projects: projects,
		events:   events,
	}
}

// CreateOrGetUser returns the existing user for the address, or registers a
// new one with the supplied lists. Lists in the request are discarded when the
// address is already known.
func (s *UserService) CreateOrGetUser(ctx context.Context, input models.UserCreate) (models.User, error) {
	if input.EthereumAddress == "" {
		return models.User{}, errors.ErrInvalidInput
	}

	existing, err := s.users.FindByAddress(ctx, input.EthereumAddress)
	if err == nil {
		return existing, nil
	}
	if err != store.ErrNoDocument {
		return models.User{}, errors.Internal("Failed to look up user", err)
	}

	user := models.User{
		EthereumAddress: input.EthereumAddress,
		Projects:        input.Projects,
		Events:          input.Events,
		Watchlist:       input.Watchlist,
	}
	if user.Projects == nil {
		user.Projects = []string{}
	}
	if user.Events == nil {
		user.Events = []string{}
	}
	if user.Watchlist == nil {
		user.Watchlist = []string{}
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return models.User{}, errors.Internal("Failed to create user", err)
	}
	user.ID = id

	return user, nil
}

// GetUserProjects returns every project whose id appears in the user's
// projects list, as a single membership query.
func (s *UserService) GetUserProjects(ctx context.Context, address string) ([]models.Project, error) {
	user, err := s.findUser(ctx, address)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.FindByIDs(ctx, user.Projects)
	if err != nil {
		return nil, errors.Internal("Failed to load user projects", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// GetUserEvents returns every event whose id appears in the user's events list.
func (s *UserService) GetUserEvents(ctx context.Context, address string) ([]models.Event, error) {
	user, err := s.findUser(ctx, address)
	if err != nil {
		return nil, err
	}

	events, err := s.events.FindByIDs(ctx, user.Events)
	if err != nil {
		return nil, errors.Internal("Failed to load user events", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// AddToWatchlist appends projectID to the user's watchlist. The referenced
// project is not required to exist; only duplicate additions are rejected.
func (s *UserService) AddToWatchlist(ctx context.Context, address, projectID string) (string, error) {
	user, err := s.findUser(ctx, address)
	if err != nil {
		return "", err
	}

	for _, id := range user.Watchlist {
		if id == projectID {
			return "", errors.Conflict("Project already in watchlist")
		}
	}

	if err := s.users.AddToWatchlist(ctx, address, projectID); err != nil {
		return "", errors.Internal("Failed to update watchlist", err)
	}

	return fmt.Sprintf("Project ID %s added to the watchlist", projectID), nil
}

// RemoveFromWatchlist removes projectID from the user's watchlist.
func (s *UserService) RemoveFromWatchlist(ctx context.Context, address, projectID string) (string, error) {
	user, err := s.findUser(ctx, address)
	if err != nil {
		return "", err
	}

	found := false
	for _, id := range user.Watchlist {
		if id == projectID {
			found = true
			break
		}
	}
	if !found {
		return "", errors.NotFound("Project not found in watchlist")
	}

	if err := s.users.RemoveFromWatchlist(ctx, address, projectID); err != nil {
		return "", errors.Internal("Failed to update watchlist", err)
	}

	return fmt.Sprintf("Project ID %s removed from the watchlist", projectID), nil
}

// AssociateProject appends projectID to the user's projects list. Duplicates
// are permitted and the project is not required to exist.
func (s *UserService) AssociateProject(ctx context.Context, address, projectID string) error {
	if _, err := s.findUser(ctx, address); err != nil {
		return err
	}

	modified, err := s.users.PushProject(ctx, address, projectID)
	if err != nil {
		return errors.Internal("Failed to associate project", err)
	}
	if modified == 0 {
		return errors.Internal("Project association had no effect", nil)
	}
	return nil
}

// AssociateEvent appends eventID to the user's events list.
func (s *UserService) AssociateEvent(ctx context.Context, address, eventID string) error {
	if _, err := s.findUser(ctx, address); err != nil {
		return err
	}

	modified, err := s.users.PushEvent(ctx, address, eventID)
	if err != nil {
		return errors.Internal("Failed to associate event", err)
	}
	if modified == 0 {
		return errors.Internal("Event association had no effect", nil)
	}
	return nil
}

func (s *UserService) findUser(ctx context.Context, address string) (models.User, error) {
	user, err := s.users.FindByAddress(ctx, address)
	if err == store.ErrNoDocument {
		return models.User{}, errors.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, errors.Internal("Failed to look up user", err)
	}
	return user, nil
}
