package store

import (
	"context"
	"errors"

	"youthchain-server/models"
)

// ErrNoDocument is returned by single-document lookups when nothing matches.
var ErrNoDocument = errors.New("no matching document")

type UserStore interface {
	FindByAddress(ctx context.Context, address string) (models.User, error)
	Insert(ctx context.Context, user models.User) (string, error)
	// AddToWatchlist adds projectID to the user's watchlist unless already present.
	AddToWatchlist(ctx context.Context, address, projectID string) error
	// RemoveFromWatchlist removes every occurrence of projectID from the watchlist.
	RemoveFromWatchlist(ctx context.Context, address, projectID string) error
	// PushProject/PushEvent append unconditionally (duplicates allowed) and
	// report how many user documents were modified.
	PushProject(ctx context.Context, address, projectID string) (int64, error)
	PushEvent(ctx context.Context, address, eventID string) (int64, error)
}

type ProjectStore interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, projectID string) (models.Project, error)
	// FindByIDs returns every stored project whose projectId is in projectIDs.
	FindByIDs(ctx context.Context, projectIDs []string) ([]models.Project, error)
	Insert(ctx context.Context, project models.Project) error
}

type EventStore interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, eventID string) (models.Event, error)
	FindByIDs(ctx context.Context, eventIDs []string) ([]models.Event, error)
	Insert(ctx context.Context, event models.Event) error
}
