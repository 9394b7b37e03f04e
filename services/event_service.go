package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"youthchain-server/models"
	"youthchain-server/store"
	"youthchain-server/utils/errors"
)

// EventService reads and creates events, with the same optional Redis
// read-through cache as ProjectService.
type EventService struct {
	store store.EventStore
	cache *redis.Client
}

func NewEventService(eventStore store.EventStore, cache *redis.Client) *EventService {
	return &EventService{store: eventStore, cache: cache}
}

func (s *EventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load events", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, "event:"+eventID).Result()
		if err == nil {
			var event models.Event
			if err := json.Unmarshal([]byte(cached), &event); err == nil {
				return event, nil
			}
			log.Printf("Failed to unmarshal cached event %s: %v", eventID, err)
		}
	}

	event, err := s.store.FindByID(ctx, eventID)
	if err == store.ErrNoDocument {
		return models.Event{}, errors.NotFound(fmt.Sprintf("Event with eventId %s not found", eventID))
	}
	if err != nil {
		return models.Event{}, errors.Internal("Failed to load event", err)
	}

	s.cacheEvent(ctx, event)
	return event, nil
}

// CreateEvent assigns a fresh eventId, zeroes the vote counter and inserts the
// document. Only the generated id is returned.
func (s *EventService) CreateEvent(ctx context.Context, input models.EventCreate) (string, error) {
	event := models.Event{
		EventID:          uuid.New().String(),
		EventName:        input.EventName,
		EventDescription: input.EventDescription,
		Img:              input.Img,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Location:         input.Location,
		MainSpeaker:      input.MainSpeaker,
		Rules:            input.Rules,
		Votes:            0,
		NeededVotes:      input.NeededVotes,
	}

	if err := s.store.Insert(ctx, event); err != nil {
		return "", errors.Internal("Failed to create event", err)
	}

	s.cacheEvent(ctx, event)
	return event.EventID, nil
}

func (s *EventService) cacheEvent(ctx context.Context, event models.Event) {
	if s.cache == nil {
		return
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event %s for cache: %v", event.EventID, err)
		return
	}
	s.cache.Set(ctx, "event:"+event.EventID, eventJSON, cacheTTL)
}
