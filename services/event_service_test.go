package services

import (
	"context"
	"testing"

	"youthchain-server/models"
	"youthchain-server/store"
)

func TestCreateEventAssignsIDAndZeroVotes(t *testing.T) {
	svc := NewEventService(store.NewMemoryEventStore(), nil)
	ctx := context.Background()

	eventID, err := svc.CreateEvent(ctx, models.EventCreate{
		EventName:        "Demo Day",
		EventDescription: "Quarterly pitch night",
		Img:              "https://example.com/demo.png",
		StartDate:        "2024-06-01",
		EndDate:          "2024-06-02",
		Location:         "Bucharest",
		MainSpeaker:      "Ana",
		Rules:            "Be on time",
		NeededVotes:      50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if eventID == "" {
		t.Fatal("expected a generated eventId")
	}

	event, err := svc.GetEvent(ctx, eventID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if event.Votes != 0 {
		t.Fatalf("expected 0 votes on a new event, got %d", event.Votes)
	}
	if event.NeededVotes != 50 {
		t.Fatalf("expected NeededVotes 50, got %d", event.NeededVotes)
	}
	// Dates stay opaque strings
	if event.StartDate != "2024-06-01" || event.EndDate != "2024-06-02" {
		t.Fatalf("dates were altered: %q %q", event.StartDate, event.EndDate)
	}
}

func TestGetEventNotFound(t *testing.T) {
	svc := NewEventService(store.NewMemoryEventStore(), nil)

	_, err := svc.GetEvent(context.Background(), "missing")
	assertAPIStatus(t, err, 404)
}

func TestGetAllEvents(t *testing.T) {
	svc := NewEventService(store.NewMemoryEventStore(), nil)
	ctx := context.Background()

	got, err := svc.GetAllEvents(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}

	if _, err := svc.CreateEvent(ctx, models.EventCreate{EventName: "A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err = svc.GetAllEvents(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
}
