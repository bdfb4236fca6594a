package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherPublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		calls = append(calls, "first:"+event.UserID)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		calls = append(calls, "second:"+event.UserID)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventUserRegistered,
		UserID:    "user-1",
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first:user-1" || calls[1] != "second:user-1" {
		t.Fatalf("unexpected handler calls: %v", calls)
	}
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserDeleted}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !secondCalled {
		t.Fatal("second handler must run despite the first failing")
	}
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	if err := d.Publish(context.Background(), Event{Type: EventUserProfileUpdated}); err != nil {
		t.Fatalf("Publish without subscribers: %v", err)
	}
}
