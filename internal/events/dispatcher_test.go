package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/locker-service/internal/events"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventLockerBooked, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventLockerBooked,
		ActorID: "user-a",
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "user-a", received[0].ActorID)
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventLockerCancelled, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventLockerBooked}))
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	second := false
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		second = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered}))
	assert.True(t, second)
}
