package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToMatchingSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, assigned []Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		created = append(created, e)
		return nil
	})
	d.Subscribe(EventTicketAssigned, func(_ context.Context, e Event) error {
		assigned = append(assigned, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: "t-1"})
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, "t-1", created[0].TicketID)
	assert.Empty(t, assigned)
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventTicketStatusChanged, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketStatusChanged})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestDispatcherNoSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCommentAdded}))
}
