package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var seen []int64
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e.UserID)
		return nil
	})
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e.UserID+100)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered, UserID: 1})
	require.NoError(t, err)

	// the failing handler does not stop the third one
	assert.Equal(t, []int64{1, 101}, seen)
}

func TestDispatcher_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()
	err := dispatcher.Publish(context.Background(), Event{Type: EventUserLoggedIn, UserID: 2})
	assert.NoError(t, err)
}
