package managers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

func feedEvents(t *testing.T, events ...domain.Event) *ActivityManager {
	t.Helper()

	ch := make(chan domain.Event)
	m := NewActivityManager(ActivityManagerDependencies{Events: ch})

	for _, event := range events {
		ch <- event
	}
	close(ch)
	m.Wait()
	return m
}

func TestRecentNewestFirst(t *testing.T) {
	m := feedEvents(t,
		domain.Event{ID: "a", Type: domain.EventFileAdded, Timestamp: time.Now()},
		domain.Event{ID: "b", Type: domain.EventFileModified, Timestamp: time.Now()},
		domain.Event{ID: "c", Type: domain.EventFileDeleted, Timestamp: time.Now()},
	)

	recent, err := m.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 3)

	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
	assert.Equal(t, "a", recent[2].ID)
}

func TestRecentRespectsCapacity(t *testing.T) {
	ch := make(chan domain.Event)
	m := NewActivityManager(ActivityManagerDependencies{Events: ch, Capacity: 5})

	for i := 0; i < 12; i++ {
		ch <- domain.Event{ID: fmt.Sprintf("e%d", i), Type: domain.EventFileAdded}
	}
	close(ch)
	m.Wait()

	recent, err := m.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "e11", recent[0].ID, "oldest events are evicted first")
}

func TestPresenceTracking(t *testing.T) {
	m := feedEvents(t,
		domain.Event{ID: "1", Type: domain.EventUserJoined, Payload: map[string]any{"user": "alice@example.com"}},
		domain.Event{ID: "2", Type: domain.EventUserJoined, Payload: map[string]any{"user": "bob@example.com"}},
		domain.Event{ID: "3", Type: domain.EventUserJoined, Payload: map[string]any{"user": "carol@example.com"}},
		domain.Event{ID: "4", Type: domain.EventUserLeft, Payload: map[string]any{"user": "bob@example.com"}},
	)

	present, err := m.Presence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "carol@example.com"}, present)
}

func TestPresenceIgnoresFileEvents(t *testing.T) {
	m := feedEvents(t,
		domain.Event{ID: "1", Type: domain.EventFileAdded, Payload: map[string]any{"user": "alice@example.com"}},
		domain.Event{ID: "2", Type: domain.EventUserLeft, Payload: map[string]any{"user": "ghost@example.com"}},
	)

	present, err := m.Presence(context.Background())
	require.NoError(t, err)
	assert.Empty(t, present)
}

func TestWaitReturnsAfterSourceCloses(t *testing.T) {
	ch := make(chan domain.Event)
	m := NewActivityManager(ActivityManagerDependencies{Events: ch})

	close(ch)

	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the source closed")
	}
}
