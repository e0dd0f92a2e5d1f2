package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

func TestSimulatorEmitsEvents(t *testing.T) {
	s := NewSimulator(SimulatorConfig{
		ConnectDelay: time.Millisecond,
		Interval:     5 * time.Millisecond,
	})
	defer s.Close()

	known := map[domain.EventType]bool{
		domain.EventFileAdded:    true,
		domain.EventFileDeleted:  true,
		domain.EventFileModified: true,
		domain.EventUserJoined:   true,
		domain.EventUserLeft:     true,
	}

	for i := 0; i < 5; i++ {
		select {
		case event := <-s.Events():
			assert.NotEmpty(t, event.ID)
			assert.True(t, known[event.Type], "unknown event type %q", event.Type)
			assert.False(t, event.Timestamp.IsZero())
			assert.NotNil(t, event.Payload)
		case <-time.After(2 * time.Second):
			t.Fatal("no event arrived in time")
		}
	}
}

func TestSimulatorPayloadShapes(t *testing.T) {
	s := NewSimulator(SimulatorConfig{Interval: time.Millisecond})
	defer s.Close()

	deadline := time.After(5 * time.Second)
	for i := 0; i < 50; i++ {
		var event domain.Event
		select {
		case event = <-s.Events():
		case <-deadline:
			t.Fatal("simulator stalled")
		}

		switch event.Type {
		case domain.EventFileAdded:
			assert.Contains(t, event.Payload, "fileName")
			assert.Contains(t, event.Payload, "addedBy")
		case domain.EventFileDeleted:
			assert.Contains(t, event.Payload, "fileName")
			assert.Contains(t, event.Payload, "deletedBy")
		case domain.EventFileModified:
			assert.Contains(t, event.Payload, "fileName")
			assert.Contains(t, event.Payload, "changes")
		case domain.EventUserJoined, domain.EventUserLeft:
			assert.Contains(t, event.Payload, "user")
		}
	}
}

func TestSimulatorCloseEndsChannel(t *testing.T) {
	s := NewSimulator(SimulatorConfig{Interval: time.Millisecond})

	require.NoError(t, s.Close())

	// Buffered events may still drain, then the channel must close.
	for {
		select {
		case _, ok := <-s.Events():
			if !ok {
				return
			}
		case <-time.After(time.Second):
			t.Fatal("channel did not close after Close")
		}
	}
}

func TestSimulatorCloseIdempotent(t *testing.T) {
	s := NewSimulator(SimulatorConfig{Interval: time.Millisecond})

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestClosedSource(t *testing.T) {
	s := NewClosedSource()

	_, ok := <-s.Events()
	assert.False(t, ok, "closed source must deliver no events")
	require.NoError(t, s.Close())
}
