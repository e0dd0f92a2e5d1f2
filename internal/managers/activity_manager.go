package managers

import (
	"context"
	"sort"
	"sync"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

const defaultActivityCapacity = 20

// ActivityManager is the single consumer of the realtime event
// channel. It keeps the most recent events for the activity feed and
// tracks presence from join/leave events. Its goroutine ends when the
// source channel closes.
type ActivityManager struct {
	mu       sync.RWMutex
	recent   []domain.Event
	present  map[string]bool
	capacity int
	done     chan struct{}
}

type ActivityManagerDependencies struct {
	Events   <-chan domain.Event
	Capacity int
}

func NewActivityManager(deps ActivityManagerDependencies) *ActivityManager {
	capacity := deps.Capacity
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}

	m := &ActivityManager{
		present:  make(map[string]bool),
		capacity: capacity,
		done:     make(chan struct{}),
	}

	go m.consume(deps.Events)
	return m
}

func (m *ActivityManager) consume(events <-chan domain.Event) {
	defer close(m.done)

	for event := range events {
		m.record(event)
	}
}

func (m *ActivityManager) record(event domain.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recent = append([]domain.Event{event}, m.recent...)
	if len(m.recent) > m.capacity {
		m.recent = m.recent[:m.capacity]
	}

	user, _ := event.Payload["user"].(string)
	switch event.Type {
	case domain.EventUserJoined:
		if user != "" {
			m.present[user] = true
		}
	case domain.EventUserLeft:
		if user != "" {
			delete(m.present, user)
		}
	}
}

// Recent returns the newest events first.
func (m *ActivityManager) Recent(ctx context.Context) ([]domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.Event(nil), m.recent...), nil
}

func (m *ActivityManager) Presence(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]string, 0, len(m.present))
	for user := range m.present {
		users = append(users, user)
	}
	sort.Strings(users)
	return users, nil
}

// Wait blocks until the consumer goroutine has drained the closed
// source channel.
func (m *ActivityManager) Wait() {
	<-m.done
}
