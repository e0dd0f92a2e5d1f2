package realtime

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

// Source is the event-source abstraction behind the dashboard's
// realtime widgets. A real backend and the simulator satisfy the same
// contract: typed events on a single channel, teardown by Close.
type Source interface {
	Events() <-chan domain.Event
	Close() error
}

var eventTypes = []domain.EventType{
	domain.EventFileAdded,
	domain.EventFileDeleted,
	domain.EventFileModified,
	domain.EventUserJoined,
	domain.EventUserLeft,
}

var (
	sampleUsers = []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	sampleFiles = []string{"Document.pdf", "Image.png", "Spreadsheet.xlsx", "Presentation.pptx"}
	sampleEdits = []string{"content", "permissions", "name"}
)

// Simulator emits a random typed event at a fixed interval after a
// simulated connection delay. There is no real socket behind it.
type Simulator struct {
	events chan domain.Event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	rnd    *rand.Rand
}

type SimulatorConfig struct {
	ConnectDelay time.Duration
	Interval     time.Duration
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	s := &Simulator{
		events: make(chan domain.Event, 16),
		done:   make(chan struct{}),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.wg.Add(1)
	go s.run(cfg)
	return s
}

func (s *Simulator) Events() <-chan domain.Event {
	return s.events
}

// Close stops the emitter and closes the event channel. Safe to call
// more than once.
func (s *Simulator) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
		close(s.events)
		log.Debug().Msg("Realtime simulation disconnected")
	})
	return nil
}

func (s *Simulator) run(cfg SimulatorConfig) {
	defer s.wg.Done()

	// Connection delay, as if a socket were being established.
	if cfg.ConnectDelay > 0 {
		select {
		case <-s.done:
			return
		case <-time.After(cfg.ConnectDelay):
		}
	}

	log.Debug().Msg("Realtime simulation connected")

	interval := cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			event := s.randomEvent()
			select {
			case s.events <- event:
			case <-s.done:
				return
			}
		}
	}
}

func (s *Simulator) randomEvent() domain.Event {
	eventType := eventTypes[s.rnd.Intn(len(eventTypes))]

	return domain.Event{
		ID:        xid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   s.payloadFor(eventType),
	}
}

func (s *Simulator) payloadFor(eventType domain.EventType) map[string]any {
	user := sampleUsers[s.rnd.Intn(len(sampleUsers))]
	file := sampleFiles[s.rnd.Intn(len(sampleFiles))]

	switch eventType {
	case domain.EventFileAdded:
		return map[string]any{
			"fileName": file,
			"addedBy":  user,
			"size":     fmt.Sprintf("%dKB", s.rnd.Intn(10000)),
		}
	case domain.EventFileDeleted:
		return map[string]any{
			"fileName":  file,
			"deletedBy": user,
		}
	case domain.EventFileModified:
		return map[string]any{
			"fileName":   file,
			"modifiedBy": user,
			"changes":    sampleEdits[s.rnd.Intn(len(sampleEdits))],
		}
	case domain.EventUserJoined, domain.EventUserLeft:
		return map[string]any{
			"user": user,
		}
	default:
		return map[string]any{}
	}
}
