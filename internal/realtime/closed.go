package realtime

import "github.com/cloudnest/cloudnest/pkg/domain"

// closedSource is a Source that never emits, used when the realtime
// simulation is disabled.
type closedSource struct {
	events chan domain.Event
}

func NewClosedSource() Source {
	s := &closedSource{events: make(chan domain.Event)}
	close(s.events)
	return s
}

func (s *closedSource) Events() <-chan domain.Event {
	return s.events
}

func (s *closedSource) Close() error {
	return nil
}
