package domain

import "time"

type EventType string

const (
	EventFileAdded    EventType = "file_added"
	EventFileDeleted  EventType = "file_deleted"
	EventFileModified EventType = "file_modified"
	EventUserJoined   EventType = "user_joined"
	EventUserLeft     EventType = "user_left"
)

// Event is a typed realtime notification delivered on a single
// consumer channel.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}
