package models

import "time"

// EventType names a change pushed to a session's browsers.
type EventType string

const (
	EventSlide   EventType = "slide"
	EventLoading EventType = "loading"
	EventTheme   EventType = "theme"
	EventState   EventType = "state"
)

// Event is a state change of one view root.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	Index     int       `json:"index"`
	Loading   bool      `json:"loading"`
	Dark      bool      `json:"dark"`
	Timestamp time.Time `json:"timestamp"`
}
