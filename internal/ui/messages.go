package ui

import (
	"swiper/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// nativeClosedMsg reports the page ov was on when it exited
type nativeClosedMsg struct {
	position int
	err      error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
