package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageSelected     EventType = "PageSelected"
	EventPagerChanged     EventType = "PagerChanged"
	EventPageDiscovered   EventType = "PageDiscovered"
	EventScanStarted      EventType = "ScanStarted"
	EventScanCompleted    EventType = "ScanCompleted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventNativePagerOpen  EventType = "NativePagerOpened"
	EventNativePagerClose EventType = "NativePagerClosed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageSelectedEvent is emitted exactly once per committed page transition
type PageSelectedEvent struct {
	Position int
}

func (e PageSelectedEvent) Type() EventType { return EventPageSelected }

// NativeEvent returns the event in the {nativeEvent: {position}} shape
func (e PageSelectedEvent) NativeEvent() map[string]any {
	return map[string]any{
		"nativeEvent": map[string]any{"position": e.Position},
	}
}

// PagerChangedEvent carries a snapshot of the paging state. It is published
// on every offset and index change.
type PagerChangedEvent struct {
	Index     int
	Offset    float64
	Phase     Phase
	Direction Direction
}

func (e PagerChangedEvent) Type() EventType { return EventPagerChanged }

// PageDiscoveredEvent is emitted when a page source finds a new page
type PageDiscoveredEvent struct {
	Index int
	Path  string
}

func (e PageDiscoveredEvent) Type() EventType { return EventPageDiscovered }

// ScanStartedEvent is emitted when page discovery begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when page discovery completes
type ScanCompletedEvent struct {
	PagesFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ErrorEvent is emitted when an error occurs outside the paging core
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// NativePagerOpenedEvent is emitted when the native backend takes over the terminal
type NativePagerOpenedEvent struct {
	Start int
}

func (e NativePagerOpenedEvent) Type() EventType { return EventNativePagerOpen }

// NativePagerClosedEvent is emitted when the native backend hands the terminal back
type NativePagerClosedEvent struct {
	Position int
}

func (e NativePagerClosedEvent) Type() EventType { return EventNativePagerClose }
