package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowsLoadedBatch  EventType = "RowsLoadedBatch"
	EventLoadStarted      EventType = "LoadStarted"
	EventLoadCompleted    EventType = "LoadCompleted"
	EventReferenceChanged EventType = "ReferenceChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventError            EventType = "Error"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RowsLoadedBatchEvent reports a batch of rows handed to the row store
type RowsLoadedBatchEvent struct {
	Load   uint64 // sequence number of the load, starting at 1
	Size   int
	Loaded int // rows loaded so far, this batch included
}

func (e RowsLoadedBatchEvent) Type() EventType { return EventRowsLoadedBatch }

// LoadStartedEvent is emitted when the data source starts producing rows
type LoadStartedEvent struct {
	Load      uint64
	Requested int
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// LoadCompletedEvent is emitted when the data source is done
type LoadCompletedEvent struct {
	Load     uint64
	Count    int
	Canceled bool
}

func (e LoadCompletedEvent) Type() EventType { return EventLoadCompleted }

// ReferenceChangedEvent is emitted when the selectable universe is replaced
type ReferenceChangedEvent struct {
	Size       int
	Complement int
	Version    uint64
}

func (e ReferenceChangedEvent) Type() EventType { return EventReferenceChanged }

// SelectionChangedEvent is emitted after every selection command
type SelectionChangedEvent struct {
	Command    string
	Added      []int
	Removed    []int
	Total      int // selected ids, including ids outside the reference
	Reference  int
	Complement int
	Version    uint64
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct {
	Reference int
	Version   uint64
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
