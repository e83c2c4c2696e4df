package telemetry

import "github.com/modelfetch/telemetry/pkg/optional"

// LogEvent is the top-level record handed to the telemetry backend. It pairs
// an event name with an optional SystemInfo and an optional
// ModelDownloadLogEvent; absent nested objects are omitted from the wire
// form entirely. Built events are immutable and freely shareable across
// goroutines.
type LogEvent struct {
	eventName  EventName
	systemInfo *SystemInfo
	download   *ModelDownloadLogEvent
	valid      bool
}

func (e LogEvent) EventName() EventName { return e.eventName }

// SystemInfo returns the attached SystemInfo and whether one is present.
func (e LogEvent) SystemInfo() (SystemInfo, bool) {
	if e.systemInfo == nil {
		return SystemInfo{}, false
	}
	return *e.systemInfo, true
}

// ModelDownloadLogEvent returns the attached download event and whether one
// is present.
func (e LogEvent) ModelDownloadLogEvent() (ModelDownloadLogEvent, bool) {
	if e.download == nil {
		return ModelDownloadLogEvent{}, false
	}
	return *e.download, true
}

// WithSystemInfo returns a copy of the event with info attached, replacing
// any SystemInfo already present. The receiver is left untouched.
func (e LogEvent) WithSystemInfo(info SystemInfo) (LogEvent, error) {
	return e.ToBuilder().SetSystemInfo(info).Build()
}

// ToBuilder returns a builder pre-populated with the event's fields, for
// deriving a modified copy. Deriving from a zero LogEvent that never went
// through a builder yields a builder that fails Build the same way a fresh
// one would.
func (e LogEvent) ToBuilder() *LogEventBuilder {
	b := NewLogEventBuilder()
	if e.valid {
		b.eventName.Set(e.eventName)
	}
	if e.systemInfo != nil {
		info := *e.systemInfo
		b.systemInfo = &info
	}
	if e.download != nil {
		download := *e.download
		b.download = &download
	}
	return b
}

// LogEventBuilder accumulates LogEvent fields until Build validates them.
// Only the event name is required; the nested objects are independently
// optional and stay absent unless set.
type LogEventBuilder struct {
	eventName  optional.Value[EventName]
	systemInfo *SystemInfo
	download   *ModelDownloadLogEvent
}

// NewLogEventBuilder returns a fresh builder with no fields set.
func NewLogEventBuilder() *LogEventBuilder {
	return &LogEventBuilder{}
}

func (b *LogEventBuilder) SetEventName(name EventName) *LogEventBuilder {
	b.eventName.Set(name)
	return b
}

func (b *LogEventBuilder) SetSystemInfo(info SystemInfo) *LogEventBuilder {
	b.systemInfo = &info
	return b
}

func (b *LogEventBuilder) SetModelDownloadLogEvent(event ModelDownloadLogEvent) *LogEventBuilder {
	b.download = &event
	return b
}

// Build returns an immutable LogEvent, or a *MissingFieldError when the
// event name was never set.
func (b *LogEventBuilder) Build() (LogEvent, error) {
	name, ok := b.eventName.Get()
	if !ok {
		return LogEvent{}, missingField("LogEvent", "eventName")
	}

	evt := LogEvent{eventName: name, valid: true}
	if b.systemInfo != nil {
		info := *b.systemInfo
		evt.systemInfo = &info
	}
	if b.download != nil {
		download := *b.download
		evt.download = &download
	}
	return evt, nil
}
