package logger

import (
	"time"

	"github.com/rs/zerolog"
)

// eventAdapter adapts zerolog events to the LogEvent interface
type eventAdapter struct {
	event *zerolog.Event
}

// Msg logs the message
func (e *eventAdapter) Msg(msg string) {
	e.event.Msg(msg)
}

// Msgf logs a formatted message
func (e *eventAdapter) Msgf(format string, args ...any) {
	e.event.Msgf(format, args...)
}

// Err adds an error to the log event
func (e *eventAdapter) Err(err error) LogEvent {
	return &eventAdapter{event: e.event.Err(err)}
}

// Str adds a string field to the log event
func (e *eventAdapter) Str(key, value string) LogEvent {
	return &eventAdapter{event: e.event.Str(key, value)}
}

// Int adds an integer field to the log event
func (e *eventAdapter) Int(key string, value int) LogEvent {
	return &eventAdapter{event: e.event.Int(key, value)}
}

// Int64 adds an int64 field to the log event
func (e *eventAdapter) Int64(key string, value int64) LogEvent {
	return &eventAdapter{event: e.event.Int64(key, value)}
}

// Dur adds a duration field to the log event
func (e *eventAdapter) Dur(key string, d time.Duration) LogEvent {
	return &eventAdapter{event: e.event.Dur(key, d)}
}

// Interface adds an any field to the log event
func (e *eventAdapter) Interface(key string, i any) LogEvent {
	return &eventAdapter{event: e.event.Interface(key, i)}
}

// Bytes adds a byte slice field to the log event
func (e *eventAdapter) Bytes(key string, val []byte) LogEvent {
	return &eventAdapter{event: e.event.Bytes(key, val)}
}
