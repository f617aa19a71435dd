package echoclient

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// Payload is a batch of Events plus the destination and logging context they should be
// delivered with. A Payload is built fresh for each submission; after Dispatcher.Submit
// returns, the dispatcher holds its own copies of everything it needs and the Payload may
// be reused or discarded.
type Payload struct {
	url        CollectorURL
	events     []Event
	loggers    ldlog.Loggers
	hasLoggers bool

	// errorCount and retryCount are carried for observability parity with other Echo
	// clients. Nothing in this client increments or consults them; there is no retry.
	errorCount int //nolint:structcheck,unused
	retryCount int //nolint:structcheck,unused
}

// NewPayload creates an empty Payload addressed to the staging collector.
func NewPayload() *Payload {
	return &Payload{}
}

// SetURL sets the collector endpoint to deliver to.
func (p *Payload) SetURL(url CollectorURL) *Payload {
	p.url = url
	return p
}

// SetEvents replaces the payload's batch of events.
func (p *Payload) SetEvents(events []Event) *Payload {
	p.events = events
	return p
}

// AddEvent appends one event to the batch.
func (p *Payload) AddEvent(event Event) *Payload {
	p.events = append(p.events, event)
	return p
}

// SetLoggers attaches a logging handle that will receive delivery outcomes for this
// payload. Without one, delivery succeeds or fails silently.
func (p *Payload) SetLoggers(loggers ldlog.Loggers) *Payload {
	p.loggers = loggers
	p.hasLoggers = true
	return p
}

// loggersOrDisabled returns the attached loggers, or a no-op logging handle if none were
// ever attached. The zero value of ldlog.Loggers writes to standard error, which is not
// what an absent logging handle should do.
func (p *Payload) loggersOrDisabled() ldlog.Loggers {
	if p.hasLoggers {
		return p.loggers
	}
	return ldlog.NewDisabledLoggers()
}
