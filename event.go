package echoclient

import (
	"time"

	"github.com/google/uuid"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// EventType classifies an Event for the collector.
type EventType string

const (
	// EventTypeError is for any message associated with a non-normal action or situation.
	EventTypeError EventType = "ERROR"
	// EventTypeInfo is for any message associated with a normal action or situation. This is
	// the default type of a new Event.
	EventTypeInfo EventType = "INFO"
	// EventTypePerformance is for any message that associates speed or time taken with an
	// action the system processed.
	EventTypePerformance EventType = "PERFORMANCE"
	// EventTypeTracking is for any message that correlates two or more otherwise unassociated
	// events or data points.
	EventTypeTracking EventType = "TRACKING"
	// EventTypeSystem is for client machine performance data (CPU utilization, heap usage, etc.).
	EventTypeSystem EventType = "SYSTEM"
)

// ResponseOutcome is a generic outcome used when an HTTP response code doesn't make sense
// for the event being described.
type ResponseOutcome string

const (
	// ResponseSuccess indicates the described operation succeeded.
	ResponseSuccess ResponseOutcome = "success"
	// ResponseFailure indicates the described operation failed.
	ResponseFailure ResponseOutcome = "failure"
)

// Event is one structured telemetry record destined for the Echo collector.
//
// Events are built with chainable setters and have no identity beyond their value:
//
//	event := echoclient.NewEvent().
//		SetRoutingKey("atlas-dev-promises").
//		SetEventType(echoclient.EventTypeSystem).
//		SetMessage("testing")
//
// The setters mutate the receiver in place; the returned pointer is the same Event.
// Optional fields that were never set are omitted entirely from the serialized form.
type Event struct {
	routingKey          string
	eventType           EventType
	message             string
	correlationID       *uuid.UUID
	timestamp           *int64
	messageDetail       map[string]string
	host                ldvalue.OptionalString
	applicationVersion  ldvalue.OptionalString
	dataCenter          ldvalue.OptionalString
	clientHostName      ldvalue.OptionalString
	destinationHostName ldvalue.OptionalString
	destinationPath     ldvalue.OptionalString
	startTimestamp      *ldtime.UnixMillisecondTime
	finishTimestamp     *ldtime.UnixMillisecondTime
	duration            *uint64
	durationInMs        *uint64
	responseCode        *int
	response            *ResponseOutcome
}

// NewEvent creates an Event with an empty routing key, type EventTypeInfo, an empty
// message, and no optional fields.
func NewEvent() *Event {
	return &Event{eventType: EventTypeInfo}
}

// SetRoutingKey sets the routing key, which identifies the message with an application
// and becomes the ElasticSearch index. Valid characters are lowercase alphanumerics and
// '-'; the key should follow the format <application group>-<application name>-<environment>.
// The format is the caller's responsibility and is not validated here.
func (e *Event) SetRoutingKey(routingKey string) *Event {
	e.routingKey = routingKey
	return e
}

// SetEventType sets the event type.
func (e *Event) SetEventType(eventType EventType) *Event {
	e.eventType = eventType
	return e
}

// SetMessage sets the message. Most messages should be one line of information; deeper
// secondary information belongs in the message detail.
func (e *Event) SetMessage(message string) *Event {
	e.message = message
	return e
}

// SetCorrelationID sets the correlation id.
func (e *Event) SetCorrelationID(id uuid.UUID) *Event {
	e.correlationID = &id
	return e
}

// SetTimestamp sets the event timestamp as milliseconds since the epoch. If unset, the
// collector assigns one on receipt.
func (e *Event) SetTimestamp(millis int64) *Event {
	e.timestamp = &millis
	return e
}

// SetTimestampFromTime sets the event timestamp from a time.Time value.
func (e *Event) SetTimestampFromTime(t time.Time) *Event {
	return e.SetTimestamp(int64(ldtime.UnixMillisFromTime(t)))
}

// SetMessageDetail sets custom key/value pairs for the message, typically used when there
// isn't an appropriate root-level field. A nil or empty map leaves the field absent.
func (e *Event) SetMessageDetail(detail map[string]string) *Event {
	e.messageDetail = detail
	return e
}

// SetHost sets the hostname where the message originated. An undefined value leaves the
// field absent, in which case the collector fills it in.
func (e *Event) SetHost(host ldvalue.OptionalString) *Event {
	e.host = host
	return e
}

// SetApplicationVersion sets the version of the application creating this message.
func (e *Event) SetApplicationVersion(version ldvalue.OptionalString) *Event {
	e.applicationVersion = version
	return e
}

// SetDataCenter sets the datacenter the application is in.
func (e *Event) SetDataCenter(dataCenter ldvalue.OptionalString) *Event {
	e.dataCenter = dataCenter
	return e
}

// SetClientHostName sets the hostname of a client, for messages involving an external
// system calling into this one.
func (e *Event) SetClientHostName(clientHostName ldvalue.OptionalString) *Event {
	e.clientHostName = clientHostName
	return e
}

// SetDestinationHostName sets the hostname of a destination system, for messages involving
// this system calling an external one.
func (e *Event) SetDestinationHostName(destinationHostName ldvalue.OptionalString) *Event {
	e.destinationHostName = destinationHostName
	return e
}

// SetDestinationPath sets the path being called on a destination system.
func (e *Event) SetDestinationPath(destinationPath ldvalue.OptionalString) *Event {
	e.destinationPath = destinationPath
	return e
}

// SetStartTimestamp sets the epoch-millisecond time at which the described event started.
func (e *Event) SetStartTimestamp(t ldtime.UnixMillisecondTime) *Event {
	e.startTimestamp = &t
	return e
}

// SetFinishTimestamp sets the epoch-millisecond time at which the described event finished.
func (e *Event) SetFinishTimestamp(t ldtime.UnixMillisecondTime) *Event {
	e.finishTimestamp = &t
	return e
}

// SetDuration sets the time in milliseconds that passed during the described event.
func (e *Event) SetDuration(duration uint64) *Event {
	e.duration = &duration
	return e
}

// SetDurationInMs sets the time in milliseconds that passed during the described event.
func (e *Event) SetDurationInMs(durationInMs uint64) *Event {
	e.durationInMs = &durationInMs
	return e
}

// SetResponseCode sets the HTTP response code returned by a performance event.
func (e *Event) SetResponseCode(code int) *Event {
	e.responseCode = &code
	return e
}

// SetResponse sets the generic outcome, for events where an HTTP response code doesn't
// make sense.
func (e *Event) SetResponse(response ResponseOutcome) *Event {
	e.response = &response
	return e
}

// ParseCorrelationID parses a correlation id string into a UUID suitable for
// Event.SetCorrelationID. A malformed id yields an error of kind ErrorKindCorrelationID.
func ParseCorrelationID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, correlationIDError(err)
	}
	return id, nil
}
