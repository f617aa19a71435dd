package echoclient

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// WriteToJSONWriter writes the event's JSON representation to a streaming writer. Field
// order follows the collector's schema; optional fields that were never set are omitted
// entirely rather than written as null.
func (e Event) WriteToJSONWriter(w *jwriter.Writer) {
	obj := w.Object()
	e.writeFields(&obj)
	obj.End()
}

// MarshalJSON implements json.Marshaler for Event.
func (e Event) MarshalJSON() ([]byte, error) {
	w := jwriter.NewWriter()
	e.WriteToJSONWriter(&w)
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (e Event) writeFields(obj *jwriter.ObjectState) {
	eventType := e.eventType
	if eventType == "" {
		eventType = EventTypeInfo
	}
	obj.Name("routingKey").String(e.routingKey)
	obj.Name("type").String(string(eventType))
	obj.Name("message").String(e.message)
	if e.correlationID != nil {
		obj.Name("correlationId").String(e.correlationID.String())
	}
	if e.timestamp != nil {
		writeInt64(obj.Name("timestamp"), *e.timestamp)
	}
	if len(e.messageDetail) > 0 {
		detail := obj.Name("messageDetail").Object()
		keys := make([]string, 0, len(e.messageDetail))
		for k := range e.messageDetail {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			detail.Name(k).String(e.messageDetail[k])
		}
		detail.End()
	}
	obj.Maybe("host", e.host.IsDefined()).String(e.host.StringValue())
	obj.Maybe("applicationVersion", e.applicationVersion.IsDefined()).String(e.applicationVersion.StringValue())
	obj.Maybe("dataCenter", e.dataCenter.IsDefined()).String(e.dataCenter.StringValue())
	obj.Maybe("clientHostName", e.clientHostName.IsDefined()).String(e.clientHostName.StringValue())
	obj.Maybe("destinationHostName", e.destinationHostName.IsDefined()).String(e.destinationHostName.StringValue())
	obj.Maybe("destinationPath", e.destinationPath.IsDefined()).String(e.destinationPath.StringValue())
	if e.startTimestamp != nil {
		writeUint64(obj.Name("startTimestamp"), uint64(*e.startTimestamp))
	}
	if e.finishTimestamp != nil {
		writeUint64(obj.Name("finishTimestamp"), uint64(*e.finishTimestamp))
	}
	if e.duration != nil {
		writeUint64(obj.Name("duration"), *e.duration)
	}
	if e.durationInMs != nil {
		writeUint64(obj.Name("durationInMs"), *e.durationInMs)
	}
	if e.responseCode != nil {
		obj.Name("responseCode").Int(*e.responseCode)
	}
	if e.response != nil {
		obj.Name("response").String(string(*e.response))
	}
}

// writeUint64 writes a uint64 as an exact JSON integer. Float64 would lose precision
// above 2^53.
func writeUint64(w *jwriter.Writer, value uint64) {
	w.Raw(json.RawMessage(strconv.AppendUint(nil, value, 10)))
}

// writeInt64 writes an int64 as an exact JSON integer.
func writeInt64(w *jwriter.Writer, value int64) {
	w.Raw(json.RawMessage(strconv.AppendInt(nil, value, 10)))
}

// serializeEvents produces the JSON array that becomes the body of a collector request.
func serializeEvents(events []Event) ([]byte, error) {
	w := jwriter.NewWriter()
	arr := w.Array()
	for _, e := range events {
		obj := arr.Object()
		e.writeFields(&obj)
		obj.End()
	}
	arr.End()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
