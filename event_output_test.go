package echoclient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDefaultEvent(t *testing.T) {
	data, err := json.Marshal(NewEvent())
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"INFO","message":""}`, string(data))
}

func TestSerializeZeroValueEvent(t *testing.T) {
	data, err := json.Marshal(Event{})
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"INFO","message":""}`, string(data))
}

func TestSerializeEventWithMessage(t *testing.T) {
	data, err := json.Marshal(NewEvent().SetMessage("testing"))
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"INFO","message":"testing"}`, string(data))
}

func TestSerializeEventWithType(t *testing.T) {
	data, err := json.Marshal(NewEvent().SetEventType(EventTypePerformance))
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"PERFORMANCE","message":""}`, string(data))
}

func TestSerializeEventLowercasesCorrelationID(t *testing.T) {
	id, err := ParseCorrelationID("35F3E1D6-D859-4AA0-8C58-2CDFE97A4710")
	require.NoError(t, err)

	event := NewEvent().
		SetRoutingKey("atlas-dev-promises").
		SetEventType(EventTypeSystem).
		SetMessage("testing").
		SetCorrelationID(id).
		SetTimestamp(196300801666)

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t,
		`{"routingKey":"atlas-dev-promises","type":"SYSTEM","message":"testing",`+
			`"correlationId":"35f3e1d6-d859-4aa0-8c58-2cdfe97a4710","timestamp":196300801666}`,
		string(data))
}

func TestSerializeFullyPopulatedEvent(t *testing.T) {
	id, err := ParseCorrelationID("35F3E1D6-D859-4AA0-8C58-2CDFE97A4710")
	require.NoError(t, err)

	event := NewEvent().
		SetRoutingKey("atlas-dev-promises").
		SetEventType(EventTypeSystem).
		SetMessage("testing").
		SetCorrelationID(id).
		SetTimestampFromTime(time.Date(1976, time.March, 22, 0, 0, 1, 666000000, time.UTC)).
		SetMessageDetail(map[string]string{"a": "b"}).
		SetHost(ldvalue.NewOptionalString("host")).
		SetApplicationVersion(ldvalue.NewOptionalString("1.2.3")).
		SetDataCenter(ldvalue.NewOptionalString("cdc")).
		SetClientHostName(ldvalue.NewOptionalString("blah")).
		SetDestinationHostName(ldvalue.NewOptionalString("blah1")).
		SetDestinationPath(ldvalue.NewOptionalString("yoda")).
		SetStartTimestamp(1).
		SetFinishTimestamp(2).
		SetDuration(3).
		SetDurationInMs(4).
		SetResponseCode(200).
		SetResponse(ResponseFailure)

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t,
		`{"routingKey":"atlas-dev-promises","type":"SYSTEM","message":"testing",`+
			`"correlationId":"35f3e1d6-d859-4aa0-8c58-2cdfe97a4710","timestamp":196300801666,`+
			`"messageDetail":{"a":"b"},"host":"host","applicationVersion":"1.2.3","dataCenter":"cdc",`+
			`"clientHostName":"blah","destinationHostName":"blah1","destinationPath":"yoda",`+
			`"startTimestamp":1,"finishTimestamp":2,"duration":3,"durationInMs":4,`+
			`"responseCode":200,"response":"failure"}`,
		string(data))
}

func TestUnsetOptionalStringIsOmittedNotNull(t *testing.T) {
	event := NewEvent().SetHost(ldvalue.OptionalString{}).SetDataCenter(ldvalue.OptionalString{})
	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"INFO","message":""}`, string(data))
	assert.NotContains(t, string(data), "null")
}

func TestMessageDetailKeysAreWrittenInStableOrder(t *testing.T) {
	event := NewEvent().SetMessageDetail(map[string]string{"b": "2", "a": "1", "c": "3"})
	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t,
		`{"routingKey":"","type":"INFO","message":"","messageDetail":{"a":"1","b":"2","c":"3"}}`,
		string(data))
}

func TestEmptyMessageDetailIsOmitted(t *testing.T) {
	event := NewEvent().SetMessageDetail(map[string]string{})
	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t, `{"routingKey":"","type":"INFO","message":""}`, string(data))
}

func TestSerializeLargeIntegerFieldsExactly(t *testing.T) {
	// 2^53+1 and math.MaxUint64 are not representable as float64; they must still
	// round-trip digit for digit.
	event := NewEvent().
		SetTimestamp(-9007199254740993).
		SetStartTimestamp(9007199254740993).
		SetFinishTimestamp(18446744073709551615).
		SetDuration(18446744073709551615).
		SetDurationInMs(9007199254740993)
	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t,
		`{"routingKey":"","type":"INFO","message":"","timestamp":-9007199254740993,`+
			`"startTimestamp":9007199254740993,"finishTimestamp":18446744073709551615,`+
			`"duration":18446744073709551615,"durationInMs":9007199254740993}`,
		string(data))
}

func TestSerializeEventsProducesJSONArray(t *testing.T) {
	events := []Event{
		*NewEvent().SetRoutingKey("atlas-dev-promises").SetMessage("one"),
		*NewEvent().SetRoutingKey("atlas-dev-promises").SetEventType(EventTypeError).SetMessage("two"),
	}
	data, err := serializeEvents(events)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"routingKey":"atlas-dev-promises","type":"INFO","message":"one"},`+
			`{"routingKey":"atlas-dev-promises","type":"ERROR","message":"two"}]`,
		string(data))
}

func TestSerializeNoEventsProducesEmptyArray(t *testing.T) {
	data, err := serializeEvents(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}
