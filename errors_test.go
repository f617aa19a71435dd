package echoclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindOf(t *testing.T) {
	cause := errors.New("boom")
	for _, p := range []struct {
		err  error
		kind ErrorKind
	}{
		{transportError(cause), ErrorKindTransport},
		{requestBuildError(cause), ErrorKindRequestBuild},
		{serializationError(cause), ErrorKindSerialization},
		{ioError(cause), ErrorKindIO},
		{correlationIDError(cause), ErrorKindCorrelationID},
		{environmentError("missing"), ErrorKindEnvironment},
		{httpResponseError(500), ErrorKindHTTPResponse},
	} {
		t.Run(p.kind.String(), func(t *testing.T) {
			assert.Equal(t, p.kind, ErrorKindOf(p.err))
		})
	}
}

func TestErrorKindOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorKindUnknown, ErrorKindOf(errors.New("not ours")))
	assert.Equal(t, ErrorKindUnknown, ErrorKindOf(nil))
}

func TestErrorUnwrapsToCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := transportError(cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "transport error")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("submitting: %w", serializationError(errors.New("bad value")))
	assert.Equal(t, ErrorKindSerialization, ErrorKindOf(err))
}

func TestHTTPResponseErrorCarriesStatusCode(t *testing.T) {
	err := httpResponseError(503)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 503, e.StatusCode())
	assert.Contains(t, err.Error(), "503")
}

func TestEnvironmentErrorMessage(t *testing.T) {
	err := environmentError("ECHO_COLLECTOR_ENV is not set")
	assert.Contains(t, err.Error(), "ECHO_COLLECTOR_ENV is not set")
	assert.Nil(t, errors.Unwrap(err))
}
