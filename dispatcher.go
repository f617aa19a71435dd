package echoclient

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/krogertechnology/go-echo-client/echohttp"
)

// collectorPoolSize bounds the number of concurrent connections the shared HTTP client
// will open to a collector host.
const collectorPoolSize = 4

// Dispatcher delivers payloads to the Echo collector asynchronously. It owns one
// long-lived HTTPS-capable HTTP client that is shared, read-only, by every submission for
// the dispatcher's lifetime, so a single Dispatcher should be created once and reused.
//
// All methods are safe for concurrent use from any goroutine.
type Dispatcher struct {
	httpClient *http.Client
	inFlight   sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with a default HTTPS transport. It fails only if the
// transport cannot be constructed; such a failure is fatal for the instance, and there is
// no partial construction to recover from.
func NewDispatcher() (*Dispatcher, error) {
	return NewDispatcherWithTransportOptions(echohttp.PoolSizeOption(collectorPoolSize))
}

// NewDispatcherWithTransportOptions creates a Dispatcher whose HTTPS transport is built
// with the given echohttp options, for callers that need custom CA certificates or
// connection tuning.
func NewDispatcherWithTransportOptions(options ...echohttp.TransportOption) (*Dispatcher, error) {
	transport, err := echohttp.NewHTTPTransport(options...)
	if err != nil {
		return nil, transportError(err)
	}
	return &Dispatcher{httpClient: &http.Client{Transport: transport}}, nil
}

// Submit schedules asynchronous delivery of a payload and returns without waiting for the
// HTTP exchange. The only failure Submit itself can report is a serialization failure, in
// which case no delivery is scheduled. Every later outcome - success, a non-2xx response,
// or a transport failure - is reported only through the payload's logging handle, if one
// was attached; a failed delivery is never retried and cannot affect the dispatcher or any
// other submission.
//
// Submit copies everything it needs out of the payload before returning, so the caller may
// immediately reuse or discard the payload and its events.
func (d *Dispatcher) Submit(payload *Payload) error {
	body, err := serializeEvents(payload.events)
	if err != nil {
		return serializationError(err)
	}

	// Capture the few values crossing into the background goroutine; the payload itself
	// does not.
	client := d.httpClient
	loggers := payload.loggersOrDisabled()
	uri := payload.url.String()

	d.inFlight.Add(1)
	go func() {
		defer d.inFlight.Done()
		_ = deliver(client, loggers, uri, body)
	}()
	return nil
}

// deliver performs one HTTP exchange with the collector. Every failure is logged and
// returned as a kinded error; the caller at the goroutine boundary discards it.
func deliver(client *http.Client, loggers ldlog.Loggers, uri string, body []byte) error {
	req, err := http.NewRequest("POST", uri, bytes.NewReader(body))
	if err != nil {
		loggers.Errorf("Unable to build Echo collector request: %s", err)
		return requestBuildError(err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		loggers.Errorf("Error sending Echo payload: %s", err)
		return transportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		loggers.Debug("Successfully sent payload to echo")
		return nil
	}

	loggers.Errorf("%s error sending Echo payload: status %d", classifyStatus(resp.StatusCode), resp.StatusCode)
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		loggers.Errorf("Error reading Echo collector response body: %s", err)
		return ioError(err)
	}
	loggers.Error(strings.ToValidUTF8(string(respBody), "\ufffd"))
	return httpResponseError(resp.StatusCode)
}

// classifyStatus names the class of a non-2xx status for log clarity.
func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return "Client"
	case statusCode >= 500 && statusCode < 600:
		return "Server"
	default:
		return "Unknown"
	}
}
