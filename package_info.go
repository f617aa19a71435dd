// Package echoclient is a client library for sending telemetry events to the Echo collector
// service.
//
// Applications construct [Event] values describing things that happened (errors, performance
// measurements, tracking data), batch them into a [Payload], and hand the payload to a
// [Dispatcher]. The dispatcher serializes the events to JSON and delivers them to the collector
// over HTTPS on a background goroutine, so submitting a payload never blocks the caller.
//
// Delivery is fire-and-forget: the dispatcher does not retry, does not persist failed payloads,
// and reports delivery outcomes only through the optional logging handle attached to the
// payload (see Payload.SetLoggers). Callers that do not attach loggers receive no delivery
// feedback at all.
//
// The subpackage [github.com/krogertechnology/go-echo-client/echohttp] provides helpers for
// customizing the HTTPS transport used by the dispatcher.
package echoclient
