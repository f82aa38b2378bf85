package client

import "time"

// Observer receives an event before every attempt is dispatched and another
// after every attempt's outcome, including transport failures and attempts
// that never reached the network. Implementations feed external logging or
// metrics; they must not block for long and they cannot influence the call -
// the client behaves identically with or without an observer attached.
//
// Supply an implementation via [WithObserver]. [Metrics] is a ready-made
// Prometheus-backed implementation.
type Observer interface {
	OnRequest(RequestEvent)
	OnResponse(ResponseEvent)
}

// RequestEvent describes one attempt about to be dispatched.
type RequestEvent struct {
	// Method and URL identify the request as it goes on the wire.
	Method string
	URL    string

	// RequestID is stable across all attempts of one logical call.
	RequestID string

	// Attempt is 1-based.
	Attempt int
}

// ResponseEvent describes the outcome of one attempt.
type ResponseEvent struct {
	Method    string
	URL       string
	RequestID string
	Attempt   int

	// Status is the HTTP status, or 0 when no response was obtained.
	Status int

	// Code is the normalized envelope code for this attempt.
	Code string

	// Err is the transport-level error, nil when a response was obtained.
	Err error

	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration
}

// NoopObserver is the default [Observer]; it discards all events.
type NoopObserver struct{}

func (NoopObserver) OnRequest(RequestEvent)   {}
func (NoopObserver) OnResponse(ResponseEvent) {}
