package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout     = 12 * time.Second
	defaultMaxAttempts = 3

	maxAttemptsLimit = 10
)

type Option func(*Options)

type Options struct {
	timeout             time.Duration
	maxAttempts         int
	requestLogger       RequestLogger
	observer            Observer
	tokenSource         TokenSource
	requestHeaders      map[string]string
	retryableWritePaths []string
	transport           http.RoundTripper
	userAgent           string
}

func newClientOptions() *Options {
	return &Options{
		timeout:             defaultTimeout,
		maxAttempts:         defaultMaxAttempts,
		requestLogger:       &NoopLogger{},
		observer:            NoopObserver{},
		requestHeaders:      map[string]string{},
		retryableWritePaths: defaultRetryableWritePaths(),
		userAgent:           defaultUserAgent(),
	}
}

// WithTimeout sets the per-attempt timeout. An attempt still in flight when
// the timeout expires is cancelled, not left to finish. Non-positive values
// are ignored and the 12s default is retained.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxAttempts sets the total attempt budget for retry-eligible requests
// (ineligible requests always get exactly one attempt). Values outside 1..10
// are ignored.
func WithMaxAttempts(attempts int) Option {
	return func(o *Options) {
		if attempts >= 1 && attempts <= maxAttemptsLimit {
			o.maxAttempts = attempts
		}
	}
}

// WithRequestLogger supplies the logger for the client's own diagnostics.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithObserver attaches an [Observer] that sees every attempt and outcome.
func WithObserver(observer Observer) Option {
	return func(o *Options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithTokenSource supplies the accessor for the current bearer token. It is
// re-invoked on every attempt, so tokens refreshed mid-call are honored.
func WithTokenSource(source TokenSource) Option {
	return func(o *Options) {
		if source != nil {
			o.tokenSource = source
		}
	}
}

// WithRequestHeader adds a static header sent on every request on top of the
// built-in identification set. Authorization, Content-Type and Accept are
// managed by the client and cannot be overridden here.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, headerAuthorization) ||
			strings.EqualFold(header, headerContentType) ||
			strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithRetryableWritePaths replaces the allow-list of write endpoints that are
// safe to retry. Entries match request paths by exact prefix. Blank entries
// are dropped; an all-blank list is ignored entirely.
func WithRetryableWritePaths(paths ...string) Option {
	return func(o *Options) {
		cleaned := make([]string, 0, len(paths))
		for _, p := range paths {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			o.retryableWritePaths = cleaned
		}
	}
}

// WithTransport replaces the underlying HTTP transport, e.g. to route through
// a proxy or to stub the network in tests.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// Validate reports the first hard configuration error. The With* options
// already refuse invalid values, so a hand-assembled or environment-loaded
// Options is the only way to get here with something broken.
func (o *Options) Validate() error {
	if o.timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if o.maxAttempts < 1 {
		return fmt.Errorf("maxAttempts must be at least 1")
	}
	if o.maxAttempts > maxAttemptsLimit {
		return fmt.Errorf("maxAttempts must not exceed %d", maxAttemptsLimit)
	}
	if o.requestLogger == nil {
		return fmt.Errorf("requestLogger must not be nil")
	}
	if o.observer == nil {
		return fmt.Errorf("observer must not be nil")
	}
	if len(o.retryableWritePaths) == 0 {
		return fmt.Errorf("retryableWritePaths must not be empty")
	}
	if o.userAgent == "" {
		return fmt.Errorf("userAgent must not be empty")
	}
	return nil
}
