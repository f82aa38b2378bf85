package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client issues requests against the Storefront API and folds every outcome
// into a [Result] envelope. A single Client is safe for concurrent use; each
// call owns its own retry state and nothing is shared across calls except
// the region and token accessors.
type Client struct {
	http    *resty.Client
	region  RegionSource
	options *Options
}

// New creates a Client. The region source supplies the API base URL and the
// locale header values and is re-read on every attempt; pass
// [StaticRegion] when the region never changes. Configuration is supplied as
// [Option] functions; invalid values are silently ignored and defaults
// retained.
func New(region RegionSource, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	hc := resty.New()
	if options.transport != nil {
		hc.SetTransport(options.transport)
	}

	return &Client{
		http:    hc,
		region:  region,
		options: options,
	}
}

// Get issues a read request. Reads are always eligible for retries.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) *Result {
	return c.Call(ctx, http.MethodGet, path, nil, opts...)
}

// Post issues a write request with a JSON body. Writes are retried only when
// their path is on the idempotent allow-list.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) *Result {
	return c.Call(ctx, http.MethodPost, path, body, opts...)
}

// Call executes one logical request and always returns a Result - transport
// failures, timeouts and malformed responses are reported through the
// envelope, never as an error or panic. Retryable failures on eligible
// requests are retried transparently with exponential backoff; the caller
// only sees the final outcome, while an [Observer] sees every attempt.
func (c *Client) Call(ctx context.Context, method, path string, body any, opts ...CallOption) *Result {
	if c == nil {
		return &Result{Code: CodeNetworkError, Message: "storefront client is nil"}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	co := &callOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(co)
		}
	}

	attempts := 1
	if c.retryEligible(method, path) {
		attempts = c.options.maxAttempts
	}

	// One request ID for all attempts of this call so the backend can
	// correlate retries.
	requestID := uuid.NewString()

	var last *Result
	for attempt := 1; attempt <= attempts; attempt++ {
		res, retryable := c.doAttempt(ctx, method, path, body, co, requestID, attempt)
		if !retryable {
			return res
		}

		last = res
		if attempt == attempts || ctx.Err() != nil {
			break
		}

		wait := backoffDelay(attempt)
		c.options.requestLogger.Warnf("%s %s failed with code %s, retrying in %s (attempt %d/%d)",
			method, path, res.Code, wait, attempt, attempts)
		if err := sleep(ctx, wait); err != nil {
			break
		}
	}

	if last == nil {
		// The loop above always records a failure before exiting, so this
		// guards an invariant violation rather than a reachable path.
		c.options.requestLogger.Errorf("%s %s exhausted %d attempts without recording an outcome", method, path, attempts)
		last = networkErrorResult(nil)
	}
	return last
}

// doAttempt executes a single attempt end to end: build, dispatch with the
// per-attempt timeout, normalize. The second return value reports whether
// this particular failure may be retried; it is false on success.
func (c *Client) doAttempt(ctx context.Context, method, path string, body any, co *callOptions, requestID string, attempt int) (*Result, bool) {
	start := time.Now()

	url, headers, payload, err := c.buildRequest(method, path, body, co, requestID)
	if err != nil {
		res := networkErrorResult(err)
		c.options.observer.OnResponse(ResponseEvent{
			Method:    method,
			URL:       url,
			RequestID: requestID,
			Attempt:   attempt,
			Code:      res.Code,
			Err:       err,
			Elapsed:   time.Since(start),
		})
		c.options.requestLogger.Debugf("%s %s not dispatched: %v", method, path, err)
		return res, retryableTransportError(err)
	}

	c.options.observer.OnRequest(RequestEvent{
		Method:    method,
		URL:       url,
		RequestID: requestID,
		Attempt:   attempt,
	})
	c.options.requestLogger.Debugf("%s %s (attempt %d)", method, url, attempt)

	attemptCtx, cancel := context.WithTimeout(ctx, c.options.timeout)
	defer cancel()

	req := c.http.R().SetContext(attemptCtx).SetHeaders(headers)
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, url)
	elapsed := time.Since(start)

	var res *Result
	var retryable bool
	status := 0

	switch {
	case err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)):
		res = timeoutResult(c.options.timeout)
		retryable = true
	case err != nil:
		res = networkErrorResult(err)
		retryable = retryableTransportError(err)
	default:
		status = resp.StatusCode()
		res = normalize(status, resp.String())
		retryable = retryableStatus(status)
	}

	c.options.observer.OnResponse(ResponseEvent{
		Method:    method,
		URL:       url,
		RequestID: requestID,
		Attempt:   attempt,
		Status:    status,
		Code:      res.Code,
		Err:       err,
		Elapsed:   elapsed,
	})
	if err != nil {
		c.options.requestLogger.Debugf("%s %s failed after %s: %v", method, url, elapsed, err)
	} else {
		c.options.requestLogger.Debugf("%s %s -> %d in %s", method, url, status, elapsed)
	}

	return res, retryable
}

// buildRequest resolves the target URL and assembles headers and body for one
// attempt. It re-reads the region profile and token so that changes between
// attempts take effect, and it serializes the body fresh for the same reason.
func (c *Client) buildRequest(method, path string, body any, co *callOptions, requestID string) (string, map[string]string, []byte, error) {
	profile := RegionProfile{}
	if c.region != nil {
		profile = c.region()
	}

	url, err := resolveURL(profile.APIBaseURL, path, co.baseURL)
	if err != nil {
		return url, nil, nil, err
	}

	headers := c.buildHeaders(profile, requestID)

	var payload []byte
	if !isReadMethod(method) && body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return url, nil, nil, fmt.Errorf("marshal request body: %w", err)
		}
		headers[headerContentType] = "application/json"
	}

	return url, headers, payload, nil
}

// resolveURL picks the request target: an absolute path wins, then a per-call
// override, then the region's configured API base.
func resolveURL(regionBase, path, override string) (string, error) {
	if hasURLScheme(path) {
		return path, nil
	}
	base := override
	if base == "" {
		base = regionBase
	}
	if base == "" {
		return "", errors.New("api base url is not configured")
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/"), nil
}

func hasURLScheme(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	baseURL string
}

// WithBaseURL overrides the region's API base URL for this call only. Useful
// for endpoints hosted off the main API domain.
func WithBaseURL(baseURL string) CallOption {
	return func(co *callOptions) {
		co.baseURL = strings.TrimSpace(baseURL)
	}
}
