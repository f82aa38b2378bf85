package client

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"
)

// Backoff schedule between attempts: base × 2^(attempt-1) plus up to
// jitterMax of random jitter, never more than backoffCap in total.
const (
	backoffBase = 220 * time.Millisecond
	backoffCap  = 2 * time.Second
	jitterMax   = 120 * time.Millisecond
)

// retryableStatusCodes are the response statuses treated as transient. Client
// errors outside this set are terminal and returned immediately.
var retryableStatusCodes = map[int]bool{
	http.StatusRequestTimeout:      true, // 408
	http.StatusTooManyRequests:     true, // 429
	http.StatusInternalServerError: true, // 500
	http.StatusBadGateway:          true, // 502
	http.StatusServiceUnavailable:  true, // 503
	http.StatusGatewayTimeout:      true, // 504
}

// transientNetworkTerms is the vocabulary that classifies a transport error
// as transient when none of the structured checks match. Matched
// case-insensitively as substrings of the error text.
var transientNetworkTerms = []string{"timeout", "network", "socket", "fetch"}

// defaultRetryableWritePaths lists the write endpoints known to be idempotent
// server-side and therefore safe to repeat. This is a curated judgment, not a
// property derivable from the path: retrying an order creation or a payment
// confirmation risks duplicate side effects, while these lookup-style POST
// endpoints do not. Entries match by exact prefix. Replace the list with
// [WithRetryableWritePaths] when targeting a different endpoint surface.
func defaultRetryableWritePaths() []string {
	return []string{
		"/catalog/list",
		"/catalog/detail",
		"/price/quote",
		"/account/lookup",
	}
}

// retryEligible reports whether a request may be attempted more than once.
// Reads always are; writes only when their path is on the allow-list.
func (c *Client) retryEligible(method, path string) bool {
	if isReadMethod(method) {
		return true
	}
	for _, prefix := range c.options.retryableWritePaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isReadMethod(method string) bool {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func retryableStatus(status int) bool {
	return retryableStatusCodes[status]
}

// retryableTransportError reports whether a failure to obtain any HTTP
// response is worth another attempt. Cancellations and timeouts are; so is
// anything whose description matches the transient-network vocabulary.
func retryableTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, term := range transientNetworkTerms {
		if strings.Contains(msg, term) {
			return true
		}
	}
	return false
}

// backoffDelay returns the wait before the attempt following the given
// 1-based failed attempt.
func backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := backoffBase
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= backoffCap {
			delay = backoffCap
			break
		}
	}
	delay += time.Duration(rand.Int63n(int64(jitterMax)))
	if delay > backoffCap {
		delay = backoffCap
	}
	return delay
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
