// Package client provides an HTTP client for the Storefront mobile API.
//
// The client wraps [github.com/go-resty/resty/v2] with the request envelope
// the Storefront backend expects (device identification headers, region and
// locale fields, bearer authorization), a per-attempt timeout, idempotency-
// aware retries with exponential backoff, and normalization of the backend's
// inconsistent response shapes into one uniform [Result].
//
// # Basic Usage
//
//	region := client.StaticRegion(client.RegionProfile{
//	    APIBaseURL: "https://api.storefront.example",
//	    Language:   "en",
//	    Region:     "us",
//	    Channel:    "play",
//	    AppVersion: "3.12.0",
//	    AppID:      "storefront-android",
//	})
//
//	c := client.New(region,
//	    client.WithTokenSource(session.Token),
//	)
//
//	res := c.Get(ctx, "/catalog/list")
//	if !res.Success() {
//	    log.Printf("catalog list failed: %v", res.Err())
//	    return
//	}
//
// [Client.Call], [Client.Get] and [Client.Post] never return a Go error:
// every outcome, including timeouts and connection failures, is delivered as a
// [Result] whose Code is "0" on success, the HTTP status when the response
// carried no explicit code, or one of the symbolic transport codes
// [CodeNetworkTimeout] and [CodeNetworkError].
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. For
// environment-driven deployments, [OptionsFromEnv] and [RegionFromEnv] read
// STOREFRONT_-prefixed variables and validate them loudly.
//
// # Retry Behaviour
//
// Reads are always eligible for up to three attempts. Writes are retried
// only when their path is on a curated allow-list of endpoints that are
// idempotent server-side (see [WithRetryableWritePaths]); everything else
// gets exactly one attempt, because repeating an order creation or a payment
// confirmation risks duplicate side effects. A failure triggers another
// attempt only when it is transient: HTTP 408, 429, 500, 502, 503 or 504,
// a timeout, or a transport error whose description matches transient
// network vocabulary. Attempts are separated by exponential backoff with
// jitter, capped at two seconds.
//
// Each attempt rebuilds the request from scratch, so a token refreshed or a
// region switched while a call is retrying is honored by the next attempt.
//
// # Regions and Authentication
//
// The backend is region-sharded: the API base URL and the locale headers all
// come from a [RegionProfile], read through the [RegionSource] passed to
// [New] on every attempt. The bearer token is read the same way through
// [WithTokenSource]; when no token is available the Authorization header is
// sent empty and the backend treats the request as an anonymous session.
// Both accessors must be safe for concurrent use.
//
// # Observability
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to surface
// the client's own diagnostics. Implement [Observer] and supply it via
// [WithObserver] to receive a structured event before every attempt and
// after every outcome; [Metrics] is a ready-made Prometheus implementation.
// Observers cannot influence a call's outcome.
package client
