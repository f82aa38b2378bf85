package client

// RegionProfile supplies the API base URL and the locale/channel values the
// Storefront API expects in its request headers. The client treats every
// field as an opaque header value; it never interprets or validates them.
//
// Profiles are read through a [RegionSource] on every attempt rather than
// captured at construction, so switching region at runtime takes effect on
// the very next request - including the retry attempts of a call that is
// already in flight.
type RegionProfile struct {
	// APIBaseURL is the scheme://host[:port] prefix requests are sent to,
	// unless the caller passes an absolute URL or a per-call override.
	APIBaseURL string

	Language       string
	Region         string
	Channel        string
	AppVersion     string
	AppID          string
	Timezone       string
	TimezoneOffset string
	AcceptLanguage string
}

// RegionSource returns the current region profile. It is invoked once per
// attempt and must be safe to call concurrently from multiple in-flight
// calls; it must not mutate shared state as a side effect of being read.
type RegionSource func() RegionProfile

// TokenSource returns the current bearer token, or the empty string when no
// token is available. Like [RegionSource] it is invoked once per attempt -
// a token refreshed between attempts is picked up by the next retry - and
// must be safe for concurrent use.
type TokenSource func() string

// StaticRegion returns a RegionSource that always yields p. Use it when the
// region never changes for the lifetime of the client.
func StaticRegion(p RegionProfile) RegionSource {
	return func() RegionProfile { return p }
}

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func() string { return token }
}
