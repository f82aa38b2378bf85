package client

// Header names for values that are derived per attempt rather than fixed.
const (
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	headerAcceptLanguage = "Accept-Language"
	headerUserAgent      = "User-Agent"
	headerRequestID      = "x-request-id"

	headerLanguage       = "x-client-lang"
	headerRegion         = "x-client-region"
	headerChannel        = "x-client-channel"
	headerAppVersion     = "x-client-app-version"
	headerAppID          = "x-client-app-id"
	headerTimezone       = "x-client-timezone"
	headerTimezoneOffset = "x-client-timezone-offset"
)

// staticHeaders is the fixed device/client identification set the Storefront
// backend expects on every request. The values mirror what the mobile app
// sends; the backend rejects requests without the x-client-* block.
func staticHeaders() map[string]string {
	return map[string]string{
		"Accept":              "application/json",
		"Cache-Control":       "no-cache",
		"Pragma":              "no-cache",
		"x-client-type":       "app",
		"x-client-platform":   "android",
		"x-client-os-version": "33",
		"x-client-device":     "phone",
		"x-client-brand":      "generic",
		"x-client-model":      "sdk",
		"x-client-network":    "wifi",
		"x-client-screen":     "1080x2340",
		"x-client-dpi":        "420",
		"x-client-build":      "release",
		"x-api-version":       "2",
	}
}

// buildHeaders assembles the header map for one attempt: the static table,
// any caller-supplied extras, the region-derived fields, and authorization.
// It is called fresh on every attempt so a token refreshed or a region
// switched between retries is honored.
//
// When no token is available the Authorization header is sent with an empty
// value; the backend treats the empty value as an anonymous session.
func (c *Client) buildHeaders(profile RegionProfile, requestID string) map[string]string {
	h := staticHeaders()
	h[headerUserAgent] = c.options.userAgent

	for k, v := range c.options.requestHeaders {
		h[k] = v
	}

	h[headerLanguage] = profile.Language
	h[headerRegion] = profile.Region
	h[headerChannel] = profile.Channel
	h[headerAppVersion] = profile.AppVersion
	h[headerAppID] = profile.AppID
	h[headerTimezone] = profile.Timezone
	h[headerTimezoneOffset] = profile.TimezoneOffset
	h[headerAcceptLanguage] = profile.AcceptLanguage

	h[headerRequestID] = requestID

	token := ""
	if c.options.tokenSource != nil {
		token = c.options.tokenSource()
	}
	h[headerAuthorization] = token

	return h
}
