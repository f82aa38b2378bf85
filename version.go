package client

// Version is the library version reported in the User-Agent header of every
// request. Override at build time with -ldflags "-X ...client.Version=...".
var Version = "0.4.0"

func defaultUserAgent() string {
	return "storefront-go-client/" + Version
}
