package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Result codes that do not originate from an HTTP response. Any other code is
// either the literal success code "0", a code reported by the API itself, or
// the decimal HTTP status of a response that carried no explicit code.
const (
	// CodeOK is the API's success code.
	CodeOK = "0"

	// CodeNetworkTimeout marks an attempt that was cancelled because it
	// exceeded the configured timeout (or because the caller's context
	// was cancelled mid-flight).
	CodeNetworkTimeout = "NETWORK_TIMEOUT"

	// CodeNetworkError marks an attempt that failed before any HTTP
	// response was obtained.
	CodeNetworkError = "NETWORK_ERROR"
)

// Result is the uniform outcome of every call. Exactly one Result is returned
// per call regardless of how the request fared; Code is always set.
//
// The Storefront API is not consistent about its response shapes: some
// endpoints return the documented {code, message, data} envelope while others
// return bare JSON or plain text. Result smooths all of that into one
// structure so callers only ever check Code.
type Result struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success reports whether the call succeeded, i.e. whether the API returned
// its explicit success code.
func (r *Result) Success() bool {
	return r != nil && r.Code == CodeOK
}

// Err returns nil for a success envelope and an [*APIError] carrying the code
// and message otherwise. It lets callers fold the envelope back into ordinary
// Go error handling.
func (r *Result) Err() error {
	if r.Success() {
		return nil
	}
	if r == nil {
		return &APIError{Code: CodeNetworkError, Message: "nil result"}
	}
	return &APIError{Code: r.Code, Message: r.Message}
}

// DecodeData unmarshals the payload into v. It fails when the envelope
// carries no payload or when the payload does not fit v.
func (r *Result) DecodeData(v any) error {
	if r == nil || r.Data == nil {
		return errors.New("result carries no data")
	}
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("re-encode result data: %w", err)
	}
	return json.Unmarshal(raw, v)
}

// APIError is the error form of a failure envelope.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "api error " + e.Code
	}
	return "api error " + e.Code + ": " + e.Message
}

// normalize converts a raw HTTP outcome into a Result. It never fails: bodies
// that are not the expected shape degrade to error envelopes instead.
//
// An empty body yields an empty payload with the status as code. A JSON body
// keeps its own "code" field verbatim when present (the HTTP status never
// overwrites an explicit code) and defaults to the status otherwise; a "data"
// member becomes the payload, or the whole parsed structure when there is
// none. Anything that does not parse as JSON is carried as the error message.
func normalize(status int, body string) *Result {
	statusCode := strconv.Itoa(status)

	if strings.TrimSpace(body) == "" {
		res := &Result{Code: statusCode}
		if status >= http.StatusBadRequest {
			res.Message = http.StatusText(status)
		}
		return res
	}

	parsed, ok := decodeJSON(body)
	if !ok {
		return &Result{Code: statusCode, Message: body}
	}

	res := &Result{Code: statusCode, Data: parsed}
	obj, isObject := parsed.(map[string]any)
	if isObject {
		if code, ok := envelopeCode(obj); ok {
			res.Code = code
		}
		if msg, ok := obj["message"].(string); ok {
			res.Message = msg
		}
		if data, ok := obj["data"]; ok {
			res.Data = data
		}
	}
	if res.Message == "" && res.Code != CodeOK && status >= http.StatusBadRequest {
		res.Message = http.StatusText(status)
	}
	return res
}

// decodeJSON parses body as a single complete JSON value. Numbers are kept as
// json.Number so numeric codes survive verbatim. Trailing non-JSON text (for
// example "404 page not found") fails the parse rather than being silently
// truncated.
func decodeJSON(body string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return parsed, true
}

func envelopeCode(obj map[string]any) (string, bool) {
	raw, ok := obj["code"]
	if !ok {
		return "", false
	}
	switch code := raw.(type) {
	case string:
		return code, true
	case json.Number:
		return code.String(), true
	}
	return "", false
}

func timeoutResult(timeout time.Duration) *Result {
	return &Result{
		Code:    CodeNetworkTimeout,
		Message: fmt.Sprintf("request timed out after %s", timeout),
	}
}

func networkErrorResult(err error) *Result {
	msg := "network request failed"
	if err != nil {
		msg = err.Error()
	}
	return &Result{Code: CodeNetworkError, Message: msg}
}
