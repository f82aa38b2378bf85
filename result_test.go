package client

import (
	"strings"
	"testing"
	"time"
)

func TestNormalize_EmptyBody(t *testing.T) {
	t.Parallel()

	res := normalize(200, "")

	if res.Code != "200" {
		t.Errorf("expected code=200, got %s", res.Code)
	}

	if res.Data != nil {
		t.Errorf("expected nil payload, got %v", res.Data)
	}

	if res.Message != "" {
		t.Errorf("expected empty message, got %s", res.Message)
	}
}

func TestNormalize_EmptyBodyOnErrorStatus(t *testing.T) {
	t.Parallel()

	res := normalize(503, "   ")

	if res.Code != "503" {
		t.Errorf("expected code=503, got %s", res.Code)
	}

	if res.Message != "Service Unavailable" {
		t.Errorf("expected status text message, got %s", res.Message)
	}
}

func TestNormalize_ExplicitCodePreserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string code on 200", 200, `{"code":"0"}`, "0"},
		{"string error code on 200", 200, `{"code":"2042"}`, "2042"},
		{"numeric zero on 200", 200, `{"code":0}`, "0"},
		{"numeric code beats status", 500, `{"code":7}`, "7"},
		{"symbolic code beats status", 403, `{"code":"AUTH_EXPIRED"}`, "AUTH_EXPIRED"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := normalize(tt.status, tt.body)

			if res.Code != tt.want {
				t.Errorf("expected code=%s, got %s", tt.want, res.Code)
			}
		})
	}
}

func TestNormalize_MissingCodeDefaultsToStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"object without code", 200, `{"items":[]}`, "200"},
		{"array body", 200, `[1,2,3]`, "200"},
		{"object without code on 404", 404, `{"hint":"gone"}`, "404"},
		{"non-scalar code field", 200, `{"code":{"nested":true}}`, "200"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := normalize(tt.status, tt.body)

			if res.Code != tt.want {
				t.Errorf("expected code=%s, got %s", tt.want, res.Code)
			}
		})
	}
}

func TestNormalize_DataMemberBecomesPayload(t *testing.T) {
	t.Parallel()

	res := normalize(200, `{"code":"0","message":"ok","data":{"total":"12.99"}}`)

	data, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", res.Data)
	}

	if data["total"] != "12.99" {
		t.Errorf("expected data member as payload, got %v", data)
	}
}

func TestNormalize_WholeBodyIsPayloadWithoutData(t *testing.T) {
	t.Parallel()

	res := normalize(200, `{"items":[1],"more":false}`)

	data, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", res.Data)
	}

	if _, ok := data["items"]; !ok {
		t.Errorf("expected whole parsed body as payload, got %v", data)
	}
}

func TestNormalize_NonJSONBody(t *testing.T) {
	t.Parallel()

	res := normalize(500, "Internal Server Error")

	if res.Code != "500" {
		t.Errorf("expected code=500, got %s", res.Code)
	}

	if res.Message != "Internal Server Error" {
		t.Errorf("expected raw text as message, got %s", res.Message)
	}

	if res.Data != nil {
		t.Errorf("expected no payload, got %v", res.Data)
	}
}

func TestNormalize_TrailingGarbageIsNotJSON(t *testing.T) {
	t.Parallel()

	// Starts like a JSON number but is plain text; must not be truncated
	// into a payload of 404.
	res := normalize(404, "404 page not found")

	if res.Code != "404" {
		t.Errorf("expected code=404, got %s", res.Code)
	}

	if res.Message != "404 page not found" {
		t.Errorf("expected raw text as message, got %s", res.Message)
	}

	if res.Data != nil {
		t.Errorf("expected no payload, got %v", res.Data)
	}
}

func TestNormalize_MessageLifted(t *testing.T) {
	t.Parallel()

	res := normalize(400, `{"message":"quantity must be positive"}`)

	if res.Message != "quantity must be positive" {
		t.Errorf("expected lifted message, got %s", res.Message)
	}

	if res.Code != "400" {
		t.Errorf("expected code=400, got %s", res.Code)
	}
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	if !(&Result{Code: CodeOK}).Success() {
		t.Error("expected code 0 to be success")
	}

	if (&Result{Code: "200"}).Success() {
		t.Error("expected code 200 to be failure")
	}

	var nilResult *Result
	if nilResult.Success() {
		t.Error("expected nil result to be failure")
	}
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	if err := (&Result{Code: CodeOK}).Err(); err != nil {
		t.Errorf("expected nil error on success, got %v", err)
	}

	err := (&Result{Code: "503", Message: "Service Unavailable"}).Err()
	if err == nil {
		t.Fatal("expected error on failure")
	}

	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "Service Unavailable") {
		t.Errorf("expected code and message in error text, got: %v", err)
	}
}

func TestResult_DecodeData(t *testing.T) {
	t.Parallel()

	res := normalize(200, `{"code":"0","data":{"total":"12.99","qty":2}}`)

	var quote struct {
		Total string `json:"total"`
		Qty   int    `json:"qty"`
	}
	if err := res.DecodeData(&quote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Total != "12.99" || quote.Qty != 2 {
		t.Errorf("unexpected decoded value: %+v", quote)
	}
}

func TestResult_DecodeDataWithoutPayload(t *testing.T) {
	t.Parallel()

	res := normalize(200, "")

	var v map[string]any
	if err := res.DecodeData(&v); err == nil {
		t.Error("expected error for missing data")
	}
}

func TestTimeoutResult(t *testing.T) {
	t.Parallel()

	res := timeoutResult(12 * time.Second)

	if res.Code != CodeNetworkTimeout {
		t.Errorf("expected code=%s, got %s", CodeNetworkTimeout, res.Code)
	}

	if !strings.Contains(res.Message, "12s") {
		t.Errorf("expected message to name the timeout, got %s", res.Message)
	}
}

func TestNetworkErrorResult_FallbackMessage(t *testing.T) {
	t.Parallel()

	res := networkErrorResult(nil)

	if res.Code != CodeNetworkError {
		t.Errorf("expected code=%s, got %s", CodeNetworkError, res.Code)
	}

	if res.Message != "network request failed" {
		t.Errorf("expected generic fallback message, got %s", res.Message)
	}
}
