package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders_SensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"authorization", "Authorization", "Bearer secret-token"},
		{"proxy authorization", "Proxy-Authorization", "Basic Zm9vOmJhcg=="},
		{"api key", "X-Api-Key", "my-api-key-value"},
		{"cookie", "Cookie", "session=abc123"},
		{"set cookie", "Set-Cookie", "session=abc123; HttpOnly"},
		{"non canonical key", "authorization", "Bearer lower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.key: {tt.value}})

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.key {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.key)
			}
			if attrs[0].Value.String() != redactedValue {
				t.Errorf("%s value = %q, want %q", tt.key, attrs[0].Value.String(), redactedValue)
			}
		})
	}
}

func TestRedactHeaders_PassesThroughRequestHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Content-Type": {"application/json"},
		"X-Request-Id": {"req-123"},
	}
	attrs := middleware.RedactHeaders(headers)

	values := map[string]string{}
	for _, a := range attrs {
		values[a.Key] = a.Value.String()
	}

	if values["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q, want %q", values["Content-Type"], "application/json")
	}
	if values["X-Request-Id"] != "req-123" {
		t.Errorf("X-Request-Id = %q, want %q", values["X-Request-Id"], "req-123")
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Origin":        {"http://localhost:3000"},
		"Authorization": {"Bearer secret"},
		"Accept":        {"application/json"},
		"Content-Type":  {"application/json"},
	}
	attrs := middleware.RedactHeaders(headers)

	want := []string{"Accept", "Authorization", "Content-Type", "Origin"}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, key := range want {
		if attrs[i].Key != key {
			t.Errorf("attrs[%d].Key = %q, want %q", i, attrs[i].Key, key)
		}
	}
}

func TestRedactHeaders_JoinsMultiValueHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Accept": {"text/html", "application/json"},
	}
	attrs := middleware.RedactHeaders(headers)

	if len(attrs) != 1 {
		t.Fatalf("len(attrs) = %d, want 1", len(attrs))
	}
	if attrs[0].Value.String() != "text/html,application/json" {
		t.Errorf("Accept value = %q, want %q", attrs[0].Value.String(), "text/html,application/json")
	}
}

func TestRedactHeaders_EmptyHeaders(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0 for empty headers", len(attrs))
	}
}
