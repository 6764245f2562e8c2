package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders holds canonical header names whose values never reach the logs.
var sensitiveHeaders = map[string]struct{}{
	"Authorization":       {},
	"Proxy-Authorization": {},
	"X-Api-Key":           {},
	"Cookie":              {},
	"Set-Cookie":          {},
}

// RedactHeaders converts headers into slog attributes sorted by name so
// debug lines are stable between requests. Sensitive values are replaced and
// multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if _, ok := sensitiveHeaders[http.CanonicalHeaderKey(key)]; ok {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}
