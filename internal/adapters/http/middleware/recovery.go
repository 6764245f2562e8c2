package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/dto"
)

// errPanic stands in for the panic value when building the client response,
// which always carries the generic unexpected-error message.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic is logged with its stack and the request ID that RequestID has
// already placed on the response headers, and the client receives the generic
// 500 error body. If the response headers have already been written, only
// the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", rw.Header().Get(headerRequestID)),
					)

					if !rw.headerWritten {
						dto.WriteErrorResponse(rw, r, errPanic)
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
