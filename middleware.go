package busfleet

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Middleware decorates a handler
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mw[0] sees the request first and h sees it last
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return h
}

// trackingWriter remembers the status and body size a handler produced
type trackingWriter struct {
	http.ResponseWriter
	code       int
	bytes      int
	headerSent bool
}

func newTrackingWriter(w http.ResponseWriter) *trackingWriter {
	if tw, ok := w.(*trackingWriter); ok {
		return tw
	}
	return &trackingWriter{ResponseWriter: w, code: http.StatusOK}
}

func (w *trackingWriter) WriteHeader(code int) {
	if w.headerSent {
		return
	}
	w.code, w.headerSent = code, true
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.headerSent = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *trackingWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// RequestIDFrom returns the request ID stored by RequestID, or ""
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestID accepts a caller-supplied UUID or assigns a new one, echoes it in
// the response and stores it in the request context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
		})
	}
}

// Logger writes one access line per request; 5xx responses log at error level
func Logger(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			tw := newTrackingWriter(w)
			next.ServeHTTP(tw, r)
			level := slog.LevelInfo
			if tw.code >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", tw.code),
				slog.Int("bytes", tw.bytes),
				slog.Duration("duration", time.Since(began)),
				slog.String("request_id", RequestIDFrom(r.Context())),
			)
		})
	}
}

// Recover turns a handler panic into a JSON 500. When the handler already
// started its response the connection is left as is and only the log records
// the panic.
func Recover(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := newTrackingWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				log.Error("panic recovered",
					"error", fmt.Sprintf("%v", v),
					"path", r.URL.Path,
					"response_started", tw.headerSent,
				)
				if !tw.headerSent {
					writeDetail(tw, http.StatusInternalServerError, "Internal server error.")
				}
			}()
			next.ServeHTTP(tw, r)
		})
	}
}

// OTel opens a server span per request on the global tracer provider, named
// after the service.
func OTel(serviceName string) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName)
	}
}
