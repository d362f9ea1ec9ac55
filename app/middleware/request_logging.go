package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type clientIPKey struct{}

// RemoteIP returns the caller address. The first X-Forwarded-For hop is used
// only when trustProxy is set, i.e. the server runs behind a known proxy.
func RemoteIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIP returns the address resolved by RequestLogger, or the socket peer
// address when the request did not pass through it
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok {
		return ip
	}
	return RemoteIP(r, false)
}

// RequestLogger attaches a request-scoped zerolog logger carrying a request id
// and the resolved client address to the context and logs every served request
func RequestLogger(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requestLogger(next, trustProxy)
	}
}

func requestLogger(next http.Handler, trustProxy bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		ip := RemoteIP(r, trustProxy)

		logger := log.With().
			Str("request_id", rid).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_ip", ip).
			Logger()

		ctx := context.WithValue(logger.WithContext(r.Context()), clientIPKey{}, ip)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		duration := time.Since(start)
		if rec.status >= 500 {
			logger.Error().Int("status", rec.status).Dur("duration", duration).Msg("http request failed")
			return
		}
		logger.Info().Int("status", rec.status).Dur("duration", duration).Msg("http request served")
	})
}
