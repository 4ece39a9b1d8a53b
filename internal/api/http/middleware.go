package http

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/ratelimit"
	"jobboard-backend/internal/security"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id or mints one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				logger.ErrorContext(r.Context(), "Handler panicked", "panic", rv, "stack", string(debug.Stack()))
				writeError(w, r, fmt.Errorf("panic: %v", rv))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Auth enforces the security level configured for the matched route and puts
// the caller on the context.
func Auth(tm security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			level := config.SecurityAccess
			if route := mux.CurrentRoute(r); route != nil {
				level = config.GetSecurityLevel(route.GetName())
			}
			if level == config.SecurityPublic {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				if level == config.SecurityOptional {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, r, fmt.Errorf("authorization token is not provided: %w", errUnauthenticated))
				return
			}

			claims, err := tm.ValidateToken(token)
			if err != nil {
				writeError(w, r, fmt.Errorf("%v: %w", err, errUnauthenticated))
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeError(w, r, fmt.Errorf("%v: %w", security.ErrWrongTokenType, errUnauthenticated))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), claims.Actor())))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RateLimit keys authenticated callers by user id and everyone else by address.
// X-Forwarded-For is only read when the peer is one of trustedProxies.
func RateLimit(limiter ratelimit.Limiter, trustedProxies []string) mux.MiddlewareFunc {
	trusted := make([]netip.Prefix, 0, len(trustedProxies))
	for _, proxy := range trustedProxies {
		prefix, err := config.ParseProxy(proxy)
		if err != nil {
			logger.Warn("Ignoring trusted proxy", "proxy", proxy, "error", err)
			continue
		}
		trusted = append(trusted, prefix)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := "ip:" + clientIP(r, trusted)
			if actor := OptionalActor(r.Context()); actor != nil {
				key = fmt.Sprintf("user:%d", actor.UserID)
			}
			if !limiter.Allow(r.Context(), key) {
				writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded", RequestID: logger.RequestID(r.Context())})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP walks X-Forwarded-For from the right, past any trusted hops, and
// stops at the first address a trusted proxy vouched for.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !isTrusted(host, trusted) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if _, err := netip.ParseAddr(hop); err != nil {
			break
		}
		host = hop
		if !isTrusted(hop, trusted) {
			break
		}
	}
	return host
}

func isTrusted(host string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
