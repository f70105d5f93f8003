package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type TokenParser interface {
	Parse(raw string) (entity.Caller, error)
}

type Middleware struct {
	tokens TokenParser
}

func NewMiddleware(tokens TokenParser) *Middleware {
	return &Middleware{tokens: tokens}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.SetRequestID(ctx, requestID)
		ctx = logger.SetLogType(ctx, "http")
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)

		if svc := r.Header.Get("X-Service-Name"); svc != "" {
			ctx = logger.SetCallerService(ctx, svc)
		}

		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		slog.InfoContext(ctx, "request handled",
			"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				sendErr(ctx, w, http.StatusInternalServerError, nil, entity.ErrMsgInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, X-Request-Id, X-Service-Name")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.Header.Get("X-Real-Ip")
		if ip == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err == nil {
				ip = host
			}
		}

		next.ServeHTTP(w, r.WithContext(logger.SetIP(r.Context(), ip)))
	})
}

// Auth verifies the bearer JWT and puts the caller into the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		caller, err := m.tokens.Parse(raw)
		if err != nil {
			if errors.Is(err, entity.ErrInvalidToken) {
				sendErr(ctx, w, http.StatusUnauthorized, err, "Неверный токен")
			} else {
				sendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка аутентификации")
			}

			return
		}

		ctx = entity.SetCallerToContext(ctx, caller)
		ctx = logger.SetUserID(ctx, caller.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects callers whose role is not listed. It must run after Auth.
func (m *Middleware) RequireRoles(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			caller, ok := entity.CallerFromContext(ctx)
			if !ok {
				sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, entity.ErrMsgUnauthorized)
				return
			}

			if !slices.Contains(roles, caller.Role) {
				sendErr(ctx, w, http.StatusForbidden,
					fmt.Errorf("%w: role %s", entity.ErrForbidden, caller.Role), entity.ErrMsgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
