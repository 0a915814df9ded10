package fakebackend

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

type contextKey string

const contextKeyAccount contextKey = "account"

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// APIMiddleware is the chain every /api route runs, with extra middleware
// appended last.
func (s *Server) APIMiddleware(mw ...func(http.HandlerFunc) http.HandlerFunc) []func(http.HandlerFunc) http.HandlerFunc {
	chained := []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.CorsMiddleware,
		s.CSRFMiddleware,
	}
	return append(chained, mw...)
}

func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.env == "DEV" {
			logRoute(r.Method, r.URL.Path)
		}
		next(w, r)
	}
}

func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logError(r.Method, r.URL.Path, errors.Errorf("panic: %v\n%s", rec, debug.Stack()))
				writeMessage(w, http.StatusInternalServerError, "Server Error")
			}
		}()
		next(w, r)
	}
}

func (s *Server) CorsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// No Origin header = same-origin request, no CORS headers needed
		if origin == "" {
			next(w, r)
			return
		}

		// Credentialed requests need the exact origin echoed back, never "*"
		if s.cors.GetAllowedOrigins().IsAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", s.cors.GetAllowedMethods())
			w.Header().Set("Access-Control-Allow-Headers", s.cors.GetAllowedHeaders())
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// CSRFMiddleware rejects mutating requests whose X-XSRF-TOKEN header is
// missing, unknown, or different from the XSRF-TOKEN cookie.
func (s *Server) CSRFMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next(w, r)
			return
		}

		header := r.Header.Get(headerXSRFToken)
		if header == "" || !s.knownCSRFToken(header) {
			writeMessage(w, statusCSRFMismatch, "CSRF token mismatch.")
			return
		}
		if cookie, err := r.Cookie(cookieXSRFToken); err == nil && cookie.Value != header {
			writeMessage(w, statusCSRFMismatch, "CSRF token mismatch.")
			return
		}
		next(w, r)
	}
}

// RequireAuth validates the bearer token and that its role is one of roles.
func (s *Server) RequireAuth(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			claims, err := s.tokens.Validate(raw)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			if len(roles) > 0 && !contains(roles, claims.Role) {
				writeMessage(w, http.StatusForbidden, "This action is unauthorized.")
				return
			}

			s.lock.Lock()
			acc := s.accounts.get(claims.Subject)
			s.lock.Unlock()
			if acc == nil || !acc.Active {
				writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyAccount, session{account: acc, claims: claims})
			next(w, r.WithContext(ctx))
		}
	}
}

type session struct {
	account *account
	claims  *tokenClaims
}

func sessionFrom(r *http.Request) session {
	sess, _ := r.Context().Value(contextKeyAccount).(session)
	return sess
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
