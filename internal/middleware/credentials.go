package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/steelerp/erpclient/internal/session"
)

// SessionCookie carries the gateway session ID set by POST /session.
const SessionCookie = "erp_session"

// maxBearerLength bounds client-supplied tokens.
const maxBearerLength = 8192

const invalidAuthorizationBody = `{"error":"Malformed Authorization header","code":"INVALID_AUTHORIZATION"}`

// Credentials binds the caller's own credential to the request context, so
// ERP calls made while serving it carry that caller's token and a session
// expiry clears only that caller's session. An "Authorization: Bearer"
// header is forwarded as is; otherwise a session cookie selects the caller's
// store from sessions; otherwise the request is anonymous.
func Credentials(sessions session.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var store session.Store = session.Anonymous

			if header := r.Header.Get("Authorization"); header != "" {
				token, ok := bearerToken(header)
				if !ok {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(invalidAuthorizationBody))
					return
				}
				store = session.BearerStore(token)
			} else if id, ok := SessionID(r); ok {
				store = sessions.For(id)
			}

			next.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), store)))
		})
	}
}

// SessionID returns the session ID of the request cookie. Only IDs the
// gateway could have issued are accepted.
func SessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || len(token) > maxBearerLength {
		return "", false
	}
	for i := 0; i < len(token); i++ {
		// Printable ASCII only; the value ends up in gRPC metadata.
		if token[i] < 0x21 || token[i] > 0x7e {
			return "", false
		}
	}
	return token, true
}
