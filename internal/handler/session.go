package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/steelerp/erpclient/internal/handler/dto"
	"github.com/steelerp/erpclient/internal/middleware"
	"github.com/steelerp/erpclient/internal/session"
)

// SessionHandler keeps one bearer token per browser. Login issues a fresh
// session cookie; logout clears only the caller's own session.
type SessionHandler struct {
	sessions     *session.Manager
	provider     session.Provider
	secureCookie bool
	logger       *slog.Logger
}

// NewSessionHandler creates a new SessionHandler. secureCookie marks the
// session cookie Secure and should be set outside development.
func NewSessionHandler(sessions *session.Manager, provider session.Provider, secureCookie bool, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		sessions:     sessions,
		provider:     provider,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login handles POST /session. A previous session of the same browser is
// dropped and a new session ID is issued.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TOKEN", "token is required")
		return
	}

	ctx := r.Context()
	if old, ok := middleware.SessionID(r); ok {
		if err := h.provider.For(old).Clear(ctx); err != nil {
			h.logger.WarnContext(ctx, "session_rotate_failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
	}

	id := uuid.NewString()
	if err := h.sessions.Login(session.WithStore(ctx, h.provider.For(id)), req.Token); err != nil {
		if errors.Is(err, session.ErrEmptyToken) {
			writeError(w, http.StatusBadRequest, "MISSING_TOKEN", "token is required")
			return
		}
		h.logger.ErrorContext(ctx, "session_store_failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "TOKEN_STORE_UNAVAILABLE", "Could not store the session")
		return
	}

	http.SetCookie(w, h.cookie(id, 0))
	w.WriteHeader(http.StatusNoContent)
}

// Logout handles DELETE /session. It clears the credential bound to the
// request by middleware.Credentials; an anonymous caller clears nothing.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "session_clear_failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusServiceUnavailable, "TOKEN_STORE_UNAVAILABLE", "Could not clear the session")
		return
	}

	if _, ok := middleware.SessionID(r); ok {
		http.SetCookie(w, h.cookie("", -1))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
