package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/handler/dto"
	"github.com/steelerp/erpclient/internal/middleware"
)

// rpcErrors turns facade errors into HTTP responses.
type rpcErrors struct {
	loginPath string
	logger    *slog.Logger
}

func newRPCErrors(loginPath string, logger *slog.Logger) rpcErrors {
	if logger == nil {
		logger = slog.Default()
	}
	return rpcErrors{loginPath: loginPath, logger: logger}
}

// write maps err to a status code. The message of an *grpcclient.Error is
// already meant for users and is passed through unchanged.
func (e rpcErrors) write(w http.ResponseWriter, r *http.Request, err error) {
	var rpcErr *grpcclient.Error
	if !errors.As(err, &rpcErr) {
		e.logger.ErrorContext(r.Context(), "handler_error",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	status, code := http.StatusBadGateway, "ERP_ERROR"
	switch {
	case errors.Is(err, grpcclient.ErrSessionExpired):
		status, code = http.StatusUnauthorized, "SESSION_EXPIRED"
		if e.loginPath != "" {
			w.Header().Set("Location", e.loginPath)
		}
	case errors.Is(err, grpcclient.ErrPermissionDenied):
		status, code = http.StatusForbidden, "PERMISSION_DENIED"
	case errors.Is(err, grpcclient.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, grpcclient.ErrFailedPrecondition):
		status, code = http.StatusConflict, "FAILED_PRECONDITION"
	case errors.Is(err, grpcclient.ErrNetwork):
		status, code = http.StatusServiceUnavailable, "ERP_UNAVAILABLE"
	}

	w.Header().Set(middleware.CallIDHeader, rpcErr.CallID)
	writeJSON(w, status, dto.ErrorResponse{
		Error:  rpcErr.Message,
		Code:   code,
		CallID: rpcErr.CallID,
	})
}
