package grpcclient

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/steelerp/erpclient/internal/metrics"
)

// Error kinds. Match them with errors.Is.
var (
	ErrSessionExpired     = errors.New("session expired")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrRemote             = errors.New("remote error")
	ErrNetwork            = errors.New("network error")
)

// User-facing messages.
const (
	MsgSessionExpired     = "Session expired. Please login again."
	MsgPermissionDenied   = "You don't have permission to perform this action."
	MsgPreconditionFailed = "Precondition failed."
	MsgRemote             = "An error occurred."
	MsgNetwork            = "Network error. Please try again."
)

// Resource names the entity a facade serves; it only shapes not-found
// messages.
type Resource string

const (
	ResourceInvoice  Resource = "Invoice"
	ResourceCustomer Resource = "Customer"
	ResourceProduct  Resource = "Product"
)

func (r Resource) notFoundMessage() string {
	if r == "" {
		return "Resource not found."
	}
	return string(r) + " not found."
}

// Error is the only failure value that leaves a facade. Error() is the
// message meant for the user.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Code is the gRPC status code, codes.Unknown when the failure carried
	// no status.
	Code    codes.Code
	Message string
	// Method is the full gRPC method name of the failed call.
	Method string
	// CallID correlates the error with its diagnostic log line.
	CallID string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the transport error.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.cause}
}

// Normalizer converts transport failures into *Error values and applies the
// global session policy. One Normalizer serves every facade.
type Normalizer struct {
	session SessionHandler
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewNormalizer creates a Normalizer. A nil session disables teardown.
func NewNormalizer(session SessionHandler, logger *slog.Logger, recorder metrics.Recorder) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Normalizer{
		session: session,
		logger:  logger,
		metrics: recorder,
	}
}

// Normalize maps err to an *Error. Unauthenticated clears the stored session
// and redirects to the login screen before returning; it is safe for several
// failing calls to do so concurrently. err must be non-nil.
func (n *Normalizer) Normalize(ctx context.Context, resource Resource, method string, err error) *Error {
	out := &Error{
		Method: method,
		CallID: ulid.Make().String(),
		cause:  err,
	}

	st, coded := status.FromError(err)
	if !coded || st.Code() == codes.OK {
		out.Kind = ErrNetwork
		out.Code = codes.Unknown
		out.Message = orDefault(err.Error(), MsgNetwork)
		n.log(ctx, slog.LevelError, resource, out, err)
		return out
	}

	out.Code = st.Code()
	switch st.Code() {
	case codes.Unauthenticated:
		out.Kind = ErrSessionExpired
		out.Message = MsgSessionExpired
		n.log(ctx, slog.LevelWarn, resource, out, err)
		n.expireSession(ctx)
	case codes.PermissionDenied:
		out.Kind = ErrPermissionDenied
		out.Message = MsgPermissionDenied
		n.log(ctx, slog.LevelWarn, resource, out, err)
	case codes.NotFound:
		out.Kind = ErrNotFound
		out.Message = resource.notFoundMessage()
		n.log(ctx, slog.LevelWarn, resource, out, err)
	case codes.FailedPrecondition:
		out.Kind = ErrFailedPrecondition
		out.Message = orDefault(st.Message(), MsgPreconditionFailed)
		n.log(ctx, slog.LevelWarn, resource, out, err)
	case codes.Unavailable:
		// grpc reports connection failures as Unavailable.
		out.Kind = ErrNetwork
		out.Message = orDefault(st.Message(), MsgNetwork)
		n.log(ctx, slog.LevelError, resource, out, err)
	default:
		out.Kind = ErrRemote
		out.Message = orDefault(st.Message(), MsgRemote)
		n.log(ctx, slog.LevelError, resource, out, err)
	}
	return out
}

func (n *Normalizer) expireSession(ctx context.Context) {
	n.metrics.IncSessionExpired()
	if n.session == nil {
		return
	}
	// The caller's deadline may be what just expired.
	ctx = context.WithoutCancel(ctx)
	if err := n.session.ClearSession(ctx); err != nil {
		n.logger.ErrorContext(ctx, "session_clear_failed", "error", err)
	}
	n.session.RedirectToLogin(ctx)
}

func (n *Normalizer) log(ctx context.Context, level slog.Level, resource Resource, e *Error, cause error) {
	n.logger.LogAttrs(ctx, level, "rpc_failed",
		slog.String("method", e.Method),
		slog.String("resource", string(resource)),
		slog.String("code", e.Code.String()),
		slog.String("call_id", e.CallID),
		slog.String("error", cause.Error()),
	)
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
