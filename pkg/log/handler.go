package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler decorates a slog.Handler so that records carrying an error
// attribute under ErrAttrKey also carry the error's stacktrace as a
// separate attribute. Typed errors constructed by ridgego's pkg/errors all
// embed a cockroachdb/errors stacktrace, so a fit or predict failure logged
// through this handler comes out with its origin attached.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with stacktrace extraction. Records
// without an error attribute pass through unchanged.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

// Enabled defers to the wrapped handler.
func (h *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

// Handle inspects the record for an attribute keyed by ErrAttrKey. Only the
// first such attribute is considered.
func (h *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new ErrFmtHandler around the wrapped handler's
// derived handler.
func (h *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ErrFmtHandler around the wrapped handler's
// derived handler.
func (h *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: h.handler.WithGroup(g)}
}

// extractStacktrace pulls the safe-details stacktrace that
// cockroachdb/errors records at construction time. Errors built outside
// pkg/errors may carry none, in which case no attribute is added.
func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
