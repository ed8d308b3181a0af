package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns ctx tagged with the request id used by Time and
// the HTTP access log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx, if any.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time starts timing op and returns a func that logs its duration and,
// when errp points at a non-nil error, the error. Typical use:
//
//	defer obs.Time(ctx, "parcels.Load")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		attrs := []slog.Attr{
			slog.String("req_id", RequestID(ctx)),
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()),
		}

		if errp != nil && *errp != nil {
			Warn(ctx, "op failed", append(attrs, Err("err", *errp))...)
			return
		}
		Debug(ctx, "op done", attrs...)
	}
}
