package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestTimeLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(NewLogger(&buf, "debug"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithRequestID(context.Background(), "req-1")

	func() {
		var err error
		defer Time(ctx, "parcels.Load")(&err)
		err = errors.New("boom")
	}()

	out := buf.String()
	for _, want := range []string{"op failed", "op=parcels.Load", "req_id=req-1", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q does not contain %q", out, want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")

	Log(context.Background(), l, slog.LevelInfo, "hidden")
	Log(context.Background(), l, slog.LevelWarn, "shown", Err("err", nil))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "err=no-error") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRequestIDAbsent(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID = %q, want empty", got)
	}
}
