package store

import (
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"log/slog"
)

// Refresh replaces the contents of s with what loader returns. A loader
// failure is logged and leaves s holding an empty collection; it is never
// reported to the caller. It returns the number of records loaded.
func Refresh[T Record](ctx context.Context, s *RecordStore[T], loader ports.Loader[T]) (n int) {
	var err error
	defer obs.Time(ctx, s.name+".Refresh")(&err)

	records, err := loader.Load(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "load failed, using empty collection",
			slog.String("store", s.name), obs.Err("err", err))
		records = nil
	}

	s.Load(records)
	return len(records)
}
