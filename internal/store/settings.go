package store

import (
	"colis-service/internal/domain"
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goccy/go-json"
)

// SettingsKey is the storage key of the persisted settings record.
const SettingsKey = "app_settings"

var errInvalidIdentifierType = errors.New("invalid passenger identifier type")

// SettingsStore keeps the singleton settings record in memory and mirrors
// it to durable key/value storage. Persistence is best effort: read and
// write failures are logged and fall back to defaults or are dropped.
type SettingsStore struct {
	storage ports.KeyValueStorage
	key     string
	logger  *slog.Logger

	mu      sync.RWMutex
	current domain.Settings
}

// NewSettingsStore builds a store holding the defaults and then loads the
// persisted record, if any. A nil storage keeps settings in memory only.
func NewSettingsStore(ctx context.Context, storage ports.KeyValueStorage, opts ...Option) *SettingsStore {
	cfg := newConfig(opts)
	s := &SettingsStore{
		storage: storage,
		key:     cfg.key,
		logger:  cfg.logger,
		current: domain.DefaultSettings(),
	}
	s.Load(ctx)
	return s
}

// Load reads the persisted record and merges it over the defaults. A
// missing key, a storage error or malformed content yield the defaults.
func (s *SettingsStore) Load(ctx context.Context) domain.Settings {
	loaded, err := s.read(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "error loading settings, using defaults",
			slog.String("key", s.key), obs.Err("err", err))
		loaded = domain.DefaultSettings()
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded
}

// Current returns the last loaded or updated settings.
func (s *SettingsStore) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SettingsStore) PassengerIdentifierType() domain.IdentifierType {
	return s.Current().PassengerIdentifierType
}

func (s *SettingsStore) PassengerIdentifierLabel() string {
	return s.Current().PassengerIdentifierLabel
}

// Update merges patch onto the current settings and persists the result.
func (s *SettingsStore) Update(ctx context.Context, patch domain.SettingsPatch) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Merge(patch)
	s.save(ctx, s.current)
	return s.current
}

// SetPassengerIdentifierType sets the type and derives its label.
func (s *SettingsStore) SetPassengerIdentifierType(ctx context.Context, t domain.IdentifierType) domain.Settings {
	label := t.Label()
	return s.Update(ctx, domain.SettingsPatch{
		PassengerIdentifierType:  &t,
		PassengerIdentifierLabel: &label,
	})
}

// ResetToDefaults overwrites memory and storage with the defaults.
func (s *SettingsStore) ResetToDefaults(ctx context.Context) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.DefaultSettings()
	s.save(ctx, s.current)
	return s.current
}

func (s *SettingsStore) read(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.storage == nil {
		return defaults, nil
	}

	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return defaults, fmt.Errorf("read settings: %w", err)
	}
	if !ok || raw == "" {
		return defaults, nil
	}

	var patch domain.SettingsPatch
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		return defaults, fmt.Errorf("read settings: parse json: %w", err)
	}
	if patch.PassengerIdentifierType != nil && !patch.PassengerIdentifierType.Valid() {
		return defaults, fmt.Errorf("read settings: %w: %q", errInvalidIdentifierType, *patch.PassengerIdentifierType)
	}

	return defaults.Merge(patch), nil
}

// save expects s.mu to be held so writes reach storage in update order.
func (s *SettingsStore) save(ctx context.Context, settings domain.Settings) {
	if s.storage == nil {
		return
	}

	b, err := json.Marshal(settings)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "error encoding settings", obs.Err("err", err))
		return
	}
	if err := s.storage.Set(ctx, s.key, string(b)); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "error saving settings",
			slog.String("key", s.key), obs.Err("err", err))
	}
}
