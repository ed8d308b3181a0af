package store

import "log/slog"

// Option configures a store at construction.
type Option func(*config)

type config struct {
	name   string
	logger *slog.Logger
	key    string
}

// WithName labels the store in change notifications and logs.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger sets the diagnostic sink for recovered failures. Logging is
// never part of an operation's result.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSettingsKey overrides the storage key used by SettingsStore.
func WithSettingsKey(key string) Option {
	return func(c *config) { c.key = key }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.key == "" {
		c.key = SettingsKey
	}
	return c
}
