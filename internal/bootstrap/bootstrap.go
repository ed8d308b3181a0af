// Package bootstrap builds the infrastructure shared by the server and
// the dbtool CLI from a config.Config.
package bootstrap

import (
	"colis-service/internal/adapters/kv"
	"colis-service/internal/adapters/remote"
	"colis-service/internal/adapters/repositories"
	"colis-service/internal/config"
	"colis-service/internal/domain"
	"colis-service/internal/platform/db"
	"colis-service/internal/ports"
	"context"
	"database/sql"
	"fmt"
)

// RedisPrefix namespaces every key the service writes to Redis.
const RedisPrefix = "colis:"

// OpenDB connects to the configured database and returns it with its dialect.
func OpenDB(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	dialect, err := repositories.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, "", err
	}

	if dialect == repositories.Postgres {
		if cfg.DatabaseURL == "" {
			return nil, "", fmt.Errorf("DATABASE_URL is required for driver %q", cfg.DBDriver)
		}
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, dialect, err
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, dialect, err
}

// SettingsStorage picks the key/value backend for the settings record:
// memory, redis, or the SQL database behind conn. The returned func
// releases the backend.
func SettingsStorage(ctx context.Context, cfg config.Config, conn *sql.DB, dialect repositories.Dialect) (ports.KeyValueStorage, func(), error) {
	noop := func() {}

	switch cfg.SettingsBackend {
	case "memory":
		return kv.NewMemoryStore(), noop, nil
	case "redis":
		client, err := kv.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return kv.NewRedisStore(client, RedisPrefix), func() { _ = client.Close() }, nil
	}

	if _, err := repositories.ParseDialect(cfg.SettingsBackend); err != nil {
		return nil, noop, fmt.Errorf("unknown SETTINGS_BACKEND %q", cfg.SettingsBackend)
	}
	if conn == nil {
		return nil, noop, fmt.Errorf("SETTINGS_BACKEND %q needs a database connection", cfg.SettingsBackend)
	}
	return kv.NewSQLStore(conn, dialect), noop, nil
}

// Loaders returns the remote API loaders when REMOTE_API_URL is set and
// the SQL repositories otherwise.
func Loaders(cfg config.Config, conn *sql.DB) (ports.Loader[domain.Parcel], ports.Loader[domain.Passenger], error) {
	if cfg.RemoteAPIURL == "" {
		return repositories.NewSQLParcelRepository(conn), repositories.NewSQLPassengerRepository(conn), nil
	}

	client, err := remote.NewClient(cfg.RemoteAPIURL, cfg.RemoteAPIKey)
	if err != nil {
		return nil, nil, err
	}
	return client.Parcels(), client.Passengers(), nil
}
