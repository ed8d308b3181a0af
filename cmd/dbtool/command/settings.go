package command

import (
	"colis-service/internal/adapters/repositories"
	"colis-service/internal/bootstrap"
	"colis-service/internal/config"
	"colis-service/internal/domain"
	"colis-service/internal/store"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read or change the persisted application settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSettings(cmd.Context(), func(s *store.SettingsStore) error {
			return printSettings(cmd.OutOrStdout(), s.Current())
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the settings with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSettings(cmd.Context(), func(s *store.SettingsStore) error {
			return printSettings(cmd.OutOrStdout(), s.ResetToDefaults(cmd.Context()))
		})
	},
}

var settingsIdentifierCmd = &cobra.Command{
	Use:       "identifier {NNI|Passport|Both}",
	Short:     "Set the passenger identifier type and its label",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(domain.IdentifierNationalID), string(domain.IdentifierPassport), string(domain.IdentifierBoth)},
	RunE: func(cmd *cobra.Command, args []string) error {
		t := domain.IdentifierType(args[0])
		return withSettings(cmd.Context(), func(s *store.SettingsStore) error {
			return printSettings(cmd.OutOrStdout(), s.SetPassengerIdentifierType(cmd.Context(), t))
		})
	},
}

// withSettings opens the configured settings backend, loads the store and
// hands it to fn.
func withSettings(ctx context.Context, fn func(*store.SettingsStore) error) error {
	cfg := config.FromEnv()

	var conn *sql.DB
	var dialect repositories.Dialect
	if cfg.SettingsBackend != "memory" && cfg.SettingsBackend != "redis" {
		var err error
		conn, dialect, err = bootstrap.OpenDB(cfg)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer conn.Close()
		if err := repositories.InitSchema(conn); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
	}

	storage, closeStorage, err := bootstrap.SettingsStorage(ctx, cfg, conn, dialect)
	if err != nil {
		return err
	}
	defer closeStorage()

	return fn(store.NewSettingsStore(ctx, storage))
}

func printSettings(w io.Writer, s domain.Settings) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsResetCmd, settingsIdentifierCmd)
	rootCmd.AddCommand(settingsCmd)
}
