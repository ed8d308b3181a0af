// Package command provides the dbtool CLI. It prepares the database the
// server reads from and edits the persisted settings record:
//
//	dbtool init
//	dbtool seed --file data/seeds/colis.yaml
//	dbtool settings show
//	dbtool settings reset
//	dbtool settings identifier Passport
//
// Connection parameters come from the same environment variables (and
// optional .env file) as the server.
package command

import (
	"colis-service/internal/bootstrap"
	"colis-service/internal/config"
	"colis-service/internal/platform/obs"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Database and settings maintenance for the colis service",
	Long: `Database and settings maintenance for the colis service.
It creates the schema, imports seed files of parcels and passengers,
and reads or rewrites the persisted application settings on the
configured backend (SQL database, Redis or memory).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if envFile != "" {
			config.LoadDotEnv(envFile)
		} else {
			config.LoadDotEnv()
		}
		slog.SetDefault(obs.NewLogger(os.Stderr, config.Get("LOG_LEVEL", "info")))
	},
}

// Execute runs rootCmd and exits non-zero when the chosen command fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", ".env file to load (default .env)")
}

// openDB connects with the environment configuration.
func openDB() (*sql.DB, config.Config, error) {
	cfg := config.FromEnv()
	conn, _, err := bootstrap.OpenDB(cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return conn, cfg, nil
}
