package command

import (
	"colis-service/internal/adapters/repositories"
	"fmt"

	"github.com/spf13/cobra"
)

var seedFile string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conn, _, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema ready.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert parcels and passengers from a JSON or YAML file",
	Long: `Upsert parcels and passengers from a JSON or YAML file.
The file holds a "colis" list and a "passagers" list. Records are
matched on id; parcel codes are minted from id and cities.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conn, cfg, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		path := seedFile
		if path == "" {
			path = cfg.SeedPath
		}
		if path == "" {
			return fmt.Errorf("no seed file: pass --file or set SEED_PATH")
		}

		dialect, err := repositories.ParseDialect(cfg.DBDriver)
		if err != nil {
			return err
		}
		if err := repositories.InitSchema(conn); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		if err := repositories.SeedFromFile(conn, dialect, path); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded from %s.\n", path)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed file (default $SEED_PATH)")
	rootCmd.AddCommand(initCmd, seedCmd)
}
