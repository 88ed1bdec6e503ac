// migrate.go - migrate command, creates or updates the tables

package commands

import (
	"go-shop-admin/database"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the schema and exits
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.LogLevel)

		// Connect migrates on open
		if _, err := database.Connect(cfg); err != nil {
			return err
		}
		log.Info("migrations applied", "driver", cfg.DBDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
