// seed.go - seed command, fills an empty database with demo data

package commands

import (
	"go-shop-admin/database"

	"github.com/spf13/cobra"
)

var (
	// Seed flags
	seedValue uint64
)

// seedCmd fills an empty database with demo data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with demo data",
	Long: `Seed creates an admin (admin@example.com / admin123), regular users,
products and reviews. It refuses to run when the database already has users.

Examples:
  shopadmin seed              # Seed with the default random seed
  shopadmin seed --seed 7     # Reproduce a different data set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.LogLevel)

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		return database.Seed(db, seedValue, log)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 42, "Random seed for the generated data")
}
