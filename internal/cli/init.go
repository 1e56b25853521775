package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the anvad database",
		Long: `Initialize the storefront database (schema and migrations).

Examples:
  anvad init
  anvad init --seed   # also load the demo catalog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			path, err := db.GetDBPath()
			if err != nil {
				return err
			}
			fmt.Printf("✅ Database ready at %s\n", path)

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed catalog: %w", err)
				}
				fmt.Println("🌱 Demo catalog seeded")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Load the demo catalog after creating the schema")
	return cmd
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog",
		Long:  `Upsert the demo collections, products and variants. Safe to rerun.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
			fmt.Println("🌱 Demo catalog seeded")
			return nil
		},
	}
}
