package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/adapters/redisstore"
	"github.com/dhruvgupta3389/anvad/internal/adapters/sqlite"
	"github.com/dhruvgupta3389/anvad/internal/config"
	"github.com/dhruvgupta3389/anvad/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the anvad environment",
		Long: `Health check for the storefront environment.

Validates:
- Data directory (~/.anvad/)
- Database file, schema and catalog contents
- Redis connectivity (when configured)
- SMTP configuration (presence only, nothing is sent)

Examples:
  anvad doctor              # Run full health check
  anvad doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkRedis(),
				checkSMTP(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'anvad init --seed' to set up the database.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDataDir validates the data directory exists
func checkDataDir() CheckResult {
	dir, err := config.Dir()
	if err != nil {
		return CheckResult{Name: "Data dir", Status: "✗", Details: "  Cannot get home directory"}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Data dir", Status: "✗", Details: fmt.Sprintf("  %s missing, run 'anvad init'", dir)}
	}
	return CheckResult{Name: "Data dir", Status: "✓"}
}

// checkDatabase validates the database file and catalog contents
func checkDatabase() CheckResult {
	path, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "✗",
			Details: fmt.Sprintf("  %s missing, run 'anvad init'", filepath.Base(path))}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo := sqlite.NewCatalogRepository(database)
	if err := repo.Ping(ctx); err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	collections, err := repo.ListCollections(ctx)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if len(collections) == 0 {
		return CheckResult{Name: "Database", Status: "⚠", Details: "  Catalog is empty, run 'anvad seed'"}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

// checkRedis validates the configured cart store backend
func checkRedis() CheckResult {
	cfg, err := config.LoadConfig()
	if err != nil {
		return CheckResult{Name: "Cart store", Status: "✗", Details: "  " + err.Error()}
	}
	if cfg.RedisAddr == "" {
		return CheckResult{Name: "Cart store", Status: "✓"} // file-backed, nothing to probe
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisstore.NewStore(cfg.RedisAddr).Ping(ctx); err != nil {
		return CheckResult{Name: "Cart store", Status: "✗", Details: "  " + err.Error()}
	}
	return CheckResult{Name: "Cart store", Status: "✓"}
}

// checkSMTP reports whether email can leave the box
func checkSMTP() CheckResult {
	cfg, err := config.LoadConfig()
	if err != nil {
		return CheckResult{Name: "SMTP", Status: "✗", Details: "  " + err.Error()}
	}
	if cfg.SMTPHost == "" {
		return CheckResult{Name: "SMTP", Status: "⚠", Details: "  No relay configured, OTP and confirmations log only"}
	}
	return CheckResult{Name: "SMTP", Status: "✓"}
}
