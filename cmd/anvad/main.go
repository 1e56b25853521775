package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/cli"
	"github.com/dhruvgupta3389/anvad/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "anvad",
		Short:   "anvad - ANVAD storefront server and tools",
		Version: version.String(),
		Long: `anvad runs the ANVAD storefront: the HTTP API, the product catalog,
and a local cart for trying the checkout flow from the terminal.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.CartCmd())
	rootCmd.AddCommand(cli.OrderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
