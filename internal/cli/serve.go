package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhruvgupta3389/anvad/internal/adapters/httpapi"
	"github.com/dhruvgupta3389/anvad/internal/db"
	"github.com/dhruvgupta3389/anvad/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API",
		Long: `Start the HTTP API server. Shuts down gracefully on SIGINT/SIGTERM.

Examples:
  anvad serve
  anvad serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := wire.Logger()
			if addr == "" {
				addr = wire.Cfg().ListenAddr
			}

			server := httpapi.NewServer(
				wire.CheckoutService(),
				wire.CatalogService(),
				wire.OrderService(),
				wire.OTPService(),
				wire.NewsletterService(),
				wire.Cfg().WebhookSecret,
				log,
			)

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      server.Router(),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", addr).Info("storefront listening")
				errCh <- httpServer.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				log.WithField("signal", sig.String()).Info("shutting down")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return err
			}
			return db.Close()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
