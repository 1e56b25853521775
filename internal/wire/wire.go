// Package wire provides dependency injection for the anvad application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/adapters/filekv"
	"github.com/dhruvgupta3389/anvad/internal/adapters/mail"
	"github.com/dhruvgupta3389/anvad/internal/adapters/redisstore"
	"github.com/dhruvgupta3389/anvad/internal/adapters/sqlite"
	"github.com/dhruvgupta3389/anvad/internal/app"
	"github.com/dhruvgupta3389/anvad/internal/config"
	"github.com/dhruvgupta3389/anvad/internal/db"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

var (
	cfg               *config.Config
	logger            *logrus.Logger
	checkoutService   primary.CheckoutService
	catalogService    primary.CatalogService
	orderService      primary.OrderService
	otpService        primary.OTPService
	cartService       primary.CartService
	newsletterService primary.NewsletterService
	once              sync.Once
)

// Logger returns the singleton application logger.
func Logger() *logrus.Logger {
	once.Do(initServices)
	return logger
}

// Cfg returns the loaded configuration.
func Cfg() *config.Config {
	once.Do(initServices)
	return cfg
}

// CheckoutService returns the singleton CheckoutService instance.
func CheckoutService() primary.CheckoutService {
	once.Do(initServices)
	return checkoutService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// OrderService returns the singleton OrderService instance.
func OrderService() primary.OrderService {
	once.Do(initServices)
	return orderService
}

// OTPService returns the singleton OTPService instance.
func OTPService() primary.OTPService {
	once.Do(initServices)
	return otpService
}

// CartService returns the singleton CartService instance.
func CartService() primary.CartService {
	once.Do(initServices)
	return cartService
}

// NewsletterService returns the singleton NewsletterService instance.
func NewsletterService() primary.NewsletterService {
	once.Do(initServices)
	return newsletterService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters
	catalogRepo := sqlite.NewCatalogRepository(database)
	orderRepo := sqlite.NewOrderRepository(database)
	otpRepo := sqlite.NewOTPRepository(database)
	newsletterRepo := sqlite.NewNewsletterRepository(database)
	cartStore := newCartStore()
	mailer := newMailer()

	// Primary services
	checkoutService = app.NewCheckoutService(catalogRepo, logger)
	catalogService = app.NewCatalogService(catalogRepo)
	orderService = app.NewOrderService(orderRepo, checkoutService, mailer, logger)
	otpService = app.NewOTPService(otpRepo, mailer, logger)
	cartService = app.NewCartService(cartStore, catalogRepo, checkoutService, logger)
	newsletterService = app.NewNewsletterService(newsletterRepo, logger)
}

// newCartStore picks redis when configured, the local file store otherwise.
func newCartStore() secondary.KeyValueStore {
	if cfg.RedisAddr != "" {
		store := redisstore.NewStore(cfg.RedisAddr)
		if err := store.Ping(context.Background()); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		return store
	}
	path, err := filekv.DefaultPath()
	if err != nil {
		log.Fatalf("failed to resolve cart store path: %v", err)
	}
	return filekv.NewStore(path)
}

// newMailer uses SMTP when a relay is configured, logging otherwise.
func newMailer() secondary.Mailer {
	if cfg.SMTPHost == "" {
		return mail.NewLogMailer(logger)
	}
	return mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, logger)
}
