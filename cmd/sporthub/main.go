// Command sporthub runs a scripted store-role session against the configured
// backend (the sandbox by default). It is the thinnest possible stand-in for
// the screen layer: every call below is what a screen would issue.
package main

import (
	"context"
	"fmt"
	"os"

	"sporthub-client/internal/client"
	"sporthub-client/internal/config"
	"sporthub-client/internal/dto"
	"sporthub-client/internal/service"
	"sporthub-client/internal/session"
	"sporthub-client/internal/storage"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("demo session failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}

	sess := session.NewStore(store)
	api := client.New(&cfg.API, sess, log.Logger)

	orders := service.NewOrderService(api, store, log.Logger)
	inventory := service.NewInventoryService(api, store, log.Logger)
	ads := service.NewAdService(api, store, log.Logger)

	user, err := api.Login(ctx, dto.LoginRequest{
		Email:    "store@sporthub.test",
		Password: "password",
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Str("user", user.Name).Str("role", string(user.Role)).Msg("logged in")

	productList, err := inventory.Products(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	for _, p := range productList.Products {
		fmt.Printf("%-28s qty=%-4d %s\n", p.Name, p.Quantity, p.StockLevel())
	}
	if productList.Degraded {
		fmt.Println("(showing cached products, backend unreachable)")
	}

	orderList, err := orders.StoreOrders(ctx, "")
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	for _, o := range orderList.Orders {
		p := o.Status.Presentation()
		fmt.Printf("order %s  %s (%s)\n", o.OrderNumber, p.Label, o.Status)

		if !o.Status.Terminal() {
			updated, err := orders.Advance(ctx, &o)
			if err != nil {
				log.Warn().Err(err).Str("order", o.OrderNumber).Msg("advance failed")
				continue
			}
			fmt.Printf("  advanced -> %s\n", updated.Status.Presentation().Label)
		}
	}

	adList, err := ads.StoreAds(ctx)
	if err != nil {
		return fmt.Errorf("list ads: %w", err)
	}
	for _, a := range adList.Ads {
		estimate, estErr := ads.EstimateCost(a.Type, a.StartDate, a.EndDate)
		if estErr != nil {
			continue
		}
		fmt.Printf("ad %q  %s  est. cost %s (budget %.0f)\n",
			a.Title, a.Status.Presentation().Label, estimate.StringFixed(0), a.Budget.Total)
	}

	return api.Logout(ctx)
}

func setupLogger(cfg config.Log) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
