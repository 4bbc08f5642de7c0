package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sporthub-client/internal/config"
	"sporthub-client/internal/sandbox"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	srv := sandbox.NewServer()
	addr := cfg.Sandbox.Host + ":" + cfg.Sandbox.Port

	log.Info().Str("addr", addr).Msg("starting sandbox backend")
	go func() {
		if err := srv.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("sandbox server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, shutting down")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("sandbox shutdown error")
	}
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
