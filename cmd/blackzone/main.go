// Package main is the entry point for Blackzone.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ashgrowen/blackzone/internal/game"
	"github.com/ashgrowen/blackzone/internal/logging"
	"github.com/ashgrowen/blackzone/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_BLACKZONE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Once tcell takes the terminal, diagnostics must go to a file.
	logger, closeLog, err := logging.Setup()
	if err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}
	defer closeLog()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Error(err, "telemetry setup failed, running without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error(err, "telemetry shutdown failed")
			}
		}()
	}

	// Create and run game
	g, err := game.New(configFromEnv(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// configFromEnv reads the runtime knobs: BLACKZONE_SEED pins the session
// seed, BLACKZONE_AUDIO=off silences the speaker, BLACKZONE_PROFILE
// overrides the profile location.
func configFromEnv() game.Config {
	cfg := game.Config{
		Audio:       os.Getenv("BLACKZONE_AUDIO") != "off",
		ProfilePath: os.Getenv("BLACKZONE_PROFILE"),
	}
	if s := os.Getenv("BLACKZONE_SEED"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_BLACKZONE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BLACKZONE_DATASET")
	if dataset == "" {
		dataset = "blackzone" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
