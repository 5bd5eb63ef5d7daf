package main

import (
	"context"
	"os"

	"github.com/haguru/bloglist/config"
	"github.com/haguru/bloglist/internal/app"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; environment variables override config file values.
	_ = godotenv.Load()

	application, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer func() {
		if err := application.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close application resources")
		}
	}()

	if err := application.Run(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
