package main

import (
	"context"
	"homestay/config"
	"homestay/di"
	"homestay/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLoggerTo(os.Stderr)

	logger.SetLogLevel(cfg)

	console := di.InitializeConsole(os.Stdout)
	if err := console.Run(context.Background(), os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("back office console stopped")
	}
}
