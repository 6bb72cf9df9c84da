package main

import (
	"homestay/config"
	"homestay/di"
	"homestay/shared/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../../ -g cmd/api/main.go -o ../../docs

// @title			homestay
// @version		1.0
// @description	Booking gateway and back-office API for the homestay site.
// @BasePath		/
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
