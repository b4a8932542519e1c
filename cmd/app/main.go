package main

import (
	"forge/config"
	"forge/di"
	"forge/shared/logger"
)

// @title Forge Metalworks API
// @version 1.0
// @description Marketing and portfolio backend for a steel and glass fabrication workshop.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
