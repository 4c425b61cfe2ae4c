package main

import (
	"innflow/config"
	"innflow/di"
	"innflow/shared/logger"

	"github.com/shopspring/decimal"
)

// @title InnFlow API
// @version 1.0
// @description Booking flow gateway for the InnFlow hotel front-end.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	decimal.MarshalJSONWithoutQuotes = true

	http := di.InitializeService()
	http.Serve()
}
