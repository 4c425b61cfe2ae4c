package handler

import (
	"net/http"
	"sync"

	"innflow/config"
	"innflow/di"
	"innflow/shared/logger"
	transport "innflow/transport/http"

	"github.com/shopspring/decimal"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built once per
// instance so session locks and the catalog cache client are shared.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		decimal.MarshalJSONWithoutQuotes = true

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
