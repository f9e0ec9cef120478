package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AlexZinkM/tron-wallet/docs"
	"github.com/AlexZinkM/tron-wallet/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter(tronHandler *handler.TronHandler, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Metrics
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// TRON endpoints
	mux.HandleFunc("/tron/wallet", tronHandler.Wallet)
	mux.HandleFunc("/tron/balance", tronHandler.GetBalance)
	mux.HandleFunc("/tron/safety", tronHandler.Safety)
	mux.HandleFunc("/tron/resources", tronHandler.GetResources)
	mux.HandleFunc("/tron/build", tronHandler.Build)
	mux.HandleFunc("/tron/broadcast", tronHandler.Broadcast)
	mux.HandleFunc("/tron/transfer", tronHandler.Transfer)
	mux.HandleFunc("/tron/transaction", tronHandler.TransactionStatus)
	mux.HandleFunc("/tron/network", tronHandler.NetworkStatus)
	mux.HandleFunc("/tron/gas", tronHandler.GasParameters)

	return mux
}
