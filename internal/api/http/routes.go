package http

import (
	"net/http"

	"toolstore-backend/internal/service"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires all HTTP endpoints onto the router.
func RegisterRoutes(router *mux.Router, checkoutSvc service.CheckoutService, toolSvc service.ToolService, rateSvc service.RateProfileService) {
	checkout := NewCheckoutHandler(checkoutSvc)
	tools := NewToolHandler(toolSvc, rateSvc)

	router.HandleFunc("/rental/checkout", checkout.HandleCheckout).Methods("POST")
	router.HandleFunc("/rental/checkout/as-text", checkout.HandleCheckoutAsText).Methods("POST")

	router.HandleFunc("/tools", tools.HandleListTools).Methods("GET")
	router.HandleFunc("/tool/code/{code}", tools.HandleToolByCode).Methods("GET")
	router.HandleFunc("/tool/type/{type}", tools.HandleToolsByType).Methods("GET")
	router.HandleFunc("/tool/brand/{brand}", tools.HandleToolsByBrand).Methods("GET")

	router.HandleFunc("/rental-cost/all", tools.HandleListRateProfiles).Methods("GET")
	router.HandleFunc("/rental-cost/type/{type}", tools.HandleRateProfileByType).Methods("GET")

	router.HandleFunc("/alive", handleAlive).Methods("GET")
}

func handleAlive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("I'm alive!"))
}
