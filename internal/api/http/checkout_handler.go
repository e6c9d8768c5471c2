package http

import (
	"encoding/json"
	"net/http"

	"toolstore-backend/internal/domain"
	"toolstore-backend/internal/logger"
	"toolstore-backend/internal/service"
)

// CheckoutHandler exposes the checkout operation over HTTP.
type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
}

func NewCheckoutHandler(checkoutSvc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// HandleCheckout takes a RentalRequest body and returns the finalized
// RentalAgreement as JSON.
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	agreement, err := h.checkoutSvc.Checkout(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Info("checkout completed", "tool_code", agreement.ToolCode, "charge_days", agreement.ChargeDays, "final_charge", agreement.FinalCharge.StringFixed(2))
	writeJSON(w, http.StatusOK, agreement)
}

// HandleCheckoutAsText is the same operation but responds with the
// formatted console rendering of the agreement.
func (h *CheckoutHandler) HandleCheckoutAsText(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	agreement, err := h.checkoutSvc.Checkout(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(agreement.FormatText())); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

func (h *CheckoutHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*domain.RentalRequest, bool) {
	var req domain.RentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return nil, false
	}
	return &req, true
}
