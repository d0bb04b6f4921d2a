package handler

import (
	"net/http"

	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/logger"
)

// TradeHandler handles market offers, quick sells and prestige resets
type TradeHandler struct {
	svc farm.Service
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(svc farm.Service) *TradeHandler {
	return &TradeHandler{svc: svc}
}

// AcceptOfferRequest identifies a market offer
type AcceptOfferRequest struct {
	OfferID string `json:"offer_id" validate:"required,max=64"`
}

// QuickSellRequest represents a sale of harvested grams at the street price
type QuickSellRequest struct {
	Grams float64 `json:"grams" validate:"gt=0"`
}

// HandleAcceptOffer fulfills a market offer from harvested stock
func (h *TradeHandler) HandleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AcceptOfferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accept offer"); err != nil {
		return
	}

	result, err := h.svc.AcceptOffer(r.Context(), req.OfferID)
	if err != nil {
		respondServiceError(w, r, "Accept offer", err)
		return
	}

	log.Info("Offer accepted", "offer_id", result.OfferID, "grams", result.Grams, "cash", result.Cash)
	respondJSON(w, http.StatusOK, result)
}

// HandleQuickSell sells grams at the current street price
func (h *TradeHandler) HandleQuickSell(w http.ResponseWriter, r *http.Request) {
	var req QuickSellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Quick sell"); err != nil {
		return
	}

	result, err := h.svc.QuickSell(r.Context(), req.Grams)
	if err != nil {
		respondServiceError(w, r, "Quick sell", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePrestige performs a prestige reset
func (h *TradeHandler) HandlePrestige(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	result, err := h.svc.Prestige(r.Context())
	if err != nil {
		respondServiceError(w, r, "Prestige", err)
		return
	}

	log.Info("Prestige reset", "gained", result.Gained, "total", result.Total, "resets", result.Resets)
	respondJSON(w, http.StatusOK, result)
}
