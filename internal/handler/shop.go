package handler

import (
	"net/http"

	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/logger"
)

// ShopHandler handles item, upgrade, research and consumable purchases
type ShopHandler struct {
	svc farm.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(svc farm.Service) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// ItemRequest identifies a catalog item
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// UpgradeRequest identifies a purchasable upgrade
type UpgradeRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required,max=64"`
}

// ResearchRequest identifies a research node
type ResearchRequest struct {
	NodeID string `json:"node_id" validate:"required,max=64"`
}

// ConsumableRequest identifies a consumable kind
type ConsumableRequest struct {
	Kind string `json:"kind" validate:"required,max=64"`
}

// SetDifficultyRequest selects the active difficulty
type SetDifficultyRequest struct {
	DifficultyID string `json:"difficulty_id" validate:"required,difficulty"`
}

// HandleBuyItem buys a shop item with cash
func (h *ShopHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	if err := h.svc.BuyItem(r.Context(), req.ItemID); err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}

	log.Info("Item purchased", "item", req.ItemID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item purchased"})
}

// HandleSellItem sells an owned item back for cash
func (h *ShopHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	price, err := h.svc.SellItem(r.Context(), req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"price": price})
}

// HandleBuyUpgrade buys one level of a gram-priced upgrade
func (h *ShopHandler) HandleBuyUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy upgrade"); err != nil {
		return
	}

	level, err := h.svc.BuyUpgrade(r.Context(), req.UpgradeID)
	if err != nil {
		respondServiceError(w, r, "Buy upgrade", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"level": level})
}

// HandleBuyResearch unlocks a research node with haze points
func (h *ShopHandler) HandleBuyResearch(w http.ResponseWriter, r *http.Request) {
	var req ResearchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy research"); err != nil {
		return
	}

	if err := h.svc.BuyResearch(r.Context(), req.NodeID); err != nil {
		respondServiceError(w, r, "Buy research", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Research unlocked"})
}

// HandleBuyConsumable buys one charge of a consumable
func (h *ShopHandler) HandleBuyConsumable(w http.ResponseWriter, r *http.Request) {
	var req ConsumableRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy consumable"); err != nil {
		return
	}

	if err := h.svc.BuyConsumable(r.Context(), req.Kind); err != nil {
		respondServiceError(w, r, "Buy consumable", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Consumable purchased"})
}

// HandleSetDifficulty switches the active difficulty
func (h *ShopHandler) HandleSetDifficulty(w http.ResponseWriter, r *http.Request) {
	var req SetDifficultyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set difficulty"); err != nil {
		return
	}

	if err := h.svc.SetDifficulty(r.Context(), req.DifficultyID); err != nil {
		respondServiceError(w, r, "Set difficulty", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Difficulty updated"})
}
