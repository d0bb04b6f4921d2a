package handler

import (
	"net/http"

	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/logger"
)

// FarmHandler handles farm state and plant action HTTP requests
type FarmHandler struct {
	svc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(svc farm.Service) *FarmHandler {
	return &FarmHandler{svc: svc}
}

// SlotRequest targets a plant action at a single growing slot
type SlotRequest struct {
	Slot int `json:"slot" validate:"gte=0"`
}

// BuyPlantRequest represents the request to buy and plant a strain.
// Slot is optional; when omitted the first empty slot is used.
type BuyPlantRequest struct {
	StrainID string `json:"strain_id" validate:"required,max=64"`
	Slot     *int   `json:"slot" validate:"omitempty,gte=0"`
}

// HandleGetFarm returns the full farm state
func (h *FarmHandler) HandleGetFarm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Snapshot())
}

// HandleBuyPlant buys a strain and plants it
func (h *FarmHandler) HandleBuyPlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyPlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy plant"); err != nil {
		return
	}

	slot := -1
	if req.Slot != nil {
		slot = *req.Slot
	}

	plant, err := h.svc.BuyPlant(r.Context(), req.StrainID, slot)
	if err != nil {
		respondServiceError(w, r, "Buy plant", err)
		return
	}

	log.Info("Plant purchased", "strain", req.StrainID, "slot", plant.Slot)
	respondJSON(w, http.StatusCreated, plant)
}

// HandleRemovePlant removes the plant in a slot
func (h *FarmHandler) HandleRemovePlant(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove plant"); err != nil {
		return
	}

	if err := h.svc.RemovePlant(r.Context(), req.Slot); err != nil {
		respondServiceError(w, r, "Remove plant", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Plant removed"})
}

// HandleUpgradePlant levels up the plant in a slot
func (h *FarmHandler) HandleUpgradePlant(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade plant"); err != nil {
		return
	}

	plant, err := h.svc.UpgradePlant(r.Context(), req.Slot)
	if err != nil {
		respondServiceError(w, r, "Upgrade plant", err)
		return
	}

	respondJSON(w, http.StatusOK, plant)
}

// HandleHarvest harvests a ripe plant
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	result, err := h.svc.Harvest(r.Context(), req.Slot)
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}

	log.Info("Harvest successful", "slot", result.Slot, "grams", result.Grams)
	respondJSON(w, http.StatusOK, result)
}

// HandleWaterPlant spends a water charge on a slot
func (h *FarmHandler) HandleWaterPlant(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Water plant"); err != nil {
		return
	}

	if err := h.svc.WaterPlant(r.Context(), req.Slot); err != nil {
		respondServiceError(w, r, "Water plant", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Plant watered"})
}

// HandleFeedPlant spends a nutrient charge on a slot
func (h *FarmHandler) HandleFeedPlant(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed plant"); err != nil {
		return
	}

	if err := h.svc.FeedPlant(r.Context(), req.Slot); err != nil {
		respondServiceError(w, r, "Feed plant", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Plant fed"})
}

// HandleTreatPest cures the infection on a slot with a matching countermeasure
func (h *FarmHandler) HandleTreatPest(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Treat pest"); err != nil {
		return
	}

	result, err := h.svc.TreatPest(r.Context(), req.Slot)
	if err != nil {
		respondServiceError(w, r, "Treat pest", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleUnlockSlot unlocks the next growing slot
func (h *FarmHandler) HandleUnlockSlot(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.svc.UnlockSlot(r.Context())
	if err != nil {
		respondServiceError(w, r, "Unlock slot", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"slots_unlocked": unlocked})
}
