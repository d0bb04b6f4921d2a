package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never
	// produces a half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP response for it.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to a status code and a
// message the caller can act on. Unknown errors collapse to a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Lookups
	case errors.Is(err, domain.ErrStrainNotFound):
		return http.StatusNotFound, ErrMsgStrainNotFoundHTTP
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundHTTP
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundHTTP
	case errors.Is(err, domain.ErrResearchNotFound):
		return http.StatusNotFound, ErrMsgResearchNotFoundHTTP
	case errors.Is(err, domain.ErrDifficultyNotFound):
		return http.StatusNotFound, ErrMsgDifficultyNotFoundHTTP
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusNotFound, ErrMsgOfferNotFoundHTTP
	case errors.Is(err, domain.ErrPestNotFound):
		return http.StatusNotFound, ErrMsgNoPestHTTP

	// Funds and inventory
	case errors.Is(err, domain.ErrInsufficientCash):
		return http.StatusBadRequest, ErrMsgNotEnoughCash
	case errors.Is(err, domain.ErrInsufficientGrams):
		return http.StatusBadRequest, ErrMsgNotEnoughGrams
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedErr

	// Slots
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, domain.ErrMsgSlotOccupied
	case errors.Is(err, domain.ErrSlotLocked):
		return http.StatusBadRequest, ErrMsgSlotLockedHTTP
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusBadRequest, ErrMsgSlotEmptyHTTP
	case errors.Is(err, domain.ErrNoFreeSlot):
		return http.StatusConflict, ErrMsgNoFreeSlotHTTP
	case errors.Is(err, domain.ErrSlotsMaxed):
		return http.StatusConflict, ErrMsgSlotsMaxedHTTP
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotHTTP

	// Plant actions
	case errors.Is(err, domain.ErrNotRipe):
		return http.StatusConflict, ErrMsgNotRipeHTTP
	case errors.Is(err, domain.ErrPlantDead):
		return http.StatusConflict, ErrMsgPlantDeadHTTP
	case errors.Is(err, domain.ErrShearsRequired):
		return http.StatusBadRequest, ErrMsgShearsRequiredHTTP
	case errors.Is(err, domain.ErrNoCharges):
		return http.StatusBadRequest, ErrMsgNoChargesHTTP
	case errors.Is(err, domain.ErrNoPest):
		return http.StatusBadRequest, ErrMsgNoPestHTTP
	case errors.Is(err, domain.ErrWrongCountermeasure):
		return http.StatusBadRequest, ErrMsgNoCountermeasure

	// Research
	case errors.Is(err, domain.ErrResearchOwned):
		return http.StatusConflict, ErrMsgResearchOwnedHTTP
	case errors.Is(err, domain.ErrResearchPrereq):
		return http.StatusBadRequest, ErrMsgResearchPrereqHTTP
	case errors.Is(err, domain.ErrInsufficientResearch):
		return http.StatusBadRequest, ErrMsgNotEnoughHaze

	// Market / prestige
	case errors.Is(err, domain.ErrOfferExpired):
		return http.StatusConflict, ErrMsgOfferExpiredHTTP
	case errors.Is(err, domain.ErrNoPrestigeGain):
		return http.StatusConflict, ErrMsgNoPrestigeGainHTTP

	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputGeneric
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
