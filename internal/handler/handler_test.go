package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/snapshot"
)

// newFarmService builds a service on an in-memory snapshot store with a
// deterministic random source. The fresh state carries the 100 cash
// welcome bonus.
func newFarmService(t *testing.T) farm.Service {
	t.Helper()
	store := snapshot.NewMemoryStore()
	bus := event.NewMemoryBus()
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return farm.NewService(context.Background(), store, bus, rng.NewSequence(0.5), func() time.Time { return clock })
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleGetFarm(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil)
	rr := httptest.NewRecorder()
	h.HandleGetFarm(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var state map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 100.0, state["cash"])
}

func TestHandleBuyPlant(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	rr := postJSON(t, h.HandleBuyPlant, "/api/v1/farm/plants/buy", BuyPlantRequest{StrainID: "gelato"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var plant map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plant))
	assert.Equal(t, "gelato", plant["strain_id"])
	assert.Equal(t, 0.0, plant["slot"])
}

func TestHandleBuyPlantUnknownStrain(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	rr := postJSON(t, h.HandleBuyPlant, "/api/v1/farm/plants/buy", BuyPlantRequest{StrainID: "oregano"})
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgStrainNotFoundHTTP, resp.Error)
}

func TestHandleBuyPlantValidation(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	rr := postJSON(t, h.HandleBuyPlant, "/api/v1/farm/plants/buy", BuyPlantRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Equal(t, "This field is required", resp.Fields["strainid"])
}

func TestHandleBuyPlantMalformedBody(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/plants/buy", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	h.HandleBuyPlant(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleHarvestEmptySlot(t *testing.T) {
	h := NewFarmHandler(newFarmService(t))

	rr := postJSON(t, h.HandleHarvest, "/api/v1/farm/plants/harvest", SlotRequest{Slot: 0})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgSlotEmptyHTTP, resp.Error)
}

func TestHandleBuyItemInsufficientCash(t *testing.T) {
	h := NewShopHandler(newFarmService(t))

	// The van costs more than the 100 cash welcome bonus.
	rr := postJSON(t, h.HandleBuyItem, "/api/v1/farm/shop/item/buy", ItemRequest{ItemID: "van"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgNotEnoughCash, resp.Error)
}

func TestHandleBuyItem(t *testing.T) {
	h := NewShopHandler(newFarmService(t))

	rr := postJSON(t, h.HandleBuyItem, "/api/v1/farm/shop/item/buy", ItemRequest{ItemID: "shears"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleSetDifficulty(t *testing.T) {
	svc := newFarmService(t)
	h := NewShopHandler(svc)

	rr := postJSON(t, h.HandleSetDifficulty, "/api/v1/farm/difficulty", SetDifficultyRequest{DifficultyID: "hard"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hard", svc.Snapshot().Difficulty)
}

func TestHandleSetDifficultyInvalid(t *testing.T) {
	h := NewShopHandler(newFarmService(t))

	rr := postJSON(t, h.HandleSetDifficulty, "/api/v1/farm/difficulty", SetDifficultyRequest{DifficultyID: "nightmare"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid difficulty", resp.Fields["difficultyid"])
}

func TestHandleQuickSellValidation(t *testing.T) {
	h := NewTradeHandler(newFarmService(t))

	rr := postJSON(t, h.HandleQuickSell, "/api/v1/farm/sell", QuickSellRequest{Grams: 0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleQuickSellInsufficientGrams(t *testing.T) {
	h := NewTradeHandler(newFarmService(t))

	rr := postJSON(t, h.HandleQuickSell, "/api/v1/farm/sell", QuickSellRequest{Grams: 500})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgNotEnoughGrams, resp.Error)
}

func TestHandleAcceptOfferNotFound(t *testing.T) {
	h := NewTradeHandler(newFarmService(t))

	rr := postJSON(t, h.HandleAcceptOffer, "/api/v1/farm/offers/accept", AcceptOfferRequest{OfferID: "nope"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlePrestigeWithoutGain(t *testing.T) {
	h := NewTradeHandler(newFarmService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/farm/prestige", nil)
	rr := httptest.NewRecorder()
	h.HandlePrestige(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgNoPrestigeGainHTTP, resp.Error)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	HandleHealthz()(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rr := httptest.NewRecorder()
	HandleVersion()(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var info VersionInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.NotEmpty(t, info.GoVersion)
}
