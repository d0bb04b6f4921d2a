// Package event carries farm happenings between the simulation loop and
// its observers (metrics, SSE subscribers). Delivery is in-process.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Farm event types
const (
	PlantHarvested Type = "plant.harvested"
	PlantDied      Type = "plant.died"
	PestInfected   Type = "pest.infected"
	OfferSpawned   Type = "offer.spawned"
	OfferAccepted  Type = "offer.accepted"
	OfferExpired   Type = "offer.expired"
	SaleCompleted  Type = "sale.completed"
	PrestigeReset  Type = "prestige.reset"
	StateTicked    Type = "state.ticked"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads

// HarvestPayloadV1 is the typed payload for harvest events
type HarvestPayloadV1 struct {
	Slot     int     `json:"slot"`
	StrainID string  `json:"strain_id"`
	Grams    float64 `json:"grams"`
	Quality  float64 `json:"quality"`
}

// PestPayloadV1 is the typed payload for pest infection events
type PestPayloadV1 struct {
	Slot   int    `json:"slot"`
	PestID string `json:"pest_id"`
}

// OfferPayloadV1 is the typed payload for offer lifecycle events
type OfferPayloadV1 struct {
	OfferID   string    `json:"offer_id"`
	Grams     int       `json:"grams"`
	PricePerG float64   `json:"price_per_g"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// SalePayloadV1 is the typed payload for quick sell events
type SalePayloadV1 struct {
	Grams float64 `json:"grams"`
	Cash  float64 `json:"cash"`
}

// PrestigePayloadV1 is the typed payload for prestige reset events
type PrestigePayloadV1 struct {
	HazeGained  float64 `json:"haze_gained"`
	HazeTotal   float64 `json:"haze_total"`
	ResetNumber int     `json:"reset_number"`
}

// Type-safe event constructors

// NewHarvestEvent creates a plant harvested event
func NewHarvestEvent(slot int, strainID string, grams, quality float64) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PlantHarvested,
		Payload: HarvestPayloadV1{Slot: slot, StrainID: strainID, Grams: grams, Quality: quality},
	}
}

// NewPlantDiedEvent creates a plant died event
func NewPlantDiedEvent(slot int, strainID string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PlantDied,
		Payload: HarvestPayloadV1{Slot: slot, StrainID: strainID},
	}
}

// NewPestEvent creates a pest infection event
func NewPestEvent(slot int, pestID string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PestInfected,
		Payload: PestPayloadV1{Slot: slot, PestID: pestID},
	}
}

// NewOfferEvent creates an offer lifecycle event of the given type
func NewOfferEvent(t Type, offerID string, grams int, pricePerG float64, expiresAt time.Time) Event {
	return Event{
		Version: SchemaVersion,
		Type:    t,
		Payload: OfferPayloadV1{OfferID: offerID, Grams: grams, PricePerG: pricePerG, ExpiresAt: expiresAt},
	}
}

// NewSaleEvent creates a quick sell event
func NewSaleEvent(grams, cash float64) Event {
	return Event{
		Version: SchemaVersion,
		Type:    SaleCompleted,
		Payload: SalePayloadV1{Grams: grams, Cash: cash},
	}
}

// NewPrestigeEvent creates a prestige reset event
func NewPrestigeEvent(gained, total float64, resetNumber int) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PrestigeReset,
		Payload: PrestigePayloadV1{HazeGained: gained, HazeTotal: total, ResetNumber: resetNumber},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the event bus. Handlers run
// synchronously in publish order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("encountered %d errors while handling event %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
