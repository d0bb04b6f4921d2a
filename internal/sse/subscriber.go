package sse

import (
	"context"
	"log/slog"

	"github.com/verdantworks/idlefarm/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub. Payloads are
// already JSON-friendly typed structs, so they pass through unchanged.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// forwardedTypes are the event types relayed to connected clients.
// StateTicked is included so a browser can render the whole farm from
// the stream alone.
var forwardedTypes = []event.Type{
	event.PlantHarvested,
	event.PlantDied,
	event.PestInfected,
	event.OfferSpawned,
	event.OfferAccepted,
	event.OfferExpired,
	event.SaleCompleted,
	event.PrestigeReset,
	event.StateTicked,
}

// Subscribe registers forwarding handlers for all relayed event types
func (s *Subscriber) Subscribe() {
	for _, t := range forwardedTypes {
		s.bus.Subscribe(t, s.forward)
	}

	types := make([]string, len(forwardedTypes))
	for i, t := range forwardedTypes {
		types[i] = string(t)
	}
	slog.Info("SSE subscriber registered for event types", "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
