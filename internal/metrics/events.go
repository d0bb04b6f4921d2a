package metrics

import (
	"context"

	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PlantHarvested,
		event.PestInfected,
		event.OfferSpawned,
		event.OfferAccepted,
		event.OfferExpired,
		event.SaleCompleted,
		event.PrestigeReset,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PlantHarvested:
		payload, ok := evt.Payload.(event.HarvestPayloadV1)
		if !ok {
			log.Debug("Unexpected harvest payload type", "type", evt.Type)
			return nil
		}
		HarvestsTotal.WithLabelValues(payload.StrainID).Inc()
		GramsHarvested.Add(payload.Grams)

	case event.PestInfected:
		payload, ok := evt.Payload.(event.PestPayloadV1)
		if !ok {
			log.Debug("Unexpected pest payload type", "type", evt.Type)
			return nil
		}
		PestInfections.WithLabelValues(payload.PestID).Inc()

	case event.OfferSpawned:
		OffersSpawned.Inc()

	case event.OfferAccepted:
		OffersAccepted.Inc()
		if payload, ok := evt.Payload.(event.OfferPayloadV1); ok {
			CashEarned.Add(float64(payload.Grams) * payload.PricePerG)
		}

	case event.OfferExpired:
		OffersExpired.Inc()

	case event.SaleCompleted:
		if payload, ok := evt.Payload.(event.SalePayloadV1); ok {
			CashEarned.Add(payload.Cash)
		}

	case event.PrestigeReset:
		PrestigeResets.Inc()
	}

	return nil
}
