package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/metrics"
	"github.com/verdantworks/idlefarm/internal/sse"
)

// InitializeEventSystem creates the in-memory event bus wrapped in a
// resilient publisher with a dead-letter file for events that exhaust
// their retries.
func InitializeEventSystem() (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(EventDefaultDeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: EventDefaultDeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", EventDefaultDeadLetterPath)

	return publisher, nil
}

// RegisterEventHandlers wires the standing subscribers: the Prometheus
// metrics collector and the SSE bridge.
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(hub, bus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)
}
