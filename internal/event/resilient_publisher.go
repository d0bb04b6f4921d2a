package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/verdantworks/idlefarm/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps a Bus with retry logic. Events that exhaust
// their retries are appended to a dead-letter file as JSON lines.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // serializes dead-letter file writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{inner: inner, config: config}
}

// Publish attempts to publish the event, retrying in the background on
// failure. The caller never blocks on retries.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	if err := p.inner.Publish(ctx, evt); err != nil {
		logger.Warn("Event publish failed, retrying in background",
			"event_type", evt.Type, "error", err)
		go p.retryLoop(evt)
	}
	return nil
}

// Subscribe forwards to the wrapped bus.
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(evt Event) {
	ctx := context.Background()
	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))
		if err := p.inner.Publish(ctx, evt); err == nil {
			logger.Info("Event published after retry", "event_type", evt.Type, "attempt", i)
			return
		}
	}
	p.writeToDeadLetter(evt)
}

func (p *ResilientPublisher) writeToDeadLetter(evt Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error("Failed to open dead letter file", "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	line, err := json.Marshal(evt)
	if err != nil {
		logger.Error("Failed to encode dead letter event", "error", err, "event_type", evt.Type)
		return
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		logger.Error("Failed to write dead letter event", "error", err, "event_type", evt.Type)
	}
}
