// Package farm is the progression controller: it owns the single
// FarmState, serializes all access behind a mutex, and drives the
// simulation tick, offline catch-up and periodic checkpointing.
package farm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/economy"
	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/logger"
	"github.com/verdantworks/idlefarm/internal/market"
	"github.com/verdantworks/idlefarm/internal/metrics"
	"github.com/verdantworks/idlefarm/internal/pest"
	"github.com/verdantworks/idlefarm/internal/plant"
	"github.com/verdantworks/idlefarm/internal/research"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/snapshot"
)

const (
	// MaxTickStep caps a single tick's simulated time. Longer gaps are
	// handled by the catch-up path, not one giant tick.
	MaxTickStep = 0.2

	// SaveInterval is the checkpoint cadence in simulated seconds.
	SaveInterval = 3.0

	// CatchUpCap bounds offline catch-up to a day of simulated time.
	CatchUpCap = 24 * time.Hour

	// minCatchUp skips catch-up for sub-second gaps.
	minCatchUp = 1.0
)

// HarvestResult reports a completed harvest.
type HarvestResult struct {
	Slot     int     `json:"slot"`
	StrainID string  `json:"strain_id"`
	Grams    float64 `json:"grams"`
	Quality  float64 `json:"quality"`
}

// TreatResult reports a cured infection and the consumable spent.
type TreatResult struct {
	Slot     int    `json:"slot"`
	PestID   string `json:"pest_id"`
	Consumed string `json:"consumed"`
}

// SaleResult reports a quick sell.
type SaleResult struct {
	Grams     float64 `json:"grams"`
	PricePerG float64 `json:"price_per_g"`
	Cash      float64 `json:"cash"`
}

// PrestigeResult reports a prestige reset.
type PrestigeResult struct {
	Gained float64 `json:"gained"`
	Total  float64 `json:"total"`
	Resets int     `json:"resets"`
}

// Service defines the farm business logic. Every method is safe for
// concurrent use; invalid actions return a domain error and leave the
// state untouched.
type Service interface {
	// Tick advances the simulation by elapsed seconds (capped at MaxTickStep).
	Tick(ctx context.Context, elapsed float64)
	// Snapshot returns a deep copy of the current state.
	Snapshot() *domain.FarmState
	// Save checkpoints the state immediately.
	Save(ctx context.Context) error

	BuyPlant(ctx context.Context, strainID string, slot int) (*domain.Plant, error)
	RemovePlant(ctx context.Context, slot int) error
	UpgradePlant(ctx context.Context, slot int) (*domain.Plant, error)
	Harvest(ctx context.Context, slot int) (*HarvestResult, error)
	WaterPlant(ctx context.Context, slot int) error
	FeedPlant(ctx context.Context, slot int) error
	TreatPest(ctx context.Context, slot int) (*TreatResult, error)

	BuyItem(ctx context.Context, itemID string) error
	SellItem(ctx context.Context, itemID string) (float64, error)
	BuyUpgrade(ctx context.Context, upgradeID string) (int, error)
	BuyResearch(ctx context.Context, nodeID string) error
	BuyConsumable(ctx context.Context, kind string) error

	AcceptOffer(ctx context.Context, offerID string) (*market.AcceptResult, error)
	QuickSell(ctx context.Context, grams float64) (*SaleResult, error)
	UnlockSlot(ctx context.Context) (int, error)
	SetDifficulty(ctx context.Context, difficultyID string) error
	Prestige(ctx context.Context) (*PrestigeResult, error)
}

type service struct {
	mu         sync.Mutex
	state      *domain.FarmState
	sim        *plant.Simulator
	offers     *market.Generator
	store      snapshot.Store
	bus        event.Bus
	now        func() time.Time
	saveTicker float64
}

// NewService loads (or initializes) the farm state, applies offline
// catch-up and the one-time welcome bonus, and returns the controller.
// A failed load is logged and replaced with a fresh default state.
func NewService(ctx context.Context, store snapshot.Store, bus event.Bus, rnd rng.Source, now func() time.Time) Service {
	log := logger.FromContext(ctx)

	state, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			log.Warn("Failed to load snapshot, starting fresh", "error", err)
		}
		state = domain.NewDefaultState(now())
	}

	s := &service{
		state:  state,
		sim:    plant.NewSimulator(pest.NewModel(rnd)),
		offers: market.NewGenerator(rnd),
		store:  store,
		bus:    bus,
		now:    now,
	}

	if !state.WelcomeRewarded {
		state.Cash += domain.WelcomeBonusCash
		state.WelcomeRewarded = true
		log.Info("Welcome bonus granted", "cash", domain.WelcomeBonusCash)
	}

	s.catchUp(ctx)
	return s
}

// catchUp advances plants through the time the process was down.
func (s *service) catchUp(ctx context.Context) {
	elapsed := s.now().Sub(s.state.LastSavedAt).Seconds()
	if elapsed < minCatchUp {
		return
	}
	if limit := CatchUpCap.Seconds(); elapsed > limit {
		elapsed = limit
	}

	env := s.env()
	for _, p := range s.state.Plants {
		s.sim.Advance(p, elapsed, env)
	}
	logger.FromContext(ctx).Info("Offline catch-up applied", "seconds", elapsed, "plants", len(s.state.Plants))
}

// env assembles the simulation environment from the current state.
// Callers must hold the lock.
func (s *service) env() plant.Env {
	diff := catalog.DifficultyByID(s.state.Difficulty)
	res := research.Effects(s.state)
	return plant.Env{
		Difficulty: diff,
		Research:   res,
		Pest: pest.Environment{
			PestMult:          diff.PestMult,
			ResearchReduction: res.Pest,
			ItemModifiers:     pest.ItemModifiers(s.state.ItemsOwned),
		},
	}
}

func (s *service) Tick(ctx context.Context, elapsed float64) {
	if elapsed <= 0 {
		return
	}
	if elapsed > MaxTickStep {
		elapsed = MaxTickStep
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	now := s.now()
	state := s.state
	state.PlaytimeSec += elapsed

	env := s.env()
	alive := 0
	for _, p := range state.Plants {
		hadPest := p.Pest != nil
		wasAlive := p.Health > 0

		s.sim.Advance(p, elapsed, env)

		if !hadPest && p.Pest != nil {
			s.publish(ctx, event.NewPestEvent(p.Slot, p.Pest.PestID))
		}
		if wasAlive && p.Health <= 0 {
			s.publish(ctx, event.NewPlantDiedEvent(p.Slot, p.StrainID))
		}
		if p.Health > 0 {
			alive++
		}
	}

	rate := economy.ProductionRate(state, env.Research)
	if rate > state.BestPerSec {
		state.BestPerSec = rate
	}

	state.NextOfferIn -= elapsed
	if state.NextOfferIn <= 0 {
		if offer := s.offers.Spawn(state, now); offer != nil {
			s.publish(ctx, event.NewOfferEvent(event.OfferSpawned, offer.ID, offer.Grams, offer.PricePerG, offer.ExpiresAt))
		}
		state.NextOfferIn = s.offers.NextDelay(state.ItemsOwned)
	}

	for _, o := range s.offers.PruneExpired(state, now) {
		s.publish(ctx, event.NewOfferEvent(event.OfferExpired, o.ID, o.Grams, o.PricePerG, o.ExpiresAt))
	}

	s.saveTicker += elapsed
	if s.saveTicker > SaveInterval {
		_ = s.saveLocked(ctx)
		s.saveTicker = 0
	}

	metrics.SimTicksTotal.Inc()
	metrics.SimTickDuration.Observe(time.Since(start).Seconds())
	metrics.ProductionRate.Set(rate)
	metrics.PlantsAlive.Set(float64(alive))

	s.publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    event.StateTicked,
		Payload: state.Clone(),
	})
}

func (s *service) Snapshot() *domain.FarmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// saveLocked checkpoints the state. Callers must hold the lock.
// Save failures are logged and surfaced in metrics but never interrupt
// the simulation.
func (s *service) saveLocked(ctx context.Context) error {
	s.state.LastSavedAt = s.now()
	if err := s.store.Save(ctx, s.state); err != nil {
		metrics.SnapshotSaveErrors.Inc()
		logger.FromContext(ctx).Error("Snapshot save failed", "error", err)
		return err
	}
	metrics.SnapshotSaves.Inc()
	return nil
}

// publish sends an event without letting handler errors disturb the tick.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn("Event handler failed", "event_type", evt.Type, "error", err)
	}
}
