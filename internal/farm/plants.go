package farm

import (
	"context"
	"fmt"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/economy"
	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/logger"
	"github.com/verdantworks/idlefarm/internal/pest"
	"github.com/verdantworks/idlefarm/internal/research"
	"github.com/verdantworks/idlefarm/internal/utils"
)

// Harvest quality aftermath: the plant keeps growing but loses some
// moisture and trims a little quality.
const (
	harvestWaterLoss   = 10.0
	harvestQualityLoss = 0.05
)

// BuyPlant purchases a strain into the given slot, replacing any plant
// already there. Pass slot -1 to use the first empty slot.
func (s *service) BuyPlant(ctx context.Context, strainID string, slot int) (*domain.Plant, error) {
	strain, err := catalog.Strain(strainID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if slot < 0 {
		slot = state.FirstEmptySlot()
		if slot < 0 {
			return nil, domain.ErrNoFreeSlot
		}
	}
	if slot >= domain.MaxSlots {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSlot, slot)
	}
	if slot >= state.SlotsUnlocked {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotLocked, slot)
	}

	cost := economy.StrainPurchaseCost(strain, state.PurchasedCount[strainID])
	if state.Cash < cost {
		return nil, fmt.Errorf("%w: need %.0f", domain.ErrInsufficientCash, cost)
	}

	state.Cash -= cost
	state.PurchasedCount[strainID]++
	state.RemovePlantAt(slot)
	p := domain.NewPlant(strainID, slot)
	state.Plants = append(state.Plants, p)

	logger.FromContext(ctx).Info("Plant purchased", "strain", strainID, "slot", slot, "cost", cost)
	_ = s.saveLocked(ctx)

	cp := *p
	return &cp, nil
}

// RemovePlant destroys the plant in the given slot.
func (s *service) RemovePlant(ctx context.Context, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.RemovePlantAt(slot) {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	_ = s.saveLocked(ctx)
	return nil
}

// UpgradePlant raises the plant's level, paid in grams.
func (s *service) UpgradePlant(ctx context.Context, slot int) (*domain.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	p := state.PlantAt(slot)
	if p == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}

	strain := catalog.StrainOrDefault(p.StrainID)
	cost := economy.PlantUpgradeCost(strain, p.Level)
	if state.Grams < cost {
		return nil, fmt.Errorf("%w: need %.0f g", domain.ErrInsufficientGrams, cost)
	}

	state.Grams -= cost
	p.Level++
	_ = s.saveLocked(ctx)

	cp := *p
	return &cp, nil
}

// Harvest collects a fully grown plant. Requires owned shears, full
// growth and a living plant. The plant stays in its slot and regrows.
func (s *service) Harvest(ctx context.Context, slot int) (*HarvestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	p := state.PlantAt(slot)
	if p == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	if state.ItemsOwned["shears"] <= 0 {
		return nil, domain.ErrShearsRequired
	}
	if p.GrowthProg < 1 {
		return nil, domain.ErrNotRipe
	}
	if p.Health <= 0 {
		return nil, domain.ErrPlantDead
	}

	res := research.Effects(state)
	gain := economy.HarvestYield(state, p, res) * economy.QualityMultiplier(p, res)
	quality := p.Quality

	state.Grams += gain
	state.TotalEarned += gain
	economy.AddToPool(state, gain, quality)

	p.GrowthProg = 0
	p.ReadyTime = 0
	p.Water = utils.Clamp(p.Water-harvestWaterLoss, 0, domain.WaterMax)
	p.Quality = utils.Clamp(p.Quality-harvestQualityLoss, domain.QualityMin, domain.QualityMax)

	s.publish(ctx, event.NewHarvestEvent(slot, p.StrainID, gain, quality))
	logger.FromContext(ctx).Info("Harvest collected", "slot", slot, "strain", p.StrainID, "grams", utils.Grams(gain))
	_ = s.saveLocked(ctx)

	return &HarvestResult{Slot: slot, StrainID: p.StrainID, Grams: gain, Quality: quality}, nil
}

// WaterPlant consumes one water charge and refills the plant.
func (s *service) WaterPlant(ctx context.Context, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	p := state.PlantAt(slot)
	if p == nil {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	if state.Consumables.Water <= 0 {
		return fmt.Errorf("%w: water", domain.ErrNoCharges)
	}

	state.Consumables.Water--
	p.Water = utils.Clamp(p.Water+domain.WaterAddAmount, 0, domain.WaterMax)
	_ = s.saveLocked(ctx)
	return nil
}

// FeedPlant consumes one nutrient charge; feeding also nudges quality up.
func (s *service) FeedPlant(ctx context.Context, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	p := state.PlantAt(slot)
	if p == nil {
		return fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	if state.Consumables.Nutrient <= 0 {
		return fmt.Errorf("%w: nutrient", domain.ErrNoCharges)
	}

	state.Consumables.Nutrient--
	p.Nutrients = utils.Clamp(p.Nutrients+domain.NutrientAddAmount, 0, domain.NutrientMax)
	p.Quality = utils.Clamp(p.Quality+0.04, domain.QualityMin, domain.QualityMax)
	_ = s.saveLocked(ctx)
	return nil
}

// TreatPest clears an active infection with the matching countermeasure.
func (s *service) TreatPest(ctx context.Context, slot int) (*TreatResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	p := state.PlantAt(slot)
	if p == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	if p.Pest == nil {
		return nil, domain.ErrNoPest
	}

	pestID := p.Pest.PestID
	consumed, err := pest.Cure(&state.Consumables, pestID)
	if err != nil {
		return nil, err
	}
	p.Pest = nil

	logger.FromContext(ctx).Info("Pest treated", "slot", slot, "pest", pestID, "consumed", consumed)
	_ = s.saveLocked(ctx)

	return &TreatResult{Slot: slot, PestID: pestID, Consumed: consumed}, nil
}

// UnlockSlot buys the next plant slot with grams.
func (s *service) UnlockSlot(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if state.SlotsUnlocked >= domain.MaxSlots {
		return 0, domain.ErrSlotsMaxed
	}

	cost := economy.SlotUnlockCost(state.SlotsUnlocked)
	if state.Grams < cost {
		return 0, fmt.Errorf("%w: need %.0f g", domain.ErrInsufficientGrams, cost)
	}

	state.Grams -= cost
	state.SlotsUnlocked++
	_ = s.saveLocked(ctx)
	return state.SlotsUnlocked, nil
}
