package domain

import (
	"math"
	"time"
)

// NewDefaultState returns the documented initial state for a fresh farm.
func NewDefaultState(now time.Time) *FarmState {
	return &FarmState{
		SlotsUnlocked:  InitialSlots,
		Plants:         []*Plant{},
		PurchasedCount: map[string]int{},
		Upgrades:       map[string]int{},
		Offers:         []Offer{},
		NextOfferIn:    10,
		ItemsOwned:     map[string]int{},
		Difficulty:     DifficultyNormal,
		Research:       map[string]bool{},
		LastSavedAt:    now,
	}
}

// NewPlant creates a freshly purchased plant in the given slot.
func NewPlant(strainID string, slot int) *Plant {
	return &Plant{
		Slot:      slot,
		StrainID:  strainID,
		Level:     1,
		Water:     WaterStart,
		Nutrients: NutrientStart,
		Health:    HealthMax,
		Quality:   1.0,
	}
}

// Repair clamps and defaults every field of a loaded or externally mutated
// state so the simulation always starts from a valid snapshot. Corrupted
// numbers are reset to their documented defaults, missing collections to
// empty. It never fails.
func (s *FarmState) Repair(now time.Time) {
	s.Grams = repairNonNegative(s.Grams, 0)
	s.TotalEarned = repairNonNegative(s.TotalEarned, 0)
	s.BestPerSec = repairNonNegative(s.BestPerSec, 0)
	s.HazePoints = repairNonNegative(s.HazePoints, 0)
	s.PlaytimeSec = repairNonNegative(s.PlaytimeSec, 0)
	s.Cash = repairNonNegative(s.Cash, 0)
	s.TotalCashEarned = repairNonNegative(s.TotalCashEarned, 0)
	s.NextOfferIn = repairNonNegative(s.NextOfferIn, 10)
	if s.Resets < 0 {
		s.Resets = 0
	}
	if s.TradesDone < 0 {
		s.TradesDone = 0
	}
	if s.SlotsUnlocked < InitialSlots {
		s.SlotsUnlocked = InitialSlots
	}
	if s.SlotsUnlocked > MaxSlots {
		s.SlotsUnlocked = MaxSlots
	}
	if s.LastSavedAt.IsZero() || s.LastSavedAt.After(now) {
		s.LastSavedAt = now
	}

	if s.PurchasedCount == nil {
		s.PurchasedCount = map[string]int{}
	}
	if s.Upgrades == nil {
		s.Upgrades = map[string]int{}
	}
	if s.ItemsOwned == nil {
		s.ItemsOwned = map[string]int{}
	}
	if s.Research == nil {
		s.Research = map[string]bool{}
	}
	if s.Plants == nil {
		s.Plants = []*Plant{}
	}
	if s.Offers == nil {
		s.Offers = []Offer{}
	}

	s.Consumables.repair()
	s.QualityPool.repair()

	switch s.Difficulty {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		s.Difficulty = DifficultyNormal
	}

	plants := s.Plants[:0]
	for _, p := range s.Plants {
		if p == nil || p.Slot < 0 || p.Slot >= MaxSlots {
			continue
		}
		p.Repair()
		plants = append(plants, p)
	}
	s.Plants = plants

	offers := s.Offers[:0]
	for _, o := range s.Offers {
		if o.ID == "" || o.Grams <= 0 || o.PricePerG <= 0 || math.IsNaN(o.PricePerG) {
			continue
		}
		offers = append(offers, o)
	}
	s.Offers = offers
}

// Repair resets corrupted plant fields to defaults and clamps the rest.
func (p *Plant) Repair() {
	if p.Level < 1 {
		p.Level = 1
	}
	p.GrowthProg = clampRepaired(p.GrowthProg, 0, 1, 0)
	p.Water = clampRepaired(p.Water, 0, WaterMax, WaterStart)
	p.Nutrients = clampRepaired(p.Nutrients, 0, NutrientMax, NutrientStart)
	p.Health = clampRepaired(p.Health, 0, HealthMax, HealthMax)
	p.Quality = clampRepaired(p.Quality, QualityMin, QualityMax, 1.0)
	p.ReadyTime = repairNonNegative(p.ReadyTime, 0)
	if p.Pest != nil {
		if p.Pest.PestID == "" {
			p.Pest = nil
		} else {
			p.Pest.Severity = clampRepaired(p.Pest.Severity, 1, 3, 1)
		}
	}
}

func (c *Consumables) repair() {
	c.Water = maxInt(c.Water, 0)
	c.Nutrient = maxInt(c.Nutrient, 0)
	c.Spray = maxInt(c.Spray, 0)
	c.Fungicide = maxInt(c.Fungicide, 0)
	c.Beneficials = maxInt(c.Beneficials, 0)
}

func (q *QualityPool) repair() {
	q.Grams = repairNonNegative(q.Grams, 0)
	q.Weighted = repairNonNegative(q.Weighted, 0)
	if q.Grams == 0 {
		q.Weighted = 0
	}
}

// clampRepaired clamps v to [lo, hi]; NaN and infinities become def.
func clampRepaired(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return math.Max(lo, math.Min(hi, v))
}

func repairNonNegative(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return def
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
