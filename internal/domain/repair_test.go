package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepairDefaultsEmptyState(t *testing.T) {
	now := time.Now()
	s := &FarmState{}
	s.Repair(now)

	assert.Equal(t, InitialSlots, s.SlotsUnlocked)
	assert.Equal(t, DifficultyNormal, s.Difficulty)
	assert.NotNil(t, s.PurchasedCount)
	assert.NotNil(t, s.Upgrades)
	assert.NotNil(t, s.ItemsOwned)
	assert.NotNil(t, s.Research)
	assert.NotNil(t, s.Plants)
	assert.NotNil(t, s.Offers)
	assert.Equal(t, now, s.LastSavedAt)
}

func TestRepairResetsCorruptedNumbers(t *testing.T) {
	s := &FarmState{
		Grams:         math.NaN(),
		Cash:          -50,
		TotalEarned:   math.Inf(1),
		SlotsUnlocked: 99,
		Difficulty:    "nightmare",
	}
	s.Repair(time.Now())

	assert.Zero(t, s.Grams)
	assert.Zero(t, s.Cash)
	assert.Zero(t, s.TotalEarned)
	assert.Equal(t, MaxSlots, s.SlotsUnlocked)
	assert.Equal(t, DifficultyNormal, s.Difficulty)
}

func TestRepairPlantFields(t *testing.T) {
	tests := []struct {
		name  string
		plant Plant
		check func(t *testing.T, p *Plant)
	}{
		{
			name:  "NaN water resets to start value",
			plant: Plant{Water: math.NaN(), Nutrients: 50, Health: 80, Quality: 1},
			check: func(t *testing.T, p *Plant) {
				assert.Equal(t, WaterStart, p.Water)
			},
		},
		{
			name:  "out of range values are clamped",
			plant: Plant{Water: 250, Nutrients: -5, Health: 130, Quality: 9, GrowthProg: 2},
			check: func(t *testing.T, p *Plant) {
				assert.Equal(t, WaterMax, p.Water)
				assert.Zero(t, p.Nutrients)
				assert.Equal(t, HealthMax, p.Health)
				assert.Equal(t, QualityMax, p.Quality)
				assert.Equal(t, 1.0, p.GrowthProg)
			},
		},
		{
			name:  "zero level becomes one",
			plant: Plant{Water: 50, Nutrients: 50, Health: 100, Quality: 1, Level: 0},
			check: func(t *testing.T, p *Plant) {
				assert.Equal(t, 1, p.Level)
			},
		},
		{
			name:  "pest with empty id is dropped",
			plant: Plant{Water: 50, Nutrients: 50, Health: 100, Quality: 1, Pest: &PestInfection{}},
			check: func(t *testing.T, p *Plant) {
				assert.Nil(t, p.Pest)
			},
		},
		{
			name:  "pest severity clamped to scale",
			plant: Plant{Water: 50, Nutrients: 50, Health: 100, Quality: 1, Pest: &PestInfection{PestID: "mites", Severity: 12}},
			check: func(t *testing.T, p *Plant) {
				assert.Equal(t, 3.0, p.Pest.Severity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.plant
			p.Repair()
			tt.check(t, &p)
		})
	}
}

func TestRepairDropsMalformedOffers(t *testing.T) {
	s := NewDefaultState(time.Now())
	s.Offers = []Offer{
		{ID: "", Grams: 100, PricePerG: 2},
		{ID: "ok", Grams: 100, PricePerG: 2.5, ExpiresAt: time.Now().Add(time.Minute)},
		{ID: "bad", Grams: -3, PricePerG: 2},
		{ID: "nan", Grams: 10, PricePerG: math.NaN()},
	}
	s.Repair(time.Now())

	assert.Len(t, s.Offers, 1)
	assert.Equal(t, "ok", s.Offers[0].ID)
}

func TestQualityPoolAverage(t *testing.T) {
	assert.Equal(t, 1.0, QualityPool{}.Average())
	assert.InDelta(t, 1.25, QualityPool{Grams: 100, Weighted: 125}.Average(), 1e-9)
}

func TestFirstEmptySlot(t *testing.T) {
	s := NewDefaultState(time.Now())
	assert.Equal(t, 0, s.FirstEmptySlot())

	s.Plants = []*Plant{NewPlant("gelato", 0), NewPlant("gelato", 1)}
	assert.Equal(t, 2, s.FirstEmptySlot())

	s.Plants = append(s.Plants, NewPlant("gelato", 2))
	assert.Equal(t, -1, s.FirstEmptySlot())
}
