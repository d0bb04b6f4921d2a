package domain

import "time"

// Plant is a single growing plant occupying a farm slot.
type Plant struct {
	Slot       int            `json:"slot"`
	StrainID   string         `json:"strain_id"`
	Level      int            `json:"level"`
	GrowthProg float64        `json:"growth_prog"` // 0..1, 1 = harvestable
	Water      float64        `json:"water"`       // 0..100
	Nutrients  float64        `json:"nutrients"`   // 0..100
	Health     float64        `json:"health"`      // 0..100
	Quality    float64        `json:"quality"`     // 0.4..1.5
	ReadyTime  float64        `json:"ready_time"`  // seconds spent fully grown, unharvested
	Pest       *PestInfection `json:"pest,omitempty"`
}

// PestInfection is an active infestation on a plant.
type PestInfection struct {
	PestID   string  `json:"pest_id"`
	Severity float64 `json:"severity"` // 1.0..3.0
}

// Offer is a time-limited buy request for harvested grams.
type Offer struct {
	ID        string    `json:"id"`
	Grams     int       `json:"grams"`
	PricePerG float64   `json:"price_per_g"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the offer has passed its deadline.
func (o Offer) Expired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}

// Total is the cash value of the full offer.
func (o Offer) Total() float64 {
	return float64(o.Grams) * o.PricePerG
}

// Consumables tracks single-use charges for plant care actions.
type Consumables struct {
	Water       int `json:"water"`
	Nutrient    int `json:"nutrient"`
	Spray       int `json:"spray"`
	Fungicide   int `json:"fungicide"`
	Beneficials int `json:"beneficials"`
}

// QualityPool accumulates harvested grams weighted by quality so that
// sale pricing can use the average quality of pooled product.
type QualityPool struct {
	Grams    float64 `json:"grams"`
	Weighted float64 `json:"weighted"`
}

// Average returns the weighted average quality of the pool, or 1.0 when empty.
func (q QualityPool) Average() float64 {
	if q.Grams <= 0 {
		return 1.0
	}
	return q.Weighted / q.Grams
}

// FarmState is the complete progression state of one farm.
// It is the unit of persistence and the single object mutated by ticks.
type FarmState struct {
	Grams           float64        `json:"grams"`
	TotalEarned     float64        `json:"total_earned"` // lifetime harvested grams
	BestPerSec      float64        `json:"best_per_sec"`
	HazePoints      float64        `json:"haze_points"`
	Resets          int            `json:"resets"`
	PlaytimeSec     float64        `json:"playtime_sec"`
	LastSavedAt     time.Time      `json:"last_saved_at"`
	SlotsUnlocked   int            `json:"slots_unlocked"`
	Plants          []*Plant       `json:"plants"`
	PurchasedCount  map[string]int `json:"purchased_count"` // strain id -> purchases (price escalation)
	Upgrades        map[string]int `json:"upgrades"`        // upgrade id -> level
	Cash            float64        `json:"cash"`
	TotalCashEarned float64        `json:"total_cash_earned"`
	TradesDone      int            `json:"trades_done"`
	Offers          []Offer        `json:"offers"`
	NextOfferIn     float64        `json:"next_offer_in"` // seconds until next spawn attempt
	ItemsOwned      map[string]int `json:"items_owned"`
	Consumables     Consumables    `json:"consumables"`
	Difficulty      string         `json:"difficulty"`
	Research        map[string]bool `json:"research"`
	QualityPool     QualityPool    `json:"quality_pool"`
	WelcomeRewarded bool           `json:"welcome_rewarded"`
}

// PlantAt returns the plant occupying the given slot, or nil.
func (s *FarmState) PlantAt(slot int) *Plant {
	for _, p := range s.Plants {
		if p.Slot == slot {
			return p
		}
	}
	return nil
}

// RemovePlantAt drops the plant in the given slot, if any.
// Returns true when a plant was removed.
func (s *FarmState) RemovePlantAt(slot int) bool {
	for i, p := range s.Plants {
		if p.Slot == slot {
			s.Plants = append(s.Plants[:i], s.Plants[i+1:]...)
			return true
		}
	}
	return false
}

// FirstEmptySlot returns the lowest unlocked slot without a plant, or -1.
func (s *FarmState) FirstEmptySlot() int {
	used := make(map[int]bool, len(s.Plants))
	for _, p := range s.Plants {
		used[p.Slot] = true
	}
	for i := 0; i < s.SlotsUnlocked; i++ {
		if !used[i] {
			return i
		}
	}
	return -1
}
