package domain

// Strain describes a purchasable plant variety.
type Strain struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`      // base purchase cost, cash
	Yield    float64 `json:"yield"`     // base harvest yield, grams
	GrowSecs float64 `json:"grow_secs"` // base time to full growth
}

// UpgradeDef describes a global farm upgrade purchasable with grams.
type UpgradeDef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BaseCost  float64 `json:"base_cost"`
	Increment float64 `json:"increment"` // per-level yield bonus, e.g. 0.15 = +15%
}

// ItemEffects is the passive effect bundle an owned item contributes.
// Multiplicative effects compose per unit owned (factor^count).
type ItemEffects struct {
	PriceMult  float64            `json:"price_mult,omitempty"`
	YieldMult  float64            `json:"yield_mult,omitempty"`
	OfferSlots int                `json:"offer_slots,omitempty"`
	SpawnDelta float64            `json:"spawn_delta,omitempty"` // seconds shaved off the offer spawn window
	PestReduce map[string]float64 `json:"pest_reduce,omitempty"` // pest id -> per-unit risk factor
}

// ItemDef describes a shop item.
type ItemDef struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Cost    float64     `json:"cost"`
	Effects ItemEffects `json:"effects"`
}

// ResearchGroup classifies what a research node improves.
type ResearchGroup string

const (
	ResearchYield   ResearchGroup = "yield"
	ResearchGrowth  ResearchGroup = "growth"
	ResearchQuality ResearchGroup = "quality"
	ResearchPest    ResearchGroup = "pest"
	ResearchWater   ResearchGroup = "water"
)

// ResearchNode is a node in the research tree. Ownership is permanent.
type ResearchNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Cost     int           `json:"cost"` // research points
	Group    ResearchGroup `json:"group"`
	Value    float64       `json:"value"`
	Requires []string      `json:"requires"`
}

// ResearchEffects is the summed active bonus per research group.
type ResearchEffects struct {
	Yield   float64
	Growth  float64
	Quality float64
	Pest    float64
	Water   float64
}

// MoisturePreference describes the water conditions a pest thrives in.
type MoisturePreference string

const (
	PrefersDry MoisturePreference = "dry"
	PrefersWet MoisturePreference = "wet"
	PrefersAny MoisturePreference = "any"
)

// PestDef describes a pest species and its per-tick damage profile.
type PestDef struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	BaseRisk     float64            `json:"base_risk"` // infection probability per second
	GrowthFactor float64            `json:"growth_factor"`
	HealthDelta  float64            `json:"health_delta"`  // per second at severity 1
	QualityDelta float64            `json:"quality_delta"` // per second at severity 1
	Prefers      MoisturePreference `json:"prefers"`
}

// Difficulty tunes global growth speed and pest pressure.
type Difficulty struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	GrowthMult float64 `json:"growth_mult"`
	PestMult   float64 `json:"pest_mult"`
}
