// Package pest implements stochastic infection risk and its escalation,
// consumed by the plant simulator.
package pest

import (
	"fmt"
	"math"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/rng"
)

// Moisture thresholds at which a pest's preferred condition applies.
const (
	DryThreshold    = 0.35
	WetThreshold    = 0.85
	StressThreshold = 0.25

	DryRiskMult    = 3.0
	WetRiskMult    = 3.5
	StressRiskMult = 1.3

	SeverityRampPerSec = 0.04
	SeverityMax        = 3.0
)

// Environment carries the state-derived modifiers for an infection roll.
type Environment struct {
	PestMult          float64            // difficulty pest multiplier
	ResearchReduction float64            // summed pest-research bonus, 0..1
	ItemModifiers     map[string]float64 // pest id -> multiplicative risk factor from owned items
}

// Model rolls infections against an injected random source.
type Model struct {
	rnd rng.Source
}

// NewModel creates a pest model using the given random source.
func NewModel(rnd rng.Source) *Model {
	return &Model{rnd: rnd}
}

// ItemModifiers composes the per-pest risk factor contributed by owned
// defensive items. Each unit owned multiplies the factor in once.
func ItemModifiers(itemsOwned map[string]int) map[string]float64 {
	mods := make(map[string]float64, len(catalog.Pests))
	for _, p := range catalog.Pests {
		mods[p.ID] = 1
	}
	for _, it := range catalog.Items {
		owned := itemsOwned[it.ID]
		if owned == 0 || it.Effects.PestReduce == nil {
			continue
		}
		for pestID, factor := range it.Effects.PestReduce {
			mods[pestID] *= math.Pow(factor, float64(owned))
		}
	}
	return mods
}

// Risk computes the infection probability for one pest over step seconds.
func (m *Model) Risk(def domain.PestDef, step, waterRatio, nutrientRatio float64, env Environment) float64 {
	risk := def.BaseRisk * step * env.PestMult
	if def.Prefers == domain.PrefersDry && waterRatio < DryThreshold {
		risk *= DryRiskMult
	}
	if def.Prefers == domain.PrefersWet && waterRatio > WetThreshold {
		risk *= WetRiskMult
	}
	if nutrientRatio < StressThreshold {
		risk *= StressRiskMult
	}
	if mod, ok := env.ItemModifiers[def.ID]; ok {
		risk *= mod
	}
	risk *= 1 - env.ResearchReduction
	return risk
}

// MaybeInfect rolls every pest in catalog order against the plant; the
// first successful roll infects it at severity 1. At most one pest can be
// active; callers must not invoke this while an infection is live.
// Returns true when an infection started.
func (m *Model) MaybeInfect(p *domain.Plant, step, waterRatio, nutrientRatio float64, env Environment) bool {
	for _, def := range catalog.Pests {
		if m.rnd.Float64() < m.Risk(def, step, waterRatio, nutrientRatio, env) {
			p.Pest = &domain.PestInfection{PestID: def.ID, Severity: 1}
			return true
		}
	}
	return false
}

// Cure clears an infection, consuming the matching countermeasure charge:
// fungicide for mold, spray for the crawling pests with beneficials as the
// fallback. Returns the consumable used.
func Cure(c *domain.Consumables, pestID string) (string, error) {
	switch pestID {
	case "mold":
		if c.Fungicide > 0 {
			c.Fungicide--
			return domain.ConsumableFungicide, nil
		}
		return "", fmt.Errorf("%w: fungicide needed", domain.ErrWrongCountermeasure)
	default:
		if c.Spray > 0 {
			c.Spray--
			return domain.ConsumableSpray, nil
		}
		if c.Beneficials > 0 {
			c.Beneficials--
			return domain.ConsumableBeneficial, nil
		}
		return "", fmt.Errorf("%w: spray or beneficials needed", domain.ErrWrongCountermeasure)
	}
}
