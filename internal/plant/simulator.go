// Package plant implements the per-plant growth, resource and health
// simulation. It is the numerical core of the farm: all elapsed time,
// live or offline, passes through Advance.
package plant

import (
	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/pest"
	"github.com/verdantworks/idlefarm/internal/utils"
)

// Band boundaries for water and nutrient ratios.
const (
	WaterCriticalRatio    = 0.25
	WaterGoodLow          = 0.40
	WaterGoodHigh         = 0.85
	WaterExcessRatio      = 0.90
	NutrientCriticalRatio = 0.30
	NutrientGoodLow       = 0.40
	NutrientGoodHigh      = 0.80
	NutrientExcessRatio   = 0.90

	// Growth-rate factors per band / condition.
	GrowthDepletedWater    = 0.05
	GrowthCriticalWater    = 0.35
	GrowthExcessWater      = 0.8
	GrowthDepletedNutrient = 0.25
	GrowthCriticalNutrient = 0.5
	GrowthLowHealth        = 0.6
	GrowthThriving         = 1.1

	LowHealthThreshold = 40.0
	ThrivingHealth     = 85.0
	RecoverHealthMin   = 50.0

	// A dead plant's growth collapses back to at most this share.
	FailedCropProgress = 0.1

	maxSubStep = 1.0
)

// Env carries the state-derived inputs the simulator needs for one call.
// The simulator itself never touches global state.
type Env struct {
	Difficulty domain.Difficulty
	Research   domain.ResearchEffects
	Pest       pest.Environment
}

// Simulator advances plants through simulated time.
type Simulator struct {
	pests *pest.Model
}

// NewSimulator creates a simulator using the given pest model.
func NewSimulator(pests *pest.Model) *Simulator {
	return &Simulator{pests: pests}
}

// Advance mutates the plant to reflect elapsed seconds of simulated time.
// Time is processed in sub-steps of at most one second: the feedback
// effects (stress scaling growth rate, pest severity ramping) are computed
// from instantaneous ratios, and sub-stepping keeps the integration stable
// and the pest roll probability proportional to wall time. elapsed <= 0 is
// a no-op. A plant whose health hits zero is frozen for the rest of the
// call.
func (s *Simulator) Advance(p *domain.Plant, elapsed float64, env Env) {
	if p == nil || elapsed <= 0 {
		return
	}
	p.Repair()

	strain := catalog.StrainOrDefault(p.StrainID)
	growTime := strain.GrowSecs

	remaining := elapsed
	for remaining > 0 {
		step := remaining
		if step > maxSubStep {
			step = maxSubStep
		}

		p.Water = utils.Clamp(p.Water-domain.WaterDrainPerSec*(1-env.Research.Water)*step, 0, domain.WaterMax)
		p.Nutrients = utils.Clamp(p.Nutrients-domain.NutrientDrainPerSec*step, 0, domain.NutrientMax)

		waterRatio := p.Water / domain.WaterMax
		nutrientRatio := p.Nutrients / domain.NutrientMax
		goodWater := waterRatio >= WaterGoodLow && waterRatio <= WaterGoodHigh
		goodNutrient := nutrientRatio >= NutrientGoodLow && nutrientRatio <= NutrientGoodHigh

		growthFactor := env.Difficulty.GrowthMult * (1 + env.Research.Growth)
		healthDelta := 0.0
		qualityDelta := 0.0

		switch {
		case p.Water <= 0:
			healthDelta -= domain.HealthDecayDry * step
			qualityDelta -= domain.QualityLossBad * step
			growthFactor *= GrowthDepletedWater
		case waterRatio < WaterCriticalRatio:
			healthDelta -= domain.HealthDecayDry / 2 * step
			qualityDelta -= domain.QualityLossBad / 2 * step
			growthFactor *= GrowthCriticalWater
		case waterRatio > WaterExcessRatio:
			qualityDelta -= 0.02 * step
			growthFactor *= GrowthExcessWater
		case goodWater:
			qualityDelta += domain.QualityGainGood * step
			healthDelta += domain.HealthRecoverRate * 0.3 * step
		}

		switch {
		case p.Nutrients <= 0:
			healthDelta -= domain.HealthDecayHungry * step
			qualityDelta -= domain.QualityLossBad * step
			growthFactor *= GrowthDepletedNutrient
		case nutrientRatio < NutrientCriticalRatio:
			healthDelta -= domain.HealthDecayHungry / 2 * step
			qualityDelta -= domain.QualityLossBad / 2 * step
			growthFactor *= GrowthCriticalNutrient
		case nutrientRatio > NutrientExcessRatio:
			qualityDelta -= 0.015 * step
		case goodNutrient:
			qualityDelta += domain.QualityGainGood * 0.8 * step
		}

		if p.Health < LowHealthThreshold {
			growthFactor *= GrowthLowHealth
		}

		if p.Pest == nil {
			s.pests.MaybeInfect(p, step, waterRatio, nutrientRatio, env.Pest)
		} else {
			def, err := catalog.Pest(p.Pest.PestID)
			if err != nil {
				// unknown pest id in a loaded save: drop the infection
				p.Pest = nil
			} else {
				sev := p.Pest.Severity
				gf := def.GrowthFactor
				if gf < 0.2 {
					gf = 0.2
				}
				growthFactor *= gf
				healthDelta += def.HealthDelta * (0.5 + 0.5*sev) * step
				qualityDelta += def.QualityDelta * (0.5 + 0.5*sev) * step
				p.Pest.Severity = sev + pest.SeverityRampPerSec*step
				if p.Pest.Severity > pest.SeverityMax {
					p.Pest.Severity = pest.SeverityMax
				}
			}
		}

		if p.Health > ThrivingHealth && goodWater && goodNutrient {
			growthFactor *= GrowthThriving
		}

		if p.GrowthProg < 1 {
			p.GrowthProg = utils.Clamp(p.GrowthProg+(step/growTime)*growthFactor, 0, 1)
			if p.GrowthProg >= 1 {
				p.ReadyTime = 0
			}
		} else {
			p.ReadyTime += step
			if p.ReadyTime > domain.ReadyDecayDelay {
				qualityDelta -= domain.QualityLossBad / 2 * step
			}
		}

		if goodWater && goodNutrient && p.GrowthProg < 1 && p.Health > RecoverHealthMin {
			healthDelta += domain.HealthRecoverRate * step
		}

		p.Health = utils.Clamp(p.Health+healthDelta, 0, domain.HealthMax)
		p.Quality = utils.Clamp(p.Quality+qualityDelta, domain.QualityMin, domain.QualityMax)

		if p.Health <= 0 {
			p.Health = 0
			if p.GrowthProg > FailedCropProgress {
				p.GrowthProg = FailedCropProgress
			}
			return
		}

		remaining -= step
	}
}
