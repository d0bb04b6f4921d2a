// Package economy composes the multiplier stack applied at harvest and
// sale time and derives prices, yields and the production rate.
package economy

import (
	"math"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/utils"
)

// ItemPriceMultiplier composes the sale price bonus of owned items,
// factor^count per item.
func ItemPriceMultiplier(itemsOwned map[string]int) float64 {
	mult := 1.0
	for _, it := range catalog.Items {
		owned := itemsOwned[it.ID]
		if owned == 0 || it.Effects.PriceMult == 0 {
			continue
		}
		mult *= math.Pow(it.Effects.PriceMult, float64(owned))
	}
	return mult
}

// ItemYieldMultiplier composes the harvest yield bonus of owned items.
func ItemYieldMultiplier(itemsOwned map[string]int) float64 {
	mult := 1.0
	for _, it := range catalog.Items {
		owned := itemsOwned[it.ID]
		if owned == 0 || it.Effects.YieldMult == 0 {
			continue
		}
		mult *= math.Pow(it.Effects.YieldMult, float64(owned))
	}
	return mult
}

// GlobalMultiplier is the account-wide yield term: global upgrade levels,
// item yield bonuses and the prestige bonus. It is separable from the
// per-plant terms so the production rate can be recomputed without
// re-deriving global state per plant.
func GlobalMultiplier(s *domain.FarmState) float64 {
	mult := 1.0
	for _, up := range catalog.GlobalUpgrades {
		if lvl := s.Upgrades[up.ID]; lvl > 0 {
			mult *= math.Pow(1+up.Increment, float64(lvl))
		}
	}
	mult *= ItemYieldMultiplier(s.ItemsOwned)
	mult *= PrestigeBonus(s.HazePoints)
	return mult
}

// HarvestYield is the gram yield of harvesting the plant now, before the
// quality multiplier: strain base x level scaling x research x global.
func HarvestYield(s *domain.FarmState, p *domain.Plant, res domain.ResearchEffects) float64 {
	strain := catalog.StrainOrDefault(p.StrainID)
	levelMult := math.Pow(domain.PlantLevelYieldFactor, math.Max(0, float64(p.Level-1)))
	return strain.Yield * levelMult * (1 + res.Yield) * GlobalMultiplier(s)
}

// QualityMultiplier is the per-plant quality term applied on top of the
// yield: quality x research quality bonus x a health factor clamped to
// [0.4, 1.1].
func QualityMultiplier(p *domain.Plant, res domain.ResearchEffects) float64 {
	q := utils.Clamp(p.Quality, domain.QualityMin, domain.QualityMax)
	healthFactor := utils.Clamp(p.Health/domain.HealthMax, 0.4, 1.1)
	return q * (1 + res.Quality) * healthFactor
}

// ProductionRate is the instantaneous grams-per-second of all growing,
// living plants. Depleted water or nutrients slow a plant to a quarter.
func ProductionRate(s *domain.FarmState, res domain.ResearchEffects) float64 {
	diff := catalog.DifficultyByID(s.Difficulty)
	sum := 0.0
	for _, p := range s.Plants {
		if p.GrowthProg >= 1 || p.Health <= 0 {
			continue
		}
		slow := 1.0
		if p.Water <= 0 || p.Nutrients <= 0 {
			slow = 0.25
		}
		strain := catalog.StrainOrDefault(p.StrainID)
		effTime := strain.GrowSecs / diff.GrowthMult
		sum += HarvestYield(s, p, res) * QualityMultiplier(p, res) / effTime * slow
	}
	return sum
}

// PrestigeGain is the haze points a reset would award right now.
func PrestigeGain(totalEarned float64) float64 {
	if totalEarned <= 0 {
		return 0
	}
	return math.Floor(math.Sqrt(totalEarned / domain.PrestigeDivisor))
}

// PrestigeBonus is the permanent multiplier granted by owned haze points.
func PrestigeBonus(hazePoints float64) float64 {
	return 1 + domain.PrestigeBonusRate*math.Sqrt(math.Max(0, hazePoints))
}
