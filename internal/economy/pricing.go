package economy

import (
	"math"

	"github.com/verdantworks/idlefarm/internal/domain"
)

// SaleQualityMultiplier maps the weighted average quality of pooled
// product onto a price tier.
func SaleQualityMultiplier(avgQuality float64) float64 {
	if math.IsNaN(avgQuality) || math.IsInf(avgQuality, 0) || avgQuality <= 0 {
		return 1.0
	}
	switch {
	case avgQuality >= domain.QualityTierTopThreshold:
		return domain.QualityTierTopMult
	case avgQuality >= domain.QualityTierHighThreshold:
		return domain.QualityTierHighMult
	default:
		return 1.0
	}
}

// SalePricePerGram is the effective quick-sell price: base price times the
// item price bonus times the pool quality tier.
func SalePricePerGram(s *domain.FarmState) float64 {
	return domain.BasePricePerGram * ItemPriceMultiplier(s.ItemsOwned) * SaleQualityMultiplier(s.QualityPool.Average())
}

// AddToPool records a harvest in the quality pool.
func AddToPool(s *domain.FarmState, grams, quality float64) {
	if grams <= 0 {
		return
	}
	s.QualityPool.Grams += grams
	s.QualityPool.Weighted += grams * quality
}

// DrainPool removes sold grams from the quality pool, preserving the
// average quality of what remains.
func DrainPool(s *domain.FarmState, grams float64) {
	if grams <= 0 || s.QualityPool.Grams <= 0 {
		return
	}
	if grams >= s.QualityPool.Grams {
		s.QualityPool = domain.QualityPool{}
		return
	}
	avg := s.QualityPool.Average()
	s.QualityPool.Grams -= grams
	s.QualityPool.Weighted -= grams * avg
}

// SlotUnlockCost is the gram cost of unlocking the next slot.
func SlotUnlockCost(unlocked int) float64 {
	exp := unlocked - 1
	if exp < 0 {
		exp = 0
	}
	return math.Round(domain.SlotUnlockBase * math.Pow(domain.SlotUnlockFactor, float64(exp)))
}

// PlantUpgradeCost is the gram cost of the plant's next level.
func PlantUpgradeCost(strain domain.Strain, level int) float64 {
	return math.Round(strain.Cost * math.Pow(domain.PlantLevelCostFactor, float64(level)))
}

// StrainPurchaseCost escalates with the number of prior purchases of the
// same strain.
func StrainPurchaseCost(strain domain.Strain, purchased int) float64 {
	return math.Round(strain.Cost * math.Pow(domain.StrainPurchaseFactor, float64(purchased)))
}

// UpgradeCost is the gram cost of the upgrade's next level.
func UpgradeCost(def domain.UpgradeDef, level int) float64 {
	return math.Round(def.BaseCost * math.Pow(domain.UpgradeLevelCostFactor, float64(level)))
}

// ItemSellback is the cash refunded for selling an owned item back.
func ItemSellback(def domain.ItemDef) float64 {
	return math.Round(def.Cost * domain.ItemSellbackRatio)
}

// ConsumablePrice returns the cash price of one charge, or -1 for an
// unknown type.
func ConsumablePrice(kind string) float64 {
	switch kind {
	case domain.ConsumableWater:
		return domain.WaterConsumablePrice
	case domain.ConsumableNutrient:
		return domain.NutrientConsumablePrice
	case domain.ConsumableSpray:
		return domain.SprayConsumablePrice
	case domain.ConsumableFungicide:
		return domain.FungicideConsumablePrice
	case domain.ConsumableBeneficial:
		return domain.BeneficialConsumablePrice
	default:
		return -1
	}
}
