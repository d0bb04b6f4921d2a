package domain

// Farm layout
const (
	MaxSlots         = 12
	InitialSlots     = 3
	SlotUnlockBase   = 100.0
	SlotUnlockFactor = 1.75
)

// Plant resource ranges and rates (per simulated second unless noted)
const (
	WaterMax           = 100.0
	WaterStart         = 55.0
	WaterDrainPerSec   = 0.6
	WaterAddAmount     = 55.0

	NutrientMax         = 100.0
	NutrientStart       = 60.0
	NutrientDrainPerSec = 0.35
	NutrientAddAmount   = 45.0

	HealthMax         = 100.0
	HealthDecayDry    = 6.0
	HealthDecayHungry = 4.0
	HealthRecoverRate = 2.0

	QualityMin      = 0.4
	QualityMax      = 1.5
	QualityGainGood = 0.03
	QualityLossBad  = 0.06

	// Seconds a ready plant can sit unharvested before quality decays.
	ReadyDecayDelay = 45.0
)

// Plant progression costs
const (
	PlantLevelCostFactor   = 1.15 // per level, on strain base cost, paid in grams
	StrainPurchaseFactor   = 1.18 // per prior purchase of the strain, paid in cash
	PlantLevelYieldFactor  = 1.12 // yield scaling per level above 1
	UpgradeLevelCostFactor = 1.6
)

// Market
const (
	BasePricePerGram = 2.0
	OfferSpawnMin    = 45.0
	OfferSpawnMax    = 90.0
	OfferSpawnFloorMin = 20.0
	OfferSpawnFloorMax = 25.0
	MaxActiveOffersBase = 3
	OfferGramsMin    = 20
	OfferGramsMax    = 1_000_000
	OfferTTLMinSecs  = 60
	OfferTTLRangeSecs = 120
)

// Sale quality tiers (weighted average pool quality -> price multiplier)
const (
	QualityTierTopThreshold  = 1.35
	QualityTierTopMult       = 1.6
	QualityTierHighThreshold = 1.15
	QualityTierHighMult      = 1.25
)

// Consumable prices, cash
const (
	WaterConsumablePrice      = 5.0
	NutrientConsumablePrice   = 7.0
	SprayConsumablePrice      = 9.0
	FungicideConsumablePrice  = 11.0
	BeneficialConsumablePrice = 14.0
)

// Consumable type keys used by buy/treat actions
const (
	ConsumableWater      = "water"
	ConsumableNutrient   = "nutrient"
	ConsumableSpray      = "spray"
	ConsumableFungicide  = "fungicide"
	ConsumableBeneficial = "beneficial"
)

// Prestige
const (
	PrestigeDivisor    = 10_000.0
	PrestigeBonusRate  = 0.05 // multiplier bonus per sqrt(haze point)
	ItemSellbackRatio  = 0.7
	WelcomeBonusCash   = 100.0
	ResearchPointsPer  = 500.0 // lifetime grams per research point
)

// Difficulty ids
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)
