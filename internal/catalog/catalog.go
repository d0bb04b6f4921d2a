// Package catalog holds the static game data: strains, items, upgrades,
// research nodes, pests and difficulty presets. Pure lookup tables, no
// behavior beyond id resolution.
package catalog

import (
	"fmt"

	"github.com/verdantworks/idlefarm/internal/domain"
)

// Strains in shop order.
var Strains = []domain.Strain{
	{ID: "gelato", Name: "Green Gelato", Cost: 50, Yield: 50, GrowSecs: 120},
	{ID: "zushi", Name: "Blue Zushi", Cost: 320, Yield: 90, GrowSecs: 180},
	{ID: "honey", Name: "Honey Cream", Cost: 540, Yield: 150, GrowSecs: 210},
	{ID: "amnesia", Name: "Amnesia Haze", Cost: 900, Yield: 240, GrowSecs: 260},
	{ID: "gorilla", Name: "Gorilla Glue", Cost: 1500, Yield: 360, GrowSecs: 320},
	{ID: "zkittle", Name: "Zkittlez", Cost: 2300, Yield: 520, GrowSecs: 360},
}

// GlobalUpgrades in shop order.
var GlobalUpgrades = []domain.UpgradeDef{
	{ID: "lights", Name: "LED Grow Lights", BaseCost: 100, Increment: 0.15},
	{ID: "nutrients", Name: "Nutrient Booster", BaseCost: 250, Increment: 0.20},
	{ID: "climate", Name: "Climate Control", BaseCost: 800, Increment: 0.35},
	{ID: "automation", Name: "Automation", BaseCost: 2500, Increment: 0.50},
}

// Items in shop order.
var Items = []domain.ItemDef{
	{ID: "shears", Name: "Shears", Cost: 80},
	{ID: "watering_can", Name: "Watering Can", Cost: 60},
	{ID: "nutrients_kit", Name: "Fertilizer Kit", Cost: 110},
	{ID: "scale", Name: "Precision Scale", Cost: 150, Effects: domain.ItemEffects{PriceMult: 1.05}},
	{ID: "jars", Name: "Curing Jars", Cost: 300, Effects: domain.ItemEffects{PriceMult: 1.10}},
	{ID: "van", Name: "Delivery Van", Cost: 600, Effects: domain.ItemEffects{OfferSlots: 1, SpawnDelta: 10}},
	{ID: "trimmer", Name: "Trimmer", Cost: 500, Effects: domain.ItemEffects{YieldMult: 1.05}},
	{ID: "filter", Name: "Carbon Filter", Cost: 350, Effects: domain.ItemEffects{YieldMult: 1.05}},
	{ID: "fan", Name: "Ventilator", Cost: 220, Effects: domain.ItemEffects{PestReduce: map[string]float64{"mold": 0.6}}},
	{ID: "dehumidifier", Name: "Dehumidifier", Cost: 280, Effects: domain.ItemEffects{PestReduce: map[string]float64{"mold": 0.5}}},
	{ID: "sticky_traps", Name: "Sticky Traps", Cost: 120, Effects: domain.ItemEffects{PestReduce: map[string]float64{"thrips": 0.5}}},
}

// ResearchNodes in tree order.
var ResearchNodes = []domain.ResearchNode{
	{ID: "bio1", Name: "Botany I", Cost: 1, Group: domain.ResearchYield, Value: 0.10},
	{ID: "bio2", Name: "Botany II", Cost: 2, Group: domain.ResearchYield, Value: 0.10, Requires: []string{"bio1"}},
	{ID: "climate1", Name: "Climate I", Cost: 1, Group: domain.ResearchGrowth, Value: 0.10},
	{ID: "process1", Name: "Processing I", Cost: 1, Group: domain.ResearchQuality, Value: 0.10},
	{ID: "auto1", Name: "Automation I", Cost: 1, Group: domain.ResearchWater, Value: 0.20},
	{ID: "pest1", Name: "Pest Control I", Cost: 1, Group: domain.ResearchPest, Value: 0.25},
}

// Pests in roll order. The first pest whose infection roll succeeds wins.
var Pests = []domain.PestDef{
	{ID: "mites", Name: "Spider Mites", BaseRisk: 0.02, GrowthFactor: 0.6, HealthDelta: -2, QualityDelta: -0.01, Prefers: domain.PrefersDry},
	{ID: "mold", Name: "Mold", BaseRisk: 0.015, GrowthFactor: 0.3, HealthDelta: -3, QualityDelta: -0.03, Prefers: domain.PrefersWet},
	{ID: "thrips", Name: "Thrips", BaseRisk: 0.018, GrowthFactor: 0.8, HealthDelta: -1, QualityDelta: -0.008, Prefers: domain.PrefersAny},
}

// Difficulties keyed by id.
var Difficulties = map[string]domain.Difficulty{
	domain.DifficultyEasy:   {ID: domain.DifficultyEasy, Name: "Easy", GrowthMult: 1.35, PestMult: 0.7},
	domain.DifficultyNormal: {ID: domain.DifficultyNormal, Name: "Normal", GrowthMult: 1.15, PestMult: 1.0},
	domain.DifficultyHard:   {ID: domain.DifficultyHard, Name: "Hard", GrowthMult: 0.95, PestMult: 1.4},
}

var (
	strainByID   = indexByID(Strains, func(s domain.Strain) string { return s.ID })
	itemByID     = indexByID(Items, func(i domain.ItemDef) string { return i.ID })
	upgradeByID  = indexByID(GlobalUpgrades, func(u domain.UpgradeDef) string { return u.ID })
	researchByID = indexByID(ResearchNodes, func(n domain.ResearchNode) string { return n.ID })
	pestByID     = indexByID(Pests, func(p domain.PestDef) string { return p.ID })
)

func indexByID[T any](defs []T, id func(T) string) map[string]T {
	m := make(map[string]T, len(defs))
	for _, d := range defs {
		m[id(d)] = d
	}
	return m
}

// Strain resolves a strain id. Unknown ids are an error; use StrainOrDefault
// for loaded state where leniency is wanted.
func Strain(id string) (domain.Strain, error) {
	s, ok := strainByID[id]
	if !ok {
		return domain.Strain{}, fmt.Errorf("%w: %s", domain.ErrStrainNotFound, id)
	}
	return s, nil
}

// StrainOrDefault resolves a strain id, falling back to the first catalog
// strain for unknown ids. Intentional leniency: a persisted plant whose
// strain was removed from the catalog keeps working instead of bricking
// the save.
func StrainOrDefault(id string) domain.Strain {
	if s, ok := strainByID[id]; ok {
		return s
	}
	return Strains[0]
}

// Item resolves a shop item id.
func Item(id string) (domain.ItemDef, error) {
	it, ok := itemByID[id]
	if !ok {
		return domain.ItemDef{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// Upgrade resolves a global upgrade id.
func Upgrade(id string) (domain.UpgradeDef, error) {
	u, ok := upgradeByID[id]
	if !ok {
		return domain.UpgradeDef{}, fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, id)
	}
	return u, nil
}

// Research resolves a research node id.
func Research(id string) (domain.ResearchNode, error) {
	n, ok := researchByID[id]
	if !ok {
		return domain.ResearchNode{}, fmt.Errorf("%w: %s", domain.ErrResearchNotFound, id)
	}
	return n, nil
}

// Pest resolves a pest id.
func Pest(id string) (domain.PestDef, error) {
	p, ok := pestByID[id]
	if !ok {
		return domain.PestDef{}, fmt.Errorf("%w: %s", domain.ErrPestNotFound, id)
	}
	return p, nil
}

// DifficultyByID resolves a difficulty id, falling back to normal.
// The fallback mirrors the persisted-state repair policy.
func DifficultyByID(id string) domain.Difficulty {
	if d, ok := Difficulties[id]; ok {
		return d
	}
	return Difficulties[domain.DifficultyNormal]
}
