package plant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/pest"
	"github.com/verdantworks/idlefarm/internal/rng"
)

// quietSim returns a simulator whose pest rolls never succeed.
func quietSim() *Simulator {
	return NewSimulator(pest.NewModel(rng.NewSequence(0.99)))
}

func quietEnv() Env {
	return Env{
		Difficulty: catalog.DifficultyByID(domain.DifficultyNormal),
		Pest:       pest.Environment{PestMult: 1, ItemModifiers: pest.ItemModifiers(nil)},
	}
}

func TestAdvanceZeroElapsedIsNoOp(t *testing.T) {
	sim := quietSim()
	p := domain.NewPlant("gelato", 0)
	before := *p

	sim.Advance(p, 0, quietEnv())
	assert.Equal(t, before, *p)

	sim.Advance(p, -5, quietEnv())
	assert.Equal(t, before, *p)
}

func TestAdvanceKeepsFieldsInRange(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)

	for i := 0; i < 40; i++ {
		sim.Advance(p, 17.3, env)
		assert.GreaterOrEqual(t, p.Water, 0.0)
		assert.LessOrEqual(t, p.Water, domain.WaterMax)
		assert.GreaterOrEqual(t, p.Nutrients, 0.0)
		assert.LessOrEqual(t, p.Nutrients, domain.NutrientMax)
		assert.GreaterOrEqual(t, p.Health, 0.0)
		assert.LessOrEqual(t, p.Health, domain.HealthMax)
		assert.GreaterOrEqual(t, p.GrowthProg, 0.0)
		assert.LessOrEqual(t, p.GrowthProg, 1.0)
		assert.GreaterOrEqual(t, p.Quality, domain.QualityMin)
		assert.LessOrEqual(t, p.Quality, domain.QualityMax)
	}
}

func TestAdvanceSubStepAdditivity(t *testing.T) {
	env := quietEnv()

	one := domain.NewPlant("gelato", 0)
	many := domain.NewPlant("gelato", 0)

	// identical deterministic draws on both paths
	NewSimulator(pest.NewModel(rng.NewSequence(0.99))).Advance(one, 10, env)

	sim := NewSimulator(pest.NewModel(rng.NewSequence(0.99)))
	for i := 0; i < 10; i++ {
		sim.Advance(many, 1, env)
	}

	assert.InDelta(t, one.Water, many.Water, 1e-9)
	assert.InDelta(t, one.Nutrients, many.Nutrients, 1e-9)
	assert.InDelta(t, one.Health, many.Health, 1e-9)
	assert.InDelta(t, one.GrowthProg, many.GrowthProg, 1e-9)
	assert.InDelta(t, one.Quality, many.Quality, 1e-9)
}

func TestMonotonicDepletion(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)

	prevWater, prevNutrients := p.Water, p.Nutrients
	for i := 0; i < 300; i++ {
		sim.Advance(p, 1, env)
		assert.LessOrEqual(t, p.Water, prevWater)
		assert.LessOrEqual(t, p.Nutrients, prevNutrients)
		prevWater, prevNutrients = p.Water, p.Nutrients
	}
	assert.Zero(t, p.Water)
	assert.Zero(t, p.Nutrients)
}

func TestGrowthCompletesAndReadyTimerRuns(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)
	// keep the plant comfortable
	for p.GrowthProg < 1 {
		p.Water = 60
		p.Nutrients = 60
		sim.Advance(p, 1, env)
	}
	assert.Equal(t, 1.0, p.GrowthProg)
	assert.Zero(t, p.ReadyTime)

	p.Water = 60
	p.Nutrients = 60
	sim.Advance(p, 5, env)
	assert.InDelta(t, 5.0, p.ReadyTime, 1e-9)
}

func TestReadyDecayAfterDelay(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)
	p.GrowthProg = 1
	p.ReadyTime = domain.ReadyDecayDelay + 1
	p.Water = 60
	p.Nutrients = 60
	p.Quality = 1.0

	sim.Advance(p, 1, env)
	// good-band quality gain (0.03 + 0.024) minus over-ready decay (0.03)
	assert.InDelta(t, 1.024, p.Quality, 1e-9)
}

func TestDeadPlantFreezes(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)
	p.Health = 1
	p.Water = 0
	p.Nutrients = 0
	p.GrowthProg = 0.5

	sim.Advance(p, 30, env)
	assert.Zero(t, p.Health)
	assert.LessOrEqual(t, p.GrowthProg, FailedCropProgress)

	// further advancement leaves the frozen plant alone except for drains
	prog := p.GrowthProg
	sim.Advance(p, 30, env)
	assert.Equal(t, prog, p.GrowthProg)
	assert.Zero(t, p.Health)
}

func TestPestDamageAndSeverityRamp(t *testing.T) {
	sim := quietSim()
	env := quietEnv()
	p := domain.NewPlant("gelato", 0)
	p.Pest = &domain.PestInfection{PestID: "mites", Severity: 1}
	healthBefore := p.Health

	sim.Advance(p, 10, env)
	require.NotNil(t, p.Pest)
	assert.InDelta(t, 1.4, p.Pest.Severity, 1e-9) // +0.04/s
	assert.Less(t, p.Health, healthBefore)
}

func TestSeverityCapsAtMax(t *testing.T) {
	sim := quietSim()
	p := domain.NewPlant("gelato", 0)
	p.Pest = &domain.PestInfection{PestID: "thrips", Severity: 2.95}

	sim.Advance(p, 30, quietEnv())
	require.NotNil(t, p.Pest)
	assert.Equal(t, pest.SeverityMax, p.Pest.Severity)
}

func TestWaterResearchSlowsDrain(t *testing.T) {
	sim := quietSim()
	plain := domain.NewPlant("gelato", 0)
	boosted := domain.NewPlant("gelato", 0)

	env := quietEnv()
	sim.Advance(plain, 10, env)

	env.Research.Water = 0.2
	sim.Advance(boosted, 10, env)

	assert.Greater(t, boosted.Water, plain.Water)
	assert.InDelta(t, domain.WaterDrainPerSec*0.2*10, boosted.Water-plain.Water, 1e-9)
}

func TestRepairsCorruptedFieldsBeforeSimulating(t *testing.T) {
	sim := quietSim()
	p := domain.NewPlant("gelato", 0)
	p.Water = math.NaN()
	p.Quality = math.Inf(1)

	sim.Advance(p, 1, quietEnv())
	assert.False(t, math.IsNaN(p.Water))
	assert.LessOrEqual(t, p.Quality, domain.QualityMax)
}
