package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/rng"
)

func TestMaxActiveOffers(t *testing.T) {
	assert.Equal(t, 3, MaxActiveOffers(map[string]int{}))
	assert.Equal(t, 4, MaxActiveOffers(map[string]int{"van": 1}))
	assert.Equal(t, 5, MaxActiveOffers(map[string]int{"van": 2}))
}

func TestSpawnWindow(t *testing.T) {
	min, max := SpawnWindow(map[string]int{})
	assert.Equal(t, 45.0, min)
	assert.Equal(t, 90.0, max)

	min, max = SpawnWindow(map[string]int{"van": 2})
	assert.Equal(t, 25.0, min)
	assert.Equal(t, 70.0, max)

	// floors hold no matter how many vans are stacked
	min, max = SpawnWindow(map[string]int{"van": 10})
	assert.Equal(t, 20.0, min)
	assert.Equal(t, 25.0, max)
}

func TestNextDelayWithinWindow(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.0, 0.5, 0.999))
	items := map[string]int{}

	assert.Equal(t, 45.0, g.NextDelay(items))
	assert.Equal(t, 67.5, g.NextDelay(items))
	assert.Less(t, g.NextDelay(items), 90.0)
}

func TestSpawnDeterministic(t *testing.T) {
	// grams roll, price roll, ttl roll
	g := NewGenerator(rng.NewSequence(0.5, 0.5, 0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.TotalEarned = 0 // scale clamps to 1

	offer := g.Spawn(s, now)
	require.NotNil(t, offer)

	assert.NotEmpty(t, offer.ID)
	assert.Equal(t, 240, offer.Grams) // floor(40 + 0.5*400)
	assert.Equal(t, 3.1, offer.PricePerG)
	assert.Equal(t, now.Add(120*time.Second), offer.ExpiresAt)
	assert.Len(t, s.Offers, 1)
}

func TestSpawnScalesWithLifetimeEarnings(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.0))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.TotalEarned = 1_000_000 // scale = 1000/20 = 50

	offer := g.Spawn(s, now)
	require.NotNil(t, offer)
	assert.Equal(t, 2000, offer.Grams) // floor(40*50)
}

func TestSpawnRespectsCap(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)

	for i := 0; i < 3; i++ {
		require.NotNil(t, g.Spawn(s, now))
	}
	assert.Nil(t, g.Spawn(s, now))
	assert.Len(t, s.Offers, 3)

	s.ItemsOwned["van"] = 1
	require.NotNil(t, g.Spawn(s, now))
	assert.Nil(t, g.Spawn(s, now))
}

func TestAcceptSettlesOffer(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.Grams = 500
	s.Offers = []domain.Offer{{
		ID:        "offer-1",
		Grams:     100,
		PricePerG: 3.00,
		ExpiresAt: now.Add(time.Minute),
	}}

	res, err := g.Accept(s, "offer-1", now)
	require.NoError(t, err)

	assert.Equal(t, 100, res.Grams)
	assert.Equal(t, 300.0, res.Cash)
	assert.Equal(t, 400.0, s.Grams)
	assert.Equal(t, 300.0, s.Cash)
	assert.Equal(t, 300.0, s.TotalCashEarned)
	assert.Equal(t, 1, s.TradesDone)
	assert.Empty(t, s.Offers)

	_, err = g.Accept(s, "offer-1", now)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestAcceptInsufficientGrams(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.Grams = 50
	s.Offers = []domain.Offer{{
		ID:        "offer-1",
		Grams:     100,
		PricePerG: 3.00,
		ExpiresAt: now.Add(time.Minute),
	}}

	_, err := g.Accept(s, "offer-1", now)
	assert.ErrorIs(t, err, domain.ErrInsufficientGrams)

	// nothing moved
	assert.Equal(t, 50.0, s.Grams)
	assert.Equal(t, 0.0, s.Cash)
	assert.Len(t, s.Offers, 1)
}

func TestAcceptUnknownOffer(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	s := domain.NewDefaultState(time.Now())

	_, err := g.Accept(s, "nope", time.Now())
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestAcceptExpiredOffer(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.Grams = 500
	s.Offers = []domain.Offer{{
		ID:        "stale",
		Grams:     100,
		PricePerG: 3.00,
		ExpiresAt: now.Add(-time.Second),
	}}

	_, err := g.Accept(s, "stale", now)
	assert.ErrorIs(t, err, domain.ErrOfferExpired)
	assert.Empty(t, s.Offers)
	assert.Equal(t, 500.0, s.Grams)

	// a second attempt still reports expired, not unknown
	_, err = g.Accept(s, "stale", now)
	assert.ErrorIs(t, err, domain.ErrOfferExpired)
}

func TestPruneExpiredRemembersIDs(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.Offers = []domain.Offer{
		{ID: "live", Grams: 10, PricePerG: 2.5, ExpiresAt: now.Add(time.Minute)},
		{ID: "dead", Grams: 10, PricePerG: 2.5, ExpiresAt: now.Add(-time.Minute)},
	}

	removed := g.PruneExpired(s, now)
	require.Len(t, removed, 1)
	assert.Equal(t, "dead", removed[0].ID)
	require.Len(t, s.Offers, 1)
	assert.Equal(t, "live", s.Offers[0].ID)

	_, err := g.Accept(s, "dead", now)
	assert.ErrorIs(t, err, domain.ErrOfferExpired)
}

func TestAcceptDrainsQualityPool(t *testing.T) {
	g := NewGenerator(rng.NewSequence(0.5))
	now := time.Now()
	s := domain.NewDefaultState(now)
	s.Grams = 200
	s.QualityPool = domain.QualityPool{Grams: 200, Weighted: 240} // avg 1.2
	s.Offers = []domain.Offer{{
		ID:        "offer-1",
		Grams:     100,
		PricePerG: 3.00,
		ExpiresAt: now.Add(time.Minute),
	}}

	_, err := g.Accept(s, "offer-1", now)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, s.QualityPool.Grams, 1e-9)
	assert.InDelta(t, 1.2, s.QualityPool.Average(), 1e-9)
}
