// Package market produces timed, expiring buy offers and settles their
// acceptance. Offer generation is independent of plant state; quantities
// scale with lifetime earnings so offers stay relevant at every
// progression stage.
package market

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/economy"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/utils"
)

// expiredCacheSize bounds the recently-expired id cache; entries also age
// out after expiredCacheTTL so the distinction between "expired" and
// "never existed" fades with time.
const (
	expiredCacheSize = 256
	expiredCacheTTL  = 10 * time.Minute
)

// AcceptResult reports the settlement of an accepted offer.
type AcceptResult struct {
	OfferID string  `json:"offer_id"`
	Grams   int     `json:"grams"`
	Cash    float64 `json:"cash"`
}

// Generator spawns and settles offers against an injected random source.
type Generator struct {
	rnd     rng.Source
	expired *expirable.LRU[string, time.Time]
}

// NewGenerator creates an offer generator.
func NewGenerator(rnd rng.Source) *Generator {
	return &Generator{
		rnd:     rnd,
		expired: expirable.NewLRU[string, time.Time](expiredCacheSize, nil, expiredCacheTTL),
	}
}

// MaxActiveOffers is the concurrent offer cap: the base plus one per
// capacity item owned.
func MaxActiveOffers(itemsOwned map[string]int) int {
	extra := 0
	for _, it := range catalog.Items {
		if it.Effects.OfferSlots > 0 {
			extra += it.Effects.OfferSlots * itemsOwned[it.ID]
		}
	}
	return domain.MaxActiveOffersBase + extra
}

// SpawnWindow is the [min, max) seconds until the next spawn attempt.
// Capacity items narrow the window, with absolute floors.
func SpawnWindow(itemsOwned map[string]int) (float64, float64) {
	delta := 0.0
	for _, it := range catalog.Items {
		if it.Effects.SpawnDelta > 0 {
			delta += it.Effects.SpawnDelta * float64(itemsOwned[it.ID])
		}
	}
	min := math.Max(domain.OfferSpawnFloorMin, domain.OfferSpawnMin-delta)
	max := math.Max(domain.OfferSpawnFloorMax, domain.OfferSpawnMax-delta)
	return min, max
}

// NextDelay rolls a fresh spawn delay within the current window.
func (g *Generator) NextDelay(itemsOwned map[string]int) float64 {
	min, max := SpawnWindow(itemsOwned)
	return min + g.rnd.Float64()*(max-min)
}

// Spawn creates a new offer if the active count is below the cap and
// appends it to the state. Returns the offer, or nil when at capacity.
func (g *Generator) Spawn(s *domain.FarmState, now time.Time) *domain.Offer {
	if len(s.Offers) >= MaxActiveOffers(s.ItemsOwned) {
		return nil
	}

	scale := math.Max(1, math.Sqrt(math.Max(1, s.TotalEarned))/20)
	grams := int(utils.Clamp(math.Floor(40*scale+g.rnd.Float64()*400*scale), domain.OfferGramsMin, domain.OfferGramsMax))
	priceMult := 1.1 + g.rnd.Float64()*0.9
	ttl := time.Duration(domain.OfferTTLMinSecs+int(g.rnd.Float64()*domain.OfferTTLRangeSecs)) * time.Second

	offer := domain.Offer{
		ID:        uuid.NewString(),
		Grams:     grams,
		PricePerG: utils.Round2(domain.BasePricePerGram * priceMult),
		ExpiresAt: now.Add(ttl),
	}
	s.Offers = append(s.Offers, offer)
	return &s.Offers[len(s.Offers)-1]
}

// PruneExpired silently drops offers past their deadline, remembering
// their ids so a late accept gets a precise rejection. Returns the
// removed offers.
func (g *Generator) PruneExpired(s *domain.FarmState, now time.Time) []domain.Offer {
	kept := s.Offers[:0]
	var removed []domain.Offer
	for _, o := range s.Offers {
		if o.Expired(now) {
			g.expired.Add(o.ID, o.ExpiresAt)
			removed = append(removed, o)
			continue
		}
		kept = append(kept, o)
	}
	s.Offers = kept
	return removed
}

// Accept settles an offer: debits the gram balance, credits cash and
// removes the offer. State is untouched on error.
func (g *Generator) Accept(s *domain.FarmState, id string, now time.Time) (*AcceptResult, error) {
	idx := -1
	for i, o := range s.Offers {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		if _, wasActive := g.expired.Get(id); wasActive {
			return nil, fmt.Errorf("%w: %s", domain.ErrOfferExpired, id)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, id)
	}

	offer := s.Offers[idx]
	if offer.Expired(now) {
		g.expired.Add(offer.ID, offer.ExpiresAt)
		s.Offers = append(s.Offers[:idx], s.Offers[idx+1:]...)
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferExpired, id)
	}
	if s.Grams < float64(offer.Grams) {
		return nil, fmt.Errorf("%w: offer needs %d g", domain.ErrInsufficientGrams, offer.Grams)
	}

	total := offer.Total()
	s.Grams -= float64(offer.Grams)
	economy.DrainPool(s, float64(offer.Grams))
	s.Cash += total
	s.TotalCashEarned += total
	s.TradesDone++
	s.Offers = append(s.Offers[:idx], s.Offers[idx+1:]...)

	return &AcceptResult{OfferID: offer.ID, Grams: offer.Grams, Cash: total}, nil
}
