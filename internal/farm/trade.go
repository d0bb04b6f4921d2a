package farm

import (
	"context"
	"fmt"
	"math"

	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/economy"
	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/logger"
	"github.com/verdantworks/idlefarm/internal/market"
	"github.com/verdantworks/idlefarm/internal/utils"
)

// AcceptOffer fills a market offer: grams out, cash in.
func (s *service) AcceptOffer(ctx context.Context, offerID string) (*market.AcceptResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.offers.Accept(s.state, offerID, s.now())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewOfferEvent(event.OfferAccepted, res.OfferID, res.Grams, res.Cash/float64(res.Grams), s.now()))
	logger.FromContext(ctx).Info("Offer accepted", "offer", res.OfferID, "grams", res.Grams, "cash", utils.Money(res.Cash))
	_ = s.saveLocked(ctx)
	return res, nil
}

// QuickSell sells whole grams at the current effective price.
func (s *service) QuickSell(ctx context.Context, grams float64) (*SaleResult, error) {
	grams = math.Floor(grams)
	if grams <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if state.Grams < grams {
		return nil, fmt.Errorf("%w: have %.0f g", domain.ErrInsufficientGrams, state.Grams)
	}

	price := economy.SalePricePerGram(state)
	cash := grams * price

	state.Grams -= grams
	economy.DrainPool(state, grams)
	state.Cash += cash
	state.TotalCashEarned += cash
	state.TradesDone++

	s.publish(ctx, event.NewSaleEvent(grams, cash))
	logger.FromContext(ctx).Info("Quick sell", "grams", utils.Grams(grams), "price_per_g", price, "cash", utils.Money(cash))
	_ = s.saveLocked(ctx)

	return &SaleResult{Grams: grams, PricePerG: price, Cash: cash}, nil
}

// Prestige resets the farm in exchange for haze points. Difficulty and
// the welcome flag survive the reset; everything else returns to its
// initial value.
func (s *service) Prestige(ctx context.Context) (*PrestigeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gain := economy.PrestigeGain(s.state.TotalEarned)
	if gain <= 0 {
		return nil, domain.ErrNoPrestigeGain
	}

	old := s.state
	fresh := domain.NewDefaultState(s.now())
	fresh.HazePoints = old.HazePoints + gain
	fresh.Resets = old.Resets + 1
	fresh.Difficulty = old.Difficulty
	fresh.WelcomeRewarded = true
	s.state = fresh

	result := &PrestigeResult{Gained: gain, Total: fresh.HazePoints, Resets: fresh.Resets}
	s.publish(ctx, event.NewPrestigeEvent(gain, fresh.HazePoints, fresh.Resets))
	logger.FromContext(ctx).Info("Prestige reset", "gained", gain, "total", fresh.HazePoints, "resets", fresh.Resets)
	_ = s.saveLocked(ctx)
	return result, nil
}
