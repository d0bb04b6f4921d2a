package farm

import (
	"context"
	"fmt"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
	"github.com/verdantworks/idlefarm/internal/economy"
	"github.com/verdantworks/idlefarm/internal/logger"
	"github.com/verdantworks/idlefarm/internal/research"
)

// BuyItem purchases one unit of a shop item with cash.
func (s *service) BuyItem(ctx context.Context, itemID string) error {
	item, err := catalog.Item(itemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if state.Cash < item.Cost {
		return fmt.Errorf("%w: need %.0f", domain.ErrInsufficientCash, item.Cost)
	}

	state.Cash -= item.Cost
	state.ItemsOwned[itemID]++

	logger.FromContext(ctx).Info("Item purchased", "item", itemID, "cost", item.Cost)
	_ = s.saveLocked(ctx)
	return nil
}

// SellItem sells one owned unit back at the sell-back ratio and returns
// the cash gained.
func (s *service) SellItem(ctx context.Context, itemID string) (float64, error) {
	item, err := catalog.Item(itemID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if state.ItemsOwned[itemID] <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
	}

	price := economy.ItemSellback(item)
	state.ItemsOwned[itemID]--
	state.Cash += price
	_ = s.saveLocked(ctx)
	return price, nil
}

// BuyUpgrade raises a global upgrade by one level, paid in grams.
// Returns the new level.
func (s *service) BuyUpgrade(ctx context.Context, upgradeID string) (int, error) {
	def, err := catalog.Upgrade(upgradeID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	level := state.Upgrades[upgradeID]
	cost := economy.UpgradeCost(def, level)
	if state.Grams < cost {
		return 0, fmt.Errorf("%w: need %.0f g", domain.ErrInsufficientGrams, cost)
	}

	state.Grams -= cost
	state.Upgrades[upgradeID] = level + 1

	logger.FromContext(ctx).Info("Upgrade purchased", "upgrade", upgradeID, "level", level+1, "cost", cost)
	_ = s.saveLocked(ctx)
	return level + 1, nil
}

// BuyResearch unlocks a research node if its prerequisites and point
// budget allow it.
func (s *service) BuyResearch(ctx context.Context, nodeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := research.Purchase(s.state, nodeID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Research unlocked", "node", nodeID)
	_ = s.saveLocked(ctx)
	return nil
}

// BuyConsumable buys one charge of the given consumable kind with cash.
func (s *service) BuyConsumable(ctx context.Context, kind string) error {
	price := economy.ConsumablePrice(kind)
	if price < 0 {
		return fmt.Errorf("%w: unknown consumable %q", domain.ErrInvalidInput, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state

	if state.Cash < price {
		return fmt.Errorf("%w: need %.0f", domain.ErrInsufficientCash, price)
	}

	state.Cash -= price
	switch kind {
	case domain.ConsumableWater:
		state.Consumables.Water++
	case domain.ConsumableNutrient:
		state.Consumables.Nutrient++
	case domain.ConsumableSpray:
		state.Consumables.Spray++
	case domain.ConsumableFungicide:
		state.Consumables.Fungicide++
	case domain.ConsumableBeneficial:
		state.Consumables.Beneficials++
	}
	_ = s.saveLocked(ctx)
	return nil
}

// SetDifficulty switches the difficulty mode.
func (s *service) SetDifficulty(ctx context.Context, difficultyID string) error {
	if _, ok := catalog.Difficulties[difficultyID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrDifficultyNotFound, difficultyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Difficulty = difficultyID
	logger.FromContext(ctx).Info("Difficulty changed", "difficulty", difficultyID)
	_ = s.saveLocked(ctx)
	return nil
}
