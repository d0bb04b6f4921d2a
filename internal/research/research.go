// Package research derives research points, active bonuses and purchase
// gating from the farm state.
package research

import (
	"fmt"

	"github.com/verdantworks/idlefarm/internal/catalog"
	"github.com/verdantworks/idlefarm/internal/domain"
)

// AvailablePoints returns the unspent research points: one point per 500 g
// of lifetime harvest plus one per haze point, minus the cost of owned nodes.
func AvailablePoints(s *domain.FarmState) int {
	total := int(s.TotalEarned/domain.ResearchPointsPer) + int(s.HazePoints)
	spent := 0
	for _, n := range catalog.ResearchNodes {
		if s.Research[n.ID] {
			spent += n.Cost
		}
	}
	if total < spent {
		return 0
	}
	return total - spent
}

// Effects sums the active bonus per group across owned nodes.
func Effects(s *domain.FarmState) domain.ResearchEffects {
	var eff domain.ResearchEffects
	for _, n := range catalog.ResearchNodes {
		if !s.Research[n.ID] {
			continue
		}
		switch n.Group {
		case domain.ResearchYield:
			eff.Yield += n.Value
		case domain.ResearchGrowth:
			eff.Growth += n.Value
		case domain.ResearchQuality:
			eff.Quality += n.Value
		case domain.ResearchPest:
			eff.Pest += n.Value
		case domain.ResearchWater:
			eff.Water += n.Value
		}
	}
	return eff
}

// Purchase validates gating and marks the node owned. State is untouched
// on error.
func Purchase(s *domain.FarmState, nodeID string) error {
	node, err := catalog.Research(nodeID)
	if err != nil {
		return err
	}
	if s.Research[node.ID] {
		return fmt.Errorf("%w: %s", domain.ErrResearchOwned, node.ID)
	}
	for _, req := range node.Requires {
		if !s.Research[req] {
			return fmt.Errorf("%w: requires %s", domain.ErrResearchPrereq, req)
		}
	}
	if AvailablePoints(s) < node.Cost {
		return fmt.Errorf("%w: need %d", domain.ErrInsufficientResearch, node.Cost)
	}
	s.Research[node.ID] = true
	return nil
}
