package domain

// Clone returns a deep copy of the state. Callers outside the farm
// service's lock read snapshots, never the live state.
func (s *FarmState) Clone() *FarmState {
	c := *s

	c.Plants = make([]*Plant, len(s.Plants))
	for i, p := range s.Plants {
		cp := *p
		if p.Pest != nil {
			infection := *p.Pest
			cp.Pest = &infection
		}
		c.Plants[i] = &cp
	}

	c.Offers = append([]Offer(nil), s.Offers...)
	c.PurchasedCount = copyIntMap(s.PurchasedCount)
	c.Upgrades = copyIntMap(s.Upgrades)
	c.ItemsOwned = copyIntMap(s.ItemsOwned)

	c.Research = make(map[string]bool, len(s.Research))
	for k, v := range s.Research {
		c.Research[k] = v
	}

	return &c
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
