package research

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/domain"
)

func newState() *domain.FarmState {
	return domain.NewDefaultState(time.Now())
}

func TestAvailablePoints(t *testing.T) {
	s := newState()
	assert.Zero(t, AvailablePoints(s))

	s.TotalEarned = 1700 // 3 points
	s.HazePoints = 2
	assert.Equal(t, 5, AvailablePoints(s))

	s.Research["bio1"] = true // cost 1
	s.Research["bio2"] = true // cost 2
	assert.Equal(t, 2, AvailablePoints(s))
}

func TestPurchaseGating(t *testing.T) {
	s := newState()
	s.TotalEarned = 5000 // 10 points

	// prerequisite unmet even with plenty of points
	err := Purchase(s, "bio2")
	assert.ErrorIs(t, err, domain.ErrResearchPrereq)
	assert.False(t, s.Research["bio2"])

	// becomes purchasable the instant the prerequisite is owned
	require.NoError(t, Purchase(s, "bio1"))
	require.NoError(t, Purchase(s, "bio2"))
	assert.True(t, s.Research["bio2"])

	// double purchase rejected
	err = Purchase(s, "bio1")
	assert.ErrorIs(t, err, domain.ErrResearchOwned)
}

func TestPurchaseInsufficientPoints(t *testing.T) {
	s := newState()
	s.TotalEarned = 400 // 0 points
	err := Purchase(s, "bio1")
	assert.ErrorIs(t, err, domain.ErrInsufficientResearch)
}

func TestPurchaseUnknownNode(t *testing.T) {
	s := newState()
	err := Purchase(s, "quantum9")
	assert.ErrorIs(t, err, domain.ErrResearchNotFound)
}

func TestEffectsSumPerGroup(t *testing.T) {
	s := newState()
	s.Research["bio1"] = true
	s.Research["bio2"] = true
	s.Research["auto1"] = true

	eff := Effects(s)
	assert.InDelta(t, 0.20, eff.Yield, 1e-9)
	assert.InDelta(t, 0.20, eff.Water, 1e-9)
	assert.Zero(t, eff.Quality)
	assert.Zero(t, eff.Pest)
}
