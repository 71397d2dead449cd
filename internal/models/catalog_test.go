package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResilienceFactor(t *testing.T) {
	cases := []struct {
		tier   ResilienceTier
		factor float64
	}{
		{TierVeteran, 0.90},
		{TierExperienced, 0.75},
		{TierYoung, 0.60},
		{TierRookie, 0.45},
		{ResilienceTier("unknown"), 0.70},
		{ResilienceTier(""), 0.70},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.factor, tc.tier.ResilienceFactor(), "tier %q", tc.tier)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.NotEmpty(t, catalog.Formations)
	for formation, coherence := range catalog.Formations {
		assert.GreaterOrEqual(t, coherence, 0.70, "formation %s", formation)
		assert.LessOrEqual(t, coherence, 0.92, "formation %s", formation)
	}
	assert.Equal(t, 0.87, catalog.Formations["4-3-3"])
	assert.Equal(t, 0.84, catalog.Formations["4-4-2"])

	require.Len(t, catalog.Tactics, 4)
	assert.Equal(t, TacticModifiers{Momentum: 1.0, OffBall: 1.0, Possession: 1.0}, catalog.Tactics["balanced"])
	for tactic, mods := range catalog.Tactics {
		assert.Greater(t, mods.Momentum, 0.0, "tactic %s", tactic)
		assert.Greater(t, mods.OffBall, 0.0, "tactic %s", tactic)
		assert.Greater(t, mods.Possession, 0.0, "tactic %s", tactic)
	}
}
