package trip_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTransportMode(t *testing.T) {
	assert.Equal(t, ModeTrain, NormalizeTransportMode("train"))
	assert.Equal(t, ModeTrain, NormalizeTransportMode("  By TRAIN please "))
	assert.Equal(t, ModeFlight, NormalizeTransportMode("a plane"))
	assert.Equal(t, ModeFlight, NormalizeTransportMode("air travel"))
	assert.Equal(t, ModeBus, NormalizeTransportMode(`"bus"`))

	// Several candidates in one answer resolve to the first table entry.
	assert.Equal(t, ModeTrain, NormalizeTransportMode("i like trains but also flights"))

	assert.Equal(t, TransportMode(""), NormalizeTransportMode("by camel"))
	assert.Equal(t, TransportMode(""), NormalizeTransportMode(""))
}

func TestNormalizeBudgetTier(t *testing.T) {
	assert.Equal(t, BudgetLuxury, NormalizeBudgetTier("LUXURY please"))
	assert.Equal(t, BudgetMedium, NormalizeBudgetTier("mid range"))
	assert.Equal(t, BudgetMedium, NormalizeBudgetTier("medium"))
	assert.Equal(t, BudgetFriendly, NormalizeBudgetTier("something cheap"))
	assert.Equal(t, BudgetFriendly, NormalizeBudgetTier("low cost works"))

	assert.Equal(t, BudgetTier(""), NormalizeBudgetTier("whatever"))
	assert.Equal(t, BudgetTier(""), NormalizeBudgetTier(""))
}

func TestParsePartySize(t *testing.T) {
	assert.Equal(t, 4, ParsePartySize("4 people"))
	assert.Equal(t, 12, ParsePartySize("group of 12"))
	assert.Equal(t, 1, ParsePartySize("Solo"))
	assert.Equal(t, 1, ParsePartySize("just me"))
	assert.Equal(t, 2, ParsePartySize("a couple"))

	assert.Equal(t, 0, ParsePartySize("a few of us"))
	assert.Equal(t, 0, ParsePartySize("0"))
	assert.Equal(t, 0, ParsePartySize(""))
}
