package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 100.0, Percentage(4, 4))
	assert.Equal(t, 67, RoundedPercentage(2, 3))
	assert.Equal(t, 33, RoundedPercentage(1, 3))
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Tier
	}{
		{100, TierTop},
		{80, TierTop},
		{79.9, TierMid},
		{50, TierMid},
		{49.9, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "pct %v", tt.pct)
	}
	assert.True(t, TierTop.Celebrates())
	assert.False(t, TierMid.Celebrates())
}
