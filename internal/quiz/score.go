package quiz

import "math"

type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierTop
)

// Tier thresholds in percent.
const (
	TopTierPercent = 80.0
	MidTierPercent = 50.0
)

// Percentage is score/count*100, or 0 for an empty bank.
func Percentage(score, count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(score) / float64(count) * 100
}

func RoundedPercentage(score, count int) int {
	return int(math.Round(Percentage(score, count)))
}

func TierFor(percent float64) Tier {
	switch {
	case percent >= TopTierPercent:
		return TierTop
	case percent >= MidTierPercent:
		return TierMid
	}
	return TierLow
}

// Celebrates reports whether the tier earns confetti rather than bubbles.
func (t Tier) Celebrates() bool {
	return t == TierTop
}
