// Package difficulty adapts level difficulty to observed player performance.
package difficulty

import (
	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
)

// Thresholds for the three performance signals
const (
	ManyDeaths = 5
	SomeDeaths = 3

	// Seconds per platform
	FastPace = 3.0
	SlowPace = 10.0

	HighCoinRatio = 0.9
	LowCoinRatio  = 0.3

	// platformsPerDifficulty estimates level length from difficulty
	platformsPerDifficulty = 3
)

// PerformanceStats summarizes one completed (or abandoned) level
type PerformanceStats struct {
	Deaths            int     `json:"deaths"`
	CompletionTime    float64 `json:"completionTime"`
	CoinsCollected    int     `json:"coinsCollected"`
	TotalCoins        int     `json:"totalCoins"`
	CurrentDifficulty int     `json:"currentDifficulty"`
}

// Bands of descriptive text, indexed by Band
var descriptions = []string{
	"very easy",
	"easy",
	"moderate",
	"hard",
	"extremely difficult",
}

// Next returns the difficulty for the following level, always within
// [level.MinDifficulty, level.MaxDifficulty]. An out of range current
// difficulty is treated as the nearest bound.
func Next(stats PerformanceStats) int {
	current := level.ClampDifficulty(stats.CurrentDifficulty)
	delta := deathsDelta(stats.Deaths) + paceDelta(stats.CompletionTime, current) + thoroughnessDelta(stats)
	return level.ClampDifficulty(current + delta)
}

func deathsDelta(deaths int) int {
	switch {
	case deaths >= ManyDeaths:
		return -2
	case deaths >= SomeDeaths:
		return -1
	case deaths == 0:
		return 1
	default:
		return 0
	}
}

func paceDelta(completionTime float64, current int) int {
	platforms := current * platformsPerDifficulty
	if platforms < 1 {
		platforms = 1
	}
	timePerPlatform := completionTime / float64(platforms)
	switch {
	case timePerPlatform < FastPace:
		return 1
	case timePerPlatform > SlowPace:
		return -1
	default:
		return 0
	}
}

func thoroughnessDelta(stats PerformanceStats) int {
	ratio := 0.0
	if stats.TotalCoins > 0 {
		ratio = float64(stats.CoinsCollected) / float64(stats.TotalCoins)
	}
	switch {
	case ratio > HighCoinRatio:
		return 1
	case ratio < LowCoinRatio:
		return -1
	default:
		return 0
	}
}

// Band maps a difficulty to one of five bands, 0 (very easy) to 4
// (extremely difficult)
func Band(difficulty int) int {
	switch {
	case difficulty <= 2:
		return 0
	case difficulty <= 4:
		return 1
	case difficulty <= 6:
		return 2
	case difficulty <= 8:
		return 3
	default:
		return 4
	}
}

// Describe returns the human readable band for a difficulty
func Describe(difficulty int) string {
	return descriptions[Band(difficulty)]
}

// Clamp bounds a requested difficulty to the playable range
func Clamp(d int) int {
	return level.ClampDifficulty(d)
}
