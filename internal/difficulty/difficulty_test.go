package difficulty_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
)

// neutral stats contribute zero from every factor at difficulty 5:
// 2 deaths, 75s over 15 platforms (5s each), half the coins.
func neutral() difficulty.PerformanceStats {
	return difficulty.PerformanceStats{
		Deaths:            2,
		CompletionTime:    75,
		CoinsCollected:    5,
		TotalCoins:        10,
		CurrentDifficulty: 5,
	}
}

func TestNext(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*difficulty.PerformanceStats)
		expected int
	}{
		{"neutral keeps difficulty", func(*difficulty.PerformanceStats) {}, 5},
		{"flawless run raises", func(s *difficulty.PerformanceStats) { s.Deaths = 0 }, 6},
		{"some deaths lowers", func(s *difficulty.PerformanceStats) { s.Deaths = 3 }, 4},
		{"many deaths lowers twice", func(s *difficulty.PerformanceStats) { s.Deaths = 7 }, 3},
		{"fast pace raises", func(s *difficulty.PerformanceStats) { s.CompletionTime = 30 }, 6},
		{"slow pace lowers", func(s *difficulty.PerformanceStats) { s.CompletionTime = 200 }, 4},
		{"all coins raises", func(s *difficulty.PerformanceStats) { s.CoinsCollected = 10 }, 6},
		{"few coins lowers", func(s *difficulty.PerformanceStats) { s.CoinsCollected = 1 }, 4},
		{"no coins in level counts as zero ratio", func(s *difficulty.PerformanceStats) { s.TotalCoins = 0 }, 4},
		{"everything great", func(s *difficulty.PerformanceStats) {
			s.Deaths = 0
			s.CompletionTime = 10
			s.CoinsCollected = 10
		}, 8},
		{"clamped at top", func(s *difficulty.PerformanceStats) {
			s.CurrentDifficulty = 10
			s.Deaths = 0
			s.CompletionTime = 1
			s.CoinsCollected = 10
		}, 10},
		{"clamped at bottom", func(s *difficulty.PerformanceStats) {
			s.CurrentDifficulty = 1
			s.Deaths = 9
			s.CompletionTime = 1000
			s.CoinsCollected = 0
		}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := neutral()
			tc.mutate(&stats)
			assert.Equal(t, tc.expected, difficulty.Next(stats))
		})
	}
}

func TestNext_AlwaysInRange(t *testing.T) {
	extremes := []int{math.MinInt, math.MinInt32, -100, -1, 0, 1, 5, 10, 11, 1000, math.MaxInt32, math.MaxInt}
	times := []float64{-50, 0, 1, 45, 1e9, math.Inf(1)}

	for _, d := range extremes {
		for _, deaths := range extremes {
			for _, tm := range times {
				got := difficulty.Next(difficulty.PerformanceStats{
					Deaths:            deaths,
					CompletionTime:    tm,
					CoinsCollected:    d,
					TotalCoins:        deaths,
					CurrentDifficulty: d,
				})
				assert.GreaterOrEqual(t, got, 1)
				assert.LessOrEqual(t, got, 10)
			}
		}
	}
}

func TestNext_OutOfRangeCurrentActsAsNearestBound(t *testing.T) {
	raise := func(s *difficulty.PerformanceStats) {
		s.Deaths = 0
		s.CompletionTime = 1
		s.CoinsCollected = 10
	}
	lower := func(s *difficulty.PerformanceStats) {
		s.Deaths = 9
		s.CompletionTime = 1e6
		s.CoinsCollected = 0
	}

	for _, current := range []int{11, 1000, math.MaxInt32, math.MaxInt} {
		s := neutral()
		s.CurrentDifficulty = current
		assert.Equal(t, 10, difficulty.Next(s), "neutral at %d", current)

		raise(&s)
		assert.Equal(t, 10, difficulty.Next(s), "raising at %d", current)

		s = neutral()
		s.CurrentDifficulty = current
		lower(&s)
		assert.Equal(t, 6, difficulty.Next(s), "lowering at %d", current)
	}

	for _, current := range []int{0, -1000, math.MinInt32, math.MinInt} {
		s := neutral()
		s.CurrentDifficulty = current
		lower(&s)
		assert.Equal(t, 1, difficulty.Next(s), "lowering at %d", current)

		s = neutral()
		s.CurrentDifficulty = current
		raise(&s)
		assert.Equal(t, 4, difficulty.Next(s), "raising at %d", current)
	}
}

func TestNext_MonotonicPerFactor(t *testing.T) {
	prev := math.MaxInt
	for deaths := 0; deaths <= 10; deaths++ {
		s := neutral()
		s.Deaths = deaths
		got := difficulty.Next(s)
		assert.LessOrEqual(t, got, prev, "more deaths must not raise difficulty")
		prev = got
	}

	prev = math.MaxInt
	for tm := 0.0; tm <= 400; tm += 5 {
		s := neutral()
		s.CompletionTime = tm
		got := difficulty.Next(s)
		assert.LessOrEqual(t, got, prev, "slower runs must not raise difficulty")
		prev = got
	}

	prev = math.MinInt
	for coins := 0; coins <= 10; coins++ {
		s := neutral()
		s.CoinsCollected = coins
		got := difficulty.Next(s)
		assert.GreaterOrEqual(t, got, prev, "more coins must not lower difficulty")
		prev = got
	}

	for _, current := range []int{math.MinInt, math.MaxInt} {
		s := neutral()
		s.CurrentDifficulty = current
		base := difficulty.Next(s)

		s.Deaths = 0
		assert.GreaterOrEqual(t, difficulty.Next(s), base, "a flawless run must not lower difficulty at %d", current)
	}
}

func TestDescribe(t *testing.T) {
	testCases := map[int]string{
		-3: "very easy",
		1:  "very easy",
		2:  "very easy",
		3:  "easy",
		4:  "easy",
		5:  "moderate",
		6:  "moderate",
		7:  "hard",
		8:  "hard",
		9:  "extremely difficult",
		10: "extremely difficult",
		42: "extremely difficult",
	}

	for d, expected := range testCases {
		assert.Equal(t, expected, difficulty.Describe(d), "difficulty %d", d)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, difficulty.Clamp(0))
	assert.Equal(t, 6, difficulty.Clamp(6))
	assert.Equal(t, 10, difficulty.Clamp(11))
}
