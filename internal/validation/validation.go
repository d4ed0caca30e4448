// Package validation turns an untrusted, loosely typed level document into a
// normalized level.Document that is guaranteed to be playable, or rejects it
// with diagnostics.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
)

// Result is the outcome of a single validation. Data is nil unless Valid.
type Result struct {
	Valid  bool            `json:"valid"`
	Errors []string        `json:"errors"`
	Data   *level.Document `json:"data,omitempty"`
}

// Validate checks raw against the level invariants. It never panics; all
// failures are reported in the Result. Any error discards the whole
// document, including entries that passed their own filters.
func Validate(raw any) Result {
	obj, ok := asObject(raw)
	if !ok {
		return Result{Valid: false, Errors: []string{"level data must be an object"}}
	}

	var errs []string

	platforms, platformErrs := filterPlatforms(obj["platforms"])
	errs = append(errs, platformErrs...)

	spawn, err := requirePoint(obj, "spawnPoint", level.DefaultSpawn)
	if err != "" {
		errs = append(errs, err)
	}
	goal, err := requirePoint(obj, "goalPosition", level.DefaultGoal)
	if err != "" {
		errs = append(errs, err)
	}

	enemies := filterEnemies(obj["enemies"])
	coins := filterCoins(obj["coins"])

	errs = append(errs, checkReachability(platforms)...)

	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}

	d := level.MinDifficulty
	if v, ok := number(obj["difficulty"]); ok {
		// bound before converting so huge values cannot wrap
		v = math.Max(float64(level.MinDifficulty), math.Min(float64(level.MaxDifficulty), v))
		d = int(math.Round(v))
	}

	return Result{
		Valid:  true,
		Errors: []string{},
		Data: &level.Document{
			Platforms:    platforms,
			Coins:        coins,
			Enemies:      enemies,
			Difficulty:   d,
			SpawnPoint:   spawn,
			GoalPosition: goal,
		},
	}
}

// asObject accepts a decoded JSON object or an already typed document.
// Typed documents are round-tripped through JSON so they are checked by the
// same rules as backend output.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case level.Document:
		return documentToObject(&v)
	case *level.Document:
		if v == nil {
			return nil, false
		}
		return documentToObject(v)
	default:
		return nil, false
	}
}

func documentToObject(doc *level.Document) (map[string]any, bool) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func filterPlatforms(raw any) ([]level.Platform, []string) {
	var errs []string

	list, _ := raw.([]any)
	switch {
	case len(list) == 0:
		errs = append(errs, "level must have at least one platform")
	case len(list) > level.MaxPlatforms:
		errs = append(errs, fmt.Sprintf("too many platforms: %d (max %d)", len(list), level.MaxPlatforms))
	}

	platforms := make([]level.Platform, 0, len(list))
	for _, entry := range list {
		p, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		x, okX := number(p["x"])
		y, okY := number(p["y"])
		width, okW := number(p["width"])
		if !okX || !okY || !okW {
			continue
		}
		if width < level.MinPlatformWidth || y < level.MinPlatformY || y > level.MaxPlatformY {
			continue
		}

		platformType := level.PlatformGrass
		if t, ok := p["type"].(string); ok && level.IsPlatformType(t) {
			platformType = level.PlatformType(t)
		}

		platforms = append(platforms, level.Platform{
			X:      x,
			Y:      y,
			Z:      numberOr(p["z"], 0),
			Width:  width,
			Height: positiveOr(p["height"], level.DefaultPlatformHeight),
			Depth:  positiveOr(p["depth"], level.DefaultPlatformDepth),
			Type:   platformType,
		})
	}

	if len(platforms) == 0 && len(errs) == 0 {
		errs = append(errs, "no valid platforms after filtering")
	}

	return platforms, errs
}

func requirePoint(obj map[string]any, field string, fallback level.Point) (level.Point, string) {
	p, ok := obj[field].(map[string]any)
	if !ok {
		return fallback, fmt.Sprintf("%s must have a numeric x", field)
	}
	x, ok := number(p["x"])
	if !ok {
		return fallback, fmt.Sprintf("%s must have a numeric x", field)
	}
	return level.Point{
		X: x,
		Y: numberOr(p["y"], fallback.Y),
		Z: numberOr(p["z"], fallback.Z),
	}, ""
}

func filterEnemies(raw any) []level.Enemy {
	list, _ := raw.([]any)
	enemies := make([]level.Enemy, 0, min(len(list), level.MaxEnemies))
	for _, entry := range list {
		if len(enemies) == level.MaxEnemies {
			break
		}
		e, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		t, _ := e["type"].(string)
		if !level.IsEnemyType(t) {
			continue
		}

		behavior := level.BehaviorPatrol
		if b, _ := e["behavior"].(string); b == string(level.BehaviorChase) {
			behavior = level.BehaviorChase
		}

		enemies = append(enemies, level.Enemy{
			X:        numberOr(e["x"], 0),
			Y:        numberOr(e["y"], 0),
			Z:        numberOr(e["z"], 0),
			Type:     level.EnemyType(t),
			Behavior: behavior,
		})
	}
	return enemies
}

func filterCoins(raw any) []level.Coin {
	list, _ := raw.([]any)
	coins := make([]level.Coin, 0, min(len(list), level.MaxCoins))
	for _, entry := range list {
		if len(coins) == level.MaxCoins {
			break
		}
		c, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		x, okX := number(c["x"])
		y, okY := number(c["y"])
		if !okX || !okY {
			continue
		}
		coins = append(coins, level.Coin{X: x, Y: y, Z: 0, Collected: false})
	}
	return coins
}

// checkReachability flags jumps wider than level.MaxGap between x-adjacent
// platforms. A wide gap with a drop of at least level.FallThroughHeight is
// accepted.
func checkReachability(platforms []level.Platform) []string {
	if len(platforms) < 2 {
		return nil
	}

	sorted := make([]level.Platform, len(platforms))
	copy(sorted, platforms)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var errs []string
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		gap := next.Left() - prev.Right()
		heightDiff := math.Abs(next.Y - prev.Y)
		if gap > level.MaxGap && heightDiff < level.FallThroughHeight {
			errs = append(errs, fmt.Sprintf(
				"gap of %.1f between platforms at x=%.1f and x=%.1f exceeds max %.1f",
				gap, prev.X, next.X, level.MaxGap,
			))
		}
	}
	return errs
}

// number reports v as a finite float64
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func numberOr(v any, fallback float64) float64 {
	if f, ok := number(v); ok {
		return f
	}
	return fallback
}

func positiveOr(v any, fallback float64) float64 {
	if f, ok := number(v); ok && f > 0 {
		return f
	}
	return fallback
}
