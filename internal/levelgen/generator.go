// Package levelgen builds procedural levels when the generative backend
// cannot deliver one. Every level it returns has passed the validator.
package levelgen

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/prompt"
	"github.com/KirkDiggler/rpg-levelgen/internal/validation"
)

// Layout bounds for generated platforms, kept well inside the validator
// limits so vertical drift never pushes a platform out of range
const (
	firstPlatformWidth = 10.0
	minDriftY          = -2.0
	maxDriftY          = 10.0
	spawnHeight        = 2.0
)

// Roller rolls a single die with the given number of sides, returning a
// value in [1, size]
type Roller interface {
	Roll(size int) (int, error)
}

type toolkitRoller struct{}

func (toolkitRoller) Roll(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, err
	}
	return int(roll.GetValue()), nil
}

// Config configures the Generator
type Config struct {
	// Roller defaults to rpg-toolkit dice
	Roller Roller
}

// Generator produces fallback levels
type Generator struct {
	roller Roller
}

// New creates a Generator
func New(cfg *Config) *Generator {
	var roller Roller = toolkitRoller{}
	if cfg != nil && cfg.Roller != nil {
		roller = cfg.Roller
	}
	return &Generator{roller: roller}
}

// GenerateInput selects how hard the fallback level should be
type GenerateInput struct {
	Difficulty  int
	LevelNumber int
}

// GenerateOutput holds the generated level
type GenerateOutput struct {
	Level *level.Document
	Theme string
}

// Generate builds a level whose size follows the same difficulty-derived
// targets the backend is asked to meet
func (g *Generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "fallback generation canceled")
	}

	d := level.ClampDifficulty(input.Difficulty)
	c := prompt.LevelConstraints(d)

	platforms, err := g.platforms(d, c)
	if err != nil {
		return nil, err
	}
	enemies, err := g.enemies(d, c.EnemyCount, platforms)
	if err != nil {
		return nil, err
	}
	coins, err := g.coins(c.CoinCount, platforms)
	if err != nil {
		return nil, err
	}

	last := platforms[len(platforms)-1]
	result := validation.Validate(&level.Document{
		Platforms:    platforms,
		Coins:        coins,
		Enemies:      enemies,
		Difficulty:   d,
		SpawnPoint:   level.Point{X: platforms[0].X, Y: platforms[0].Y + spawnHeight},
		GoalPosition: level.Point{X: last.X, Y: last.Y + spawnHeight},
	})
	if !result.Valid {
		return nil, errors.Internal("generated fallback level failed validation").
			WithMeta("diagnostics", result.Errors)
	}

	return &GenerateOutput{Level: result.Data, Theme: prompt.Theme(input.LevelNumber)}, nil
}

func (g *Generator) platforms(d int, c prompt.Constraints) ([]level.Platform, error) {
	typeChoices := len(level.PlatformTypes)
	switch {
	case d < 4:
		typeChoices = 3
	case d < 7:
		typeChoices = 4
	}
	widthDie := max(2, 8-d/2)
	gapDie := max(1, int(c.MaxGap))

	platforms := make([]level.Platform, 0, c.PlatformCount)
	platforms = append(platforms, level.Platform{
		Width:  firstPlatformWidth,
		Height: level.DefaultPlatformHeight,
		Depth:  level.DefaultPlatformDepth,
		Type:   level.PlatformGrass,
	})

	for len(platforms) < c.PlatformCount {
		prev := platforms[len(platforms)-1]

		widthRoll, err := g.roll(widthDie)
		if err != nil {
			return nil, err
		}
		gapRoll, err := g.roll(gapDie)
		if err != nil {
			return nil, err
		}
		driftRoll, err := g.roll(5)
		if err != nil {
			return nil, err
		}
		typeRoll, err := g.roll(typeChoices)
		if err != nil {
			return nil, err
		}

		width := max(level.MinPlatformWidth, float64(1+widthRoll))
		left := prev.Right() + float64(gapRoll)
		y := min(maxDriftY, max(minDriftY, prev.Y+float64(driftRoll-3)))

		platforms = append(platforms, level.Platform{
			X:      left + width/2,
			Y:      y,
			Width:  width,
			Height: level.DefaultPlatformHeight,
			Depth:  level.DefaultPlatformDepth,
			Type:   level.PlatformTypes[typeRoll-1],
		})
	}

	return platforms, nil
}

func (g *Generator) enemies(d, count int, platforms []level.Platform) ([]level.Enemy, error) {
	enemies := make([]level.Enemy, 0, count)
	if len(platforms) < 2 {
		return enemies, nil
	}

	for i := 0; i < count; i++ {
		// never on the spawn platform
		idx, err := g.roll(len(platforms) - 1)
		if err != nil {
			return nil, err
		}
		typeRoll, err := g.roll(len(level.EnemyTypes))
		if err != nil {
			return nil, err
		}
		behavior := level.BehaviorPatrol
		if d >= 6 {
			chaseRoll, err := g.roll(2)
			if err != nil {
				return nil, err
			}
			if chaseRoll == 2 {
				behavior = level.BehaviorChase
			}
		}

		p := platforms[idx]
		enemies = append(enemies, level.Enemy{
			X:        p.X,
			Y:        p.Y + 1,
			Type:     level.EnemyTypes[typeRoll-1],
			Behavior: behavior,
		})
	}
	return enemies, nil
}

func (g *Generator) coins(count int, platforms []level.Platform) ([]level.Coin, error) {
	coins := make([]level.Coin, 0, count)
	for i := 0; i < count; i++ {
		idx, err := g.roll(len(platforms))
		if err != nil {
			return nil, err
		}
		lift, err := g.roll(3)
		if err != nil {
			return nil, err
		}
		p := platforms[idx-1]
		coins = append(coins, level.Coin{X: p.X, Y: p.Y + 1 + float64(lift)})
	}
	return coins, nil
}

func (g *Generator) roll(size int) (int, error) {
	v, err := g.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if v < 1 || v > size {
		return 0, errors.Internalf("roll of %d out of range for d%d", v, size)
	}
	return v, nil
}
