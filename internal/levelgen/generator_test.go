package levelgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
	"github.com/KirkDiggler/rpg-levelgen/internal/levelgen"
	"github.com/KirkDiggler/rpg-levelgen/internal/prompt"
	"github.com/KirkDiggler/rpg-levelgen/internal/validation"
)

// fixedRoller always rolls the same face, capped to the die size
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	return min(r.face, size), nil
}

type failingRoller struct{}

func (failingRoller) Roll(int) (int, error) {
	return 0, errors.New("dice jammed")
}

type badRoller struct{}

func (badRoller) Roll(size int) (int, error) {
	return size + 1, nil
}

type GeneratorTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *GeneratorTestSuite) TestEveryDifficultyProducesValidLevel() {
	for _, face := range []int{1, 3, 100} {
		gen := levelgen.New(&levelgen.Config{Roller: &fixedRoller{face: face}})
		for d := level.MinDifficulty; d <= level.MaxDifficulty; d++ {
			out, err := gen.Generate(s.ctx, &levelgen.GenerateInput{Difficulty: d, LevelNumber: d})
			s.Require().NoError(err, "difficulty %d face %d", d, face)

			c := prompt.LevelConstraints(d)
			s.Len(out.Level.Platforms, c.PlatformCount)
			s.Len(out.Level.Enemies, c.EnemyCount)
			s.Len(out.Level.Coins, c.CoinCount)
			s.Equal(d, out.Level.Difficulty)
			s.Equal(prompt.Theme(d), out.Theme)

			s.True(validation.Validate(out.Level).Valid)
		}
	}
}

func (s *GeneratorTestSuite) TestToolkitDiceProduceValidLevels() {
	gen := levelgen.New(nil)
	for i := 0; i < 20; i++ {
		out, err := gen.Generate(s.ctx, &levelgen.GenerateInput{Difficulty: 1 + i%10, LevelNumber: i})
		s.Require().NoError(err)
		s.True(validation.Validate(out.Level).Valid)
	}
}

func (s *GeneratorTestSuite) TestSpawnAndGoalSitOnEndPlatforms() {
	gen := levelgen.New(&levelgen.Config{Roller: &fixedRoller{face: 2}})

	out, err := gen.Generate(s.ctx, &levelgen.GenerateInput{Difficulty: 3})
	s.Require().NoError(err)

	first := out.Level.Platforms[0]
	last := out.Level.Platforms[len(out.Level.Platforms)-1]
	s.Equal(first.X, out.Level.SpawnPoint.X)
	s.Equal(last.X, out.Level.GoalPosition.X)
	s.Greater(out.Level.GoalPosition.X, out.Level.SpawnPoint.X)
}

func (s *GeneratorTestSuite) TestDifficultyClamped() {
	gen := levelgen.New(&levelgen.Config{Roller: &fixedRoller{face: 1}})

	out, err := gen.Generate(s.ctx, &levelgen.GenerateInput{Difficulty: 99})
	s.Require().NoError(err)
	s.Equal(level.MaxDifficulty, out.Level.Difficulty)
}

func (s *GeneratorTestSuite) TestRollerErrors() {
	for _, roller := range []levelgen.Roller{failingRoller{}, badRoller{}} {
		gen := levelgen.New(&levelgen.Config{Roller: roller})
		_, err := gen.Generate(s.ctx, &levelgen.GenerateInput{Difficulty: 5})
		s.Error(err)
	}
}

func (s *GeneratorTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := levelgen.New(nil).Generate(ctx, &levelgen.GenerateInput{Difficulty: 5})
	s.Error(err)
}

func (s *GeneratorTestSuite) TestNilInput() {
	_, err := levelgen.New(nil).Generate(s.ctx, nil)
	s.Error(err)
}
