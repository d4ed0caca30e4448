package gateway

import (
	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
)

// GenerateLevelInput requests a new level. When Prompt is empty one is
// composed from Difficulty and LevelNumber; Stats, when present, replaces
// Difficulty with the adapted value.
type GenerateLevelInput struct {
	CallerID    string
	Prompt      string
	Difficulty  int
	LevelNumber int
	Stats       *difficulty.PerformanceStats
}

// GenerateLevelOutput carries a validated level
type GenerateLevelOutput struct {
	RequestID  string
	Level      *level.Document
	Difficulty int
	Theme      string
}

// GenerateDialogInput requests an NPC line. When Prompt is empty one is
// composed from the sanitized NPCName and PlayerMessage. CacheKey is
// optional; without it the result is neither read from nor written to the
// cache.
type GenerateDialogInput struct {
	CallerID      string
	Prompt        string
	CacheKey      string
	NPCName       string
	PlayerMessage string
	LevelNumber   int
}

// GenerateDialogOutput carries the dialog line
type GenerateDialogOutput struct {
	RequestID string
	Dialog    string
	Cached    bool
}

// NextDifficultyInput holds the stats of the level just played
type NextDifficultyInput struct {
	Stats difficulty.PerformanceStats
}

// NextDifficultyOutput is the adapted difficulty
type NextDifficultyOutput struct {
	Difficulty  int
	Description string
}

// FallbackLevelInput requests a procedural level
type FallbackLevelInput struct {
	Difficulty  int
	LevelNumber int
}

// FallbackLevelOutput carries the procedural level
type FallbackLevelOutput struct {
	Level *level.Document
	Theme string
}
