package v1alpha1

import (
	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
	"github.com/KirkDiggler/rpg-levelgen/internal/entities/level"
)

// GenerateLevelRequest asks for a generated level. Prompt overrides the
// composed prompt.
type GenerateLevelRequest struct {
	Prompt      string                       `json:"prompt,omitempty"`
	Difficulty  int                          `json:"difficulty,omitempty"`
	LevelNumber int                          `json:"levelNumber,omitempty"`
	Stats       *difficulty.PerformanceStats `json:"stats,omitempty"`
}

// GenerateLevelResponse carries the validated level
type GenerateLevelResponse struct {
	RequestID  string          `json:"requestId"`
	LevelData  *level.Document `json:"levelData"`
	Difficulty int             `json:"difficulty"`
	Theme      string          `json:"theme"`
}

// GenerateDialogRequest asks for an NPC line
type GenerateDialogRequest struct {
	Prompt        string `json:"prompt,omitempty"`
	CacheKey      string `json:"cacheKey,omitempty"`
	NPCName       string `json:"npcName,omitempty"`
	PlayerMessage string `json:"playerMessage,omitempty"`
	LevelNumber   int    `json:"levelNumber,omitempty"`
}

// GenerateDialogResponse carries the NPC line
type GenerateDialogResponse struct {
	RequestID string `json:"requestId"`
	Dialog    string `json:"dialog"`
	Cached    bool   `json:"cached"`
}

// NextDifficultyRequest carries the stats of the level just played
type NextDifficultyRequest struct {
	Stats difficulty.PerformanceStats `json:"stats"`
}

// NextDifficultyResponse is the adapted difficulty
type NextDifficultyResponse struct {
	Difficulty  int    `json:"difficulty"`
	Description string `json:"description"`
}

// FallbackLevelRequest asks for a procedural level
type FallbackLevelRequest struct {
	Difficulty  int `json:"difficulty,omitempty"`
	LevelNumber int `json:"levelNumber,omitempty"`
}

// FallbackLevelResponse carries the procedural level
type FallbackLevelResponse struct {
	LevelData *level.Document `json:"levelData"`
	Theme     string          `json:"theme"`
}
