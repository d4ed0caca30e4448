// Package level defines the validated platformer level document and the
// fixed limits every playable level must respect.
package level

// Limits applied by the validator and the prompt composer
const (
	MaxPlatforms = 50
	MaxEnemies   = 20
	MaxCoins     = 100

	MinPlatformWidth = 2.0
	MinPlatformY     = -5.0
	MaxPlatformY     = 15.0

	// MaxGap is the widest horizontal gap a player can jump
	MaxGap = 8.0
	// FallThroughHeight is the vertical drop above which a wide gap is
	// treated as traversable by falling
	FallThroughHeight = 4.0

	MinDifficulty = 1
	MaxDifficulty = 10

	DefaultPlatformHeight = 1.0
	DefaultPlatformDepth  = 4.0
)

// DefaultSpawn and DefaultGoal fill missing axes of the spawn and goal points
var (
	DefaultSpawn = Point{X: 0, Y: 2, Z: 0}
	DefaultGoal  = Point{X: 50, Y: 2, Z: 0}
)

// PlatformType is the surface material of a platform
type PlatformType string

// Platform types
const (
	PlatformGrass PlatformType = "grass"
	PlatformBrick PlatformType = "brick"
	PlatformStone PlatformType = "stone"
	PlatformIce   PlatformType = "ice"
	PlatformLava  PlatformType = "lava"
)

// PlatformTypes lists the recognised platform types in schema order
var PlatformTypes = []PlatformType{PlatformGrass, PlatformBrick, PlatformStone, PlatformIce, PlatformLava}

// EnemyType is the kind of enemy
type EnemyType string

// Enemy types
const (
	EnemyGoomba EnemyType = "goomba"
	EnemyKoopa  EnemyType = "koopa"
)

// EnemyTypes lists the recognised enemy types
var EnemyTypes = []EnemyType{EnemyGoomba, EnemyKoopa}

// Behavior is how an enemy moves
type Behavior string

// Enemy behaviors
const (
	BehaviorPatrol Behavior = "patrol"
	BehaviorChase  Behavior = "chase"
)

// Point is a position in level space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Platform is a solid block the player can stand on
type Platform struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Z      float64      `json:"z"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Depth  float64      `json:"depth"`
	Type   PlatformType `json:"type"`
}

// Left returns the x coordinate of the platform's left edge
func (p Platform) Left() float64 {
	return p.X - p.Width/2
}

// Right returns the x coordinate of the platform's right edge
func (p Platform) Right() float64 {
	return p.X + p.Width/2
}

// Coin is a collectible
type Coin struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Collected bool    `json:"collected"`
}

// Enemy is a hostile actor
type Enemy struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Z        float64   `json:"z"`
	Type     EnemyType `json:"type"`
	Behavior Behavior  `json:"behavior"`
}

// Document is a fully normalized, playable level
type Document struct {
	Platforms    []Platform `json:"platforms"`
	Coins        []Coin     `json:"coins"`
	Enemies      []Enemy    `json:"enemies"`
	Difficulty   int        `json:"difficulty"`
	SpawnPoint   Point      `json:"spawnPoint"`
	GoalPosition Point      `json:"goalPosition"`
}

// IsPlatformType reports whether t names a recognised platform type
func IsPlatformType(t string) bool {
	for _, pt := range PlatformTypes {
		if string(pt) == t {
			return true
		}
	}
	return false
}

// IsEnemyType reports whether t names a recognised enemy type
func IsEnemyType(t string) bool {
	for _, et := range EnemyTypes {
		if string(et) == t {
			return true
		}
	}
	return false
}

// ClampDifficulty bounds d to [MinDifficulty, MaxDifficulty]
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
