package garden

import (
	"math"

	"github.com/google/uuid"
)

const defaultGrowthRate = 2.0

// LevelSystem tracks an owner's level and experience. Growth rate scales
// how much experience each level requires; higher rates level faster.
type LevelSystem struct {
	systemID   string
	level      int
	exp        int
	growthRate float64
}

// NewLevelSystem starts a progression at the given level and experience.
func NewLevelSystem(level, exp int, growthRate float64) *LevelSystem {
	if level < 1 {
		level = 1
	}
	if exp < 0 {
		exp = 0
	}
	if growthRate <= 0 {
		growthRate = defaultGrowthRate
	}
	return &LevelSystem{systemID: uuid.NewString(), level: level, exp: exp, growthRate: growthRate}
}

// ID returns the progression's identifier.
func (l *LevelSystem) ID() string { return l.systemID }

// Level returns the current level.
func (l *LevelSystem) Level() int { return l.level }

// Exp returns the experience accumulated toward the next level.
func (l *LevelSystem) Exp() int { return l.exp }

// GrowthRate returns the configured growth rate.
func (l *LevelSystem) GrowthRate() float64 { return l.growthRate }

// ExpToLevelUp returns the experience required to reach the next level.
func (l *LevelSystem) ExpToLevelUp() int {
	return int(math.Floor(float64(l.level+1) * 100 / l.growthRate))
}

// AddExperience grants experience, applying as many level-ups as it covers.
func (l *LevelSystem) AddExperience(exp int) {
	if exp <= 0 {
		return
	}
	l.exp += exp
	for l.exp >= l.ExpToLevelUp() {
		l.exp -= l.ExpToLevelUp()
		l.level++
	}
}
