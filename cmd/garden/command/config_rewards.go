package command

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lo-maxwell/virtual-garden/internal/events"
	"github.com/lo-maxwell/virtual-garden/internal/item"
)

type RewardsConfig struct {
	DailyLogin string `json:"daily_login"`
	Seed       int64  `json:"seed"`
}

func (c *RewardsConfig) validate() error {
	if c.DailyLogin == "" {
		return fmt.Errorf("rewards: daily_login path is required")
	}
	if _, err := os.Stat(c.DailyLogin); err != nil {
		return fmt.Errorf("rewards: invalid daily_login path %q: %w", c.DailyLogin, err)
	}
	return nil
}

// buildDailyLogin loads the reward config. A zero seed rolls from the
// clock; a fixed seed makes reward bundles reproducible.
func (c *RewardsConfig) buildDailyLogin(cat *item.Catalog) (*events.DailyLogin, error) {
	cfg, err := events.LoadDailyLoginConfig(c.DailyLogin)
	if err != nil {
		return nil, fmt.Errorf("loading daily login config: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return events.NewDailyLogin(cfg, cat, rand.New(rand.NewSource(seed))), nil
}
