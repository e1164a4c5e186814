package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string        `json:"tick_interval"`
	Catalog      CatalogConfig `json:"catalog"`
	Stores       StoresConfig  `json:"stores"`
	Rewards      RewardsConfig `json:"rewards"`
	Storage      StorageConfig `json:"storage"`
	Nats         NatsConfig    `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	el.Add(c.Catalog.validate())
	el.Add(c.Stores.validate())
	el.Add(c.Rewards.validate())
	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}
