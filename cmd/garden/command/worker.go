package command

import (
	"fmt"
	"time"

	service "github.com/pixil98/go-service"

	"github.com/lo-maxwell/virtual-garden/internal/account"
	"github.com/lo-maxwell/virtual-garden/internal/driver"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	cat, err := cfg.Catalog.buildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading item catalog: %w", err)
	}

	def, list, err := cfg.Stores.buildStore()
	if err != nil {
		return nil, fmt.Errorf("building store config: %w", err)
	}

	login, err := cfg.Rewards.buildDailyLogin(cat)
	if err != nil {
		return nil, fmt.Errorf("building daily login: %w", err)
	}

	snaps, err := cfg.Storage.Accounts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating account store: %w", err)
	}

	nats, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	manager := account.NewManager(cat, def, list, login, snaps)

	tickLength, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	gameDriver := driver.NewGameDriver(
		[]driver.Manager{manager},
		driver.WithTickLength(tickLength),
	)

	return service.WorkerList{
		"nats":     nats,
		"accounts": manager,
		"driver":   gameDriver,
	}, nil
}
