package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/lo-maxwell/virtual-garden/internal/store"
)

type StoresConfig struct {
	Definitions string `json:"definitions"`
	StockLists  string `json:"stock_lists"`
	Default     string `json:"default"`
}

func (c *StoresConfig) validate() error {
	el := errors.NewErrorList()

	if c.Definitions == "" {
		el.Add(fmt.Errorf("stores: definitions path is required"))
	} else if _, err := os.Stat(c.Definitions); err != nil {
		el.Add(fmt.Errorf("stores: invalid definitions path %q: %w", c.Definitions, err))
	}

	if c.StockLists == "" {
		el.Add(fmt.Errorf("stores: stock_lists path is required"))
	} else if _, err := os.Stat(c.StockLists); err != nil {
		el.Add(fmt.Errorf("stores: invalid stock_lists path %q: %w", c.StockLists, err))
	}

	return el.Err()
}

// buildStore loads the store definitions and returns the default store's
// definition with its stock list. With no default configured the first
// definition wins.
func (c *StoresConfig) buildStore() (*store.StoreDef, *store.StockList, error) {
	defs, err := store.LoadStoreDefs(c.Definitions)
	if err != nil {
		return nil, nil, fmt.Errorf("loading store definitions: %w", err)
	}
	if len(defs) == 0 {
		return nil, nil, fmt.Errorf("no store definitions in %q", c.Definitions)
	}

	def := defs[0]
	if c.Default != "" {
		def = nil
		for _, d := range defs {
			if d.Name == c.Default {
				def = d
				break
			}
		}
		if def == nil {
			return nil, nil, fmt.Errorf("default store %q not defined", c.Default)
		}
	}

	lists, err := store.LoadStockLists(c.StockLists)
	if err != nil {
		return nil, nil, fmt.Errorf("loading stock lists: %w", err)
	}
	list, ok := lists[def.StockList]
	if !ok {
		return nil, nil, fmt.Errorf("store %q references unknown stock list %q", def.Name, def.StockList)
	}

	return def, list, nil
}
