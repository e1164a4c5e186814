package store

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

// StockTarget names one template a store keeps in stock and the quantity it
// restocks up to.
type StockTarget struct {
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// StockList is a named set of restock targets shared between store
// definitions.
type StockList struct {
	Name  string        `yaml:"name"`
	Items []StockTarget `yaml:"items"`
}

// Validate checks the list is well formed.
func (s *StockList) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("stocklist must have a name"))
	}
	seen := map[string]bool{}
	for _, t := range s.Items {
		if t.Name == "" {
			el.Add(fmt.Errorf("stocklist %s has a target without a name", s.Name))
		}
		if t.Quantity <= 0 {
			el.Add(fmt.Errorf("stocklist %s target %s must have a positive quantity", s.Name, t.Name))
		}
		if seen[t.Name] {
			el.Add(fmt.Errorf("stocklist %s names %s twice", s.Name, t.Name))
		}
		seen[t.Name] = true
	}

	return el.Err()
}

// StoreDef is the YAML definition a Store is built from.
type StoreDef struct {
	ID                int32   `yaml:"id"`
	Name              string  `yaml:"name"`
	BuyMultiplier     float64 `yaml:"buyMultiplier"`
	SellMultiplier    float64 `yaml:"sellMultiplier"`
	UpgradeMultiplier float64 `yaml:"upgradeMultiplier"`
	StockList         string  `yaml:"stocklist"`
	RestockInterval   int64   `yaml:"restockInterval"` // milliseconds
}

// Validate checks the definition is well formed.
func (d *StoreDef) Validate() error {
	el := errors.NewErrorList()

	if d.Name == "" {
		el.Add(fmt.Errorf("store must have a name"))
	}
	if d.BuyMultiplier <= 0 || d.SellMultiplier <= 0 || d.UpgradeMultiplier <= 0 {
		el.Add(fmt.Errorf("store %s multipliers must be positive", d.Name))
	}
	if d.StockList == "" {
		el.Add(fmt.Errorf("store %s must name a stocklist", d.Name))
	}
	if d.RestockInterval <= 0 {
		el.Add(fmt.Errorf("store %s must have a positive restock interval", d.Name))
	}

	return el.Err()
}

type storeFile struct {
	Stores []*StoreDef `yaml:"stores"`
}

type stockListFile struct {
	StockLists []*StockList `yaml:"stocklists"`
}

// LoadStoreDefs reads store definitions from a YAML catalog.
func LoadStoreDefs(path string) ([]*StoreDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store catalog: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing store catalog: %w", err)
	}

	el := errors.NewErrorList()
	seen := map[string]bool{}
	for _, d := range f.Stores {
		el.Add(d.Validate())
		if seen[d.Name] {
			el.Add(fmt.Errorf("duplicate store %s", d.Name))
		}
		seen[d.Name] = true
	}
	if err := el.Err(); err != nil {
		return nil, err
	}
	return f.Stores, nil
}

// LoadStockLists reads stocklists from a YAML catalog, keyed by name.
func LoadStockLists(path string) (map[string]*StockList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stocklist catalog: %w", err)
	}

	var f stockListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing stocklist catalog: %w", err)
	}

	el := errors.NewErrorList()
	lists := map[string]*StockList{}
	for _, l := range f.StockLists {
		el.Add(l.Validate())
		if _, ok := lists[l.Name]; ok {
			el.Add(fmt.Errorf("duplicate stocklist %s", l.Name))
		}
		lists[l.Name] = l
	}
	if err := el.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}
