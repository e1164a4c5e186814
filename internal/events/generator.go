package events

import (
	"fmt"
	"math/rand"

	"github.com/pixil98/go-errors"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// RewardCandidate is one item a reward bundle may draw, in batches of
// BatchSize units.
type RewardCandidate struct {
	Name      string `json:"name"`
	BatchSize int    `json:"batchSize"`
}

// RewardConfig bounds a bundle: at most MaxQuantity batches of any single
// candidate and at most MaxItems batches overall.
type RewardConfig struct {
	Candidates  []RewardCandidate `json:"candidates"`
	MaxQuantity int               `json:"maxQuantity"`
	MaxItems    int               `json:"maxItems"`
}

// Validate checks the config is well formed.
func (c *RewardConfig) Validate() error {
	el := errors.NewErrorList()

	if c.MaxQuantity <= 0 {
		el.Add(fmt.Errorf("maxQuantity must be positive, got %d", c.MaxQuantity))
	}
	if c.MaxItems <= 0 {
		el.Add(fmt.Errorf("maxItems must be positive, got %d", c.MaxItems))
	}
	if len(c.Candidates) == 0 {
		el.Add(fmt.Errorf("reward config must have at least one candidate"))
	}
	for _, cand := range c.Candidates {
		if cand.Name == "" {
			el.Add(fmt.Errorf("reward candidate must have a name"))
		}
		if cand.BatchSize <= 0 {
			el.Add(fmt.Errorf("reward candidate %s must have a positive batch size", cand.Name))
		}
	}

	return el.Err()
}

// RewardGenerator fills reward bundles. The RNG is injected so tests can be
// deterministic.
type RewardGenerator struct {
	cat *item.Catalog
	rng *rand.Rand
}

// NewRewardGenerator builds a generator over the given catalog.
func NewRewardGenerator(cat *item.Catalog, rng *rand.Rand) *RewardGenerator {
	return &RewardGenerator{cat: cat, rng: rng}
}

// GenerateBundle fills an item list by repeatedly picking a random eligible
// candidate and adding one batch of it. A candidate leaves the eligible set
// once it reaches MaxQuantity batches; the fill stops at MaxItems total
// batches or when no candidate is eligible. Unknown candidate names fail the
// whole bundle.
func (g *RewardGenerator) GenerateBundle(cfg RewardConfig) *result.Result[*itemlist.ItemList] {
	if err := cfg.Validate(); err != nil {
		return result.Failf[*itemlist.ItemList]("invalid reward config: %v", err)
	}

	type slot struct {
		tmpl    *item.Template
		batch   int
		batches int
	}
	eligible := make([]*slot, 0, len(cfg.Candidates))
	for _, cand := range cfg.Candidates {
		tmpl := g.cat.InventoryByName(cand.Name)
		if tmpl.IsError() {
			return result.Failf[*itemlist.ItemList]("reward candidate %s not in catalog", cand.Name)
		}
		eligible = append(eligible, &slot{tmpl: tmpl, batch: cand.BatchSize})
	}

	bundle := itemlist.New()
	for total := 0; total < cfg.MaxItems && len(eligible) > 0; total++ {
		i := g.rng.Intn(len(eligible))
		s := eligible[i]

		if added := bundle.AddItem(s.tmpl, s.batch); !added.Success() {
			res := result.Fail[*itemlist.ItemList]("error adding reward batch")
			res.AddErrors(added.Messages)
			return res
		}

		s.batches++
		if s.batches >= cfg.MaxQuantity {
			eligible = append(eligible[:i], eligible[i+1:]...)
		}
	}
	return result.Ok(bundle)
}

// GoldReward returns base gold plus a random bonus between 1 and 100.
func (g *RewardGenerator) GoldReward(base int) int {
	return base + g.rng.Intn(100) + 1
}
