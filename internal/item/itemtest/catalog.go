// Package itemtest provides a small, fully-linked template catalog shared by
// the engine's test suites.
package itemtest

import (
	"testing"

	"github.com/lo-maxwell/virtual-garden/internal/item"
)

// Catalog returns a validated catalog with an apple transform chain
// (apple seed -> apple plant -> apple), a single-harvest banana chain, a
// bench decoration with its blueprint, ground, and a shovel tool.
func Catalog(t *testing.T) *item.Catalog {
	t.Helper()

	placed := map[string][]*item.Template{
		"Ground": {
			{ID: "0-00-00-00-00", Name: "ground", Icon: "🟫", Kind: item.KindPlaced, Subtype: item.SubtypeGround, Category: "Ground", Description: "Dirt", Value: 0},
		},
		"Plants": {
			{ID: "0-02-01-01-01", Name: "apple", Icon: "🍎", Kind: item.KindPlaced, Subtype: item.SubtypePlant, Category: "Tree Fruit", Description: "An apple tree", Value: 50, TransformID: "1-03-01-01-01", BaseExp: 10, GrowTime: 60, RepeatedGrowTime: 30, NumHarvests: 3},
			{ID: "0-02-01-01-02", Name: "banana", Icon: "🍌", Kind: item.KindPlaced, Subtype: item.SubtypePlant, Category: "Tree Fruit", Description: "A banana tree", Value: 100, TransformID: "1-03-01-01-02", BaseExp: 20, GrowTime: 120, RepeatedGrowTime: 120, NumHarvests: 1},
		},
		"Decorations": {
			{ID: "0-04-02-01-01", Name: "bench", Icon: "🪑", Kind: item.KindPlaced, Subtype: item.SubtypeDecoration, Category: "Furniture", Description: "A bench", Value: 100, TransformID: "1-05-02-01-01"},
		},
	}

	inventory := map[string][]*item.Template{
		"Seeds": {
			{ID: "1-01-01-01-01", Name: "apple seed", Icon: "🍎", Kind: item.KindInventory, Subtype: item.SubtypeSeed, Category: "Tree Fruit", Description: "Grows an apple tree", Value: 10, TransformID: "0-02-01-01-01"},
			{ID: "1-01-01-01-02", Name: "banana seed", Icon: "🍌", Kind: item.KindInventory, Subtype: item.SubtypeSeed, Category: "Tree Fruit", Description: "Grows a banana tree", Value: 20, TransformID: "0-02-01-01-02"},
		},
		"HarvestedItems": {
			{ID: "1-03-01-01-01", Name: "harvested apple", Icon: "🍎", Kind: item.KindInventory, Subtype: item.SubtypeHarvested, Category: "Tree Fruit", Description: "A crisp apple", Value: 25},
			{ID: "1-03-01-01-02", Name: "harvested banana", Icon: "🍌", Kind: item.KindInventory, Subtype: item.SubtypeHarvested, Category: "Tree Fruit", Description: "A ripe banana", Value: 50},
		},
		"Blueprints": {
			{ID: "1-05-02-01-01", Name: "bench blueprint", Icon: "📋", Kind: item.KindInventory, Subtype: item.SubtypeBlueprint, Category: "Furniture", Description: "Builds a bench", Value: 100, TransformID: "0-04-02-01-01"},
		},
	}

	tools := []*item.ToolTemplate{
		{ID: "2-00-00-00-01", Name: "shovel", Type: "Shovel", Icon: "🪏", Description: "Digs up plants", Value: 0, Level: 1},
	}

	cat, err := item.NewCatalog(placed, inventory, tools)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}
