package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testTemplates() (map[string][]*Template, map[string][]*Template) {
	placed := map[string][]*Template{
		"Ground": {
			{ID: "0-00-00-00-00", Name: "ground", Kind: KindPlaced, Subtype: SubtypeGround},
		},
		"Plants": {
			{ID: "0-02-01-01-01", Name: "apple", Kind: KindPlaced, Subtype: SubtypePlant, Value: 50, TransformID: "1-03-01-01-01", GrowTime: 60, NumHarvests: 1},
		},
	}
	inventory := map[string][]*Template{
		"Seeds": {
			{ID: "1-01-01-01-01", Name: "apple seed", Kind: KindInventory, Subtype: SubtypeSeed, Value: 10, TransformID: "0-02-01-01-01"},
		},
		"HarvestedItems": {
			{ID: "1-03-01-01-01", Name: "harvested apple", Kind: KindInventory, Subtype: SubtypeHarvested, Value: 25},
		},
	}
	return placed, inventory
}

func TestNewCatalog(t *testing.T) {
	placed, inventory := testTemplates()
	cat, err := NewCatalog(placed, inventory, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "placed by id", cat.PlacedByID("0-02-01-01-01").Name, "apple")
	testutil.AssertEqual(t, "inventory by id", cat.InventoryByID("1-01-01-01-01").Name, "apple seed")
}

func TestNewCatalogDuplicateID(t *testing.T) {
	placed, inventory := testTemplates()
	placed["Plants"] = append(placed["Plants"],
		&Template{ID: "0-02-01-01-01", Name: "pear", Kind: KindPlaced, Subtype: SubtypePlant, TransformID: "1-03-01-01-01"})

	_, err := NewCatalog(placed, inventory, nil)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	testutil.AssertErrorContains(t, err, "duplicate template id")
}

func TestNewCatalogBrokenTransformLink(t *testing.T) {
	placed, inventory := testTemplates()
	inventory["Seeds"][0].TransformID = "0-99-99-99-99"

	_, err := NewCatalog(placed, inventory, nil)
	if err == nil {
		t.Fatal("expected transform link error")
	}
	testutil.AssertErrorContains(t, err, "not found")
}

func TestLookupByNameIsCaseInsensitive(t *testing.T) {
	placed, inventory := testTemplates()
	cat, err := NewCatalog(placed, inventory, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "upper", cat.PlacedByName("APPLE").ID, "0-02-01-01-01")
	testutil.AssertEqual(t, "mixed", cat.InventoryByName("Apple Seed").ID, "1-01-01-01-01")
}

func TestLookupMissReturnsErrorSentinel(t *testing.T) {
	placed, inventory := testTemplates()
	cat, err := NewCatalog(placed, inventory, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "placed miss", cat.PlacedByName("durian").IsError(), true)
	testutil.AssertEqual(t, "inventory miss", cat.InventoryByID("9-99-99-99-99").IsError(), true)
}

func TestResolveFallsBackToName(t *testing.T) {
	placed, inventory := testTemplates()
	cat, err := NewCatalog(placed, inventory, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := cat.ResolveInventory(TemplatePlain{ID: "bogus", Name: "apple seed"})
	testutil.AssertEqual(t, "resolved by name", got.ID, "1-01-01-01-01")

	miss := cat.ResolvePlaced(TemplatePlain{ID: "bogus", Name: "also bogus"})
	testutil.AssertEqual(t, "miss is sentinel", miss.IsError(), true)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	data := `{
		"PlacedItems": {
			"Ground": [{"id": "0-00-00-00-00", "name": "ground", "type": "PlacedItem", "subtype": "Ground"}],
			"Plants": [{"id": "0-02-01-01-01", "name": "apple", "type": "PlacedItem", "subtype": "Plant", "value": 50, "transformId": "1-03-01-01-01", "growTime": 60, "numHarvests": 1}]
		},
		"InventoryItems": {
			"HarvestedItems": [{"id": "1-03-01-01-01", "name": "harvested apple", "type": "InventoryItem", "subtype": "HarvestedItem", "value": 25}]
		},
		"Tools": [{"id": "2-00-00-00-01", "name": "shovel", "type": "Shovel"}]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "plant loaded", cat.PlacedByName("apple").GrowTime, 60)
	testutil.AssertEqual(t, "tool loaded", cat.ToolByName("shovel").ID, "2-00-00-00-01")
}

func TestLoadCatalogBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}

	_, err := LoadCatalog(path)
	if err == nil {
		t.Error("expected error for malformed catalog")
	}
}
