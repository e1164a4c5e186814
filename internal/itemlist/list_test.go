package itemlist

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/item/itemtest"
)

func TestItemListOrdering(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("bench blueprint"), 1)
	l.AddItem(cat.InventoryByName("harvested apple"), 2)
	l.AddItem(cat.InventoryByName("banana seed"), 1)
	l.AddItem(cat.InventoryByName("apple seed"), 1)

	items := l.Items()
	testutil.AssertEqual(t, "size", len(items), 4)
	testutil.AssertEqual(t, "first", items[0].Template().Name, "apple seed")
	testutil.AssertEqual(t, "second", items[1].Template().Name, "banana seed")
	testutil.AssertEqual(t, "third", items[2].Template().Name, "harvested apple")
	testutil.AssertEqual(t, "fourth", items[3].Template().Name, "bench blueprint")
}

func TestItemListGetItem(t *testing.T) {
	cat := itemtest.Catalog(t)
	seed := cat.InventoryByName("apple seed")

	l := New()
	l.AddItem(seed, 3)

	byName := l.GetItem("Apple Seed")
	testutil.AssertEqual(t, "by name ok", byName.Success(), true)
	testutil.AssertEqual(t, "quantity", byName.Payload.Quantity(), 3)

	byTemplate := l.GetItem(seed)
	testutil.AssertEqual(t, "by template ok", byTemplate.Success(), true)

	missing := l.GetItem("dragonfruit seed")
	testutil.AssertEqual(t, "missing fails", missing.Success(), false)

	bad := l.GetItem(42)
	testutil.AssertEqual(t, "bad ref fails", bad.Success(), false)
}

func TestItemListAddMergesStacks(t *testing.T) {
	cat := itemtest.Catalog(t)
	seed := cat.InventoryByName("apple seed")

	l := New()
	first := l.AddItem(seed, 2)
	testutil.AssertEqual(t, "first ok", first.Success(), true)

	second := l.AddItem(seed, 3)
	testutil.AssertEqual(t, "second ok", second.Success(), true)
	testutil.AssertEqual(t, "merged size", l.Size(), 1)
	testutil.AssertEqual(t, "merged quantity", second.Payload.Quantity(), 5)
	testutil.AssertEqual(t, "same stack", first.Payload == second.Payload, true)
}

func TestItemListAddRejectsInvalid(t *testing.T) {
	cat := itemtest.Catalog(t)

	zero := New().AddItem(cat.InventoryByName("apple seed"), 0)
	testutil.AssertEqual(t, "zero quantity fails", zero.Success(), false)

	negative := New().AddItem(cat.InventoryByName("apple seed"), -4)
	testutil.AssertEqual(t, "negative quantity fails", negative.Success(), false)

	placed := New().AddItem(cat.PlacedByName("apple"), 1)
	testutil.AssertEqual(t, "placed template fails", placed.Success(), false)

	byName := New().AddItem("apple seed", 1)
	testutil.AssertEqual(t, "name-only insert fails", byName.Success(), false)
}

func TestItemListUpdateQuantity(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 5)

	up := l.UpdateQuantity("apple seed", 2)
	testutil.AssertEqual(t, "up ok", up.Success(), true)
	testutil.AssertEqual(t, "up quantity", up.Payload.Quantity(), 7)

	down := l.UpdateQuantity("apple seed", -7)
	testutil.AssertEqual(t, "drain ok", down.Success(), true)
	testutil.AssertEqual(t, "drained quantity", down.Payload.Quantity(), 0)
	testutil.AssertEqual(t, "drained stack removed", l.Size(), 0)

	missing := l.UpdateQuantity("apple seed", 1)
	testutil.AssertEqual(t, "missing fails", missing.Success(), false)
}

func TestItemListContains(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 2)

	has := l.Contains("apple seed")
	testutil.AssertEqual(t, "contains", has.Payload, true)

	hasNot := l.Contains("banana seed")
	testutil.AssertEqual(t, "not contains", hasNot.Payload, false)

	enough := l.ContainsAmount("apple seed", 2)
	testutil.AssertEqual(t, "enough", enough.Payload, true)

	tooMany := l.ContainsAmount("apple seed", 3)
	testutil.AssertEqual(t, "too many", tooMany.Payload, false)

	badQty := l.ContainsAmount("apple seed", 0)
	testutil.AssertEqual(t, "bad quantity fails", badQty.Success(), false)
}

func TestItemListDelete(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 2)
	l.AddItem(cat.InventoryByName("harvested apple"), 4)

	del := l.DeleteItem("apple seed")
	testutil.AssertEqual(t, "delete ok", del.Success(), true)
	testutil.AssertEqual(t, "deleted quantity", del.Payload.Quantity(), 0)
	testutil.AssertEqual(t, "size after delete", l.Size(), 1)

	all := l.DeleteAll()
	testutil.AssertEqual(t, "delete all ok", all.Success(), true)
	testutil.AssertEqual(t, "delete all count", len(all.Payload), 1)
	testutil.AssertEqual(t, "empty", l.Size(), 0)
}

func TestItemListUseItem(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 2)

	used := l.UseItem(cat, "apple seed", 1)
	testutil.AssertEqual(t, "use ok", used.Success(), true)
	testutil.AssertEqual(t, "transform", used.Payload.NewTemplate.Name, "apple")
	testutil.AssertEqual(t, "remaining", used.Payload.Item.Quantity(), 1)
	testutil.AssertEqual(t, "still present", l.Size(), 1)

	last := l.UseItem(cat, "apple seed", 1)
	testutil.AssertEqual(t, "last use ok", last.Success(), true)
	testutil.AssertEqual(t, "drained removed", l.Size(), 0)

	gone := l.UseItem(cat, "apple seed", 1)
	testutil.AssertEqual(t, "missing fails", gone.Success(), false)
}

func TestItemListSubtypeViews(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 1)
	l.AddItem(cat.InventoryByName("banana seed"), 1)
	l.AddItem(cat.InventoryByName("harvested apple"), 1)

	seeds := l.BySubtype(item.SubtypeSeed, "")
	testutil.AssertEqual(t, "seed count", len(seeds), 2)

	subtypes := l.Subtypes()
	testutil.AssertEqual(t, "subtype count", len(subtypes), 2)
	testutil.AssertEqual(t, "seed first", subtypes[0], item.SubtypeSeed)
	testutil.AssertEqual(t, "harvested second", subtypes[1], item.SubtypeHarvested)
}

func TestItemListPlainRoundTrip(t *testing.T) {
	cat := itemtest.Catalog(t)

	l := New()
	l.AddItem(cat.InventoryByName("apple seed"), 2)
	l.AddItem(cat.InventoryByName("harvested apple"), 4)

	p := l.ToPlain()
	testutil.AssertEqual(t, "plain count", len(p.Items), 2)

	back := FromPlain(cat, p)
	testutil.AssertEqual(t, "restored size", back.Size(), 2)
	restored := back.GetItem("harvested apple")
	testutil.AssertEqual(t, "restored quantity", restored.Payload.Quantity(), 4)
}

func TestItemListFromPlainSkipsUnresolvable(t *testing.T) {
	cat := itemtest.Catalog(t)

	p := Plain{Items: []item.InventoryItemPlain{
		{Template: item.TemplatePlain{ID: "9-99-99-99-99", Name: "ghost seed", Subtype: string(item.SubtypeSeed)}, Quantity: 3},
		{Template: cat.InventoryByName("apple seed").ToPlain(), Quantity: 2},
	}}

	l := FromPlain(cat, p)
	testutil.AssertEqual(t, "only resolvable kept", l.Size(), 1)
	testutil.AssertEqual(t, "kept stack", l.Items()[0].Template().Name, "apple seed")
}
