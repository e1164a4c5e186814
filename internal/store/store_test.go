package store

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/lo-maxwell/virtual-garden/internal/item/itemtest"
)

func testStoreDef() *StoreDef {
	return &StoreDef{
		ID:                1,
		Name:              "general store",
		BuyMultiplier:     2,
		SellMultiplier:    1,
		UpgradeMultiplier: 5,
		StockList:         "default",
		RestockInterval:   300000,
	}
}

func testStockList() *StockList {
	return &StockList{
		Name: "default",
		Items: []StockTarget{
			{Name: "apple seed", Quantity: 5},
			{Name: "banana seed", Quantity: 2},
		},
	}
}

func TestNewStoreStartsStocked(t *testing.T) {
	cat := itemtest.Catalog(t)

	s, err := NewStore(cat, testStoreDef(), testStockList())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	testutil.AssertEqual(t, "stacks", s.Stock().Size(), 2)
	testutil.AssertEqual(t, "apple seeds", s.Stock().GetItem("apple seed").Payload.Quantity(), 5)
	testutil.AssertEqual(t, "banana seeds", s.Stock().GetItem("banana seed").Payload.Quantity(), 2)
	testutil.AssertEqual(t, "fully stocked", s.NeedsRestock(), false)
}

func TestBuyItemFromStore(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 100, nil)

	// apple seed value 10 at x2 costs 20 each.
	bought := s.BuyItemFromStore(inv, "apple seed", 3)
	testutil.AssertEqual(t, "buy ok", bought.Success(), true)
	testutil.AssertEqual(t, "gold left", inv.Gold(), 40)
	testutil.AssertEqual(t, "held", bought.Payload.Quantity(), 3)
	testutil.AssertEqual(t, "stock reduced", s.Stock().GetItem("apple seed").Payload.Quantity(), 2)
	testutil.AssertEqual(t, "needs restock", s.NeedsRestock(), true)
}

func TestBuyItemFromStoreInsufficientStock(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 1000, nil)

	res := s.BuyItemFromStore(inv, "banana seed", 3)
	testutil.AssertEqual(t, "over stock fails", res.Success(), false)
	testutil.AssertEqual(t, "gold untouched", inv.Gold(), 1000)
	testutil.AssertEqual(t, "stock untouched", s.Stock().GetItem("banana seed").Payload.Quantity(), 2)
}

func TestBuyItemFromStoreInsufficientGold(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 10, nil)

	res := s.BuyItemFromStore(inv, "apple seed", 1)
	testutil.AssertEqual(t, "poor buyer fails", res.Success(), false)
	testutil.AssertEqual(t, "stock untouched", s.Stock().GetItem("apple seed").Payload.Quantity(), 5)
}

func TestSellItemToStore(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 0, nil)
	inv.GainItem(cat.InventoryByName("harvested apple"), 2)

	// harvested apple value 25 at x1 pays 25 each.
	sold := s.SellItemToStore(inv, "harvested apple", 2)
	testutil.AssertEqual(t, "sell ok", sold.Success(), true)
	testutil.AssertEqual(t, "gold gained", inv.Gold(), 50)
	testutil.AssertEqual(t, "inventory emptied", inv.Items().Size(), 0)
	testutil.AssertEqual(t, "stock gained", s.Stock().GetItem("harvested apple").Payload.Quantity(), 2)

	missing := s.SellItemToStore(inv, "harvested apple", 1)
	testutil.AssertEqual(t, "nothing to sell fails", missing.Success(), false)
}

func TestRestockStore(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 1000, nil)
	now := time.Now()

	s.BuyItemFromStore(inv, "apple seed", 4)
	testutil.AssertEqual(t, "needs restock", s.NeedsRestock(), true)

	res := s.RestockStore(now)
	testutil.AssertEqual(t, "restock ok", res.Success(), true)
	testutil.AssertEqual(t, "topped up", s.Stock().GetItem("apple seed").Payload.Quantity(), 5)
	testutil.AssertEqual(t, "clock advanced", s.RestockTime(), now.UnixMilli()+300000)

	// A second restock with full stock changes nothing but the clock.
	later := now.Add(time.Minute)
	again := s.RestockStore(later)
	testutil.AssertEqual(t, "idempotent ok", again.Success(), true)
	testutil.AssertEqual(t, "quantity unchanged", s.Stock().GetItem("apple seed").Payload.Quantity(), 5)
	testutil.AssertEqual(t, "clock advanced again", s.RestockTime(), later.UnixMilli()+300000)
}

func TestRestockStoreRollsBackOnUnknownItem(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 1000, nil)

	s.BuyItemFromStore(inv, "apple seed", 4)
	before := s.Stock().GetItem("apple seed").Payload.Quantity()

	s.stockList.Items = append(s.stockList.Items, StockTarget{Name: "dragonfruit seed", Quantity: 5})
	now := time.Now()
	res := s.RestockStore(now)
	testutil.AssertEqual(t, "restock fails", res.Success(), false)
	testutil.AssertEqual(t, "stock rolled back", s.Stock().GetItem("apple seed").Payload.Quantity(), before)

	// The clock still advances: a broken stocklist must not retrigger the
	// restock on every poll.
	testutil.AssertEqual(t, "clock advanced", s.RestockTime(), now.UnixMilli()+300000)
	testutil.AssertEqual(t, "not due again", s.IsRestockTime(now), false)
}

func TestRestockStoreKeepsExcessStock(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 0, nil)
	inv.GainItem(cat.InventoryByName("apple seed"), 10)

	s.SellItemToStore(inv, "apple seed", 10)
	testutil.AssertEqual(t, "over target", s.Stock().GetItem("apple seed").Payload.Quantity(), 15)

	res := s.RestockStore(time.Now())
	testutil.AssertEqual(t, "restock ok", res.Success(), true)
	testutil.AssertEqual(t, "excess kept", s.Stock().GetItem("apple seed").Payload.Quantity(), 15)
}

func TestIsRestockTime(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	now := time.Now()

	s.RestockStore(now)
	testutil.AssertEqual(t, "too early", s.IsRestockTime(now.Add(time.Minute)), false)
	testutil.AssertEqual(t, "due", s.IsRestockTime(now.Add(6*time.Minute)), true)
}

func TestBuyCustomUpgrade(t *testing.T) {
	cat := itemtest.Catalog(t)
	s, _ := NewStore(cat, testStoreDef(), testStockList())
	inv := NewInventory(cat, "alice", 100, nil)

	// value 10 at x5 costs 50.
	res := s.BuyCustomUpgrade(inv, 10)
	testutil.AssertEqual(t, "upgrade ok", res.Success(), true)
	testutil.AssertEqual(t, "gold left", inv.Gold(), 50)

	poor := s.BuyCustomUpgrade(inv, 20)
	testutil.AssertEqual(t, "too expensive fails", poor.Success(), false)
	testutil.AssertEqual(t, "gold untouched", inv.Gold(), 50)

	bad := s.BuyCustomUpgrade(inv, 0)
	testutil.AssertEqual(t, "zero value fails", bad.Success(), false)
}

func TestStorePlainRoundTrip(t *testing.T) {
	cat := itemtest.Catalog(t)
	def := testStoreDef()
	list := testStockList()
	s, _ := NewStore(cat, def, list)
	inv := NewInventory(cat, "alice", 1000, nil)
	s.BuyItemFromStore(inv, "apple seed", 2)

	back, err := StoreFromPlain(cat, def, list, s.ToPlain())
	if err != nil {
		t.Fatalf("StoreFromPlain: %v", err)
	}

	testutil.AssertEqual(t, "id", back.ID(), s.ID())
	testutil.AssertEqual(t, "name", back.Name(), "general store")
	testutil.AssertEqual(t, "stock", back.Stock().GetItem("apple seed").Payload.Quantity(), 3)
	testutil.AssertEqual(t, "restock time", back.RestockTime(), s.RestockTime())
}
