package account

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/item/itemtest"
	"github.com/lo-maxwell/virtual-garden/internal/store"
)

func testStoreDef() *store.StoreDef {
	return &store.StoreDef{
		ID:                1,
		Name:              "general store",
		BuyMultiplier:     2,
		SellMultiplier:    1,
		UpgradeMultiplier: 5,
		StockList:         "default",
		RestockInterval:   300000,
	}
}

func testStockList() *store.StockList {
	return &store.StockList{
		Name: "default",
		Items: []store.StockTarget{
			{Name: "apple seed", Quantity: 5},
			{Name: "banana seed", Quantity: 2},
		},
	}
}

func TestNewAccountDefaults(t *testing.T) {
	cat := itemtest.Catalog(t)

	acct, err := NewAccount(cat, "alice", testStoreDef(), testStockList())
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	testutil.AssertEqual(t, "username", acct.Username(), "alice")
	testutil.AssertEqual(t, "gold", acct.Inventory().Gold(), 100)
	testutil.AssertEqual(t, "empty inventory", acct.Inventory().Items().Size(), 0)
	testutil.AssertEqual(t, "stocked store", acct.Store().NeedsRestock(), false)
	testutil.AssertEqual(t, "login type", acct.LoginEvent().EventType(), "daily_login")
	testutil.AssertEqual(t, "streak", acct.LoginEvent().Streak(), 0)

	rows, cols := acct.Garden().Size()
	testutil.AssertEqual(t, "rows", rows, 5)
	testutil.AssertEqual(t, "cols", cols, 5)
	plot := acct.Garden().Plot(0, 0)
	testutil.AssertEqual(t, "ground", plot.Payload.Item().Template().Subtype, item.SubtypeGround)
}

func TestNewAccountRequiresUsername(t *testing.T) {
	cat := itemtest.Catalog(t)

	_, err := NewAccount(cat, "", testStoreDef(), testStockList())
	testutil.AssertErrorContains(t, err, "username must be set")
}

func TestAccountPlainRoundTrip(t *testing.T) {
	cat := itemtest.Catalog(t)
	acct, err := NewAccount(cat, "alice", testStoreDef(), testStockList())
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	acct.Inventory().GainItem("apple seed", 3)
	acct.History().RecordAction("planted", 2)
	if err := acct.Extensions().Set("theme", "dark"); err != nil {
		t.Fatalf("setting extension: %v", err)
	}

	p := acct.ToPlain()
	if err := p.Validate(); err != nil {
		t.Fatalf("snapshot should validate: %v", err)
	}

	got, err := FromPlain(cat, testStoreDef(), testStockList(), p)
	if err != nil {
		t.Fatalf("FromPlain: %v", err)
	}

	testutil.AssertEqual(t, "id", got.ID(), acct.ID())
	testutil.AssertEqual(t, "username", got.Username(), "alice")
	testutil.AssertEqual(t, "gold", got.Inventory().Gold(), 100)
	testutil.AssertEqual(t, "seeds", got.Inventory().Items().GetItem("apple seed").Payload.Quantity(), 3)
	testutil.AssertEqual(t, "action count", got.History().ActionHistory("planted").Payload.Count(), 2)

	var theme string
	found, err := got.Extensions().Get("theme", &theme)
	if err != nil {
		t.Fatalf("reading extension: %v", err)
	}
	testutil.AssertEqual(t, "extension found", found, true)
	testutil.AssertEqual(t, "extension value", theme, "dark")
}

func TestFromPlainRejectsEmptySnapshot(t *testing.T) {
	cat := itemtest.Catalog(t)

	_, err := FromPlain(cat, testStoreDef(), testStockList(), nil)
	testutil.AssertErrorContains(t, err, "no username")

	_, err = FromPlain(cat, testStoreDef(), testStockList(), &Plain{})
	testutil.AssertErrorContains(t, err, "no username")
}

func TestFromPlainHealsLoginEventType(t *testing.T) {
	cat := itemtest.Catalog(t)
	acct, _ := NewAccount(cat, "alice", testStoreDef(), testStockList())

	p := acct.ToPlain()
	p.LoginEvent.EventType = "mystery_box"

	got, err := FromPlain(cat, testStoreDef(), testStockList(), p)
	if err != nil {
		t.Fatalf("FromPlain: %v", err)
	}
	testutil.AssertEqual(t, "reset type", got.LoginEvent().EventType(), "daily_login")
	testutil.AssertEqual(t, "reset streak", got.LoginEvent().Streak(), 0)
}
