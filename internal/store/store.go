package store

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// Store is a shop: multipliers applied to template values, a stock list of
// restock targets, and the current stock on the shelves.
type Store struct {
	storeID           string
	id                int32
	name              string
	buyMultiplier     float64
	sellMultiplier    float64
	upgradeMultiplier float64
	cat               *item.Catalog
	stock             *itemlist.ItemList
	stockList         *StockList
	restockTime       int64 // unix ms of the next allowed restock
	restockInterval   int64 // milliseconds
}

// NewStore builds a store from its definition and stocklist, fully stocked.
func NewStore(cat *item.Catalog, def *StoreDef, list *StockList) (*Store, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		storeID:           uuid.NewString(),
		id:                def.ID,
		name:              def.Name,
		buyMultiplier:     def.BuyMultiplier,
		sellMultiplier:    def.SellMultiplier,
		upgradeMultiplier: def.UpgradeMultiplier,
		cat:               cat,
		stock:             itemlist.New(),
		stockList:         list,
		restockInterval:   def.RestockInterval,
	}
	if res := s.RestockStore(time.Unix(0, 0)); !res.Success() {
		return nil, res.Err()
	}
	return s, nil
}

// ID returns the store's stable identifier.
func (s *Store) ID() string { return s.storeID }

// Number returns the store's numeric catalog id.
func (s *Store) Number() int32 { return s.id }

// Name returns the store's display name.
func (s *Store) Name() string { return s.name }

// Stock returns the backing stock list.
func (s *Store) Stock() *itemlist.ItemList { return s.stock }

// BuyMultiplier returns the factor applied to template values when the
// player buys.
func (s *Store) BuyMultiplier() float64 { return s.buyMultiplier }

// SellMultiplier returns the factor applied when the player sells.
func (s *Store) SellMultiplier() float64 { return s.sellMultiplier }

// RestockTime returns the unix-millisecond timestamp of the next restock.
func (s *Store) RestockTime() int64 { return s.restockTime }

// BuyPrice returns what the store charges for one unit of a template.
func (s *Store) BuyPrice(t *item.Template) int {
	return t.Price(s.buyMultiplier)
}

// SellPrice returns what the store pays for one unit of a template.
func (s *Store) SellPrice(t *item.Template) int {
	return t.Price(s.sellMultiplier)
}

// BuyItemFromStore moves quantity units from stock to the inventory,
// charging the buy price. Stock is only reduced once the purchase went
// through.
func (s *Store) BuyItemFromStore(inv *Inventory, ref any, quantity int) *result.Result[*item.InventoryItem] {
	inStock := s.stock.ContainsAmount(ref, quantity)
	if !inStock.Success() {
		return result.Fail[*item.InventoryItem](inStock.Messages...)
	}
	if !inStock.Payload {
		name := itemlist.RefName(ref)
		return result.Failf[*item.InventoryItem]("store %s does not have %d of %s in stock", s.name, quantity, name.Payload)
	}

	stocked := s.stock.GetItem(ref)
	if !stocked.Success() {
		return stocked
	}

	bought := inv.BuyItem(stocked.Payload.Template(), s.buyMultiplier, quantity)
	if !bought.Success() {
		return bought
	}

	if drop := s.stock.UpdateQuantity(ref, -quantity); !drop.Success() {
		res := result.Fail[*item.InventoryItem]("error updating store stock")
		res.AddErrors(drop.Messages)
		return res
	}
	return bought
}

// SellItemToStore moves quantity units from the inventory into stock,
// paying the sell price.
func (s *Store) SellItemToStore(inv *Inventory, ref any, quantity int) *result.Result[*item.InventoryItem] {
	sold := inv.SellItem(ref, s.sellMultiplier, quantity)
	if !sold.Success() {
		return sold
	}

	restocked := s.stock.AddItem(sold.Payload.Template(), quantity)
	if !restocked.Success() {
		res := result.Fail[*item.InventoryItem]("error adding sold items to store stock")
		res.AddErrors(restocked.Messages)
		return res
	}
	return sold
}

// BuyCustomUpgrade charges gold for an upgrade priced at value scaled by
// the upgrade multiplier. No items change hands.
func (s *Store) BuyCustomUpgrade(inv *Inventory, value int) *result.Result[int] {
	if value <= 0 {
		return result.Failf[int]("invalid upgrade value: %d", value)
	}
	cost := int(math.Floor(float64(value)*s.upgradeMultiplier + 0.5))
	if cost < 1 {
		cost = 1
	}
	if cost > inv.Gold() {
		return result.Failf[int]("not enough gold: need %d, have %d", cost, inv.Gold())
	}
	return inv.RemoveGold(cost)
}

// NeedsRestock reports whether any stock target is below its quantity.
func (s *Store) NeedsRestock() bool {
	for _, target := range s.stockList.Items {
		got := s.stock.GetItem(target.Name)
		if !got.Success() || got.Payload.Quantity() < target.Quantity {
			return true
		}
	}
	return false
}

// IsRestockTime reports whether the restock clock has elapsed.
func (s *Store) IsRestockTime(now time.Time) bool {
	return now.UnixMilli() >= s.restockTime
}

// RestockStore tops every stock target up to its quantity, all or nothing:
// any failure restores the pre-restock stock. The clock advances whether or
// not the restock succeeded, so a broken stocklist cannot hot-loop the
// ticker; it fires again next interval.
func (s *Store) RestockStore(now time.Time) *result.Result[*Store] {
	snapshot := s.stock.ToPlain()
	s.restockTime = now.UnixMilli() + s.restockInterval

	for _, target := range s.stockList.Items {
		tmpl := s.cat.InventoryByName(target.Name)
		if tmpl.IsError() {
			s.stock = itemlist.FromPlain(s.cat, snapshot)
			return result.Failf[*Store]("stocklist %s names unknown item %s", s.stockList.Name, target.Name)
		}

		current := 0
		if got := s.stock.GetItem(tmpl); got.Success() {
			current = got.Payload.Quantity()
		}
		if current >= target.Quantity {
			continue
		}

		if added := s.stock.AddItem(tmpl, target.Quantity-current); !added.Success() {
			s.stock = itemlist.FromPlain(s.cat, snapshot)
			res := result.Fail[*Store]("error restocking store")
			res.AddErrors(added.Messages)
			return res
		}
	}

	return result.Ok(s)
}
