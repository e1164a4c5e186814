// Package itemlist implements the ordered, template-unique item container
// shared by inventories, store stock, and reward bundles.
package itemlist

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// ItemList holds inventory item stacks, unique by template identity, ordered
// by subtype priority then numeric template id. A stack's quantity is never
// retained at zero: operations that drain a stack remove it.
type ItemList struct {
	items []*item.InventoryItem
}

// New builds a list from existing stacks. Input order is discarded in favor
// of the fixed sort.
func New(items ...*item.InventoryItem) *ItemList {
	l := &ItemList{items: append([]*item.InventoryItem{}, items...)}
	l.sort()
	return l
}

func (l *ItemList) sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i].Template(), l.items[j].Template()
		pa, pb := item.SortPriority(a.Subtype), item.SortPriority(b.Subtype)
		if pa != pb {
			return pa < pb
		}
		return item.NumericID(a.ID) < item.NumericID(b.ID)
	})
}

// RefName resolves an item reference - a stack, a template, or a plain name
// string - to the template name used for identity inside containers.
func RefName(ref any) *result.Result[string] {
	switch v := ref.(type) {
	case string:
		return result.Ok(v)
	case *item.Template:
		return result.Ok(v.Name)
	case *item.InventoryItem:
		return result.Ok(v.Template().Name)
	case *item.PlacedItem:
		return result.Ok(v.Template().Name)
	default:
		// Callers passing anything else is a programming error.
		slog.Error("unsupported item reference", "ref", ref)
		return result.Failf[string]("could not parse item reference %v", ref)
	}
}

// Items returns a copy of the stacks in container order.
func (l *ItemList) Items() []*item.InventoryItem {
	return append([]*item.InventoryItem{}, l.items...)
}

// Size returns the number of distinct stacks.
func (l *ItemList) Size() int {
	return len(l.items)
}

// GetItem finds the stack matching the reference.
func (l *ItemList) GetItem(ref any) *result.Result[*item.InventoryItem] {
	name := RefName(ref)
	if !name.Success() {
		res := result.Fail[*item.InventoryItem]()
		res.AddErrors(name.Messages)
		return res
	}
	for _, it := range l.items {
		if strings.EqualFold(it.Template().Name, name.Payload) {
			return result.Ok(it)
		}
	}
	return result.Failf[*item.InventoryItem]("item %s not found", name.Payload)
}

// Contains reports whether a stack with the given identity is present.
func (l *ItemList) Contains(ref any) *result.Result[bool] {
	name := RefName(ref)
	if !name.Success() {
		res := result.Fail[bool]()
		res.AddErrors(name.Messages)
		return res
	}
	for _, it := range l.items {
		if strings.EqualFold(it.Template().Name, name.Payload) && it.Quantity() > 0 {
			return result.Ok(true)
		}
	}
	return result.Ok(false)
}

// ContainsAmount reports whether at least quantity units are held.
func (l *ItemList) ContainsAmount(ref any, quantity int) *result.Result[bool] {
	if quantity <= 0 {
		return result.Failf[bool]("invalid quantity: %d", quantity)
	}
	got := l.GetItem(ref)
	if !got.Success() {
		return result.Ok(false)
	}
	return result.Ok(got.Payload.Quantity() >= quantity)
}

// AddItem merges quantity units into an existing stack or inserts a new one
// built from the reference's template. Quantity must be a positive integer;
// placed-kind templates are rejected.
func (l *ItemList) AddItem(ref any, quantity int) *result.Result[*item.InventoryItem] {
	if quantity <= 0 {
		return result.Failf[*item.InventoryItem]("invalid quantity: %d", quantity)
	}

	if existing := l.GetItem(ref); existing.Success() {
		existing.Payload.SetQuantity(existing.Payload.Quantity() + quantity)
		return result.Ok(existing.Payload)
	}

	var tmpl *item.Template
	switch v := ref.(type) {
	case *item.InventoryItem:
		tmpl = v.Template()
	case *item.Template:
		tmpl = v
	default:
		return result.Failf[*item.InventoryItem]("cannot add item by reference %v", ref)
	}

	if tmpl.Kind != item.KindInventory {
		return result.Fail[*item.InventoryItem]("cannot add a placed item to an item list")
	}
	if tmpl.IsError() {
		return result.Fail[*item.InventoryItem]("cannot add error item")
	}

	stack := item.NewInventoryItem(tmpl, quantity)
	l.items = append(l.items, stack)
	l.sort()
	return result.Ok(stack)
}

// UpdateQuantity applies delta to an existing stack. Draining a stack to
// zero (or below) removes it; the returned stack then reports quantity 0.
func (l *ItemList) UpdateQuantity(ref any, delta int) *result.Result[*item.InventoryItem] {
	got := l.GetItem(ref)
	if !got.Success() {
		return result.Fail[*item.InventoryItem]("item not in list")
	}

	stack := got.Payload
	next := stack.Quantity() + delta
	if next <= 0 {
		return l.DeleteItem(stack)
	}
	stack.SetQuantity(next)
	return result.Ok(stack)
}

// DeleteItem removes a stack entirely, returning it with quantity forced to
// zero.
func (l *ItemList) DeleteItem(ref any) *result.Result[*item.InventoryItem] {
	got := l.GetItem(ref)
	if !got.Success() {
		return result.Fail[*item.InventoryItem]("item not in list")
	}

	stack := got.Payload
	stack.SetQuantity(0)
	for i, it := range l.items {
		if it == stack {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return result.Ok(stack)
}

// DeleteAll empties the list, returning the removed stacks.
func (l *ItemList) DeleteAll() *result.Result[[]*item.InventoryItem] {
	removed := l.Items()
	l.items = nil
	return result.Ok(removed)
}

// UseItem consumes quantity units from a stack via the item's own transform
// logic, removing the stack once drained.
func (l *ItemList) UseItem(cat *item.Catalog, ref any, quantity int) *result.Result[item.UseOutcome] {
	got := l.GetItem(ref)
	if !got.Success() {
		return result.Fail[item.UseOutcome]("item not in list")
	}

	used := got.Payload.Use(cat, quantity)
	if !used.Success() {
		return used
	}
	if used.Payload.Item.Quantity() <= 0 {
		if del := l.DeleteItem(used.Payload.Item); !del.Success() {
			res := result.Fail[item.UseOutcome]("error deleting item after using down to 0 quantity")
			res.AddErrors(del.Messages)
			return res
		}
	}
	return used
}

// BySubtype returns the stacks matching a subtype, optionally filtered by
// category. Pass an empty category for no filter.
func (l *ItemList) BySubtype(st item.Subtype, category string) []*item.InventoryItem {
	var out []*item.InventoryItem
	for _, it := range l.items {
		if it.Template().Subtype != st {
			continue
		}
		if category != "" && it.Template().Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Subtypes returns the distinct subtypes present, in container priority
// order.
func (l *ItemList) Subtypes() []item.Subtype {
	seen := map[item.Subtype]bool{}
	var out []item.Subtype
	for _, it := range l.items {
		st := it.Template().Subtype
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return item.SortPriority(out[i]) < item.SortPriority(out[j])
	})
	return out
}

// Categories returns the sorted distinct categories present within a
// subtype.
func (l *ItemList) Categories(st item.Subtype) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range l.items {
		if it.Template().Subtype != st {
			continue
		}
		if !seen[it.Template().Category] {
			seen[it.Template().Category] = true
			out = append(out, it.Template().Category)
		}
	}
	sort.Strings(out)
	return out
}
