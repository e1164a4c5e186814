package item

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// InventoryItem is a stack of an inventory-kind template held by exactly one
// container. Quantity never goes below zero; a container removes the entry
// once it reaches zero.
type InventoryItem struct {
	itemID   string
	template *Template
	quantity int
}

// NewInventoryItem wraps a template in a fresh stack. The caller is
// responsible for quantity validation; the container enforces it on insert.
func NewInventoryItem(t *Template, quantity int) *InventoryItem {
	return &InventoryItem{
		itemID:   uuid.NewString(),
		template: t,
		quantity: quantity,
	}
}

// ItemID returns the stable instance id used at persistence boundaries.
func (i *InventoryItem) ItemID() string { return i.itemID }

// Template returns the shared, read-only template.
func (i *InventoryItem) Template() *Template { return i.template }

// Quantity returns the current stack size.
func (i *InventoryItem) Quantity() int { return i.quantity }

// SetQuantity replaces the stack size, clamping at zero.
func (i *InventoryItem) SetQuantity(q int) {
	if q < 0 {
		q = 0
	}
	i.quantity = q
}

// UseOutcome reports the result of consuming from a stack: the stack itself
// (post-decrement) and the template the consumed units transformed into.
type UseOutcome struct {
	Item        *InventoryItem
	NewTemplate *Template
}

// Use consumes quantity units from the stack. Seeds yield their Plant
// template and Blueprints their Decoration; anything else is a
// state-mismatch. The stack must hold at least quantity units.
func (i *InventoryItem) Use(cat *Catalog, quantity int) *result.Result[UseOutcome] {
	if quantity <= 0 {
		return result.Failf[UseOutcome]("invalid quantity: %d", quantity)
	}
	if i.quantity < quantity {
		return result.Failf[UseOutcome]("item lacks the required quantity: has %d but requires %d", i.quantity, quantity)
	}

	switch i.template.Subtype {
	case SubtypeSeed, SubtypeBlueprint:
		next := cat.PlacedByID(i.template.TransformID)
		if next.IsError() {
			return result.Failf[UseOutcome]("transform target %q not found for %s", i.template.TransformID, i.template.Name)
		}
		i.SetQuantity(i.quantity - quantity)
		return result.Ok(UseOutcome{Item: i, NewTemplate: next})
	default:
		return result.Failf[UseOutcome]("item is of type %s, cannot be used", i.template.Subtype)
	}
}

// InventoryItemPlain is the serialized form of a stack.
type InventoryItemPlain struct {
	ItemID   string        `json:"itemId"`
	Template TemplatePlain `json:"itemData"`
	Quantity int           `json:"quantity"`
}

func (i *InventoryItem) ToPlain() InventoryItemPlain {
	return InventoryItemPlain{
		ItemID:   i.itemID,
		Template: i.template.ToPlain(),
		Quantity: i.quantity,
	}
}

// InventoryItemFromPlain rehydrates a stack. Malformed references resolve to
// the error sentinel template; the caller filters those out.
func InventoryItemFromPlain(cat *Catalog, p InventoryItemPlain) *InventoryItem {
	t := cat.ResolveInventory(p.Template)
	if t.IsError() {
		slog.Error("dropping inventory item with unresolvable template", "id", p.Template.ID, "name", p.Template.Name)
	}
	itemID := p.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}
	q := p.Quantity
	if q < 0 {
		q = 0
	}
	return &InventoryItem{itemID: itemID, template: t, quantity: q}
}

// PlacedItem is a single placed-kind item occupying a plot. Status is
// free-form bookkeeping text shown beside the item (grow-timer notes etc).
type PlacedItem struct {
	itemID   string
	template *Template
	status   string
}

// NewPlacedItem wraps a placed template with a status string.
func NewPlacedItem(t *Template, status string) *PlacedItem {
	return &PlacedItem{
		itemID:   uuid.NewString(),
		template: t,
		status:   status,
	}
}

// ItemID returns the stable instance id used at persistence boundaries.
func (p *PlacedItem) ItemID() string { return p.itemID }

// Template returns the shared, read-only template.
func (p *PlacedItem) Template() *Template { return p.template }

// Status returns the status string.
func (p *PlacedItem) Status() string { return p.status }

// SetStatus replaces the status string.
func (p *PlacedItem) SetStatus(s string) { p.status = s }

// Use reports what the placed item turns into when removed: Plants yield
// their HarvestedItem template, Decorations their Blueprint. Ground cannot be
// used. The item itself is not mutated; the plot performs the replacement.
func (p *PlacedItem) Use(cat *Catalog) *result.Result[*Template] {
	switch p.template.Subtype {
	case SubtypePlant, SubtypeDecoration:
		next := cat.InventoryByID(p.template.TransformID)
		if next.IsError() {
			return result.Failf[*Template]("transform target %q not found for %s", p.template.TransformID, p.template.Name)
		}
		return result.Ok(next)
	default:
		return result.Failf[*Template]("item is of type %s, cannot be used", p.template.Subtype)
	}
}

// PlacedItemPlain is the serialized form of a placed item.
type PlacedItemPlain struct {
	ItemID   string        `json:"itemId"`
	Template TemplatePlain `json:"itemData"`
	Status   string        `json:"status"`
}

func (p *PlacedItem) ToPlain() PlacedItemPlain {
	return PlacedItemPlain{
		ItemID:   p.itemID,
		Template: p.template.ToPlain(),
		Status:   p.status,
	}
}

// PlacedItemFromPlain rehydrates a placed item, falling back to the error
// sentinel template on malformed input.
func PlacedItemFromPlain(cat *Catalog, p PlacedItemPlain) *PlacedItem {
	t := cat.ResolvePlaced(p.Template)
	itemID := p.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}
	return &PlacedItem{itemID: itemID, template: t, status: p.Status}
}
