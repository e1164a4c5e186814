package item

import (
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// Factories build concrete item variants from templates resolved by name or
// id. Dispatch is on the template's subtype, so an unknown or wrong-kind
// template fails here instead of producing a half-valid item.

// GenerateInventoryItem builds a stack from an inventory template name.
func GenerateInventoryItem(cat *Catalog, name string, quantity int) *result.Result[*InventoryItem] {
	return buildInventoryItem(cat.InventoryByName(name), quantity)
}

// GenerateInventoryItemByID builds a stack from an inventory template id.
func GenerateInventoryItemByID(cat *Catalog, id string, quantity int) *result.Result[*InventoryItem] {
	return buildInventoryItem(cat.InventoryByID(id), quantity)
}

func buildInventoryItem(t *Template, quantity int) *result.Result[*InventoryItem] {
	if t.IsError() {
		return result.Fail[*InventoryItem]("inventory template not found")
	}
	switch t.Subtype {
	case SubtypeSeed, SubtypeHarvested, SubtypeBlueprint, SubtypeInventoryEgg:
		return result.Ok(NewInventoryItem(t, quantity))
	default:
		return result.Failf[*InventoryItem]("template %q has subtype %s, not an inventory item", t.Name, t.Subtype)
	}
}

// GeneratePlacedItem builds a placed item from a placed template name.
func GeneratePlacedItem(cat *Catalog, name string, status string) *result.Result[*PlacedItem] {
	return buildPlacedItem(cat.PlacedByName(name), status)
}

// GeneratePlacedItemByID builds a placed item from a placed template id.
func GeneratePlacedItemByID(cat *Catalog, id string, status string) *result.Result[*PlacedItem] {
	return buildPlacedItem(cat.PlacedByID(id), status)
}

func buildPlacedItem(t *Template, status string) *result.Result[*PlacedItem] {
	if t.IsError() {
		return result.Fail[*PlacedItem]("placed template not found")
	}
	switch t.Subtype {
	case SubtypeGround, SubtypePlant, SubtypeDecoration, SubtypePlacedEgg:
		return result.Ok(NewPlacedItem(t, status))
	default:
		return result.Failf[*PlacedItem]("template %q has subtype %s, not a placed item", t.Name, t.Subtype)
	}
}
