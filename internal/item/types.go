package item

import "strings"

// Kind is the top-level classification of an item template. Placed items live
// in garden plots; inventory items live in item lists.
type Kind string

const (
	KindPlaced    Kind = "PlacedItem"
	KindInventory Kind = "InventoryItem"
)

// Subtype identifies the concrete variant of an item within its kind. The set
// is closed: factories dispatch on it exhaustively and fail on anything else.
type Subtype string

const (
	SubtypeGround     Subtype = "Ground"
	SubtypePlant      Subtype = "Plant"
	SubtypeDecoration Subtype = "Decoration"
	SubtypePlacedEgg  Subtype = "PlacedEgg"

	SubtypeSeed         Subtype = "Seed"
	SubtypeHarvested    Subtype = "HarvestedItem"
	SubtypeBlueprint    Subtype = "Blueprint"
	SubtypeInventoryEgg Subtype = "InventoryEgg"
)

// placedSubtypes and inventorySubtypes define which subtypes belong to which
// kind. Used for validation at catalog load.
var placedSubtypes = map[Subtype]bool{
	SubtypeGround:     true,
	SubtypePlant:      true,
	SubtypeDecoration: true,
	SubtypePlacedEgg:  true,
}

var inventorySubtypes = map[Subtype]bool{
	SubtypeSeed:         true,
	SubtypeHarvested:    true,
	SubtypeBlueprint:    true,
	SubtypeInventoryEgg: true,
}

// ParseSubtype resolves a subtype string case-insensitively. The second return
// is false for anything outside the closed set.
func ParseSubtype(s string) (Subtype, bool) {
	for st := range placedSubtypes {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	for st := range inventorySubtypes {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// KindOf returns the kind a subtype belongs to.
func KindOf(st Subtype) Kind {
	if placedSubtypes[st] {
		return KindPlaced
	}
	return KindInventory
}

// sortPriority is the fixed ordering of subtypes inside a container. Unknown
// subtypes sort after all known ones.
var sortPriority = []Subtype{SubtypeSeed, SubtypeHarvested, SubtypeBlueprint}

// SortPriority returns the container ordering rank for a subtype.
func SortPriority(st Subtype) int {
	for i, s := range sortPriority {
		if s == st {
			return i
		}
	}
	return len(sortPriority)
}
