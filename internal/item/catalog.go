package item

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pixil98/go-errors"
)

// Catalog is the immutable registry of item templates, loaded once at process
// start and injected into everything that builds items. Lookups are by stable
// id or name, never by pointer identity.
type Catalog struct {
	placed    map[string][]*Template // keyed by category group, e.g. "Plants"
	inventory map[string][]*Template
	tools     []*ToolTemplate
}

// catalogFile mirrors the on-disk layout of the item data set.
type catalogFile struct {
	PlacedItems    map[string][]*Template `json:"PlacedItems"`
	InventoryItems map[string][]*Template `json:"InventoryItems"`
	Tools          []*ToolTemplate        `json:"Tools"`
}

// LoadCatalog reads and validates the template catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("unmarshalling catalog: %w", err)
	}

	return NewCatalog(cf.PlacedItems, cf.InventoryItems, cf.Tools)
}

// NewCatalog builds a catalog from already-parsed template groups, validating
// every template, id/name uniqueness, and transform links.
func NewCatalog(placed, inventory map[string][]*Template, tools []*ToolTemplate) (*Catalog, error) {
	c := &Catalog{
		placed:    placed,
		inventory: inventory,
		tools:     tools,
	}
	if c.placed == nil {
		c.placed = map[string][]*Template{}
	}
	if c.inventory == nil {
		c.inventory = map[string][]*Template{}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	el := errors.NewErrorList()

	byID := map[string]*Template{}
	placedNames := map[string]bool{}
	inventoryNames := map[string]bool{}

	for _, t := range c.allPlaced() {
		el.Add(t.Validate())
		if byID[t.ID] != nil {
			el.Add(fmt.Errorf("duplicate template id %q", t.ID))
		}
		byID[t.ID] = t
		key := strings.ToLower(t.Name)
		if placedNames[key] {
			el.Add(fmt.Errorf("duplicate placed template name %q", t.Name))
		}
		placedNames[key] = true
	}
	for _, t := range c.allInventory() {
		el.Add(t.Validate())
		if byID[t.ID] != nil {
			el.Add(fmt.Errorf("duplicate template id %q", t.ID))
		}
		byID[t.ID] = t
		key := strings.ToLower(t.Name)
		if inventoryNames[key] {
			el.Add(fmt.Errorf("duplicate inventory template name %q", t.Name))
		}
		inventoryNames[key] = true
	}
	for _, t := range c.tools {
		el.Add(t.Validate())
	}

	// Transform chains must land on a real template of the opposite kind.
	for _, t := range append(c.allPlaced(), c.allInventory()...) {
		if t.TransformID == "" {
			continue
		}
		target, ok := byID[t.TransformID]
		if !ok {
			el.Add(fmt.Errorf("template %q: transformId %q not found", t.Name, t.TransformID))
			continue
		}
		if target.Kind == t.Kind {
			el.Add(fmt.Errorf("template %q: transform target %q has the same kind", t.Name, target.Name))
		}
	}

	return el.Err()
}

func (c *Catalog) allPlaced() []*Template {
	var all []*Template
	for _, group := range c.placed {
		all = append(all, group...)
	}
	return all
}

func (c *Catalog) allInventory() []*Template {
	var all []*Template
	for _, group := range c.inventory {
		all = append(all, group...)
	}
	return all
}

// findOne returns the single template matching pred, or the kind's error
// sentinel when none matches. Multiple matches indicate a broken data set and
// are logged as a programming error.
func findOne(templates []*Template, kind Kind, what, key string, pred func(*Template) bool) *Template {
	var found *Template
	for _, t := range templates {
		if !pred(t) {
			continue
		}
		if found != nil {
			slog.Error("catalog holds multiple templates for one key", "by", what, "key", key)
			return ErrorTemplate(kind)
		}
		found = t
	}
	if found == nil {
		return ErrorTemplate(kind)
	}
	return found
}

// PlacedByID looks up a placed template by id, returning the error sentinel
// when absent.
func (c *Catalog) PlacedByID(id string) *Template {
	return findOne(c.allPlaced(), KindPlaced, "id", id, func(t *Template) bool { return t.ID == id })
}

// PlacedByName looks up a placed template by name, case-insensitively.
func (c *Catalog) PlacedByName(name string) *Template {
	return findOne(c.allPlaced(), KindPlaced, "name", name, func(t *Template) bool { return strings.EqualFold(t.Name, name) })
}

// Ground returns the placed template used for empty plots. Catalogs without
// a Ground-subtype template yield the error sentinel.
func (c *Catalog) Ground() *Template {
	return findOne(c.allPlaced(), KindPlaced, "subtype", string(SubtypeGround), func(t *Template) bool { return t.Subtype == SubtypeGround })
}

// InventoryByID looks up an inventory template by id.
func (c *Catalog) InventoryByID(id string) *Template {
	return findOne(c.allInventory(), KindInventory, "id", id, func(t *Template) bool { return t.ID == id })
}

// InventoryByName looks up an inventory template by name, case-insensitively.
func (c *Catalog) InventoryByName(name string) *Template {
	return findOne(c.allInventory(), KindInventory, "name", name, func(t *Template) bool { return strings.EqualFold(t.Name, name) })
}

// ByID looks up a template of either kind. Inventory templates win on the
// (validated-impossible) case of an id present in both partitions.
func (c *Catalog) ByID(id string) *Template {
	if t := c.InventoryByID(id); !t.IsError() {
		return t
	}
	return c.PlacedByID(id)
}

// ToolByID looks up a tool template by id, nil when absent.
func (c *Catalog) ToolByID(id string) *ToolTemplate {
	for _, t := range c.tools {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ToolByName looks up a tool template by name, case-insensitively.
func (c *Catalog) ToolByName(name string) *ToolTemplate {
	for _, t := range c.tools {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return nil
}

// ResolvePlaced rehydrates a serialized placed-template reference, by id then
// by name. Malformed or unknown references come back as the error sentinel,
// logged, never panicking; callers detect it with IsError.
func (c *Catalog) ResolvePlaced(p TemplatePlain) *Template {
	if p.ID != "" {
		if t := c.PlacedByID(p.ID); !t.IsError() {
			return t
		}
	}
	if p.Name != "" {
		if t := c.PlacedByName(p.Name); !t.IsError() {
			return t
		}
	}
	slog.Error("cannot resolve placed template", "id", p.ID, "name", p.Name)
	return ErrorTemplate(KindPlaced)
}

// ResolveInventory rehydrates a serialized inventory-template reference.
func (c *Catalog) ResolveInventory(p TemplatePlain) *Template {
	if p.ID != "" {
		if t := c.InventoryByID(p.ID); !t.IsError() {
			return t
		}
	}
	if p.Name != "" {
		if t := c.InventoryByName(p.Name); !t.IsError() {
			return t
		}
	}
	slog.Error("cannot resolve inventory template", "id", p.ID, "name", p.Name)
	return ErrorTemplate(KindInventory)
}
