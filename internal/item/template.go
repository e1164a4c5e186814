package item

import (
	"fmt"
	"math"
	"strings"

	"github.com/pixil98/go-errors"
)

// ErrorName is the reserved name/id of sentinel templates returned when a
// lookup or deserialization fails. Downstream code detects corruption
// structurally by checking IsError instead of handling panics.
const ErrorName = "error"

// Template is an immutable catalog definition of an item kind. Templates are
// created once at load and shared read-only; per-instance state (quantity,
// status) lives on the Item wrappers.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Kind        Kind    `json:"type"`
	Subtype     Subtype `json:"subtype"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Value       int     `json:"value"`
	Level       int     `json:"level"`

	// TransformID links transformable subtypes to the template produced when
	// the item is consumed: Seed -> Plant, Blueprint -> Decoration,
	// Plant -> HarvestedItem, Decoration -> Blueprint.
	TransformID string `json:"transformId,omitempty"`

	// Plant-only grow configuration.
	BaseExp          int `json:"baseExp,omitempty"`
	GrowTime         int `json:"growTime,omitempty"`         // seconds until first harvest
	RepeatedGrowTime int `json:"repeatedGrowTime,omitempty"` // seconds between repeat harvests
	NumHarvests      int `json:"numHarvests,omitempty"`      // total harvests before the plant is spent
}

// Price computes the unit price for this template at the given multiplier.
// Never returns less than 1.
func (t *Template) Price(multiplier float64) int {
	return max(1, int(math.Floor(float64(t.Value)*multiplier+0.5)))
}

// IsError reports whether this is a sentinel error template.
func (t *Template) IsError() bool {
	return t.Name == ErrorName
}

// Validate satisfies storage.ValidatingSpec.
func (t *Template) Validate() error {
	el := errors.NewErrorList()

	if t.ID == "" {
		el.Add(fmt.Errorf("template id is required"))
	}
	if t.Name == "" {
		el.Add(fmt.Errorf("template name is required"))
	}
	if t.Value < 0 {
		el.Add(fmt.Errorf("template %q: value must not be negative", t.Name))
	}
	if _, ok := ParseSubtype(string(t.Subtype)); !ok {
		el.Add(fmt.Errorf("template %q: unknown subtype %q", t.Name, t.Subtype))
	} else if KindOf(t.Subtype) != t.Kind {
		el.Add(fmt.Errorf("template %q: subtype %s does not belong to kind %s", t.Name, t.Subtype, t.Kind))
	}
	switch t.Subtype {
	case SubtypeSeed, SubtypeBlueprint, SubtypePlant, SubtypeDecoration:
		if t.TransformID == "" {
			el.Add(fmt.Errorf("template %q: subtype %s requires a transformId", t.Name, t.Subtype))
		}
	}

	return el.Err()
}

// Error template ids follow the catalog id scheme with the 99 filler
// segments the original data set reserves for sentinels.
var (
	errPlacedTemplate = &Template{
		ID:      "0-00-99-99-99",
		Name:    ErrorName,
		Icon:    "❌",
		Kind:    KindPlaced,
		Subtype: SubtypeGround,
	}
	errInventoryTemplate = &Template{
		ID:      "1-00-99-99-99",
		Name:    ErrorName,
		Icon:    "❌",
		Kind:    KindInventory,
		Subtype: SubtypeHarvested,
	}
)

// ErrorTemplate returns the sentinel template for the given kind. The result
// is shared; callers must not mutate it.
func ErrorTemplate(kind Kind) *Template {
	if kind == KindPlaced {
		return errPlacedTemplate
	}
	return errInventoryTemplate
}

// NumericID converts a dash-separated catalog id (e.g. "1-02-05-01-01") into
// a sortable integer. Malformed ids sort last.
func NumericID(id string) int64 {
	digits := strings.ReplaceAll(id, "-", "")
	var n int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return math.MaxInt64
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// TemplatePlain is the serialized form of a template reference: enough to
// re-resolve against the catalog, nothing more.
type TemplatePlain struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subtype string `json:"subtype"`
}

// ToPlain converts the template to its plain reference form.
func (t *Template) ToPlain() TemplatePlain {
	return TemplatePlain{ID: t.ID, Name: t.Name, Subtype: string(t.Subtype)}
}
