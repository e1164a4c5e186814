// Package garden implements the plot grid, its item state machine, and the
// owner's level progression.
package garden

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// ItemConsumer is the slice of an inventory a plot needs to plant from: it
// consumes units and reports the transform template.
type ItemConsumer interface {
	UseItem(ref any, quantity int) *result.Result[item.UseOutcome]
}

// Plot is a single garden cell. It always holds exactly one placed item;
// "empty" plots hold a Ground item.
type Plot struct {
	plotID        string
	it            *item.PlacedItem
	plantTime     int64 // unix ms of the last planting or partial harvest
	usesRemaining int
}

// NewPlot wraps a placed item in a fresh plot, deriving the remaining
// harvest uses from the item's template.
func NewPlot(it *item.PlacedItem, plantTime int64) *Plot {
	return &Plot{
		plotID:        uuid.NewString(),
		it:            it,
		plantTime:     plantTime,
		usesRemaining: harvestUses(it.Template()),
	}
}

func harvestUses(t *item.Template) int {
	if t.Subtype != item.SubtypePlant {
		return 0
	}
	if t.NumHarvests < 1 {
		return 1
	}
	return t.NumHarvests
}

// ID returns the plot's stable identifier.
func (p *Plot) ID() string { return p.plotID }

// Item returns the placed item occupying the plot.
func (p *Plot) Item() *item.PlacedItem { return p.it }

// PlantTime returns the unix-millisecond timestamp of the last plant or
// partial harvest.
func (p *Plot) PlantTime() int64 { return p.plantTime }

// UsesRemaining returns how many harvests the current plant has left.
func (p *Plot) UsesRemaining() int { return p.usesRemaining }

// SetItem replaces the plot's item, resetting the plant clock and deriving
// the remaining uses.
func (p *Plot) SetItem(it *item.PlacedItem, now time.Time) {
	p.it = it
	p.plantTime = now.UnixMilli()
	p.usesRemaining = harvestUses(it.Template())
}

// CanHarvest reports whether a plant placed at plantTime is ready. The wait
// is growTime for a plant that has not been harvested yet and
// repeatedGrowTime once harvestsUsed is positive. Non-plant templates are
// never harvestable.
func CanHarvest(t *item.Template, plantTime int64, harvestsUsed int, now time.Time) bool {
	if t.Subtype != item.SubtypePlant {
		return false
	}
	wait := t.GrowTime
	if harvestsUsed > 0 {
		wait = t.RepeatedGrowTime
	}
	return now.UnixMilli()-plantTime >= int64(wait)*1000
}

// CanHarvest reports whether this plot's plant is grown and has uses left.
func (p *Plot) CanHarvest(now time.Time) bool {
	if p.usesRemaining <= 0 {
		return false
	}
	used := harvestUses(p.it.Template()) - p.usesRemaining
	return CanHarvest(p.it.Template(), p.plantTime, used, now)
}

// RemainingGrowTime renders the time left before the plant is harvestable,
// "Ready" once grown, or an empty string for non-plants.
func (p *Plot) RemainingGrowTime(now time.Time) string {
	t := p.it.Template()
	if t.Subtype != item.SubtypePlant {
		return ""
	}
	if p.CanHarvest(now) {
		return "Ready"
	}
	wait := t.GrowTime
	if harvestUses(t)-p.usesRemaining > 0 {
		wait = t.RepeatedGrowTime
	}
	left := time.Duration(p.plantTime)*time.Millisecond + time.Duration(wait)*time.Second - time.Duration(now.UnixMilli())*time.Millisecond
	if left < 0 {
		left = 0
	}
	left = left.Round(time.Second)
	h := int(left.Hours())
	m := int(left.Minutes()) % 60
	s := int(left.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Place plants a seed or builds a blueprint on a Ground plot, consuming one
// unit from the inventory. The plot is untouched when the consume fails.
func (p *Plot) Place(inv ItemConsumer, ref any, now time.Time) *result.Result[*item.PlacedItem] {
	if p.it.Template().Subtype != item.SubtypeGround {
		return result.Failf[*item.PlacedItem]("plot is of type %s, cannot be planted", p.it.Template().Subtype)
	}

	used := inv.UseItem(ref, 1)
	if !used.Success() {
		res := result.Fail[*item.PlacedItem]()
		res.AddErrors(used.Messages)
		return res
	}

	placed := item.NewPlacedItem(used.Payload.NewTemplate, "")
	p.SetItem(placed, now)
	return result.Ok(placed)
}

// Harvest collects the plant's yield template. Multi-harvest plants stay
// planted with the clock reset until their uses run out, then the plot
// reverts to the replacement item (Ground unless overridden). instantGrow
// skips the readiness check.
func (p *Plot) Harvest(cat *item.Catalog, replacement *item.Template, instantGrow bool, now time.Time) *result.Result[*item.Template] {
	t := p.it.Template()
	if t.Subtype != item.SubtypePlant {
		return result.Failf[*item.Template]("plot is of type %s, cannot be harvested", t.Subtype)
	}
	if p.usesRemaining <= 0 {
		return result.Fail[*item.Template]("plant has no harvests remaining")
	}
	if !instantGrow && !p.CanHarvest(now) {
		return result.Fail[*item.Template]("plant is not fully grown")
	}

	harvested := p.it.Use(cat)
	if !harvested.Success() {
		return harvested
	}

	p.usesRemaining--
	if p.usesRemaining > 0 {
		p.plantTime = now.UnixMilli()
	} else {
		if replacement == nil {
			replacement = cat.Ground()
		}
		p.SetItem(item.NewPlacedItem(replacement, ""), now)
	}
	return harvested
}

// Pickup returns a decoration to blueprint form, reverting the plot to the
// replacement item (Ground unless overridden).
func (p *Plot) Pickup(cat *item.Catalog, replacement *item.Template, now time.Time) *result.Result[*item.Template] {
	t := p.it.Template()
	if t.Subtype != item.SubtypeDecoration {
		return result.Failf[*item.Template]("plot is of type %s, cannot be picked up", t.Subtype)
	}

	blueprint := p.it.Use(cat)
	if !blueprint.Success() {
		return blueprint
	}

	if replacement == nil {
		replacement = cat.Ground()
	}
	p.SetItem(item.NewPlacedItem(replacement, ""), now)
	return blueprint
}

// Destroy clears a plant or decoration without yielding anything.
func (p *Plot) Destroy(cat *item.Catalog, now time.Time) *result.Result[*Plot] {
	t := p.it.Template()
	if t.Subtype != item.SubtypePlant && t.Subtype != item.SubtypeDecoration {
		return result.Failf[*Plot]("plot is of type %s, cannot be destroyed", t.Subtype)
	}

	p.SetItem(item.NewPlacedItem(cat.Ground(), ""), now)
	return result.Ok(p)
}
