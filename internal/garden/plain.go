package garden

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
)

// PlotPlain is the serialized form of a Plot.
type PlotPlain struct {
	PlotID        string               `json:"plotId"`
	Item          item.PlacedItemPlain `json:"item"`
	PlantTime     int64                `json:"plantTime"`
	UsesRemaining int                  `json:"usesRemaining"`
}

// LevelSystemPlain is the serialized form of a LevelSystem.
type LevelSystemPlain struct {
	SystemID   string  `json:"systemId"`
	Level      int     `json:"level"`
	Exp        int     `json:"exp"`
	GrowthRate float64 `json:"growthRate"`
}

// GardenPlain is the serialized form of a Garden.
type GardenPlain struct {
	GardenID string           `json:"gardenId"`
	Owner    string           `json:"owner"`
	Rows     int              `json:"rows"`
	Cols     int              `json:"cols"`
	Plots    [][]PlotPlain    `json:"plots"`
	Level    LevelSystemPlain `json:"level"`
}

// ToPlain converts the plot for persistence.
func (p *Plot) ToPlain() PlotPlain {
	return PlotPlain{
		PlotID:        p.plotID,
		Item:          p.it.ToPlain(),
		PlantTime:     p.plantTime,
		UsesRemaining: p.usesRemaining,
	}
}

// PlotFromPlain rebuilds a plot. Unresolvable items degrade to Ground with
// a logged error; missing ids are synthesized.
func PlotFromPlain(cat *item.Catalog, p PlotPlain) *Plot {
	it := item.PlacedItemFromPlain(cat, p.Item)
	if it.Template().IsError() {
		slog.Error("resetting plot with unresolvable item", "plot", p.PlotID, "name", p.Item.Template.Name)
		it = item.NewPlacedItem(cat.Ground(), "")
		return &Plot{plotID: idOrNew(p.PlotID), it: it, plantTime: 0, usesRemaining: 0}
	}

	uses := p.UsesRemaining
	maxUses := harvestUses(it.Template())
	if uses < 0 || uses > maxUses {
		uses = maxUses
	}
	return &Plot{plotID: idOrNew(p.PlotID), it: it, plantTime: p.PlantTime, usesRemaining: uses}
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// ToPlain converts the progression for persistence.
func (l *LevelSystem) ToPlain() LevelSystemPlain {
	return LevelSystemPlain{SystemID: l.systemID, Level: l.level, Exp: l.exp, GrowthRate: l.growthRate}
}

// LevelSystemFromPlain rebuilds a progression, falling back to sane
// defaults for out-of-range fields.
func LevelSystemFromPlain(p LevelSystemPlain) *LevelSystem {
	l := NewLevelSystem(p.Level, p.Exp, p.GrowthRate)
	if p.SystemID != "" {
		l.systemID = p.SystemID
	}
	return l
}

// ToPlain converts the garden for persistence.
func (g *Garden) ToPlain() GardenPlain {
	rows, cols := g.Size()
	p := GardenPlain{
		GardenID: g.gardenID,
		Owner:    g.owner,
		Rows:     rows,
		Cols:     cols,
		Plots:    make([][]PlotPlain, rows),
		Level:    g.level.ToPlain(),
	}
	for r, row := range g.plots {
		p.Plots[r] = make([]PlotPlain, cols)
		for c, plot := range row {
			p.Plots[r][c] = plot.ToPlain()
		}
	}
	return p
}

// GardenFromPlain rebuilds a garden. Grids that do not match the declared
// dimensions are padded with Ground plots so no cell is ever left empty; a
// garden whose dimensions fail the level gate is rebuilt at the default
// size.
func GardenFromPlain(cat *item.Catalog, p GardenPlain) *Garden {
	level := LevelSystemFromPlain(p.Level)

	rows, cols := p.Rows, p.Cols
	if checkDimensions(rows, cols, level.Level()) != nil {
		slog.Error("resetting garden with invalid dimensions", "garden", p.GardenID, "rows", rows, "cols", cols)
		rows, cols = baseDimension, baseDimension
	}

	g := &Garden{
		gardenID: idOrNew(p.GardenID),
		owner:    p.Owner,
		cat:      cat,
		level:    level,
	}
	g.plots = make([][]*Plot, rows)
	for r := range g.plots {
		g.plots[r] = make([]*Plot, cols)
		for c := range g.plots[r] {
			if r < len(p.Plots) && c < len(p.Plots[r]) {
				g.plots[r][c] = PlotFromPlain(cat, p.Plots[r][c])
			} else {
				g.plots[r][c] = g.newGroundPlot()
			}
		}
	}
	g.reindex()
	return g
}
