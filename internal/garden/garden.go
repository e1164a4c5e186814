package garden

import (
	"time"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

const baseDimension = 5

// MaxDimension returns the largest row or column count a garden may have at
// the given owner level.
func MaxDimension(level int) int {
	if level < 1 {
		level = 1
	}
	return baseDimension + level/5
}

type coord struct {
	row, col int
}

// Garden is a rectangular grid of plots. Every cell is populated; the index
// maps each plot's id to its current coordinates and survives resizes and
// swaps.
type Garden struct {
	gardenID string
	owner    string
	cat      *item.Catalog
	plots    [][]*Plot
	index    map[string]coord
	level    *LevelSystem
}

// NewGarden builds a garden of Ground plots, gated by the owner's level.
func NewGarden(cat *item.Catalog, owner string, rows, cols int, level *LevelSystem) *result.Result[*Garden] {
	if level == nil {
		level = NewLevelSystem(1, 0, defaultGrowthRate)
	}
	if err := checkDimensions(rows, cols, level.Level()); err != nil {
		return err
	}

	g := &Garden{
		gardenID: uuid.NewString(),
		owner:    owner,
		cat:      cat,
		index:    map[string]coord{},
		level:    level,
	}
	g.plots = make([][]*Plot, rows)
	for r := range g.plots {
		g.plots[r] = make([]*Plot, cols)
		for c := range g.plots[r] {
			g.plots[r][c] = g.newGroundPlot()
		}
	}
	g.reindex()
	return result.Ok(g)
}

func checkDimensions(rows, cols, level int) *result.Result[*Garden] {
	maxDim := MaxDimension(level)
	if rows < 1 || cols < 1 {
		return result.Failf[*Garden]("garden must be at least 1x1, got %dx%d", rows, cols)
	}
	if rows > maxDim || cols > maxDim {
		return result.Failf[*Garden]("garden size %dx%d exceeds the %dx%d limit at level %d", rows, cols, maxDim, maxDim, level)
	}
	return nil
}

func (g *Garden) newGroundPlot() *Plot {
	return NewPlot(item.NewPlacedItem(g.cat.Ground(), ""), 0)
}

func (g *Garden) reindex() {
	g.index = make(map[string]coord, len(g.plots)*len(g.plots[0]))
	for r, row := range g.plots {
		for c, p := range row {
			g.index[p.ID()] = coord{row: r, col: c}
		}
	}
}

// ID returns the garden's identifier.
func (g *Garden) ID() string { return g.gardenID }

// Owner returns the owning account's name.
func (g *Garden) Owner() string { return g.owner }

// Level returns the owner's level progression.
func (g *Garden) Level() *LevelSystem { return g.level }

// Size returns the grid dimensions.
func (g *Garden) Size() (rows, cols int) {
	return len(g.plots), len(g.plots[0])
}

// Plot returns the plot at the given coordinates.
func (g *Garden) Plot(row, col int) *result.Result[*Plot] {
	if row < 0 || row >= len(g.plots) || col < 0 || col >= len(g.plots[0]) {
		return result.Failf[*Plot]("invalid plot location (%d, %d)", row, col)
	}
	return result.Ok(g.plots[row][col])
}

// PlotByID returns the plot with the given id and its coordinates.
func (g *Garden) PlotByID(id string) *result.Result[*Plot] {
	pos, ok := g.index[id]
	if !ok {
		return result.Failf[*Plot]("plot %s not in garden", id)
	}
	return result.Ok(g.plots[pos.row][pos.col])
}

// PlotPosition returns the coordinates of a plot by id.
func (g *Garden) PlotPosition(id string) (row, col int, ok bool) {
	pos, found := g.index[id]
	return pos.row, pos.col, found
}

// SetGardenSize resizes the grid. Surviving cells keep their plots; new
// cells get fresh Ground plots; trimmed plots are discarded.
func (g *Garden) SetGardenSize(rows, cols int) *result.Result[*Garden] {
	if err := checkDimensions(rows, cols, g.level.Level()); err != nil {
		return err
	}

	next := make([][]*Plot, rows)
	for r := range next {
		next[r] = make([]*Plot, cols)
		for c := range next[r] {
			if r < len(g.plots) && c < len(g.plots[0]) {
				next[r][c] = g.plots[r][c]
			} else {
				next[r][c] = g.newGroundPlot()
			}
		}
	}
	g.plots = next
	g.reindex()
	return result.Ok(g)
}

// AddRow grows the garden by one row of Ground plots.
func (g *Garden) AddRow() *result.Result[*Garden] {
	rows, cols := g.Size()
	return g.SetGardenSize(rows+1, cols)
}

// AddColumn grows the garden by one column of Ground plots.
func (g *Garden) AddColumn() *result.Result[*Garden] {
	rows, cols := g.Size()
	return g.SetGardenSize(rows, cols+1)
}

// RemoveRow trims the bottom row, discarding its plots.
func (g *Garden) RemoveRow() *result.Result[*Garden] {
	rows, cols := g.Size()
	return g.SetGardenSize(rows-1, cols)
}

// RemoveColumn trims the rightmost column, discarding its plots.
func (g *Garden) RemoveColumn() *result.Result[*Garden] {
	rows, cols := g.Size()
	return g.SetGardenSize(rows, cols-1)
}

// SwapPlots exchanges two plots by coordinates, all-or-nothing.
func (g *Garden) SwapPlots(r1, c1, r2, c2 int) *result.Result[*Garden] {
	first := g.Plot(r1, c1)
	second := g.Plot(r2, c2)
	if !first.Success() || !second.Success() {
		res := result.Fail[*Garden]()
		res.AddErrors(first.Messages)
		res.AddErrors(second.Messages)
		return res
	}

	g.plots[r1][c1], g.plots[r2][c2] = g.plots[r2][c2], g.plots[r1][c1]
	g.index[g.plots[r1][c1].ID()] = coord{row: r1, col: c1}
	g.index[g.plots[r2][c2].ID()] = coord{row: r2, col: c2}
	return result.Ok(g)
}

// SwapPlotsByID exchanges two plots addressed by id, all-or-nothing.
func (g *Garden) SwapPlotsByID(idA, idB string) *result.Result[*Garden] {
	a, okA := g.index[idA]
	b, okB := g.index[idB]
	if !okA || !okB {
		return result.Fail[*Garden]("both plots must be in the garden to swap")
	}
	return g.SwapPlots(a.row, a.col, b.row, b.col)
}

// Place plants a seed or builds a blueprint on the plot at the given
// coordinates, consuming one unit from the inventory.
func (g *Garden) Place(row, col int, inv ItemConsumer, ref any, now time.Time) *result.Result[*item.PlacedItem] {
	plot := g.Plot(row, col)
	if !plot.Success() {
		return result.Fail[*item.PlacedItem](plot.Messages...)
	}
	return plot.Payload.Place(inv, ref, now)
}

// Harvest collects the plant at the given coordinates, granting the plant's
// base experience to the owner on success.
func (g *Garden) Harvest(row, col int, replacement *item.Template, instantGrow bool, now time.Time) *result.Result[*item.Template] {
	plot := g.Plot(row, col)
	if !plot.Success() {
		return result.Fail[*item.Template](plot.Messages...)
	}

	exp := plot.Payload.Item().Template().BaseExp
	harvested := plot.Payload.Harvest(g.cat, replacement, instantGrow, now)
	if harvested.Success() {
		g.level.AddExperience(exp)
	}
	return harvested
}

// Pickup returns the decoration at the given coordinates to blueprint form.
func (g *Garden) Pickup(row, col int, replacement *item.Template, now time.Time) *result.Result[*item.Template] {
	plot := g.Plot(row, col)
	if !plot.Success() {
		return result.Fail[*item.Template](plot.Messages...)
	}
	return plot.Payload.Pickup(g.cat, replacement, now)
}

// Destroy clears the plant or decoration at the given coordinates.
func (g *Garden) Destroy(row, col int, now time.Time) *result.Result[*Plot] {
	plot := g.Plot(row, col)
	if !plot.Success() {
		return plot
	}
	return plot.Payload.Destroy(g.cat, now)
}
