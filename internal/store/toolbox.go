package store

import (
	"sort"
	"strings"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// Toolbox holds a player's tools, unique by template identity. Tools do not
// stack.
type Toolbox struct {
	tools []*item.ToolTemplate
}

// NewToolbox builds a toolbox, dropping duplicate tools.
func NewToolbox(tools ...*item.ToolTemplate) *Toolbox {
	b := &Toolbox{}
	for _, t := range tools {
		b.AddTool(t)
	}
	return b
}

// Tools returns a copy of the held tools, ordered by id.
func (b *Toolbox) Tools() []*item.ToolTemplate {
	out := append([]*item.ToolTemplate{}, b.tools...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Size returns the number of tools held.
func (b *Toolbox) Size() int {
	return len(b.tools)
}

// GetTool finds a held tool by name.
func (b *Toolbox) GetTool(name string) *result.Result[*item.ToolTemplate] {
	for _, t := range b.tools {
		if strings.EqualFold(t.Name, name) {
			return result.Ok(t)
		}
	}
	return result.Failf[*item.ToolTemplate]("tool %s not found", name)
}

// Contains reports whether the named tool is held.
func (b *Toolbox) Contains(name string) bool {
	return b.GetTool(name).Success()
}

// AddTool adds a tool; a tool already held is rejected.
func (b *Toolbox) AddTool(t *item.ToolTemplate) *result.Result[*item.ToolTemplate] {
	if t == nil {
		return result.Fail[*item.ToolTemplate]("cannot add a nil tool")
	}
	if b.Contains(t.Name) {
		return result.Failf[*item.ToolTemplate]("tool %s already in toolbox", t.Name)
	}
	b.tools = append(b.tools, t)
	return result.Ok(t)
}

// RemoveTool removes a held tool by name.
func (b *Toolbox) RemoveTool(name string) *result.Result[*item.ToolTemplate] {
	for i, t := range b.tools {
		if strings.EqualFold(t.Name, name) {
			b.tools = append(b.tools[:i], b.tools[i+1:]...)
			return result.Ok(t)
		}
	}
	return result.Failf[*item.ToolTemplate]("tool %s not found", name)
}
