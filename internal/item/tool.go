package item

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ToolTemplate describes a garden tool (shovel and friends). Tools sit
// outside the placed/inventory taxonomy: they are never stacked, traded, or
// planted, so they carry no subtype or transform link.
type ToolTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Value       int    `json:"value"`
	Level       int    `json:"level"`
}

func (t *ToolTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.ID == "" {
		el.Add(fmt.Errorf("tool id is required"))
	}
	if t.Name == "" {
		el.Add(fmt.Errorf("tool name is required"))
	}
	if t.Value < 0 {
		el.Add(fmt.Errorf("tool %q: value must not be negative", t.Name))
	}

	return el.Err()
}

// ToolPlain is the serialized reference form of a tool.
type ToolPlain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t *ToolTemplate) ToPlain() ToolPlain {
	return ToolPlain{ID: t.ID, Name: t.Name}
}
