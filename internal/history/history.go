// Package history accumulates per-account counters: how many of each item
// moved through the economy and how often each action ran.
package history

import (
	"sort"
	"strings"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// ItemHistory accumulates a quantity against one item template.
type ItemHistory struct {
	template *item.Template
	quantity int
}

// NewItemHistory starts a counter for a template.
func NewItemHistory(t *item.Template, quantity int) *ItemHistory {
	if quantity < 0 {
		quantity = 0
	}
	return &ItemHistory{template: t, quantity: quantity}
}

// Template returns the counted template.
func (h *ItemHistory) Template() *item.Template { return h.template }

// Quantity returns the accumulated quantity.
func (h *ItemHistory) Quantity() int { return h.quantity }

// Add accumulates a positive quantity.
func (h *ItemHistory) Add(quantity int) *result.Result[*ItemHistory] {
	if quantity <= 0 {
		return result.Failf[*ItemHistory]("invalid quantity: %d", quantity)
	}
	h.quantity += quantity
	return result.Ok(h)
}

// Combine folds another history into this one. Histories for different
// templates cannot be combined.
func (h *ItemHistory) Combine(other *ItemHistory) *result.Result[*ItemHistory] {
	if other == nil {
		return result.Fail[*ItemHistory]("cannot combine a nil history")
	}
	if h.template.ID != other.template.ID {
		return result.Failf[*ItemHistory]("cannot combine history for %s with history for %s", h.template.Name, other.template.Name)
	}
	h.quantity += other.quantity
	return result.Ok(h)
}

// ActionHistory counts how many times a named action ran.
type ActionHistory struct {
	identifier string
	count      int
}

// NewActionHistory starts a counter for an action.
func NewActionHistory(identifier string, count int) *ActionHistory {
	if count < 0 {
		count = 0
	}
	return &ActionHistory{identifier: identifier, count: count}
}

// Identifier returns the counted action.
func (h *ActionHistory) Identifier() string { return h.identifier }

// Count returns the accumulated count.
func (h *ActionHistory) Count() int { return h.count }

// Add accumulates a positive count.
func (h *ActionHistory) Add(count int) *result.Result[*ActionHistory] {
	if count <= 0 {
		return result.Failf[*ActionHistory]("invalid count: %d", count)
	}
	h.count += count
	return result.Ok(h)
}

// Combine folds another history into this one. Histories for different
// actions cannot be combined.
func (h *ActionHistory) Combine(other *ActionHistory) *result.Result[*ActionHistory] {
	if other == nil {
		return result.Fail[*ActionHistory]("cannot combine a nil history")
	}
	if !strings.EqualFold(h.identifier, other.identifier) {
		return result.Failf[*ActionHistory]("cannot combine history for %s with history for %s", h.identifier, other.identifier)
	}
	h.count += other.count
	return result.Ok(h)
}

// HistoryList holds an account's item and action histories, unique by
// identity.
type HistoryList struct {
	items   map[string]*ItemHistory
	actions map[string]*ActionHistory
}

// NewHistoryList builds an empty history list.
func NewHistoryList() *HistoryList {
	return &HistoryList{
		items:   map[string]*ItemHistory{},
		actions: map[string]*ActionHistory{},
	}
}

// RecordItem accumulates quantity against a template's history, creating it
// on first sight.
func (l *HistoryList) RecordItem(t *item.Template, quantity int) *result.Result[*ItemHistory] {
	if t == nil || t.IsError() {
		return result.Fail[*ItemHistory]("cannot record history for an unknown item")
	}
	if existing, ok := l.items[t.ID]; ok {
		return existing.Add(quantity)
	}
	if quantity <= 0 {
		return result.Failf[*ItemHistory]("invalid quantity: %d", quantity)
	}
	h := NewItemHistory(t, quantity)
	l.items[t.ID] = h
	return result.Ok(h)
}

// RecordAction accumulates count against an action's history.
func (l *HistoryList) RecordAction(identifier string, count int) *result.Result[*ActionHistory] {
	if identifier == "" {
		return result.Fail[*ActionHistory]("action must have an identifier")
	}
	key := strings.ToLower(identifier)
	if existing, ok := l.actions[key]; ok {
		return existing.Add(count)
	}
	if count <= 0 {
		return result.Failf[*ActionHistory]("invalid count: %d", count)
	}
	h := NewActionHistory(identifier, count)
	l.actions[key] = h
	return result.Ok(h)
}

// ItemHistory returns the history for a template id.
func (l *HistoryList) ItemHistory(templateID string) *result.Result[*ItemHistory] {
	if h, ok := l.items[templateID]; ok {
		return result.Ok(h)
	}
	return result.Failf[*ItemHistory]("no history for item %s", templateID)
}

// ActionHistory returns the history for an action.
func (l *HistoryList) ActionHistory(identifier string) *result.Result[*ActionHistory] {
	if h, ok := l.actions[strings.ToLower(identifier)]; ok {
		return result.Ok(h)
	}
	return result.Failf[*ActionHistory]("no history for action %s", identifier)
}

// ItemHistories returns all item histories ordered by template id.
func (l *HistoryList) ItemHistories() []*ItemHistory {
	out := make([]*ItemHistory, 0, len(l.items))
	for _, h := range l.items {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].template.ID < out[j].template.ID })
	return out
}

// ActionHistories returns all action histories ordered by identifier.
func (l *HistoryList) ActionHistories() []*ActionHistory {
	out := make([]*ActionHistory, 0, len(l.actions))
	for _, h := range l.actions {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].identifier < out[j].identifier })
	return out
}

// Combine folds another list's histories into this one.
func (l *HistoryList) Combine(other *HistoryList) *result.Result[*HistoryList] {
	if other == nil {
		return result.Fail[*HistoryList]("cannot combine a nil history list")
	}
	res := result.Ok(l)
	for _, h := range other.ItemHistories() {
		if r := l.RecordItem(h.template, h.quantity); !r.Success() {
			res.AddErrors(r.Messages)
		}
	}
	for _, h := range other.ActionHistories() {
		if r := l.RecordAction(h.identifier, h.count); !r.Success() {
			res.AddErrors(r.Messages)
		}
	}
	return res
}
