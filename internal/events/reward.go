// Package events implements timed user events and their reward bundles:
// the bounded-random reward generator and the daily login streak.
package events

import (
	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
)

// EventReward is a generated bundle ready to be credited to a player: items,
// gold, the streak it was earned on, and a rendered message.
type EventReward struct {
	rewardID    string
	eventType   string
	userID      string
	inventoryID string
	streak      int
	items       *itemlist.ItemList
	gold        int
	message     string
}

// NewEventReward builds a reward bundle.
func NewEventReward(eventType, userID, inventoryID string, streak int, items *itemlist.ItemList, gold int, message string) *EventReward {
	if items == nil {
		items = itemlist.New()
	}
	if streak < 0 {
		streak = 0
	}
	return &EventReward{
		rewardID:    uuid.NewString(),
		eventType:   eventType,
		userID:      userID,
		inventoryID: inventoryID,
		streak:      streak,
		items:       items,
		gold:        gold,
		message:     message,
	}
}

// ID returns the reward's identifier.
func (r *EventReward) ID() string { return r.rewardID }

// EventType returns the event that produced the reward.
func (r *EventReward) EventType() string { return r.eventType }

// UserID returns the receiving user.
func (r *EventReward) UserID() string { return r.userID }

// InventoryID returns the inventory the reward credits into.
func (r *EventReward) InventoryID() string { return r.inventoryID }

// Streak returns the streak the reward was earned on.
func (r *EventReward) Streak() int { return r.streak }

// Items returns the bundled item list.
func (r *EventReward) Items() *itemlist.ItemList { return r.items }

// Gold returns the bundled gold amount.
func (r *EventReward) Gold() int { return r.gold }

// Message returns the rendered reward message.
func (r *EventReward) Message() string { return r.message }
