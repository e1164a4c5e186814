package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
)

// UserEvent tracks one recurring event for a user: when it last fired, the
// current streak, and the most recent reward.
type UserEvent struct {
	eventID        string
	user           string
	eventType      string
	lastOccurrence int64 // unix ms
	streak         int
	reward         *EventReward
}

// NewUserEvent starts tracking an event for a user. A zero lastOccurrence
// means the event never fired.
func NewUserEvent(user, eventType string, lastOccurrence int64, streak int) *UserEvent {
	if streak < 0 {
		streak = 0
	}
	return &UserEvent{
		eventID:        uuid.NewString(),
		user:           user,
		eventType:      eventType,
		lastOccurrence: lastOccurrence,
		streak:         streak,
	}
}

// ID returns the event's identifier.
func (e *UserEvent) ID() string { return e.eventID }

// User returns the tracked user.
func (e *UserEvent) User() string { return e.user }

// EventType returns the tracked event type.
func (e *UserEvent) EventType() string { return e.eventType }

// LastOccurrence returns the unix-millisecond timestamp of the last claim.
func (e *UserEvent) LastOccurrence() int64 { return e.lastOccurrence }

// Streak returns the current streak.
func (e *UserEvent) Streak() int { return e.streak }

// Reward returns the most recent reward, nil before the first claim.
func (e *UserEvent) Reward() *EventReward { return e.reward }

func (e *UserEvent) record(now time.Time, streak int, reward *EventReward) {
	e.lastOccurrence = now.UnixMilli()
	e.streak = streak
	e.reward = reward
}

// UserEventPlain is the serialized form of a UserEvent.
type UserEventPlain struct {
	EventID        string            `json:"eventId"`
	User           string            `json:"user"`
	EventType      string            `json:"eventType"`
	LastOccurrence int64             `json:"lastOccurrence"`
	Streak         int               `json:"streak"`
	Reward         *EventRewardPlain `json:"reward,omitempty"`
}

// EventRewardPlain is the serialized form of an EventReward.
type EventRewardPlain struct {
	RewardID    string         `json:"rewardId"`
	EventType   string         `json:"eventType"`
	UserID      string         `json:"userId"`
	InventoryID string         `json:"inventoryId"`
	Streak      int            `json:"streak"`
	Items       itemlist.Plain `json:"items"`
	Gold        int            `json:"gold"`
	Message     string         `json:"message"`
}

// ToPlain converts the event for persistence.
func (e *UserEvent) ToPlain() UserEventPlain {
	p := UserEventPlain{
		EventID:        e.eventID,
		User:           e.user,
		EventType:      e.eventType,
		LastOccurrence: e.lastOccurrence,
		Streak:         e.streak,
	}
	if e.reward != nil {
		rp := e.reward.ToPlain()
		p.Reward = &rp
	}
	return p
}

// ToPlain converts the reward for persistence.
func (r *EventReward) ToPlain() EventRewardPlain {
	return EventRewardPlain{
		RewardID:    r.rewardID,
		EventType:   r.eventType,
		UserID:      r.userID,
		InventoryID: r.inventoryID,
		Streak:      r.streak,
		Items:       r.items.ToPlain(),
		Gold:        r.gold,
		Message:     r.message,
	}
}

// UserEventFromPlain rebuilds an event, clamping the streak and dropping
// rewards that no longer resolve.
func UserEventFromPlain(cat *item.Catalog, p UserEventPlain) *UserEvent {
	e := NewUserEvent(p.User, p.EventType, p.LastOccurrence, p.Streak)
	if p.EventID != "" {
		e.eventID = p.EventID
	}
	if p.Reward != nil {
		e.reward = EventRewardFromPlain(cat, *p.Reward)
	}
	return e
}

// EventRewardFromPlain rebuilds a reward bundle.
func EventRewardFromPlain(cat *item.Catalog, p EventRewardPlain) *EventReward {
	r := NewEventReward(p.EventType, p.UserID, p.InventoryID, p.Streak, itemlist.FromPlain(cat, p.Items), p.Gold, p.Message)
	if p.RewardID != "" {
		r.rewardID = p.RewardID
	}
	return r
}
