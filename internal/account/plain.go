package account

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"

	"github.com/lo-maxwell/virtual-garden/internal/events"
	"github.com/lo-maxwell/virtual-garden/internal/garden"
	"github.com/lo-maxwell/virtual-garden/internal/history"
	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/storage"
	"github.com/lo-maxwell/virtual-garden/internal/store"
)

// Plain is the full serialized form of an Account. It is the snapshot
// record persisted by the Manager.
type Plain struct {
	AccountID  string                `json:"accountId"`
	Username   string                `json:"username"`
	Garden     garden.GardenPlain    `json:"garden"`
	Inventory  store.InventoryPlain  `json:"inventory"`
	Store      store.StorePlain      `json:"store"`
	Toolbox    store.ToolboxPlain    `json:"toolbox"`
	LoginEvent events.UserEventPlain `json:"loginEvent"`
	History    history.Plain         `json:"history"`

	storage.ExtensionState `json:"ext,omitempty"`
}

// Validate implements storage.ValidatingSpec.
func (p *Plain) Validate() error {
	el := errors.NewErrorList()
	if p.Username == "" {
		el.Add(fmt.Errorf("username must be set"))
	}
	return el.Err()
}

// ToPlain returns the account's serialized form.
func (a *Account) ToPlain() *Plain {
	return &Plain{
		AccountID:      a.accountID,
		Username:       a.username,
		Garden:         a.garden.ToPlain(),
		Inventory:      a.inventory.ToPlain(),
		Store:          a.shop.ToPlain(),
		Toolbox:        a.toolbox.ToPlain(),
		LoginEvent:     a.loginEvent.ToPlain(),
		History:        a.history.ToPlain(),
		ExtensionState: a.extensions,
	}
}

// FromPlain rebuilds an account from its serialized form. Recoverable
// damage is healed piecewise by the entity loaders; an unusable store
// snapshot is replaced with a freshly stocked one. A snapshot with no
// username cannot be loaded.
func FromPlain(cat *item.Catalog, def *store.StoreDef, list *store.StockList, p *Plain) (*Account, error) {
	if p == nil || p.Username == "" {
		return nil, fmt.Errorf("account snapshot has no username")
	}

	shop, err := store.StoreFromPlain(cat, def, list, p.Store)
	if err != nil {
		slog.Error("discarding unusable store snapshot", "account", p.Username, "error", err)
		shop, err = store.NewStore(cat, def, list)
		if err != nil {
			return nil, fmt.Errorf("rebuilding store: %w", err)
		}
	}

	loginEvent := events.UserEventFromPlain(cat, p.LoginEvent)
	if loginEvent.EventType() != events.EventTypeDailyLogin {
		slog.Error("resetting login event of unexpected type", "account", p.Username, "type", loginEvent.EventType())
		loginEvent = events.NewUserEvent(p.Username, events.EventTypeDailyLogin, 0, 0)
	}

	id := p.AccountID
	if id == "" {
		id = uuid.NewString()
	}

	return &Account{
		accountID:  id,
		username:   p.Username,
		garden:     garden.GardenFromPlain(cat, p.Garden),
		inventory:  store.InventoryFromPlain(cat, p.Inventory),
		shop:       shop,
		toolbox:    store.ToolboxFromPlain(cat, p.Toolbox),
		loginEvent: loginEvent,
		history:    history.FromPlain(cat, p.History),
		extensions: p.ExtensionState,
	}, nil
}
