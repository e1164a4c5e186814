// Package account aggregates a player's full game state: garden, inventory,
// store, toolbox, daily-login record and histories. The Manager serializes
// access per account and keeps snapshots on disk.
package account

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/events"
	"github.com/lo-maxwell/virtual-garden/internal/garden"
	"github.com/lo-maxwell/virtual-garden/internal/history"
	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/storage"
	"github.com/lo-maxwell/virtual-garden/internal/store"
)

const (
	defaultRows = 5
	defaultCols = 5
	defaultGold = 100
)

// Account is the root aggregate for a single player.
type Account struct {
	accountID  string
	username   string
	garden     *garden.Garden
	inventory  *store.Inventory
	shop       *store.Store
	toolbox    *store.Toolbox
	loginEvent *events.UserEvent
	history    *history.HistoryList
	extensions storage.ExtensionState
}

// NewAccount creates a fresh account with a 5x5 garden, starting gold and
// a freshly stocked store.
func NewAccount(cat *item.Catalog, username string, def *store.StoreDef, list *store.StockList) (*Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username must be set")
	}

	g := garden.NewGarden(cat, username, defaultRows, defaultCols, garden.NewLevelSystem(1, 0, 0))
	if !g.Success() {
		return nil, fmt.Errorf("creating garden: %w", g.Err())
	}

	shop, err := store.NewStore(cat, def, list)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	return &Account{
		accountID:  uuid.NewString(),
		username:   username,
		garden:     g.Payload,
		inventory:  store.NewInventory(cat, username, defaultGold, nil),
		shop:       shop,
		toolbox:    store.NewToolbox(),
		loginEvent: events.NewUserEvent(username, events.EventTypeDailyLogin, 0, 0),
		history:    history.NewHistoryList(),
	}, nil
}

// ID returns the account's identifier.
func (a *Account) ID() string { return a.accountID }

// Username returns the account's username.
func (a *Account) Username() string { return a.username }

// Garden returns the account's garden.
func (a *Account) Garden() *garden.Garden { return a.garden }

// Inventory returns the account's inventory.
func (a *Account) Inventory() *store.Inventory { return a.inventory }

// Store returns the account's store.
func (a *Account) Store() *store.Store { return a.shop }

// Toolbox returns the account's toolbox.
func (a *Account) Toolbox() *store.Toolbox { return a.toolbox }

// LoginEvent returns the account's daily-login record.
func (a *Account) LoginEvent() *events.UserEvent { return a.loginEvent }

// History returns the account's history list.
func (a *Account) History() *history.HistoryList { return a.history }

// Extensions returns the account's extension payloads.
func (a *Account) Extensions() *storage.ExtensionState { return &a.extensions }
