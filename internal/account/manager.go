package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lo-maxwell/virtual-garden/internal/events"
	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/result"
	"github.com/lo-maxwell/virtual-garden/internal/storage"
	"github.com/lo-maxwell/virtual-garden/internal/store"
)

// Manager owns all loaded accounts. Every read or write of an account's
// state goes through WithAccount, which holds that account's lock for the
// duration and writes a snapshot afterwards. At most one writer touches an
// account at a time.
type Manager struct {
	mu       sync.Mutex
	accounts map[string]*entry

	cat   *item.Catalog
	def   *store.StoreDef
	list  *store.StockList
	login *events.DailyLogin
	snaps storage.Storer[*Plain]

	clock func() time.Time
}

type entry struct {
	mu   sync.Mutex
	acct *Account
}

// NewManager loads every stored snapshot. Snapshots that cannot be rebuilt
// are skipped and logged, not fatal.
func NewManager(cat *item.Catalog, def *store.StoreDef, list *store.StockList, login *events.DailyLogin, snaps storage.Storer[*Plain]) *Manager {
	m := &Manager{
		accounts: map[string]*entry{},
		cat:      cat,
		def:      def,
		list:     list,
		login:    login,
		snaps:    snaps,
		clock:    time.Now,
	}

	for id, p := range snaps.GetAll() {
		acct, err := FromPlain(cat, def, list, p)
		if err != nil {
			slog.Error("skipping unloadable account snapshot", "id", id, "error", err)
			continue
		}
		m.accounts[id] = &entry{acct: acct}
	}

	return m
}

func (m *Manager) key(username string) string {
	return strings.ToLower(username)
}

// CreateAccount creates and persists a fresh account. Usernames are unique
// case-insensitively.
func (m *Manager) CreateAccount(username string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.key(username)
	if _, ok := m.accounts[k]; ok {
		return nil, fmt.Errorf("account %q already exists", username)
	}

	acct, err := NewAccount(m.cat, username, m.def, m.list)
	if err != nil {
		return nil, err
	}

	if err := m.snaps.Save(k, acct.ToPlain()); err != nil {
		return nil, fmt.Errorf("saving account %q: %w", username, err)
	}

	m.accounts[k] = &entry{acct: acct}
	return acct, nil
}

// DeleteAccount removes an account and its snapshot.
func (m *Manager) DeleteAccount(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.key(username)
	if _, ok := m.accounts[k]; !ok {
		return fmt.Errorf("account %q not found", username)
	}

	if err := m.snaps.Delete(k); err != nil {
		return fmt.Errorf("deleting account %q: %w", username, err)
	}
	delete(m.accounts, k)
	return nil
}

func (m *Manager) lookup(username string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[m.key(username)]
}

// WithAccount runs fn while holding the account's lock, then persists a
// snapshot. The snapshot is written even when fn returns an error, since
// fn may have made partial progress.
func (m *Manager) WithAccount(username string, fn func(*Account) error) error {
	e := m.lookup(username)
	if e == nil {
		return fmt.Errorf("account %q not found", username)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fnErr := fn(e.acct)

	if err := m.snaps.Save(m.key(username), e.acct.ToPlain()); err != nil {
		if fnErr != nil {
			return fmt.Errorf("saving account %q after %w: %v", username, fnErr, err)
		}
		return fmt.Errorf("saving account %q: %w", username, err)
	}
	return fnErr
}

// Replace swaps an account's state wholesale for the state in the given
// snapshot, keeping the account registered under the same username. Used
// when a remote rejects local progress.
func (m *Manager) Replace(username string, p *Plain) error {
	e := m.lookup(username)
	if e == nil {
		return fmt.Errorf("account %q not found", username)
	}

	acct, err := FromPlain(m.cat, m.def, m.list, p)
	if err != nil {
		return fmt.Errorf("rebuilding account %q: %w", username, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.acct = acct
	if err := m.snaps.Save(m.key(username), acct.ToPlain()); err != nil {
		return fmt.Errorf("saving account %q: %w", username, err)
	}
	return nil
}

// ClaimDailyReward claims the daily login reward and credits its gold and
// items into the account's inventory. Item and gold gains are recorded in
// the account's history.
func (m *Manager) ClaimDailyReward(username string) *result.Result[*events.EventReward] {
	res := result.Fail[*events.EventReward]()

	err := m.WithAccount(username, func(a *Account) error {
		res = m.login.Claim(a.LoginEvent(), a.Inventory().ID(), m.clock())
		if !res.Success() {
			return nil
		}

		reward := res.Payload
		a.Inventory().AddGold(reward.Gold())
		for _, it := range reward.Items().Items() {
			gain := a.Inventory().GainItem(it.Template(), it.Quantity())
			if !gain.Success() {
				res.AddErrors(gain.Messages)
				continue
			}
			a.History().RecordItem(it.Template(), it.Quantity())
		}
		a.History().RecordAction(events.EventTypeDailyLogin, 1)
		return nil
	})
	if err != nil {
		return result.Fail[*events.EventReward](err.Error())
	}
	return res
}

// Start blocks until the context is cancelled.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Tick restocks every store whose restock time has passed.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	entries := make(map[string]*entry, len(m.accounts))
	for k, e := range m.accounts {
		entries[k] = e
	}
	m.mu.Unlock()

	now := m.clock()
	for k, e := range entries {
		e.mu.Lock()
		if e.acct.Store().IsRestockTime(now) {
			if res := e.acct.Store().RestockStore(now); !res.Success() {
				slog.Error("restock failed", "account", k, "error", res.Err())
			} else if err := m.snaps.Save(k, e.acct.ToPlain()); err != nil {
				slog.Error("saving account after restock", "account", k, "error", err)
			}
		}
		e.mu.Unlock()
	}
	return nil
}
