package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lo-maxwell/virtual-garden/internal/account"
)

// Remote is the authoritative side of the sync protocol.
type Remote interface {
	// Commit submits a mutation. A nil error means the remote accepted it.
	Commit(ctx context.Context, m *Mutation) error
	// FetchSnapshot returns the remote's authoritative account state.
	FetchSnapshot(ctx context.Context, username string) (*account.Plain, error)
}

// Saga runs the optimistic apply-then-commit flow against one manager.
type Saga struct {
	mgr    *account.Manager
	remote Remote
}

func NewSaga(mgr *account.Manager, remote Remote) *Saga {
	return &Saga{mgr: mgr, remote: remote}
}

// Apply changes the local account first, then commits the mutation. When
// the commit is rejected, the account is replaced wholesale with the
// remote's snapshot. Local progress made between apply and replace is
// discarded with it; the compensation is a single swap, not a replay.
func (s *Saga) Apply(ctx context.Context, m *Mutation, localApply func(*account.Account) error) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := s.mgr.WithAccount(m.Account, localApply); err != nil {
		return fmt.Errorf("applying %s locally: %w", m.Op, err)
	}

	err := s.remote.Commit(ctx, m)
	if err == nil {
		return nil
	}
	slog.Warn("remote rejected mutation, restoring snapshot", "op", m.Op, "account", m.Account, "error", err)

	p, fetchErr := s.remote.FetchSnapshot(ctx, m.Account)
	if fetchErr != nil {
		return fmt.Errorf("fetching snapshot after rejected %s: %w", m.Op, fetchErr)
	}
	if replaceErr := s.mgr.Replace(m.Account, p); replaceErr != nil {
		return fmt.Errorf("restoring snapshot after rejected %s: %w", m.Op, replaceErr)
	}

	return fmt.Errorf("remote rejected %s: %w", m.Op, err)
}
