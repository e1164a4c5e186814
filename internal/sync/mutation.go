// Package sync applies account mutations optimistically: the local state
// changes first, then the mutation is committed to the remote. A rejected
// commit is compensated by replacing the account with the remote's
// authoritative snapshot.
package sync

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-errors"
)

// Mutation is the deterministic description of one account operation, the
// unit the remote commits. Entity ids, quantities and template hints are
// keyed by role ("plot", "item", ...) so the remote can replay the
// operation without guessing.
type Mutation struct {
	Op         string            `json:"op"`
	Account    string            `json:"account"`
	EntityIDs  map[string]string `json:"entityIds,omitempty"`
	Quantities map[string]int    `json:"quantities,omitempty"`
	Templates  map[string]string `json:"templates,omitempty"`
}

// NewMutation starts a mutation for the given operation and account.
func NewMutation(op, account string) *Mutation {
	return &Mutation{
		Op:         op,
		Account:    account,
		EntityIDs:  map[string]string{},
		Quantities: map[string]int{},
		Templates:  map[string]string{},
	}
}

// WithEntity records an entity id under a role.
func (m *Mutation) WithEntity(role, id string) *Mutation {
	m.EntityIDs[role] = id
	return m
}

// WithQuantity records a quantity under a role.
func (m *Mutation) WithQuantity(role string, quantity int) *Mutation {
	m.Quantities[role] = quantity
	return m
}

// WithTemplate records a template hint under a role.
func (m *Mutation) WithTemplate(role, templateID string) *Mutation {
	m.Templates[role] = templateID
	return m
}

// Validate checks the mutation names an operation and an account.
func (m *Mutation) Validate() error {
	el := errors.NewErrorList()
	if m.Op == "" {
		el.Add(fmt.Errorf("op must be set"))
	}
	if m.Account == "" {
		el.Add(fmt.Errorf("account must be set"))
	}
	return el.Err()
}

// Marshal returns the mutation's wire form.
func (m *Mutation) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
