package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lo-maxwell/virtual-garden/internal/account"
	"github.com/lo-maxwell/virtual-garden/internal/messaging"
)

const (
	SubjectCommit   = "garden.commit"
	SubjectSnapshot = "garden.snapshot"
)

// commitReply is the remote's answer to a commit request.
type commitReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// snapshotRequest asks for one account's authoritative state.
type snapshotRequest struct {
	Account string `json:"account"`
}

// NatsRemote talks the sync protocol over NATS request/reply.
type NatsRemote struct {
	srv *messaging.NatsServer
}

func NewNatsRemote(srv *messaging.NatsServer) *NatsRemote {
	return &NatsRemote{srv: srv}
}

func (r *NatsRemote) Commit(ctx context.Context, m *Mutation) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}

	replyData, err := r.srv.Request(ctx, SubjectCommit, data)
	if err != nil {
		return fmt.Errorf("requesting commit: %w", err)
	}

	var reply commitReply
	if err := json.Unmarshal(replyData, &reply); err != nil {
		return fmt.Errorf("decoding commit reply: %w", err)
	}
	if !reply.OK {
		return fmt.Errorf("commit rejected: %s", reply.Error)
	}
	return nil
}

func (r *NatsRemote) FetchSnapshot(ctx context.Context, username string) (*account.Plain, error) {
	data, err := json.Marshal(snapshotRequest{Account: username})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot request: %w", err)
	}

	replyData, err := r.srv.Request(ctx, SubjectSnapshot, data)
	if err != nil {
		return nil, fmt.Errorf("requesting snapshot: %w", err)
	}

	var p account.Plain
	if err := json.Unmarshal(replyData, &p); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &p, nil
}
