package quorum

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/hashicorp/raft"
)

type raftLeaderElection struct {
	c        config.LeaderElectionConfig
	raft     *raft.Raft
	callback LeaderChangeCallback
	isLeader atomic.Bool
}

func NewRaftLeaderElection(c config.LeaderElectionConfig, callback LeaderChangeCallback) LeaderElection {
	return &raftLeaderElection{
		c:        c,
		callback: callback,
	}
}

func (r *raftLeaderElection) Start(ctx context.Context) error {
	node := r.c.Raft

	raftConfig := raft.DefaultConfig()
	raftConfig.LocalID = raft.ServerID(node.Id)

	// only leadership matters, the log carries no state
	store := raft.NewInmemStore()
	snapshots := raft.NewInmemSnapshotStore()

	bindAddr := fmt.Sprintf("%s:%d", node.Host, node.Port)
	advertise, err := net.ResolveTCPAddr("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("resolve TCP addr: %w", err)
	}

	transport, err := raft.NewTCPTransport(bindAddr, advertise, 3, 10*time.Second, os.Stderr)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	r.raft, err = raft.NewRaft(raftConfig, &emptyFSM{}, store, store, snapshots, transport)
	if err != nil {
		return fmt.Errorf("new raft: %w", err)
	}

	if node.Id == node.InitiatorId {
		err := r.bootstrap()
		if err != nil {
			return err
		}
	}

	go r.watchLeadership(ctx, r.raft.LeaderCh())
	return nil
}

func (r *raftLeaderElection) bootstrap() error {
	servers := make([]raft.Server, 0, len(r.c.Raft.Nodes))
	for _, node := range r.c.Raft.Nodes {
		servers = append(servers, raft.Server{
			ID:      raft.ServerID(node.Id),
			Address: raft.ServerAddress(node.Address),
		})
	}

	future := r.raft.BootstrapCluster(raft.Configuration{Servers: servers})
	err := future.Error()
	if err != nil && !errors.Is(err, raft.ErrCantBootstrap) {
		return fmt.Errorf("bootstrap: %w", err)
	}

	logging.Logger.Infow("bootstrapped raft cluster", "nodes", len(servers))
	return nil
}

func (r *raftLeaderElection) watchLeadership(ctx context.Context, leaderCh <-chan bool) {
	for {
		select {
		case <-ctx.Done():
			return

		case isLeader, ok := <-leaderCh:
			if !ok {
				return
			}

			if r.isLeader.Swap(isLeader) == isLeader {
				continue
			}

			logging.Logger.Infow("raft leadership changed", "node", r.c.Raft.Id, "leader", isLeader)
			r.callback(isLeader)
		}
	}
}

func (r *raftLeaderElection) Stop() error {
	if r.raft == nil {
		return nil
	}

	err := r.raft.Shutdown().Error()
	if err != nil {
		return fmt.Errorf("shutting down raft: %w", err)
	}

	if r.isLeader.Swap(false) {
		r.callback(false)
	}
	return nil
}

func (r *raftLeaderElection) IsLeader() bool {
	return r.isLeader.Load()
}

type emptyFSM struct{}

func (e *emptyFSM) Apply(*raft.Log) interface{}         { return nil }
func (e *emptyFSM) Snapshot() (raft.FSMSnapshot, error) { return &emptySnapshot{}, nil }
func (e *emptyFSM) Restore(io.ReadCloser) error         { return nil }

type emptySnapshot struct{}

func (e *emptySnapshot) Persist(sink raft.SnapshotSink) error {
	err := sink.Close()
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

func (e *emptySnapshot) Release() {}
