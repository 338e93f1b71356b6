package quorum

import (
	"Listline/internal/config"
	"context"
	"fmt"
)

// LeaderChangeCallback is invoked whenever this node gains or loses the
// right to run background jobs.
type LeaderChangeCallback func(isLeader bool)

type LeaderElectionFactory struct {
	callback LeaderChangeCallback
}

func NewLeaderElectionFactory() *LeaderElectionFactory {
	return &LeaderElectionFactory{
		callback: func(bool) {},
	}
}

func (f *LeaderElectionFactory) OnLeaderChange(callback LeaderChangeCallback) *LeaderElectionFactory {
	f.callback = callback
	return f
}

func (f *LeaderElectionFactory) Build(c config.LeaderElectionConfig) (LeaderElection, error) {
	switch c.Mode {
	case config.LeaderElectionModeNone, "":
		return NewNoLeaderElection(f.callback), nil

	case config.LeaderElectionModeRaft:
		return NewRaftLeaderElection(c, f.callback), nil

	default:
		return nil, fmt.Errorf("leader election mode %q not supported", c.Mode)
	}
}

type LeaderElection interface {
	Start(ctx context.Context) error
	Stop() error
	IsLeader() bool
}
