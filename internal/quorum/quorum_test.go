package quorum

import (
	"Listline/internal/config"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type QuorumSuite struct {
	suite.Suite
}

func TestQuorumSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuorumSuite))
}

func (s *QuorumSuite) TestNoneModeIsAlwaysLeader() {
	// arrange
	var calls []bool
	election, err := NewLeaderElectionFactory().
		OnLeaderChange(func(isLeader bool) {
			calls = append(calls, isLeader)
		}).
		Build(config.LeaderElectionConfig{Mode: config.LeaderElectionModeNone})
	s.Require().NoError(err)

	// act
	err = election.Start(context.Background())

	// assert
	s.Require().NoError(err)
	s.True(election.IsLeader())
	s.Equal([]bool{true}, calls)
	s.NoError(election.Stop())
}

func (s *QuorumSuite) TestEmptyModeFallsBackToNone() {
	// act
	election, err := NewLeaderElectionFactory().Build(config.LeaderElectionConfig{})

	// assert
	s.Require().NoError(err)
	s.NoError(election.Start(context.Background()))
	s.True(election.IsLeader())
}

func (s *QuorumSuite) TestUnknownModeFails() {
	// act
	election, err := NewLeaderElectionFactory().Build(config.LeaderElectionConfig{Mode: "zookeeper"})

	// assert
	s.Nil(election)
	s.ErrorContains(err, `"zookeeper" not supported`)
}

func (s *QuorumSuite) TestRaftElectionIsNotLeaderBeforeStart() {
	// arrange
	c := config.LeaderElectionConfig{Mode: config.LeaderElectionModeRaft}
	c.Raft.Id = "node-1"

	// act
	election, err := NewLeaderElectionFactory().Build(c)

	// assert
	s.Require().NoError(err)
	s.False(election.IsLeader())
	s.NoError(election.Stop())
}
