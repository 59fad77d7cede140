//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	platformredis "dict-bridge/internal/platform/redis"
	"dict-bridge/pkg/testutil/containers"
)

type MutexSuite struct {
	suite.Suite
	redis  *containers.RedisContainer
	client *platformredis.Client
}

func TestMutexSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MutexSuite))
}

func (s *MutexSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.client = &platformredis.Client{Client: s.redis.Client}
}

func (s *MutexSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *MutexSuite) TestMutualExclusion() {
	ctx := context.Background()
	a := platformredis.NewMutex(s.client, "sweep:leader", time.Minute)
	b := platformredis.NewMutex(s.client, "sweep:leader", time.Minute)

	releaseA, ok, err := a.TryLock(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)

	// Second holder is rejected while the first holds the lock.
	_, ok, err = b.TryLock(ctx)
	s.Require().NoError(err)
	s.False(ok)

	releaseA()

	// Released lock is acquirable again.
	releaseB, ok, err := b.TryLock(ctx)
	s.Require().NoError(err)
	s.True(ok)
	releaseB()
}

func (s *MutexSuite) TestDistinctKeysDoNotContend() {
	ctx := context.Background()
	a := platformredis.NewMutex(s.client, "sweep:leader", time.Minute)
	b := platformredis.NewMutex(s.client, "other:leader", time.Minute)

	releaseA, ok, err := a.TryLock(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	defer releaseA()

	releaseB, ok, err := b.TryLock(ctx)
	s.Require().NoError(err)
	s.True(ok)
	releaseB()
}

func (s *MutexSuite) TestStaleHolderCannotReleaseReacquiredLock() {
	ctx := context.Background()
	short := platformredis.NewMutex(s.client, "sweep:leader", 50*time.Millisecond)

	staleRelease, ok, err := short.TryLock(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)

	// Let the TTL lapse so another instance can take over.
	time.Sleep(100 * time.Millisecond)

	fresh := platformredis.NewMutex(s.client, "sweep:leader", time.Minute)
	releaseFresh, ok, err := fresh.TryLock(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	defer releaseFresh()

	// The stale holder's release must not free the new holder's lock.
	staleRelease()

	_, ok, err = short.TryLock(ctx)
	s.Require().NoError(err)
	s.False(ok, "lock must still be held by the new holder")
}
