package warmup

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"pacer/pkg/testutil"
)

const maxAttempts = 2

type InMemoryWarmupStoreSuite struct {
	suite.Suite
	store *InMemoryWarmupStore
	ctx   context.Context
}

func TestInMemoryWarmupStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryWarmupStoreSuite))
}

func (s *InMemoryWarmupStoreSuite) SetupTest() {
	s.store = New(1000)
	s.ctx = context.Background()
}

func (s *InMemoryWarmupStoreSuite) begin(sessionID string) bool {
	ok, err := s.store.BeginAttempt(s.ctx, sessionID, maxAttempts)
	s.Require().NoError(err)
	return ok
}

func (s *InMemoryWarmupStoreSuite) TestBeginAttempt() {
	s.Run("allows up to the attempt ceiling", func() {
		s.True(s.begin("sess1"))
		s.True(s.begin("sess1"))
		s.False(s.begin("sess1"), "third attempt exceeds the ceiling")
		s.False(s.begin("sess1"))
	})

	s.Run("sessions are independent", func() {
		s.True(s.begin("sess2"))
	})
}

func (s *InMemoryWarmupStoreSuite) TestSucceededIsTerminal() {
	s.True(s.begin("sess1"))
	s.NoError(s.store.MarkSucceeded(s.ctx, "sess1"))

	done, err := s.store.HasSucceeded(s.ctx, "sess1")
	s.NoError(err)
	s.True(done)

	s.False(s.begin("sess1"), "succeeded session must never re-attempt")

	done, err = s.store.HasSucceeded(s.ctx, "sess1")
	s.NoError(err)
	s.True(done, "refused attempt must not clear the success flag")
}

func (s *InMemoryWarmupStoreSuite) TestHasSucceeded_UnknownSession() {
	done, err := s.store.HasSucceeded(s.ctx, "never-seen")
	s.NoError(err)
	s.False(done)
}

func (s *InMemoryWarmupStoreSuite) TestMarkSucceeded_WithoutAttempt() {
	// Success reported by an external path still registers.
	s.NoError(s.store.MarkSucceeded(s.ctx, "sess1"))
	done, err := s.store.HasSucceeded(s.ctx, "sess1")
	s.NoError(err)
	s.True(done)
}

func (s *InMemoryWarmupStoreSuite) TestClearAttempt() {
	s.True(s.begin("sess1"))
	s.True(s.begin("sess1"))
	s.False(s.begin("sess1"))

	s.NoError(s.store.ClearAttempt(s.ctx, "sess1"))

	s.True(s.begin("sess1"), "cleared session is back to unknown")

	s.Run("also clears success", func() {
		s.NoError(s.store.MarkSucceeded(s.ctx, "sess1"))
		s.NoError(s.store.ClearAttempt(s.ctx, "sess1"))

		done, err := s.store.HasSucceeded(s.ctx, "sess1")
		s.NoError(err)
		s.False(done)
		s.True(s.begin("sess1"))
	})
}

func (s *InMemoryWarmupStoreSuite) TestAttemptEviction() {
	store := New(3)

	for i := 0; i < 3; i++ {
		ok, err := store.BeginAttempt(s.ctx, fmt.Sprintf("sess%d", i), maxAttempts)
		s.NoError(err)
		s.True(ok)
	}

	// Inserting a 4th session evicts exactly the oldest (sess0).
	ok, err := store.BeginAttempt(s.ctx, "sess3", maxAttempts)
	s.NoError(err)
	s.True(ok)

	attempted, _, err := store.Len(s.ctx)
	s.NoError(err)
	s.Equal(3, attempted, "size stays at the bound")

	count, err := store.AttemptCount(s.ctx, "sess0")
	s.NoError(err)
	s.Equal(0, count, "oldest session was evicted")

	count, err = store.AttemptCount(s.ctx, "sess1")
	s.NoError(err)
	s.Equal(1, count, "younger sessions survive")
}

func (s *InMemoryWarmupStoreSuite) TestAttemptEvictionLeavesSuccessAlone() {
	store := New(2)

	ok, err := store.BeginAttempt(s.ctx, "winner", maxAttempts)
	s.NoError(err)
	s.True(ok)
	s.NoError(store.MarkSucceeded(s.ctx, "winner"))

	// Fill the attempted structure until "winner" is evicted from it.
	for i := 0; i < 4; i++ {
		_, err := store.BeginAttempt(s.ctx, fmt.Sprintf("sess%d", i), maxAttempts)
		s.NoError(err)
	}

	done, err := store.HasSucceeded(s.ctx, "winner")
	s.NoError(err)
	s.True(done, "attempted-set eviction pressure must not erase unrelated success records")
}

func (s *InMemoryWarmupStoreSuite) TestSucceededEviction() {
	store := New(2)

	s.NoError(store.MarkSucceeded(s.ctx, "a"))
	s.NoError(store.MarkSucceeded(s.ctx, "b"))
	s.NoError(store.MarkSucceeded(s.ctx, "c"))

	done, err := store.HasSucceeded(s.ctx, "a")
	s.NoError(err)
	s.False(done, "oldest success evicted at capacity")

	for _, id := range []string{"b", "c"} {
		done, err := store.HasSucceeded(s.ctx, id)
		s.NoError(err)
		s.True(done)
	}
}

func (s *InMemoryWarmupStoreSuite) TestBeginAttempt_Concurrent() {
	// maxAttempts concurrent winners at most, regardless of interleaving.
	var granted atomic.Int32
	testutil.RunConcurrent(30, func(_ int) error {
		ok, err := s.store.BeginAttempt(s.ctx, "shared", maxAttempts)
		if err != nil {
			return err
		}
		if ok {
			granted.Add(1)
		}
		return nil
	})

	s.Equal(int32(maxAttempts), granted.Load())
}
