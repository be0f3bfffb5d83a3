package failure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pacer/pkg/requestcontext"
	"pacer/pkg/testutil"
)

const resetWindow = 120 * time.Second

type InMemoryFailureStoreSuite struct {
	suite.Suite
	store *InMemoryFailureStore
	base  time.Time
}

func TestInMemoryFailureStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryFailureStoreSuite))
}

func (s *InMemoryFailureStoreSuite) SetupTest() {
	s.store = New()
	s.base = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryFailureStoreSuite) at(offset time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.base.Add(offset))
}

func (s *InMemoryFailureStoreSuite) TestRecord() {
	s.Run("first failure starts at 1", func() {
		record, err := s.store.Record(s.at(0), "acct1", resetWindow)
		s.NoError(err)
		s.Equal(1, record.ConsecutiveFailures)
		s.Equal("acct1", record.AccountID)
	})

	s.Run("failures inside the reset window accumulate", func() {
		for i := 2; i <= 5; i++ {
			record, err := s.store.Record(s.at(time.Duration(i)*time.Second), "acct1", resetWindow)
			s.NoError(err)
			s.Equal(i, record.ConsecutiveFailures)
		}
	})

	s.Run("failure after the reset window restarts at 1", func() {
		record, err := s.store.Record(s.at(5*time.Second+resetWindow), "acct1", resetWindow)
		s.NoError(err)
		s.Equal(1, record.ConsecutiveFailures)
	})
}

func (s *InMemoryFailureStoreSuite) TestRecord_AccountsAreIndependent() {
	_, err := s.store.Record(s.at(0), "acct1", resetWindow)
	s.NoError(err)
	_, err = s.store.Record(s.at(0), "acct1", resetWindow)
	s.NoError(err)

	record, err := s.store.Record(s.at(0), "acct2", resetWindow)
	s.NoError(err)
	s.Equal(1, record.ConsecutiveFailures)
}

func (s *InMemoryFailureStoreSuite) TestGet() {
	s.Run("unknown account returns nil without error", func() {
		record, err := s.store.Get(context.Background(), "unknown")
		s.NoError(err)
		s.Nil(record)
	})

	s.Run("returned record is a copy", func() {
		_, err := s.store.Record(s.at(0), "acct1", resetWindow)
		s.NoError(err)

		record, err := s.store.Get(context.Background(), "acct1")
		s.NoError(err)
		record.ConsecutiveFailures = 99

		again, err := s.store.Get(context.Background(), "acct1")
		s.NoError(err)
		s.Equal(1, again.ConsecutiveFailures, "caller mutation must not leak into the store")
	})
}

func (s *InMemoryFailureStoreSuite) TestClear() {
	_, err := s.store.Record(s.at(0), "acct1", resetWindow)
	s.NoError(err)
	_, err = s.store.Record(s.at(time.Second), "acct1", resetWindow)
	s.NoError(err)

	s.NoError(s.store.Clear(context.Background(), "acct1"))

	record, err := s.store.Record(s.at(2*time.Second), "acct1", resetWindow)
	s.NoError(err)
	s.Equal(1, record.ConsecutiveFailures, "cleared account restarts at 1")
}

func (s *InMemoryFailureStoreSuite) TestDeleteExpired() {
	_, err := s.store.Record(s.at(0), "stale", resetWindow)
	s.NoError(err)
	_, err = s.store.Record(s.at(resetWindow-time.Second), "fresh", resetWindow)
	s.NoError(err)

	deleted, err := s.store.DeleteExpired(s.at(resetWindow), resetWindow)
	s.NoError(err)
	s.Equal(1, deleted)

	n, err := s.store.Len(context.Background())
	s.NoError(err)
	s.Equal(1, n)
}

func (s *InMemoryFailureStoreSuite) TestRecord_ConcurrentFailuresAllCount() {
	ctx := s.at(0)

	// Unlike rate-limit signals, failures have no dedup: 20 concurrent
	// failures must produce a count of exactly 20.
	successes := testutil.RunConcurrentCtx(ctx, 20, func(ctx context.Context, _ int) error {
		_, err := s.store.Record(ctx, "acct1", resetWindow)
		return err
	})
	s.Equal(int32(20), successes)

	record, err := s.store.Get(context.Background(), "acct1")
	s.NoError(err)
	s.Equal(20, record.ConsecutiveFailures)
}
