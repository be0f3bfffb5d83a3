package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow_FallsBackToWallClock(t *testing.T) {
	before := time.Now()
	got := Now(context.Background())
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestWithTime_PinsTime(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := WithTime(context.Background(), fixed)

	assert.Equal(t, fixed, Now(ctx))

	// Repeated reads return the same instant.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, fixed, Now(ctx))
}

func TestWithTime_InnerValueWins(t *testing.T) {
	outer := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	inner := outer.Add(time.Hour)

	ctx := WithTime(WithTime(context.Background(), outer), inner)
	assert.Equal(t, inner, Now(ctx))
}
