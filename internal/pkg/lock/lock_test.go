package lock_test

import (
	"context"
	"testing"

	"phoenix-booking-service/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	got := lock.Keys(
		lock.CapacityKey("h1", "suite"),
		lock.CapacityKey("h1", "double"),
		lock.CapacityKey("h1", "suite"),
		"",
	)

	assert.Equal(t, []string{"capacity:h1:double", "capacity:h1:suite"}, got)
}

func TestNoopLocker(t *testing.T) {
	release, err := lock.NewNoopLocker().Acquire(context.Background(), "capacity:h1:suite")

	assert.NoError(t, err)
	assert.NotPanics(t, func() { release(context.Background()) })
}
