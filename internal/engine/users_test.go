package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testCtx(seed int64) *randctx.Context {
	return randctx.New(seed, randctx.WithNow(testNow))
}

func TestGenerateUsersCountAndIDs(t *testing.T) {
	users, err := GenerateUsers(testCtx(1), 50)
	require.NoError(t, err)
	require.Len(t, users, 50)

	for i, u := range users {
		assert.Equal(t, i+1, u.ID)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Phone)
		assert.NotEmpty(t, u.Country)
		assert.False(t, u.CreatedAt.After(testNow))
	}
}

func TestGenerateUsersUniqueEmails(t *testing.T) {
	users, err := GenerateUsers(testCtx(2), 3000)
	require.NoError(t, err)

	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		_, dup := seen[u.Email]
		require.False(t, dup, "duplicate email %q", u.Email)
		seen[u.Email] = struct{}{}
	}
}

func TestGenerateUsersActiveRate(t *testing.T) {
	users, err := GenerateUsers(testCtx(3), 10000)
	require.NoError(t, err)

	active := 0
	for _, u := range users {
		if u.IsActive {
			active++
		}
	}
	assert.InDelta(t, 0.97, float64(active)/float64(len(users)), 0.01)
}

func TestGenerateUsersZero(t *testing.T) {
	users, err := GenerateUsers(testCtx(4), 0)
	require.NoError(t, err)
	assert.Empty(t, users)
}
