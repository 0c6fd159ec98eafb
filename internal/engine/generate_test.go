package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	counts := Counts{Users: 40, Products: 25, Orders: 150, Reviews: 100}

	a, err := Generate(testCtx(1234), counts)
	require.NoError(t, err)
	b, err := Generate(testCtx(1234), counts)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	counts := Counts{Users: 10, Products: 5, Orders: 20, Reviews: 10}

	a, err := Generate(testCtx(1), counts)
	require.NoError(t, err)
	b, err := Generate(testCtx(2), counts)
	require.NoError(t, err)

	assert.NotEqual(t, a.Users, b.Users)
}

func TestGenerateEmptyDependents(t *testing.T) {
	ds, err := Generate(testCtx(1), Counts{Users: 3, Products: 2})
	require.NoError(t, err)

	require.Len(t, ds.Users, 3)
	for i, u := range ds.Users {
		assert.Equal(t, i+1, u.ID)
	}
	assert.NotEqual(t, ds.Users[0].Email, ds.Users[1].Email)
	assert.NotEqual(t, ds.Users[1].Email, ds.Users[2].Email)
	assert.NotEqual(t, ds.Users[0].Email, ds.Users[2].Email)

	require.Len(t, ds.Products, 2)
	assert.InDelta(t, 1.0, ds.Products[0].Popularity+ds.Products[1].Popularity, 1e-9)

	assert.Empty(t, ds.Orders)
	assert.Empty(t, ds.Reviews)
}

func TestGenerateZeroProductsGuard(t *testing.T) {
	ds, err := Generate(testCtx(1), Counts{Users: 1, Products: 0, Orders: 1})
	assert.ErrorIs(t, err, ErrInsufficientSource)
	assert.Nil(t, ds)
}

func TestGenerateZeroUsersGuard(t *testing.T) {
	ds, err := Generate(testCtx(1), Counts{Users: 0, Products: 1, Reviews: 1})
	assert.ErrorIs(t, err, ErrInsufficientSource)
	assert.Nil(t, ds)
}

func TestGenerateCrossEntityReferences(t *testing.T) {
	ds, err := Generate(testCtx(77), Counts{Users: 20, Products: 10, Orders: 200, Reviews: 200})
	require.NoError(t, err)

	userIDs := make(map[int]struct{})
	for _, u := range ds.Users {
		userIDs[u.ID] = struct{}{}
	}
	productIDs := make(map[int]struct{})
	for _, p := range ds.Products {
		productIDs[p.ID] = struct{}{}
	}

	for _, o := range ds.Orders {
		assert.Contains(t, userIDs, o.UserID)
		assert.Contains(t, productIDs, o.ProductID)
	}
	for _, r := range ds.Reviews {
		assert.Contains(t, userIDs, r.UserID)
		assert.Contains(t, productIDs, r.ProductID)
	}
}
