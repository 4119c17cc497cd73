package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalyshev/online_store/internal/models"
)

func TestProductCache(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := &ProductCache{Client: client}
	ctx := context.Background()

	p := &models.Product{ID: 1, Name: "lamp", Price: 19.99}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	mock.ExpectGet("product:1").RedisNil()
	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)

	mock.ExpectSet("product:1", data, productTTL).SetVal("OK")
	require.NoError(t, c.Set(ctx, p))

	mock.ExpectGet("product:1").SetVal(string(data))
	got, ok := c.Get(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, p, got)

	mock.ExpectDel("product:1").SetVal(1)
	require.NoError(t, c.Invalidate(ctx, 1))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCache_NilIsMiss(t *testing.T) {
	var c *ProductCache
	ctx := context.Background()

	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
	require.NoError(t, c.Set(ctx, &models.Product{ID: 1}))
	require.NoError(t, c.Invalidate(ctx, 1))
}

func TestProductCache_CorruptEntryIsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := &ProductCache{Client: client}

	mock.ExpectGet("product:7").SetVal("{not json")
	_, ok := c.Get(context.Background(), 7)
	assert.False(t, ok)
}
