package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalyshev/online_store/internal/models"
)

func TestCatalog_ProductCRUD(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	p := &models.Product{Name: "lamp", Price: 19.99, Description: "desk lamp"}
	require.NoError(t, svc.CreateProduct(ctx, p))
	require.NotZero(t, p.ID)

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "lamp", got.Name)

	updated, err := svc.UpdateProduct(ctx, p.ID, map[string]any{"price": 24.99})
	require.NoError(t, err)
	assert.Equal(t, 24.99, updated.Price)

	items, total, err := svc.ListProducts(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))
	_, err = svc.GetProduct(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteProduct(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_ProductValidation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	err := svc.CreateProduct(ctx, &models.Product{Price: 1})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.CreateProduct(ctx, &models.Product{Name: "lamp", Price: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCatalog_CategoryCRUD(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	require.ErrorIs(t, svc.CreateCategory(ctx, &models.Category{Name: "ab"}), ErrValidation)

	cat := &models.Category{Name: "lighting"}
	require.NoError(t, svc.CreateCategory(ctx, cat))

	dup := &models.Category{Name: "lighting"}
	require.ErrorIs(t, svc.CreateCategory(ctx, dup), ErrConflict)

	got, err := svc.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "lighting", got.Name)

	renamed, err := svc.UpdateCategory(ctx, cat.ID, "lamps")
	require.NoError(t, err)
	assert.Equal(t, "lamps", renamed.Name)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))
	require.ErrorIs(t, svc.DeleteCategory(ctx, cat.ID), ErrNotFound)
}
