package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
)

func TestCreateOrder_UserNotFound(t *testing.T) {
	svc := &OrderService{Repo: newTestRepo(t)}

	_, err := svc.CreateOrder(context.Background(), 42, 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")

	created, err := svc.CreateOrder(ctx, user.ID, 42.5)
	require.NoError(t, err)
	require.Empty(t, created.LineIDs)

	got, err := svc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.5, got.Total)
	assert.Equal(t, user.ID, got.UserID)
	assert.Empty(t, got.LineIDs)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := &OrderService{Repo: newTestRepo(t)}

	_, err := svc.GetOrder(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddOrderLine_QuantityValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	product := seedProduct(t, r, "lamp", 19.99)

	order, err := svc.CreateOrder(ctx, user.ID, 100)
	require.NoError(t, err)

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddOrderLine(ctx, order.ID, product.ID, quantity)
		require.ErrorIs(t, err, ErrValidation, "quantity %d", quantity)
	}

	line, err := svc.AddOrderLine(ctx, order.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), line.Quantity)
	assert.Equal(t, order.ID, line.OrderID)
	assert.Equal(t, product.ID, line.ProductID)

	persisted, err := svc.GetOrderLine(ctx, line.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), persisted.Quantity)
}

func TestAddOrderLine_MissingOrderOrProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	product := seedProduct(t, r, "lamp", 19.99)

	_, err := svc.AddOrderLine(ctx, 99, product.ID, 1)
	require.ErrorIs(t, err, ErrNotFound)

	order, err := svc.CreateOrder(ctx, user.ID, 10)
	require.NoError(t, err)

	_, err = svc.AddOrderLine(ctx, order.ID, product.ID+100, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderLines(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	product := seedProduct(t, r, "lamp", 19.99)

	_, err := svc.ListOrderLines(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)

	order, err := svc.CreateOrder(ctx, user.ID, 10)
	require.NoError(t, err)

	lines, err := svc.ListOrderLines(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)

	_, err = svc.AddOrderLine(ctx, order.ID, product.ID, 1)
	require.NoError(t, err)

	lines, err = svc.ListOrderLines(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{lines[0].ID}, got.LineIDs)
}

func TestListOrders_Pagination(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	for i := 0; i < 5; i++ {
		_, err := svc.CreateOrder(ctx, user.ID, float64(i))
		require.NoError(t, err)
	}

	_, err := svc.ListOrders(ctx, -1, 10)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.ListOrders(ctx, 0, -1)
	require.ErrorIs(t, err, ErrValidation)

	page, err := svc.ListOrders(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)

	again, err := svc.ListOrders(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, page, again, "pagination must be stable absent writes")

	rest, err := svc.ListOrders(ctx, 4, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
}

func TestListOrders_LimitClampsToMax(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	for i := 0; i < 12; i++ {
		_, err := svc.CreateOrder(ctx, user.ID, float64(i))
		require.NoError(t, err)
	}

	// an oversized limit clamps to the maximum instead of shrinking the page
	page, err := svc.ListOrders(ctx, 0, 101)
	require.NoError(t, err)
	assert.Len(t, page, 12)
}

func TestCreateOrder_CancelledContext(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	user := seedUser(t, r, "alice")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateOrder(cancelled, user.ID, 10)
	require.ErrorIs(t, err, ErrPersistence)

	orders, err := svc.ListOrders(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, orders, "aborted call must leave no order row")
}

func TestOrderLine_FailedTransactionLeavesNoRows(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r, "alice")
	product := seedProduct(t, r, "lamp", 19.99)

	order, err := svc.CreateOrder(ctx, user.ID, 10)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line := models.OrderLine{OrderID: order.ID, ProductID: product.ID, Quantity: 2}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	lines, err := svc.ListOrderLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, lines, "the written line must not survive the rollback")
}
