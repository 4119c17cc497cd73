package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/transport"
)

func TestCreateOrderHandler(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("alice")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders",
		transport.CreateOrderRequest{UserID: user.ID, Total: 42.5})
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 42.5, resp.Total)
	require.Empty(t, resp.LineIDs)
}

func TestCreateOrderHandler_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders",
		transport.CreateOrderRequest{UserID: 42, Total: 1})
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderLineHandler_QuantityValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("alice")
	product := env.seedProduct("lamp")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders",
		transport.CreateOrderRequest{UserID: user.ID, Total: 10})
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec, c = env.doJSONRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/orders/%d/details", order.ID),
		transport.CreateOrderLineRequest{ProductID: product.ID, Quantity: 0})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	require.NoError(t, env.Order.CreateOrderLine(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/orders/%d/details", order.ID),
		transport.CreateOrderLineRequest{ProductID: product.ID, Quantity: 3})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	require.NoError(t, env.Order.CreateOrderLine(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var line models.OrderLine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &line))
	require.Equal(t, uint(3), line.Quantity)
}

func TestListOrderLinesHandler_EmptyOrder(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("alice")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders",
		transport.CreateOrderRequest{UserID: user.ID, Total: 10})
	require.NoError(t, env.Order.CreateOrder(c))

	var order transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec, c = env.doJSONRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/orders/%d/details", order.ID), nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	require.NoError(t, env.Order.ListOrderLines(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []models.OrderLine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Empty(t, lines)
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders/99", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, env.Order.GetOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
