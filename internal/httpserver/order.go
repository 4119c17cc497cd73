package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/mykafka"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req.UserID, req.Total)
	if err != nil {
		l.Warn("create_order_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "order_events", order.ID, map[string]any{
		"type":    "order_created",
		"userID":  order.UserID,
		"orderID": order.ID,
		"total":   order.Total,
	})

	l.Info("order_created", "orderID", order.ID, "userID", order.UserID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		l.Warn("get_order_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	skip := parseIntDefault(c.QueryParam("skip"), 0)
	limit := parseIntDefault(c.QueryParam("limit"), 10)

	orders, err := h.Svc.ListOrders(ctx, skip, limit)
	if err != nil {
		l.Warn("list_orders_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) CreateOrderLine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_line")

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req transport.CreateOrderLineRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_line_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	line, err := h.Svc.AddOrderLine(ctx, orderID, req.ProductID, req.Quantity)
	if err != nil {
		l.Warn("create_order_line_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "order_events", orderID, map[string]any{
		"type":      "order_line_created",
		"orderID":   orderID,
		"productID": line.ProductID,
		"quantity":  line.Quantity,
	})

	l.Info("order_line_created", "orderID", orderID, "lineID", line.ID)
	return c.JSON(http.StatusCreated, line)
}

func (h *OrderHTTP) ListOrderLines(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_lines")

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	lines, err := h.Svc.ListOrderLines(ctx, orderID)
	if err != nil {
		l.Warn("list_order_lines_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, lines)
}

func (h *OrderHTTP) GetOrderLine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_line")

	lineID, err := parseUintParam(c, "detail_id")
	if err != nil {
		return err
	}

	line, err := h.Svc.GetOrderLine(ctx, lineID)
	if err != nil {
		l.Warn("get_order_line_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, line)
}
