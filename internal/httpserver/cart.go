package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/mykafka"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) CreateCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.create")

	var req transport.CreateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	cart, err := h.Svc.CreateCart(ctx, req.UserID)
	if err != nil {
		l.Warn("create_cart_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "cart_events", cart.UserID, map[string]any{
		"type":   "cart_created",
		"userID": cart.UserID,
		"cartID": cart.ID,
	})

	l.Info("cart_created", "userID", cart.UserID)
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	cart, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Warn("get_cart_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		return err
	}

	cart, err := h.Svc.AddItem(ctx, userID, productID)
	if err != nil {
		l.Warn("add_item_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "cart_events", userID, map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": productID,
	})

	l.Info("cart_item_added", "userID", userID, "productID", productID)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		return err
	}

	cart, err := h.Svc.RemoveItem(ctx, userID, productID)
	if err != nil {
		l.Warn("remove_item_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "cart_events", userID, map[string]any{
		"type":      "cart_item_removed",
		"userID":    userID,
		"productID": productID,
	})

	l.Info("cart_item_removed", "userID", userID, "productID", productID)
	return c.JSON(http.StatusOK, cart)
}
