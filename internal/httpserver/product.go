package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/mykafka"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/internal/util"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var p models.Product
	if err := c.Bind(&p); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	p.ID = 0

	if err := h.Svc.CreateProduct(ctx, &p); err != nil {
		l.Warn("create_product_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "product_events", p.ID, map[string]any{
		"type":      "product_created",
		"productID": p.ID,
		"name":      p.Name,
	})

	l.Info("product_created", "productID", p.ID)
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		l.Warn("get_product_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items, total, err := h.Svc.ListProducts(ctx, offset, limit)
	if err != nil {
		l.Warn("list_products_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name        *string  `json:"name"`
		CategoryID  *uint    `json:"category_id"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	p, err := h.Svc.UpdateProduct(ctx, id, fields)
	if err != nil {
		l.Warn("patch_product_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "product_events", p.ID, map[string]any{
		"type":      "product_updated",
		"productID": p.ID,
	})

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Warn("delete_product_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	publish(c, h.Producer, "product_events", id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.JSON(http.StatusOK, map[string]any{"deleted": id})
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, "q required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := h.Svc.SearchProducts(ctx, query, from, limit)
	if err != nil {
		l.Warn("search_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total": total,
		"data":  items,
	})
}
