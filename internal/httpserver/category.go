package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/models"
)

func (h *ProductHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var cat models.Category
	if err := c.Bind(&cat); err != nil {
		l.Warn("create_category_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	cat.ID = 0

	if err := h.Svc.CreateCategory(ctx, &cat); err != nil {
		l.Warn("create_category_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	return c.JSON(http.StatusCreated, cat)
}

func (h *ProductHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	cat, err := h.Svc.GetCategory(ctx, id)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ProductHTTP) ListCategories(c echo.Context) error {
	cats, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *ProductHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	cat, err := h.Svc.UpdateCategory(ctx, id, req.Name)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ProductHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": id})
}
