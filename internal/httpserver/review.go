package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.CreateReview(ctx, req)
	if err != nil {
		l.Warn("create_review_error", "status", statusFromErr(err), "error", err)
		return errJSON(c, err)
	}

	l.Info("review_created", "reviewID", review.ID)
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) GetReview(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	review, err := h.Svc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) ListProductReviews(c echo.Context) error {
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		return err
	}

	reviews, err := h.Svc.ListReviewsByProduct(c.Request().Context(), productID)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteReview(c.Request().Context(), id); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": id})
}
