package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/transport"
	"github.com/kmalyshev/online_store/internal/util"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder trusts the caller-supplied total; no recomputation against
// line items happens here.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, total float64) (*transport.OrderResponse, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id must be not zero: %w", ErrValidation)
	}

	order, err := s.Repo.CreateOrder(ctx, userID, total)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return orderSnapshot(order, nil), nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*transport.OrderResponse, error) {
	order, lineIDs, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return orderSnapshot(order, lineIDs), nil
}

func (s *OrderService) ListOrders(ctx context.Context, skip, limit int) ([]transport.OrderResponse, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("skip and limit must be non-negative: %w", ErrValidation)
	}
	if limit == 0 {
		limit = util.DefaultPageSize
	} else if limit > util.MaxPageSize {
		limit = util.MaxPageSize
	}

	orders, err := s.Repo.ListOrders(ctx, skip, limit)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	resp := make([]transport.OrderResponse, 0, len(orders))
	for i := range orders {
		lines, err := s.Repo.ListOrderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		ids := make([]uint, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ID)
		}
		resp = append(resp, *orderSnapshot(&orders[i], ids))
	}
	return resp, nil
}

func (s *OrderService) AddOrderLine(ctx context.Context, orderID, productID uint, quantity int) (*models.OrderLine, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product_id must be not zero: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be >= 1: %w", ErrValidation)
	}

	line, err := s.Repo.AddOrderLine(ctx, orderID, productID, uint(quantity))
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return line, nil
}

func (s *OrderService) GetOrderLine(ctx context.Context, lineID uint) (*models.OrderLine, error) {
	line, err := s.Repo.GetOrderLine(ctx, lineID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return line, nil
}

func (s *OrderService) ListOrderLines(ctx context.Context, orderID uint) ([]models.OrderLine, error) {
	lines, err := s.Repo.ListOrderLines(ctx, orderID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if lines == nil {
		lines = []models.OrderLine{}
	}
	return lines, nil
}

func orderSnapshot(order *models.Order, lineIDs []uint) *transport.OrderResponse {
	if lineIDs == nil {
		lineIDs = []uint{}
	}
	return &transport.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		LineIDs:   lineIDs,
	}
}
