package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) CreateCart(ctx context.Context, userID uint) (*transport.CartResponse, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id must be not zero: %w", ErrValidation)
	}

	cart, err := s.Repo.CreateCart(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return cartSnapshot(cart, nil), nil
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*transport.CartResponse, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id must be not zero: %w", ErrValidation)
	}

	cart, items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return cartSnapshot(cart, items), nil
}

func (s *CartService) AddItem(ctx context.Context, userID, productID uint) (*transport.CartResponse, error) {
	if userID == 0 || productID == 0 {
		return nil, fmt.Errorf("user_id and product_id must be not zero: %w", ErrValidation)
	}

	cart, items, err := s.Repo.AddItem(ctx, userID, productID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return cartSnapshot(cart, items), nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) (*transport.CartResponse, error) {
	if userID == 0 || productID == 0 {
		return nil, fmt.Errorf("user_id and product_id must be not zero: %w", ErrValidation)
	}

	cart, items, err := s.Repo.RemoveItem(ctx, userID, productID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return cartSnapshot(cart, items), nil
}

func cartSnapshot(cart *models.Cart, items []uint) *transport.CartResponse {
	if items == nil {
		items = []uint{}
	}
	return &transport.CartResponse{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  items,
	}
}
