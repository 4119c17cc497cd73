package service

import (
	"context"
	"fmt"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/transport"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

func (s *ReviewService) CreateReview(ctx context.Context, req transport.CreateReviewRequest) (*models.Review, error) {
	if len(req.Text) < 10 || len(req.Text) > 500 {
		return nil, fmt.Errorf("text must be 10..500 characters: %w", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be 1..5: %w", ErrValidation)
	}

	review := &models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Text:      req.Text,
		Rating:    req.Rating,
	}
	if err := s.Repo.CreateReview(ctx, review); err != nil {
		return nil, mapRepoErr(err)
	}
	return review, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.Repo.GetReview(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return review, nil
}

func (s *ReviewService) ListReviewsByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	reviews, err := s.Repo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteReview(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
