package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
)

// CreateReview validates the referenced user and product inside the same
// transaction as the insert, the same contract order lines follow.
func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, review.UserID).Error; err != nil {
			return fmt.Errorf("user %d: %w", review.UserID, err)
		}
		if err := tx.First(&models.Product{}, review.ProductID).Error; err != nil {
			return fmt.Errorf("product %d: %w", review.ProductID, err)
		}
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("review for product %d: %w", review.ProductID, err)
		}
		return nil
	})
}

func (r *GormRepo) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var rev models.Review
	if err := r.DB.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, fmt.Errorf("review %d: %w", id, err)
	}
	return &rev, nil
}

func (r *GormRepo) ListReviewsByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("reviews of product %d: %w", productID, err)
	}
	return reviews, nil
}

func (r *GormRepo) DeleteReview(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
