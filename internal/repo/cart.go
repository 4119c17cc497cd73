package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kmalyshev/online_store/internal/models"
)

// CreateCart inserts an empty cart for the user. A concurrent duplicate is
// rejected by the unique index on user_id, not by a pre-check, so exactly one
// of two racing callers wins; the loser sees gorm.ErrDuplicatedKey.
func (r *GormRepo) CreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			return fmt.Errorf("user %d: %w", userID, err)
		}
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return fmt.Errorf("cart for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) GetCart(ctx context.Context, userID uint) (*models.Cart, []uint, error) {
	var cart models.Cart
	var productIDs []uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return fmt.Errorf("cart for user %d: %w", userID, err)
		}
		return cartProductIDs(tx, cart.ID, &productIDs)
	})
	if err != nil {
		return nil, nil, err
	}
	return &cart, productIDs, nil
}

// AddItem makes the product a member of the user's cart. Re-adding an existing
// member is a no-op: the insert goes through ON CONFLICT DO NOTHING against
// the composite primary key.
func (r *GormRepo) AddItem(ctx context.Context, userID, productID uint) (*models.Cart, []uint, error) {
	var cart models.Cart
	var productIDs []uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return fmt.Errorf("cart for user %d: %w", userID, err)
		}
		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			return fmt.Errorf("product %d: %w", productID, err)
		}
		member := models.CartProduct{CartID: cart.ID, ProductID: productID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
			return fmt.Errorf("cart %d product %d: %w", cart.ID, productID, err)
		}
		return cartProductIDs(tx, cart.ID, &productIDs)
	})
	if err != nil {
		return nil, nil, err
	}
	return &cart, productIDs, nil
}

// RemoveItem deletes the membership row. Removing a product that is not in
// the cart is an error, not a no-op.
func (r *GormRepo) RemoveItem(ctx context.Context, userID, productID uint) (*models.Cart, []uint, error) {
	var cart models.Cart
	var productIDs []uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return fmt.Errorf("cart for user %d: %w", userID, err)
		}
		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			return fmt.Errorf("product %d: %w", productID, err)
		}
		res := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartProduct{})
		if res.Error != nil {
			return fmt.Errorf("cart %d product %d: %w", cart.ID, productID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %d in cart %d: %w", productID, cart.ID, gorm.ErrRecordNotFound)
		}
		return cartProductIDs(tx, cart.ID, &productIDs)
	})
	if err != nil {
		return nil, nil, err
	}
	return &cart, productIDs, nil
}

func cartProductIDs(tx *gorm.DB, cartID uint, dst *[]uint) error {
	err := tx.Model(&models.CartProduct{}).
		Where("cart_id = ?", cartID).
		Order("product_id ASC").
		Pluck("product_id", dst).Error
	if err != nil {
		return fmt.Errorf("items of cart %d: %w", cartID, err)
	}
	return nil
}
