package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, userID uint, total float64) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			return fmt.Errorf("user %d: %w", userID, err)
		}
		order = models.Order{UserID: userID, Total: total}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("order for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uint) (*models.Order, []uint, error) {
	var order models.Order
	var lineIDs []uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return fmt.Errorf("order %d: %w", orderID, err)
		}
		return orderLineIDs(tx, orderID, &lineIDs)
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, lineIDs, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, skip, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Order("id ASC").Offset(skip).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// AddOrderLine checks the referenced order and product and inserts the line
// in the same transaction, so the linkage never persists without its parent.
func (r *GormRepo) AddOrderLine(ctx context.Context, orderID, productID, quantity uint) (*models.OrderLine, error) {
	var line models.OrderLine
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, orderID).Error; err != nil {
			return fmt.Errorf("order %d: %w", orderID, err)
		}
		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			return fmt.Errorf("product %d: %w", productID, err)
		}
		line = models.OrderLine{OrderID: orderID, ProductID: productID, Quantity: quantity}
		if err := tx.Create(&line).Error; err != nil {
			return fmt.Errorf("line for order %d: %w", orderID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *GormRepo) GetOrderLine(ctx context.Context, lineID uint) (*models.OrderLine, error) {
	var line models.OrderLine
	if err := r.DB.WithContext(ctx).First(&line, lineID).Error; err != nil {
		return nil, fmt.Errorf("order line %d: %w", lineID, err)
	}
	return &line, nil
}

// ListOrderLines fails if the order itself is absent; an order with no lines
// yields an empty slice.
func (r *GormRepo) ListOrderLines(ctx context.Context, orderID uint) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, orderID).Error; err != nil {
			return fmt.Errorf("order %d: %w", orderID, err)
		}
		if err := tx.Where("order_id = ?", orderID).Order("id ASC").Find(&lines).Error; err != nil {
			return fmt.Errorf("lines of order %d: %w", orderID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func orderLineIDs(tx *gorm.DB, orderID uint, dst *[]uint) error {
	err := tx.Model(&models.OrderLine{}).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Pluck("id", dst).Error
	if err != nil {
		return fmt.Errorf("lines of order %d: %w", orderID, err)
	}
	return nil
}
