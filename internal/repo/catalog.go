package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return &p, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var items []models.Product
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return items, total, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	if err := r.DB.WithContext(ctx).Model(&p).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return &p, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	return &c, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	if err := r.DB.WithContext(ctx).Model(&c).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return &c, nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
