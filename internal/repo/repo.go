package repo

import (
	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Cart{},
		&models.CartProduct{},
		&models.Order{},
		&models.OrderLine{},
	)
}
