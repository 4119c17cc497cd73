package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// every connection to :memory: is a separate database, so keep one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	return &repo.GormRepo{DB: initTestDB(t)}
}

func seedUser(t *testing.T, r *repo.GormRepo, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		IsActive:     true,
	}
	if err := r.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price}
	if err := r.DB.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}
