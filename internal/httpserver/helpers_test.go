package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/service"
)

type testEnv struct {
	T     *testing.T
	E     *echo.Echo
	DB    *gorm.DB
	Cart  *CartHTTP
	Order *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	return &testEnv{
		T:     t,
		E:     echo.New(),
		DB:    db,
		Cart:  &CartHTTP{Svc: &service.CartService{Repo: r}},
		Order: &OrderHTTP{Svc: &service.OrderService{Repo: r}},
	}
}

func (env *testEnv) seedUser(username string) *models.User {
	env.T.Helper()
	u := &models.User{Username: username, PasswordHash: "x", Email: username + "@example.com"}
	require.NoError(env.T, env.DB.Create(u).Error)
	return u
}

func (env *testEnv) seedProduct(name string) *models.Product {
	env.T.Helper()
	p := &models.Product{Name: name, Price: 1}
	require.NoError(env.T, env.DB.Create(p).Error)
	return p
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}
