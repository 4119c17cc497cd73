package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kmalyshev/online_store/internal/cache"
	"github.com/kmalyshev/online_store/internal/config"
	"github.com/kmalyshev/online_store/internal/es"
	"github.com/kmalyshev/online_store/internal/httpserver"
	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/mykafka"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/service"
	"github.com/kmalyshev/online_store/pkg/db"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	e.Use(middleware.Logger())

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gormDB, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := repo.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var producer *mykafka.Producer
	if cfg.KafkaAddress != "" {
		producer, err = mykafka.NewProducer(
			[]string{cfg.KafkaAddress},
			[]string{"user_events", "cart_events", "order_events", "product_events"},
		)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
	}

	r := &repo.GormRepo{DB: gormDB}

	catalogSvc := &service.CatalogService{
		Repo:  r,
		Cache: cache.NewProductCache(cfg.RedisAddr, cfg.RedisPassword),
	}
	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		catalogSvc.ES = client
	}

	httpserver.Register(e, &httpserver.Deps{
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r}, Producer: producer},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer},
		ReviewHandler:  &httpserver.ReviewHTTP{Svc: &service.ReviewService{Repo: r}},
		AuthHandler:    &httpserver.AuthHTTP{Svc: &service.UserService{Repo: r, JWTSecret: cfg.JWTSecret}, Producer: producer},
		JWTSecret:      cfg.JWTSecret,
	})

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
