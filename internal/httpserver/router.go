package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	ProductHandler *ProductHTTP
	ReviewHandler  *ReviewHTTP
	AuthHandler    *AuthHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/users", d.AuthHandler.Register)
	v1.POST("/users/token", d.AuthHandler.Login)
	v1.GET("/users", d.AuthHandler.ListUsers)
	v1.GET("/users/:id", d.AuthHandler.GetUser)
	v1.PUT("/users/:id", d.AuthHandler.UpdateUser)
	v1.DELETE("/users/:id", d.AuthHandler.DeleteUser)

	me := v1.Group("/users", RequireAuth(d.JWTSecret))
	me.GET("/me", d.AuthHandler.Me)
	me.POST("/change-password", d.AuthHandler.ChangePassword)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	admin := v1.Group("/products", RequireAuth(d.JWTSecret))
	admin.POST("", d.ProductHandler.CreateProduct)
	admin.PATCH("/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/:id", d.ProductHandler.DeleteProduct)

	v1.GET("/search", d.ProductHandler.Search)

	categories := v1.Group("/categories")
	categories.POST("", d.ProductHandler.CreateCategory)
	categories.GET("", d.ProductHandler.ListCategories)
	categories.GET("/:id", d.ProductHandler.GetCategory)
	categories.PUT("/:id", d.ProductHandler.UpdateCategory)
	categories.DELETE("/:id", d.ProductHandler.DeleteCategory)

	reviews := v1.Group("/reviews")
	reviews.POST("", d.ReviewHandler.CreateReview)
	reviews.GET("/:id", d.ReviewHandler.GetReview)
	reviews.DELETE("/:id", d.ReviewHandler.DeleteReview)
	v1.GET("/products/:product_id/reviews", d.ReviewHandler.ListProductReviews)

	carts := v1.Group("/carts")
	carts.POST("", d.CartHandler.CreateCart)
	carts.GET("/:user_id", d.CartHandler.GetCart)
	carts.POST("/:user_id/items/:product_id", d.CartHandler.AddItem)
	carts.DELETE("/:user_id/items/:product_id", d.CartHandler.RemoveItem)

	orders := v1.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/details/:detail_id", d.OrderHandler.GetOrderLine)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/details", d.OrderHandler.CreateOrderLine)
	orders.GET("/:id/details", d.OrderHandler.ListOrderLines)
}
