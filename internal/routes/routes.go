package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"shop-storefront/internal/handlers"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/session"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, sessions *session.Manager) {
	products := repository.NewProductRepository(db.Collection("products"))
	carts := repository.NewCartRepository(db.Collection("carts"))
	orders := repository.NewOrderRepository(db.Collection("orders"))
	users := repository.NewUserRepository(db.Collection("users"))

	authHandler := handlers.NewAuthHandler(users, sessions)
	productHandler := handlers.NewProductHandler(products)
	cartHandler := handlers.NewCartHandler(carts, products, sessions)
	orderHandler := handlers.NewOrderHandler(orders, carts, sessions)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/check", authHandler.Check)
	}

	api := router.Group("/api", handlers.RequireAuth(sessions))
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/recommend/:id", productHandler.Recommend)
		api.GET("/season", productHandler.GetSeason)
		api.GET("/sale", productHandler.ListSale)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/add", cartHandler.AddToCart)
		api.POST("/cart/remove", cartHandler.RemoveFromCart)
		api.POST("/cart/clear", cartHandler.ClearCart)

		api.POST("/checkout", orderHandler.Checkout)
		api.GET("/my-orders", orderHandler.MyOrders)
	}
}
