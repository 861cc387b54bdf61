package main

import (
	"context"
	"log"

	"shop-storefront/internal/config"
	"shop-storefront/internal/database"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/routes"
	"shop-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	// El catálogo se vacía y se vuelve a sembrar completo en cada arranque
	products := repository.NewProductRepository(db.Collection("products"))
	seeded, err := products.Seed(context.Background(), cfg.SeedFile)
	if err != nil {
		log.Println("⚠️ Error seeding products:", err)
	} else if seeded > 0 {
		log.Printf("🌱 Seeded %d products from %s", seeded, cfg.SeedFile)
	}

	sessions := session.NewManager(cfg.SessionSecret)

	router := gin.Default()
	routes.RegisterRoutes(router, db, sessions)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
