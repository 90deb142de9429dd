package main

import (
	"log"
	"time"

	"github.com/Weryck-Lemos/ElectroStock/internal/cache"
	"github.com/Weryck-Lemos/ElectroStock/internal/config"
	"github.com/Weryck-Lemos/ElectroStock/internal/database"
	"github.com/Weryck-Lemos/ElectroStock/internal/handlers"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"
	"github.com/Weryck-Lemos/ElectroStock/internal/services"
	"github.com/Weryck-Lemos/ElectroStock/pkg/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis catalog cache
	cacheClient, err := cache.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer cacheClient.Close()

	// Initialize store and services
	store := repository.NewStore(db)
	userService := services.NewUserService(store, cfg.AdminEmail)
	categoryService := services.NewCategoryService(store, cacheClient)
	itemService := services.NewItemService(store, cacheClient)
	orderService := services.NewOrderService(store, cacheClient)
	orderItemService := services.NewOrderItemService(store, cacheClient)

	// Seed the reserved admin account and a starter catalog
	if err := userService.EnsureAdmin("Admin", cfg.AdminPassword); err != nil {
		log.Fatal("Failed to ensure admin account:", err)
	}
	seedCatalog(categoryService, itemService)

	// Initialize token manager and handlers
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService)
	orderHandler := handlers.NewOrderHandler(orderService)
	orderItemHandler := handlers.NewOrderItemHandler(orderItemService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ElectroStock API is running"})
	})

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	authed := router.Group("/", handlers.AuthRequired(tokens, userService))
	admin := authed.Group("/", handlers.AdminRequired())

	authed.GET("/users/me", userHandler.Me)
	authed.PUT("/users/me", userHandler.UpdateMe)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	router.GET("/categories", categoryHandler.List)
	router.GET("/categories/:id", categoryHandler.Get)
	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	router.GET("/items", itemHandler.List)
	router.GET("/items/:id", itemHandler.Get)
	admin.POST("/items", itemHandler.Create)
	admin.PUT("/items/:id", itemHandler.Update)
	admin.DELETE("/items/:id", itemHandler.Delete)

	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders/me", orderHandler.MyOrders)
	admin.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.DELETE("/orders/:id", orderHandler.Delete)
	admin.POST("/orders/:id/approve", orderHandler.Approve)
	admin.POST("/orders/:id/reject", orderHandler.Reject)
	admin.POST("/orders/:id/finish", orderHandler.Finish)

	admin.GET("/order-items", orderItemHandler.List)
	admin.GET("/order-items/:id", orderItemHandler.Get)
	admin.PUT("/order-items/:id", orderItemHandler.Update)
	admin.DELETE("/order-items/:id", orderItemHandler.Delete)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedCatalog loads a small demo catalog on an empty database.
func seedCatalog(categoryService services.CategoryService, itemService services.ItemService) {
	categories, err := categoryService.GetAll()
	if err != nil {
		log.Printf("Warning: catalog seed check failed: %v", err)
		return
	}
	if len(categories) > 0 {
		return
	}

	components, err := categoryService.Create("Componentes")
	if err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
		return
	}
	boards, err := categoryService.Create("Placas")
	if err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
		return
	}

	seedItems := []struct {
		name        string
		description string
		stock       int
		categoryID  uint
	}{
		{"Resistor 220R", "Kit de resistores 220 ohms", 500, components.ID},
		{"LED 5mm vermelho", "LED vermelho padrao 5mm", 300, components.ID},
		{"Protoboard 830 pontos", "Protoboard grande", 50, components.ID},
		{"Jumpers macho-macho", "Kit com 40 jumpers", 100, components.ID},
		{"Arduino UNO", "Placa Arduino UNO compativel", 20, boards.ID},
		{"ESP32 DevKit", "Placa ESP32 para IoT", 15, boards.ID},
	}
	for _, seed := range seedItems {
		if _, err := itemService.Create(seed.name, seed.description, seed.stock, seed.categoryID); err != nil {
			log.Printf("Warning: failed to seed item %q: %v", seed.name, err)
		}
	}
	log.Println("Starter catalog seeded")
}
