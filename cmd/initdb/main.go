package main

import (
	"fmt"
	"log"

	"github.com/Weryck-Lemos/ElectroStock/internal/config"
	"github.com/Weryck-Lemos/ElectroStock/internal/database"
	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"
	"github.com/Weryck-Lemos/ElectroStock/internal/services"
)

// initdb drops and recreates the schema, then seeds the reserved admin
// account. Destructive; meant for development setups only.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Item{},
		&models.Category{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create the reserved admin account
	fmt.Println("Creating admin account...")
	store := repository.NewStore(db)
	userService := services.NewUserService(store, cfg.AdminEmail)

	if err := userService.EnsureAdmin("Admin", cfg.AdminPassword); err != nil {
		log.Fatal("Failed to create admin account:", err)
	}

	fmt.Println("Admin account ready")
	fmt.Println("Email:", cfg.AdminEmail)
	fmt.Println("Database initialization completed successfully!")
}
