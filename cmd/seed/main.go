package main

import (
	"github.com/VPodolski/MakiMora/internal/config"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedLookups(); err != nil {
		stdLog.Fatalf("Failed to seed lookup tables: %v", err)
	}

	if err := models.InitDefaultUser(cfg.Seed.DefaultUserEmail, cfg.Seed.DefaultUserPassword); err != nil {
		stdLog.Printf("Failed to initialize default account: %v", err)
	}

	// Demo location
	location := models.Location{
		Name:     "MakiMora Центральная",
		Address:  "ул. Тверская, 12, Москва",
		Phone:    "+7 495 123-45-67",
		IsActive: true,
	}
	var existingLocation models.Location
	if err := models.DB.Where("name = ?", location.Name).First(&existingLocation).Error; err != nil {
		if err := models.DB.Create(&location).Error; err != nil {
			stdLog.Fatalf("Failed to create location %s: %v", location.Name, err)
		}
		stdLog.Printf("Created location: %s", location.Name)
	} else {
		location = existingLocation
		stdLog.Printf("Location already exists: %s", location.Name)
	}

	// Demo categories
	categories := []models.Category{
		{LocationID: location.ID, Name: "Роллы", SortOrder: 10, IsActive: true},
		{LocationID: location.ID, Name: "Сеты", SortOrder: 20, IsActive: true},
		{LocationID: location.ID, Name: "Напитки", SortOrder: 30, IsActive: true},
	}

	categoryIDs := map[string]uuid.UUID{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("location_id = ? AND name = ?", cat.LocationID, cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
			categoryIDs[cat.Name] = existing.ID
		}
	}

	// Demo products
	products := []models.Product{
		{
			LocationID:      location.ID,
			CategoryID:      categoryIDs["Роллы"],
			Name:            "Филадельфия классик",
			Description:     "Лосось, сливочный сыр, огурец, рис, нори",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(520)),
			ImageURL:        "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800",
			IsAvailable:     true,
			PreparationTime: 15,
		},
		{
			LocationID:      location.ID,
			CategoryID:      categoryIDs["Роллы"],
			Name:            "Калифорния с крабом",
			Description:     "Краб, авокадо, огурец, икра тобико",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(430)),
			ImageURL:        "https://images.unsplash.com/photo-1617196034796-73dfa7b1fd56?w=800",
			IsAvailable:     true,
			PreparationTime: 12,
		},
		{
			LocationID:      location.ID,
			CategoryID:      categoryIDs["Сеты"],
			Name:            "Сет Мори 24 шт",
			Description:     "Филадельфия, Калифорния, ролл с угрем",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(1290)),
			ImageURL:        "https://images.unsplash.com/photo-1553621042-f6e147245754?w=800",
			IsAvailable:     true,
			PreparationTime: 30,
		},
		{
			LocationID:      location.ID,
			CategoryID:      categoryIDs["Напитки"],
			Name:            "Зелёный чай сенча",
			Description:     "Листовой, 500 мл",
			Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
			IsAvailable:     true,
			PreparationTime: 3,
		},
	}

	for _, p := range products {
		if p.CategoryID == uuid.Nil {
			stdLog.Printf("Skipping product %s: category missing", p.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("location_id = ? AND name = ?", p.LocationID, p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created product: %s", p.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
		}
	}

	stdLog.Printf("Seed completed")
}
