package main

import (
	"log"

	"github.com/nutrilog/backend/config"
	"github.com/nutrilog/backend/internal/database"
	"github.com/nutrilog/backend/internal/models"
)

func fp(v float64) *float64 { return &v }

// seedFoods is the verified starter catalog. Seeding is skipped when the
// foods table already has rows.
var seedFoods = []models.Food{
	{
		Name: "Apple", CaloriesPerServing: 95,
		ServingSize: "1", ServingUnit: "medium apple",
		Category: models.CategoryFruits, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(0.5), Carbohydrates: fp(25), Fat: fp(0.3), Fiber: fp(4), Sugar: fp(19)},
	},
	{
		Name: "Banana", CaloriesPerServing: 105,
		ServingSize: "1", ServingUnit: "medium banana",
		Category: models.CategoryFruits, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(1.3), Carbohydrates: fp(27), Fat: fp(0.4), Fiber: fp(3), Sugar: fp(14)},
	},
	{
		Name: "Orange", CaloriesPerServing: 62,
		ServingSize: "1", ServingUnit: "medium orange",
		Category: models.CategoryFruits, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(1.2), Carbohydrates: fp(15), Fat: fp(0.2), Fiber: fp(3), Sugar: fp(12)},
	},
	{
		Name: "Broccoli", CaloriesPerServing: 25,
		ServingSize: "1", ServingUnit: "cup chopped",
		Category: models.CategoryVegetables, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(3), Carbohydrates: fp(5), Fat: fp(0.3), Fiber: fp(2), Sugar: fp(1)},
	},
	{
		Name: "Spinach", CaloriesPerServing: 7,
		ServingSize: "1", ServingUnit: "cup raw",
		Category: models.CategoryVegetables, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(0.9), Carbohydrates: fp(1), Fat: fp(0.1), Fiber: fp(0.7), Sugar: fp(0.1)},
	},
	{
		Name: "Brown Rice", CaloriesPerServing: 216,
		ServingSize: "1", ServingUnit: "cup cooked",
		Category: models.CategoryGrains, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(5), Carbohydrates: fp(45), Fat: fp(1.8), Fiber: fp(4), Sugar: fp(0.7)},
	},
	{
		Name: "Quinoa", CaloriesPerServing: 222,
		ServingSize: "1", ServingUnit: "cup cooked",
		Category: models.CategoryGrains, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(8), Carbohydrates: fp(39), Fat: fp(3.6), Fiber: fp(5), Sugar: fp(1.6)},
	},
	{
		Name: "Chicken Breast", CaloriesPerServing: 231,
		ServingSize: "100", ServingUnit: "grams",
		Category: models.CategoryProtein, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(31), Carbohydrates: fp(0), Fat: fp(3.6), Fiber: fp(0), Sugar: fp(0)},
	},
	{
		Name: "Salmon", CaloriesPerServing: 208,
		ServingSize: "100", ServingUnit: "grams",
		Category: models.CategoryProtein, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(25), Carbohydrates: fp(0), Fat: fp(12), Fiber: fp(0), Sugar: fp(0)},
	},
	{
		Name: "Eggs", CaloriesPerServing: 155,
		ServingSize: "2", ServingUnit: "large eggs",
		Category: models.CategoryProtein, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(13), Carbohydrates: fp(1.1), Fat: fp(11), Fiber: fp(0), Sugar: fp(0.6)},
	},
	{
		Name: "Greek Yogurt", CaloriesPerServing: 100,
		ServingSize: "1", ServingUnit: "cup plain",
		Category: models.CategoryDairy, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(17), Carbohydrates: fp(6), Fat: fp(0.7), Fiber: fp(0), Sugar: fp(6)},
	},
	{
		Name: "Milk", CaloriesPerServing: 103,
		ServingSize: "1", ServingUnit: "cup 1% fat",
		Category: models.CategoryDairy, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(8), Carbohydrates: fp(13), Fat: fp(2.4), Fiber: fp(0), Sugar: fp(13)},
	},
	{
		Name: "Almonds", CaloriesPerServing: 164,
		ServingSize: "1", ServingUnit: "ounce (28g)",
		Category: models.CategorySnacks, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(6), Carbohydrates: fp(6), Fat: fp(14), Fiber: fp(4), Sugar: fp(1)},
	},
	{
		Name: "Peanut Butter", CaloriesPerServing: 188,
		ServingSize: "2", ServingUnit: "tablespoons",
		Category: models.CategorySnacks, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(8), Carbohydrates: fp(8), Fat: fp(16), Fiber: fp(3), Sugar: fp(3)},
	},
	{
		Name: "Green Tea", CaloriesPerServing: 2,
		ServingSize: "1", ServingUnit: "cup",
		Category: models.CategoryBeverages, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(0.5), Carbohydrates: fp(0), Fat: fp(0), Fiber: fp(0), Sugar: fp(0)},
	},
	{
		Name: "Orange Juice", CaloriesPerServing: 112,
		ServingSize: "1", ServingUnit: "cup",
		Category: models.CategoryBeverages, IsVerified: true,
		Nutrients: models.Nutrients{Protein: fp(2), Carbohydrates: fp(26), Fat: fp(0.5), Fiber: fp(0.5), Sugar: fp(21)},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count foods: %v", err)
	}
	if count > 0 {
		log.Printf("Foods already seeded (%d rows), nothing to do", count)
		return
	}

	if err := db.Create(&seedFoods).Error; err != nil {
		log.Fatalf("Failed to seed foods: %v", err)
	}
	log.Printf("Seeded %d foods", len(seedFoods))
}
