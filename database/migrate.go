package database

import (
	"fittrack/internal/models"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.NutritionTarget{},
		&models.Food{},
		&models.LoggedMeal{},
		&models.Workout{},
		&models.WorkoutLog{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
