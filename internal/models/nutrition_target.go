package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionTarget is the stored output of the target calculation. Rows are
// append-only: recalculating after a biometric change inserts a new row and the
// latest row by created_at wins.
type NutritionTarget struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	BMR           int            `json:"bmr" example:"1780"`
	TDEE          int            `json:"tdee" example:"2759"`
	DailyCalories int            `json:"daily_calories" example:"2759"`
	DailyProtein  int            `json:"daily_protein" example:"160"`
	DailyCarbs    int            `json:"daily_carbs" example:"265"`
	DailyFats     int            `json:"daily_fats" example:"118"`
}
