package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FoodItem is an immutable nutrient snapshot embedded in a meal at logging time.
// Later edits to the lookup cache never rewrite history.
type FoodItem struct {
	Name     string  `json:"name" example:"grilled chicken breast"`
	Calories float64 `json:"calories" example:"284"`
	ProteinG float64 `json:"protein_g" example:"53.4"`
	CarbsG   float64 `json:"carbs_g" example:"0"`
	FatG     float64 `json:"fat_g" example:"6.2"`
	Serving  string  `json:"serving,omitempty" example:"1 breast"`
}

// FoodItems is stored as a single JSONB column on the meal row.
type FoodItems []FoodItem

func (f FoodItems) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FoodItems) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for FoodItems: %T", value)
	}
	return json.Unmarshal(raw, f)
}

// LoggedMeal is one confirmed meal. MealNumber is the canonical slot key;
// MealName is display only. The total_* columns cache the sum over Foods and
// must match the live sum after every mutation.
type LoggedMeal struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	MealNumber    int            `json:"meal_number" example:"1"`
	MealName      string         `json:"meal_name" example:"Breakfast"`
	Foods         FoodItems      `gorm:"type:jsonb" json:"foods"`
	TotalCalories float64        `json:"total_calories" example:"584"`
	TotalProtein  float64        `json:"total_protein" example:"62"`
	TotalCarbs    float64        `json:"total_carbs" example:"33"`
	TotalFats     float64        `json:"total_fats" example:"18.25"`
	LoggedAt      time.Time      `gorm:"index" json:"logged_at" example:"2023-01-01T08:30:00Z"`
}
