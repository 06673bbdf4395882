package models

import (
	"time"

	"gorm.io/gorm"
)

// Food is a row in the lookup cache, keyed by lowercased name so repeated
// searches skip the external nutrient API. Purely an optimization; meals embed
// their own FoodItem copies.
type Food struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `gorm:"uniqueIndex" json:"name" example:"banana"`
	Calories  float64        `json:"calories" example:"105"`
	ProteinG  float64        `json:"protein_g" example:"1.3"`
	CarbsG    float64        `json:"carbs_g" example:"27"`
	FatG      float64        `json:"fat_g" example:"0.4"`
	Serving   string         `json:"serving,omitempty" example:"1 medium"`
	Source    string         `json:"source,omitempty" example:"nutritionix"`
}

// Item converts a cached row into the embeddable meal value.
func (f *Food) Item() FoodItem {
	return FoodItem{
		Name:     f.Name,
		Calories: f.Calories,
		ProteinG: f.ProteinG,
		CarbsG:   f.CarbsG,
		FatG:     f.FatG,
		Serving:  f.Serving,
	}
}
