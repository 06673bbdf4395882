package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Name      string         `json:"name" example:"Squat"`
	Sets      int            `gorm:"default:5" json:"sets" example:"5"`
	Reps      int            `gorm:"default:5" json:"reps" example:"5"`
}

// WorkoutLog marks one workout completed on one calendar date. ForDate is a
// plain YYYY-MM-DD string; the composite unique index makes a second completion
// attempt for the same day fail at insert, which the repository surfaces as
// ErrAlreadyCompleted.
type WorkoutLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"uniqueIndex:idx_workout_log_once_per_day" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	WorkoutID uint           `gorm:"uniqueIndex:idx_workout_log_once_per_day" json:"workout_id" example:"3"`
	Workout   Workout        `gorm:"foreignKey:WorkoutID" json:"-"`
	ForDate   string         `gorm:"type:date;uniqueIndex:idx_workout_log_once_per_day" json:"for_date" example:"2023-01-01"`
	Completed bool           `gorm:"default:true" json:"completed" example:"true"`
}
