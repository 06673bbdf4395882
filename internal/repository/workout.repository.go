package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	FindByID(id uint) (*models.Workout, error)
	FindAllByUserID(userID uint) ([]models.Workout, error)
	Delete(id uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *workoutRepository) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) FindAllByUserID(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) Delete(id uint) error {
	return r.db.Delete(&models.Workout{}, id).Error
}
