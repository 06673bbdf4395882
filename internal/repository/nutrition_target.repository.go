package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type NutritionTargetRepository interface {
	Create(target *models.NutritionTarget) error
	FindLatestByUserID(userID uint) (*models.NutritionTarget, error)
	FindAllByUserID(userID uint) ([]models.NutritionTarget, error)
}

type nutritionTargetRepository struct {
	db *gorm.DB
}

func NewNutritionTargetRepository(db *gorm.DB) NutritionTargetRepository {
	return &nutritionTargetRepository{db}
}

func (r *nutritionTargetRepository) Create(target *models.NutritionTarget) error {
	return r.db.Create(target).Error
}

// FindLatestByUserID returns the most recently created target row. Targets are
// append-only, so "latest wins" is how recalculated targets supersede old ones.
func (r *nutritionTargetRepository) FindLatestByUserID(userID uint) (*models.NutritionTarget, error) {
	var target models.NutritionTarget
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *nutritionTargetRepository) FindAllByUserID(userID uint) ([]models.NutritionTarget, error) {
	var targets []models.NutritionTarget
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&targets).Error
	return targets, err
}
