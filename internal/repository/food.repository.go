package repository

import (
	"strings"

	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodRepository interface {
	FindByName(name string) (*models.Food, error)
	Upsert(food *models.Food) error
	Search(query string, limit int) ([]models.Food, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

func (r *foodRepository) FindByName(name string) (*models.Food, error) {
	var food models.Food
	err := r.db.Where("name = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Upsert refreshes the cached nutrient values for a name already seen.
func (r *foodRepository) Upsert(food *models.Food) error {
	food.Name = strings.ToLower(strings.TrimSpace(food.Name))
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "protein_g", "carbs_g", "fat_g", "serving", "source", "updated_at"}),
	}).Create(food).Error
}

func (r *foodRepository) Search(query string, limit int) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("name ILIKE ?", "%"+strings.ToLower(strings.TrimSpace(query))+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}
