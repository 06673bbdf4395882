package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type LoggedMealRepository interface {
	Create(meal *models.LoggedMeal) error
	FindByID(id uint) (*models.LoggedMeal, error)
	FindAllByUserID(userID uint) ([]models.LoggedMeal, error)
	FindByUserIDAndLoggedAtRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error)
	Update(meal *models.LoggedMeal) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) error
}

type loggedMealRepository struct {
	db *gorm.DB
}

func NewLoggedMealRepository(db *gorm.DB) LoggedMealRepository {
	return &loggedMealRepository{db}
}

func (r *loggedMealRepository) Create(meal *models.LoggedMeal) error {
	return r.db.Create(meal).Error
}

func (r *loggedMealRepository) FindByID(id uint) (*models.LoggedMeal, error) {
	var meal models.LoggedMeal
	err := r.db.First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// FindAllByUserID returns the user's full retained history, newest first.
// Retention keeps this bounded at the history limit.
func (r *loggedMealRepository) FindAllByUserID(userID uint) ([]models.LoggedMeal, error) {
	var meals []models.LoggedMeal
	err := r.db.Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

func (r *loggedMealRepository) FindByUserIDAndLoggedAtRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error) {
	var meals []models.LoggedMeal
	err := r.db.Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

func (r *loggedMealRepository) Update(meal *models.LoggedMeal) error {
	return r.db.Save(meal).Error
}

func (r *loggedMealRepository) Delete(id uint) error {
	return r.db.Delete(&models.LoggedMeal{}, id).Error
}

func (r *loggedMealRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.LoggedMeal{}, ids).Error
}
