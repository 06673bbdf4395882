package mocks

import (
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockNutritionTargetRepository
type MockNutritionTargetRepository struct {
	mock.Mock
}

func (m *MockNutritionTargetRepository) Create(target *models.NutritionTarget) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *MockNutritionTargetRepository) FindLatestByUserID(userID uint) (*models.NutritionTarget, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionTarget), args.Error(1)
}

func (m *MockNutritionTargetRepository) FindAllByUserID(userID uint) ([]models.NutritionTarget, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.NutritionTarget), args.Error(1)
}

// Shared MockLoggedMealRepository
type MockLoggedMealRepository struct {
	mock.Mock
}

func (m *MockLoggedMealRepository) Create(meal *models.LoggedMeal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockLoggedMealRepository) FindByID(id uint) (*models.LoggedMeal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoggedMeal), args.Error(1)
}

func (m *MockLoggedMealRepository) FindAllByUserID(userID uint) ([]models.LoggedMeal, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.LoggedMeal), args.Error(1)
}

func (m *MockLoggedMealRepository) FindByUserIDAndLoggedAtRange(userID uint, start, end time.Time) ([]models.LoggedMeal, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).([]models.LoggedMeal), args.Error(1)
}

func (m *MockLoggedMealRepository) Update(meal *models.LoggedMeal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockLoggedMealRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLoggedMealRepository) DeleteByIDs(ids []uint) error {
	args := m.Called(ids)
	return args.Error(0)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(workout *models.Workout) error {
	args := m.Called(workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindByID(id uint) (*models.Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindAllByUserID(userID uint) ([]models.Workout, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockWorkoutLogRepository
type MockWorkoutLogRepository struct {
	mock.Mock
}

func (m *MockWorkoutLogRepository) Create(log *models.WorkoutLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockWorkoutLogRepository) FindCompletedSince(userID uint, fromDate string) ([]models.WorkoutLog, error) {
	args := m.Called(userID, fromDate)
	return args.Get(0).([]models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) GetDailyStreak(userID uint, tz string) (int, error) {
	args := m.Called(userID, tz)
	return args.Int(0), args.Error(1)
}

// Shared MockFoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByName(name string) (*models.Food, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) Upsert(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Search(query string, limit int) ([]models.Food, error) {
	args := m.Called(query, limit)
	return args.Get(0).([]models.Food), args.Error(1)
}
