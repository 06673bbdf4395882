package repository

import (
	"errors"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadyCompleted distinguishes the expected "second completion attempt for
// the same workout and date" outcome from generic store failures. The store's
// composite unique index does the actual enforcement.
var ErrAlreadyCompleted = errors.New("workout already completed for this date")

type WorkoutLogRepository interface {
	Create(log *models.WorkoutLog) error
	FindCompletedSince(userID uint, fromDate string) ([]models.WorkoutLog, error)
	GetDailyStreak(userID uint, tz string) (int, error)
}

type workoutLogRepository struct {
	db *gorm.DB
}

func NewWorkoutLogRepository(db *gorm.DB) WorkoutLogRepository {
	return &workoutLogRepository{db}
}

func (r *workoutLogRepository) Create(log *models.WorkoutLog) error {
	err := r.db.Create(log).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyCompleted
	}
	return err
}

// FindCompletedSince returns completed logs with for_date >= fromDate, newest
// first. Callers choose the window; it bounds the streak the local fallback
// can report.
func (r *workoutLogRepository) FindCompletedSince(userID uint, fromDate string) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := r.db.Where("user_id = ? AND completed = ? AND for_date >= ?", userID, true, fromDate).
		Order("for_date DESC").
		Find(&logs).Error
	return logs, err
}

// GetDailyStreak computes the streak in SQL over the user's entire log history,
// with "today" evaluated in the given timezone. This is the authoritative
// variant; the windowed in-memory computation is only a fallback.
func (r *workoutLogRepository) GetDailyStreak(userID uint, tz string) (int, error) {
	var streak int
	err := r.db.Raw(`
WITH days AS (
    SELECT DISTINCT for_date::date AS d
    FROM workout_logs
    WHERE user_id = ? AND completed = true AND deleted_at IS NULL
),
numbered AS (
    SELECT d, ROW_NUMBER() OVER (ORDER BY d DESC) AS rn
    FROM days
    WHERE d <= (now() AT TIME ZONE ?)::date
)
SELECT COUNT(*)
FROM numbered
WHERE d = (now() AT TIME ZONE ?)::date - (rn - 1)::int
`, userID, tz, tz).Scan(&streak).Error
	if err != nil {
		return 0, err
	}
	return streak, nil
}
