package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/events"
	"fittrack/internal/models"
	"fittrack/internal/nutrition"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts  repository.WorkoutRepository
	logs      repository.WorkoutLogRepository
	publisher *events.Publisher
}

func NewWorkoutController(workouts repository.WorkoutRepository, logs repository.WorkoutLogRepository, publisher *events.Publisher) *WorkoutController {
	return &WorkoutController{workouts: workouts, logs: logs, publisher: publisher}
}

// CreateWorkout godoc
// @Summary Create a workout
// @Description Create a workout owned by a user
// @Tags workouts
// @Accept json
// @Produce json
// @Param workout body models.Workout true "Workout data"
// @Success 201 {object} map[string]interface{} "Workout created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /workouts [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var workout models.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if workout.Sets == 0 {
		workout.Sets = 5
	}
	if workout.Reps == 0 {
		workout.Reps = 5
	}

	if err := wc.workouts.Create(&workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout created successfully",
		"data":    workout,
	})
}

// GetWorkoutsByUserID godoc
// @Summary Get all workouts for a user
// @Tags workouts
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Router /workouts/user/{user_id} [get]
func (wc *WorkoutController) GetWorkoutsByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	workouts, err := wc.workouts.FindAllByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workouts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    workouts,
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Description Remove a workout; past completion logs are kept for streak history
// @Tags workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid workout ID"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workouts/{id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	workout, err := wc.workouts.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   "No workout exists with the provided ID",
		})
		return
	}

	if err := wc.workouts.Delete(workout.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout",
			"error":   err.Error(),
		})
		return
	}
	wc.publisher.Publish("workouts", "deleted", workout.UserID, workout.ID, nil)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout deleted successfully",
		"data":    nil,
	})
}

type completeWorkoutRequest struct {
	UserID uint `json:"user_id"`
}

// CompleteWorkout godoc
// @Summary Log a workout completion for today
// @Description Mark a workout completed for today's date; at most one completion per workout per day
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param completion body completeWorkoutRequest true "Completing user"
// @Success 201 {object} map[string]interface{} "Workout completion logged"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Failure 409 {object} map[string]interface{} "Already completed today"
// @Router /workouts/{id}/complete [post]
func (wc *WorkoutController) CompleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req completeWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := wc.workouts.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   "No workout exists with the provided ID",
		})
		return
	}

	entry := models.WorkoutLog{
		UserID:    req.UserID,
		WorkoutID: uint(id),
		ForDate:   time.Now().UTC().Format(nutrition.DateLayout),
		Completed: true,
	}

	if err := wc.logs.Create(&entry); err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Already completed this workout today",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log workout completion",
			"error":   err.Error(),
		})
		return
	}

	wc.publisher.Publish("workout_logs", "created", entry.UserID, entry.ID, entry)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout completion logged",
		"data":    entry,
	})
}

// GetStreak godoc
// @Summary Get the user's daily workout streak
// @Description Consecutive days ending today with at least one completed workout, evaluated in the given timezone. Falls back to a windowed client-side computation when the authoritative query fails.
// @Tags workouts
// @Produce json
// @Param user_id path int true "User ID"
// @Param tz query string false "IANA timezone name (default UTC)"
// @Param days query int false "Fallback lookback window in days (default 30)"
// @Success 200 {object} map[string]interface{} "Streak computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /workouts/user/{user_id}/streak [get]
func (wc *WorkoutController) GetStreak(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	tzName := c.DefaultQuery("tz", "UTC")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid timezone",
			"error":   err.Error(),
		})
		return
	}

	windowDays := nutrition.DefaultStreakWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid lookback window",
				"error":   "days must be a positive integer",
			})
			return
		}
		windowDays = parsed
	}

	// authoritative: full-history SQL streak; local windowed walk only as fallback
	if streak, err := wc.logs.GetDailyStreak(uint(userID), tzName); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Streak computed successfully",
			"data":    gin.H{"streak": streak, "source": "authoritative", "timezone": tzName},
		})
		return
	} else {
		log.Printf("Authoritative streak query failed for user %d: %v", userID, err)
	}

	now := time.Now().In(tz)
	fromDate := now.AddDate(0, 0, -windowDays).Format(nutrition.DateLayout)
	logs, err := wc.logs.FindCompletedSince(uint(userID), fromDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute streak",
			"error":   err.Error(),
		})
		return
	}

	dates := make([]string, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, l.ForDate)
	}
	streak := nutrition.ComputeStreak(nutrition.CompletedDates(dates), tz, now)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Streak computed successfully",
		"data":    gin.H{"streak": streak, "source": "fallback", "timezone": tzName, "window_days": windowDays},
	})
}
