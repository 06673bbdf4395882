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

type MealController struct {
	meals     repository.LoggedMealRepository
	targets   repository.NutritionTargetRepository
	publisher *events.Publisher
}

func NewMealController(meals repository.LoggedMealRepository, targets repository.NutritionTargetRepository, publisher *events.Publisher) *MealController {
	return &MealController{meals: meals, targets: targets, publisher: publisher}
}

type createMealRequest struct {
	UserID     uint              `json:"user_id"`
	MealNumber int               `json:"meal_number"`
	Foods      []models.FoodItem `json:"foods"`
}

type editMealRequest struct {
	Foods []models.FoodItem `json:"foods"`
}

type copyMealRequest struct {
	MealNumber int `json:"meal_number"`
}

// CreateMeal godoc
// @Summary Log a meal
// @Description Finalize a composed food list into a logged meal and evict history beyond the retention cap
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body createMealRequest true "Meal data"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal data"
// @Failure 500 {object} map[string]interface{} "Failed to log meal"
// @Router /meals [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	meal, err := nutrition.FinalizeMeal(req.UserID, req.MealNumber, req.Foods, time.Now())
	if err != nil {
		var verr *nutrition.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid meal data",
				"error":   verr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   err.Error(),
		})
		return
	}

	if err := mc.meals.Create(&meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   err.Error(),
		})
		return
	}

	mc.evictExcessHistory(meal.UserID)
	mc.publisher.Publish("logged_meals", "created", meal.UserID, meal.ID, meal)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    meal,
	})
}

// UpdateMeal godoc
// @Summary Edit a logged meal
// @Description Replace a meal's food list and recompute its totals; an empty list deletes the meal
// @Tags meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param foods body editMealRequest true "Replacement food list"
// @Success 200 {object} map[string]interface{} "Meal updated or deleted"
// @Failure 400 {object} map[string]interface{} "Invalid meal ID"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Failure 500 {object} map[string]interface{} "Failed to update meal"
// @Router /meals/{id} [put]
func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req editMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	meal, err := mc.meals.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	updated, remove := nutrition.EditMeal(*meal, req.Foods)
	if remove {
		// removing the last food deletes the whole meal
		if err := mc.meals.Delete(meal.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to delete meal",
				"error":   err.Error(),
			})
			return
		}
		mc.publisher.Publish("logged_meals", "deleted", meal.UserID, meal.ID, nil)
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Meal deleted (no foods remaining)",
			"data":    nil,
		})
		return
	}

	if err := mc.meals.Update(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update meal",
			"error":   err.Error(),
		})
		return
	}
	mc.publisher.Publish("logged_meals", "updated", updated.UserID, updated.ID, updated)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal updated successfully",
		"data":    updated,
	})
}

// DeleteMeal godoc
// @Summary Delete a logged meal
// @Description Remove a meal from the user's history
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal ID"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meals/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	meal, err := mc.meals.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	if err := mc.meals.Delete(meal.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal",
			"error":   err.Error(),
		})
		return
	}
	mc.publisher.Publish("logged_meals", "deleted", meal.UserID, meal.ID, nil)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal deleted successfully",
		"data":    nil,
	})
}

// CopyMeal godoc
// @Summary Copy a logged meal
// @Description Duplicate an existing meal into a target slot with a fresh timestamp
// @Tags meals
// @Accept json
// @Produce json
// @Param id path int true "Source meal ID"
// @Param target body copyMealRequest true "Target meal slot"
// @Success 201 {object} map[string]interface{} "Meal copied successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meals/{id}/copy [post]
func (mc *MealController) CopyMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req copyMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.MealNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal slot",
			"error":   "meal_number must be >= 1",
		})
		return
	}

	src, err := mc.meals.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   "No meal exists with the provided ID",
		})
		return
	}

	dup := nutrition.CopyMeal(*src, req.MealNumber, time.Now())
	if err := mc.meals.Create(&dup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to copy meal",
			"error":   err.Error(),
		})
		return
	}

	mc.evictExcessHistory(dup.UserID)
	mc.publisher.Publish("logged_meals", "created", dup.UserID, dup.ID, dup)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal copied successfully",
		"data":    dup,
	})
}

// GetMealHistory godoc
// @Summary Get meal history
// @Description Retrieve the user's retained meal history, newest first
// @Tags meals
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Router /meals/user/{user_id} [get]
func (mc *MealController) GetMealHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	meals, err := mc.meals.FindAllByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data":    meals,
	})
}

// GetDailySummary godoc
// @Summary Get today's nutrition summary
// @Description Per-slot totals, whole-day totals and remaining-vs-target for the current local day
// @Tags meals
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Summary computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Router /meals/user/{user_id}/today [get]
func (mc *MealController) GetDailySummary(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	start, end := nutrition.DayBounds(time.Now())
	meals, err := mc.meals.FindByUserIDAndLoggedAtRange(uint(userID), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve today's meals",
			"error":   err.Error(),
		})
		return
	}

	bySlot := nutrition.AggregateDay(meals)
	consumed := nutrition.SumDay(bySlot)

	data := gin.H{
		"date":     start.Format(nutrition.DateLayout),
		"by_slot":  bySlot,
		"consumed": consumed,
		"meals":    meals,
	}

	// remaining needs a target; without one the summary still renders consumed
	if target, err := mc.targets.FindLatestByUserID(uint(userID)); err == nil {
		data["target"] = target
		data["remaining"] = nutrition.ComputeRemaining(*target, consumed)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary computed successfully",
		"data":    data,
	})
}

// evictExcessHistory applies the retention cap after an insert. Eviction
// failures are logged and never fail the write that triggered them.
func (mc *MealController) evictExcessHistory(userID uint) {
	all, err := mc.meals.FindAllByUserID(userID)
	if err != nil {
		log.Printf("Retention check failed for user %d: %v", userID, err)
		return
	}
	evict := nutrition.EnforceRetention(all, nutrition.DefaultHistoryLimit)
	if len(evict) == 0 {
		return
	}
	if err := mc.meals.DeleteByIDs(evict); err != nil {
		log.Printf("Failed to evict %d meals for user %d: %v", len(evict), userID, err)
		return
	}
	for _, id := range evict {
		mc.publisher.Publish("logged_meals", "deleted", userID, id, nil)
	}
}
