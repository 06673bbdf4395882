package nutrition

import (
	"testing"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	chicken = models.FoodItem{Name: "grilled chicken breast", Calories: 284, ProteinG: 53.4, CarbsG: 0, FatG: 6.2}
	rice    = models.FoodItem{Name: "white rice", Calories: 205, ProteinG: 4.3, CarbsG: 44.5, FatG: 0.4}
	avocado = models.FoodItem{Name: "avocado", Calories: 240, ProteinG: 3, CarbsG: 12.8, FatG: 22}
)

func TestStageFoodDoesNotMutateInput(t *testing.T) {
	staged := []models.FoodItem{chicken}
	out := StageFood(staged, rice)

	assert.Len(t, out, 2)
	assert.Len(t, staged, 1)
	assert.Equal(t, rice, out[1])
}

func TestFinalizeMealTotals(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 30, 0, 0, time.Local)
	meal, err := FinalizeMeal(1, 2, []models.FoodItem{chicken, rice}, now)
	assert.NoError(t, err)

	assert.Equal(t, uint(1), meal.UserID)
	assert.Equal(t, 2, meal.MealNumber)
	assert.Equal(t, "Lunch", meal.MealName)
	assert.Equal(t, now, meal.LoggedAt)

	// calories/protein/carbs whole numbers, fats at two decimals
	assert.Equal(t, float64(489), meal.TotalCalories)
	assert.Equal(t, float64(58), meal.TotalProtein)
	assert.Equal(t, float64(45), meal.TotalCarbs)
	assert.Equal(t, 6.6, meal.TotalFats)
}

func TestFinalizeMealRejectsEmptyFoods(t *testing.T) {
	_, err := FinalizeMeal(1, 1, nil, time.Now())
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "foods", verr.Field)
}

func TestFinalizeMealRejectsBadSlot(t *testing.T) {
	_, err := FinalizeMeal(1, 0, []models.FoodItem{chicken}, time.Now())
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "meal_number", verr.Field)
}

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, "Breakfast", SlotLabel(1))
	assert.Equal(t, "Lunch", SlotLabel(2))
	assert.Equal(t, "Dinner", SlotLabel(3))
	assert.Equal(t, "Snack", SlotLabel(4))
	assert.Equal(t, "Meal 5", SlotLabel(5))
}

func TestEditMealRecomputesCachedTotals(t *testing.T) {
	meal, err := FinalizeMeal(1, 1, []models.FoodItem{chicken, rice}, time.Now())
	assert.NoError(t, err)

	updated, remove := EditMeal(meal, []models.FoodItem{avocado})
	assert.False(t, remove)
	assert.Len(t, updated.Foods, 1)
	assert.Equal(t, float64(240), updated.TotalCalories)
	assert.Equal(t, float64(3), updated.TotalProtein)
	assert.Equal(t, float64(13), updated.TotalCarbs)
	assert.Equal(t, float64(22), updated.TotalFats)

	// cached totals always equal the live sum
	calories, protein, carbs, fats := SumFoods(updated.Foods)
	assert.Equal(t, calories, updated.TotalCalories)
	assert.Equal(t, protein, updated.TotalProtein)
	assert.Equal(t, carbs, updated.TotalCarbs)
	assert.Equal(t, fats, updated.TotalFats)
}

func TestEditMealEmptyFoodsSignalsDelete(t *testing.T) {
	meal, err := FinalizeMeal(1, 1, []models.FoodItem{chicken}, time.Now())
	assert.NoError(t, err)

	_, remove := EditMeal(meal, nil)
	assert.True(t, remove, "removing the last food deletes the whole meal")
}

func TestCopyMealProducesFreshRecord(t *testing.T) {
	now := time.Date(2023, 6, 1, 8, 0, 0, 0, time.Local)
	src, err := FinalizeMeal(1, 1, []models.FoodItem{chicken, rice}, now)
	assert.NoError(t, err)
	src.ID = 42

	later := now.Add(10 * time.Hour)
	dup := CopyMeal(src, 3, later)

	assert.Zero(t, dup.ID, "store assigns the new identifier")
	assert.Equal(t, 3, dup.MealNumber)
	assert.Equal(t, "Dinner", dup.MealName)
	assert.Equal(t, later, dup.LoggedAt)
	assert.Equal(t, src.Foods, dup.Foods)
	assert.Equal(t, src.TotalCalories, dup.TotalCalories)
	assert.Equal(t, src.TotalFats, dup.TotalFats)

	// source unchanged
	assert.Equal(t, uint(42), src.ID)
	assert.Equal(t, 1, src.MealNumber)
	assert.Equal(t, now, src.LoggedAt)

	// copies do not share backing arrays with the source
	dup.Foods[0].Name = "changed"
	assert.Equal(t, "grilled chicken breast", src.Foods[0].Name)
}

func TestEnforceRetentionEvictsOldest(t *testing.T) {
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local)
	meals := make([]models.LoggedMeal, 0, 20)
	for i := 0; i < 20; i++ {
		meals = append(meals, models.LoggedMeal{
			ID:       uint(i + 1),
			LoggedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	evict := EnforceRetention(meals, DefaultHistoryLimit)
	assert.Len(t, evict, 6)
	// IDs 1..6 carry the oldest timestamps
	assert.ElementsMatch(t, []uint{1, 2, 3, 4, 5, 6}, evict)

	cutoff := meals[6].LoggedAt
	for _, id := range evict {
		assert.True(t, meals[id-1].LoggedAt.Before(cutoff),
			"evicted meal %d should be strictly older than every retained meal", id)
	}
}

func TestEnforceRetentionUnderLimit(t *testing.T) {
	meals := []models.LoggedMeal{{ID: 1, LoggedAt: time.Now()}}
	assert.Nil(t, EnforceRetention(meals, DefaultHistoryLimit))
	assert.Nil(t, EnforceRetention(nil, DefaultHistoryLimit))
}

func TestEnforceRetentionAcceptsUnorderedInput(t *testing.T) {
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local)
	meals := []models.LoggedMeal{
		{ID: 2, LoggedAt: base.Add(2 * time.Hour)},
		{ID: 1, LoggedAt: base.Add(1 * time.Hour)},
		{ID: 3, LoggedAt: base.Add(3 * time.Hour)},
	}
	evict := EnforceRetention(meals, 2)
	assert.Equal(t, []uint{1}, evict)
}

func TestAggregateDayGroupsBySlot(t *testing.T) {
	now := time.Now()
	breakfast1, _ := FinalizeMeal(1, 1, []models.FoodItem{chicken}, now)
	breakfast2, _ := FinalizeMeal(1, 1, []models.FoodItem{rice}, now)
	dinner, _ := FinalizeMeal(1, 3, []models.FoodItem{avocado}, now)

	bySlot := AggregateDay([]models.LoggedMeal{breakfast1, breakfast2, dinner})

	assert.Len(t, bySlot, 2)
	assert.NotContains(t, bySlot, 2, "empty slots are absent, not zeroed")

	assert.Equal(t, float64(489), bySlot[1].Calories)
	// per-meal rounding happens at finalize time: 53.4 -> 53 and 4.3 -> 4,
	// so the slot aggregates cached totals, not raw food values
	assert.Equal(t, float64(57), bySlot[1].ProteinG)
	assert.Equal(t, float64(240), bySlot[3].Calories)

	day := SumDay(bySlot)
	var check MacroTotals
	for _, t2 := range bySlot {
		check.Add(t2)
	}
	assert.Equal(t, check, day, "slot totals must sum to the day's grand total")
}

func TestAggregateDayEmpty(t *testing.T) {
	bySlot := AggregateDay(nil)
	assert.Empty(t, bySlot)
	assert.Equal(t, MacroTotals{}, SumDay(bySlot))
}

func TestComputeRemainingPreservesNegatives(t *testing.T) {
	target := models.NutritionTarget{
		DailyCalories: 2000,
		DailyProtein:  150,
		DailyCarbs:    200,
		DailyFats:     65,
	}
	consumed := MacroTotals{Calories: 2400, ProteinG: 120, CarbsG: 260, FatsG: 65}

	remaining := ComputeRemaining(target, consumed)
	assert.Equal(t, float64(-400), remaining.Calories)
	assert.Equal(t, float64(30), remaining.ProteinG)
	assert.Equal(t, float64(-60), remaining.CarbsG)
	assert.Equal(t, float64(0), remaining.FatsG)
}

func TestDayBounds(t *testing.T) {
	now := time.Date(2023, 6, 15, 14, 30, 45, 0, time.Local)
	start, end := DayBounds(now)

	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(now))
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}
