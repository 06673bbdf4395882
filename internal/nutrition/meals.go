package nutrition

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fittrack/internal/models"
)

// DefaultHistoryLimit caps how many logged meals are retained per user.
const DefaultHistoryLimit = 14

// MacroTotals is a consumed or remaining macro sum. Negative values mean
// over target and are preserved through to the caller.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// Add accumulates another total into this one.
func (m *MacroTotals) Add(other MacroTotals) {
	m.Calories += other.Calories
	m.ProteinG += other.ProteinG
	m.CarbsG += other.CarbsG
	m.FatsG += other.FatsG
}

// SlotLabel gives the display name for a meal slot. The slot number stays the
// canonical key; the label is fixed at creation time.
func SlotLabel(slot int) string {
	switch slot {
	case 1:
		return "Breakfast"
	case 2:
		return "Lunch"
	case 3:
		return "Dinner"
	case 4:
		return "Snack"
	default:
		return fmt.Sprintf("Meal %d", slot)
	}
}

// StageFood appends an item to an in-progress meal without mutating the input.
func StageFood(staged []models.FoodItem, item models.FoodItem) []models.FoodItem {
	out := make([]models.FoodItem, 0, len(staged)+1)
	out = append(out, staged...)
	return append(out, item)
}

// SumFoods computes the cached totals for a food list. Calories, protein and
// carbs round to whole numbers while fats keep two decimals, matching how the
// totals were always stored.
func SumFoods(foods []models.FoodItem) (calories, protein, carbs, fats float64) {
	for _, f := range foods {
		calories += f.Calories
		protein += f.ProteinG
		carbs += f.CarbsG
		fats += f.FatG
	}
	calories = math.Round(calories)
	protein = math.Round(protein)
	carbs = math.Round(carbs)
	fats = math.Round(fats*100) / 100
	return
}

// FinalizeMeal turns a confirmed food list into a loggable meal record.
// An empty list is rejected; removing foods from an existing meal goes through
// EditMeal instead.
func FinalizeMeal(userID uint, slot int, foods []models.FoodItem, now time.Time) (models.LoggedMeal, error) {
	if len(foods) == 0 {
		return models.LoggedMeal{}, validationErrorf("foods", "a meal needs at least one food item")
	}
	if slot < 1 {
		return models.LoggedMeal{}, validationErrorf("meal_number", "must be >= 1, got %d", slot)
	}
	calories, protein, carbs, fats := SumFoods(foods)
	return models.LoggedMeal{
		UserID:        userID,
		MealNumber:    slot,
		MealName:      SlotLabel(slot),
		Foods:         append(models.FoodItems(nil), foods...),
		TotalCalories: calories,
		TotalProtein:  protein,
		TotalCarbs:    carbs,
		TotalFats:     fats,
		LoggedAt:      now,
	}, nil
}

// EditMeal applies a replacement food list to an existing meal. When the last
// food is removed the whole meal goes away: remove reports true and the caller
// must delete the record rather than keep an empty shell.
func EditMeal(meal models.LoggedMeal, newFoods []models.FoodItem) (updated models.LoggedMeal, remove bool) {
	if len(newFoods) == 0 {
		return meal, true
	}
	calories, protein, carbs, fats := SumFoods(newFoods)
	meal.Foods = append(models.FoodItems(nil), newFoods...)
	meal.TotalCalories = calories
	meal.TotalProtein = protein
	meal.TotalCarbs = carbs
	meal.TotalFats = fats
	return meal, false
}

// CopyMeal duplicates a logged meal into another slot. The copy gets a zero ID
// for the store to assign, a slot-derived label and a fresh timestamp; the
// source record is left untouched.
func CopyMeal(src models.LoggedMeal, targetSlot int, now time.Time) models.LoggedMeal {
	return models.LoggedMeal{
		UserID:        src.UserID,
		MealNumber:    targetSlot,
		MealName:      SlotLabel(targetSlot),
		Foods:         append(models.FoodItems(nil), src.Foods...),
		TotalCalories: src.TotalCalories,
		TotalProtein:  src.TotalProtein,
		TotalCarbs:    src.TotalCarbs,
		TotalFats:     src.TotalFats,
		LoggedAt:      now,
	}
}

// EnforceRetention returns the IDs of every meal beyond the newest `limit`
// records. Run after each insert or copy; edits never change the row count.
func EnforceRetention(allMealsForUser []models.LoggedMeal, limit int) []uint {
	if limit <= 0 || len(allMealsForUser) <= limit {
		return nil
	}
	ordered := make([]models.LoggedMeal, len(allMealsForUser))
	copy(ordered, allMealsForUser)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LoggedAt.After(ordered[j].LoggedAt)
	})
	evict := make([]uint, 0, len(ordered)-limit)
	for _, m := range ordered[limit:] {
		evict = append(evict, m.ID)
	}
	return evict
}

// AggregateDay groups the given meals by slot number and sums the cached macro
// totals per slot. Slots without meals are simply absent; rendering a zero row
// for them is the caller's job.
func AggregateDay(meals []models.LoggedMeal) map[int]MacroTotals {
	bySlot := make(map[int]MacroTotals, len(meals))
	for _, m := range meals {
		t := bySlot[m.MealNumber]
		t.Add(MacroTotals{
			Calories: m.TotalCalories,
			ProteinG: m.TotalProtein,
			CarbsG:   m.TotalCarbs,
			FatsG:    m.TotalFats,
		})
		bySlot[m.MealNumber] = t
	}
	return bySlot
}

// SumDay collapses per-slot totals into the day's grand total.
func SumDay(bySlot map[int]MacroTotals) MacroTotals {
	var day MacroTotals
	for _, t := range bySlot {
		day.Add(t)
	}
	return day
}

// ComputeRemaining subtracts consumed from target. Negative components mean
// over target; they are meaningful and never clamped here.
func ComputeRemaining(target models.NutritionTarget, consumed MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: float64(target.DailyCalories) - consumed.Calories,
		ProteinG: float64(target.DailyProtein) - consumed.ProteinG,
		CarbsG:   float64(target.DailyCarbs) - consumed.CarbsG,
		FatsG:    float64(target.DailyFats) - consumed.FatsG,
	}
}

// DayBounds returns the local calendar-day window around now, start inclusive
// at midnight and end at 23:59:59.999. Meal aggregation is deliberately
// local-day while the streak uses an explicit reference timezone.
func DayBounds(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
	return
}
