package nutrition

import (
	"math"

	"fittrack/internal/models"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// activityMultipliers is the single source of truth for valid activity levels;
// input validation checks membership here.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// proteinPerKg is the goal-dependent protein allotment in grams per kilogram of
// body weight.
var proteinPerKg = map[Goal]float64{
	GoalLose:     2.2,
	GoalMaintain: 2.0,
	GoalGain:     1.8,
}

// calorieAdjustment scales TDEE into the daily calorie target: 20% deficit for
// a cut, 10% surplus for a bulk.
var calorieAdjustment = map[Goal]float64{
	GoalLose:     0.8,
	GoalMaintain: 1.0,
	GoalGain:     1.1,
}

// BiometricInput is the transient onboarding payload. It is never stored; only
// the derived Targets are.
type BiometricInput struct {
	Age           int           `json:"age" example:"30"`
	Sex           Sex           `json:"sex" example:"male"`
	HeightCm      float64       `json:"height_cm" example:"180"`
	WeightKg      float64       `json:"weight_kg" example:"80"`
	ActivityLevel ActivityLevel `json:"activity_level" example:"moderate"`
	Goal          Goal          `json:"goal" example:"maintain"`
}

// Targets carries full float precision for the preview path. Rounded() produces
// the integer values that get persisted.
type Targets struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	DailyCalories float64 `json:"daily_calories"`
	DailyProteinG float64 `json:"daily_protein_g"`
	DailyCarbsG   float64 `json:"daily_carbs_g"`
	DailyFatsG    float64 `json:"daily_fats_g"`
}

// Rounded maps the precise targets onto the stored record shape.
func (t Targets) Rounded(userID uint) models.NutritionTarget {
	return models.NutritionTarget{
		UserID:        userID,
		BMR:           int(math.Round(t.BMR)),
		TDEE:          int(math.Round(t.TDEE)),
		DailyCalories: int(math.Round(t.DailyCalories)),
		DailyProtein:  int(math.Round(t.DailyProteinG)),
		DailyCarbs:    int(math.Round(t.DailyCarbsG)),
		DailyFats:     int(math.Round(t.DailyFatsG)),
	}
}

// ComputeTargets derives daily calorie and macro targets from biometrics.
//
// Formula set: Mifflin-St Jeor BMR (10*kg + 6.25*cm - 5*age, +5 male / -161
// female), TDEE via the activity-level multipliers above, calories adjusted by
// goal, protein at a goal-dependent g/kg of actual body weight, and the
// remaining calories split 50/50 by calorie weight between carbs (4 kcal/g)
// and fats (9 kcal/g).
//
// Out-of-range inputs return a *ValidationError. A non-finite intermediate
// returns ErrUnavailable instead of propagating NaN into storage.
func ComputeTargets(in BiometricInput) (Targets, error) {
	if err := validateBiometrics(in); err != nil {
		return Targets{}, err
	}

	base := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	bmr := base - 161
	if in.Sex == SexMale {
		bmr = base + 5
	}

	tdee := bmr * activityMultipliers[in.ActivityLevel]
	calories := tdee * calorieAdjustment[in.Goal]

	protein := proteinPerKg[in.Goal] * in.WeightKg
	remaining := calories - protein*4
	if remaining < 0 {
		remaining = 0
	}
	carbs := remaining * 0.5 / 4
	fats := remaining * 0.5 / 9

	t := Targets{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: calories,
		DailyProteinG: protein,
		DailyCarbsG:   carbs,
		DailyFatsG:    fats,
	}
	if !t.finite() {
		return Targets{}, ErrUnavailable
	}
	return t, nil
}

func (t Targets) finite() bool {
	for _, v := range []float64{t.BMR, t.TDEE, t.DailyCalories, t.DailyProteinG, t.DailyCarbsG, t.DailyFatsG} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateBiometrics(in BiometricInput) error {
	if in.Age < 12 || in.Age > 100 {
		return validationErrorf("age", "must be between 12 and 100, got %d", in.Age)
	}
	if math.IsNaN(in.HeightCm) || in.HeightCm < 120 || in.HeightCm > 250 {
		return validationErrorf("height_cm", "must be between 120 and 250, got %v", in.HeightCm)
	}
	if math.IsNaN(in.WeightKg) || in.WeightKg < 35 || in.WeightKg > 300 {
		return validationErrorf("weight_kg", "must be between 35 and 300, got %v", in.WeightKg)
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return validationErrorf("sex", "must be male or female, got %q", in.Sex)
	}
	if _, ok := activityMultipliers[in.ActivityLevel]; !ok {
		return validationErrorf("activity_level", "unknown level %q", in.ActivityLevel)
	}
	if _, ok := proteinPerKg[in.Goal]; !ok {
		return validationErrorf("goal", "must be lose, maintain or gain, got %q", in.Goal)
	}
	return nil
}
