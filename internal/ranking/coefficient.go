package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// CoefficientData collects everything needed to calculate a Sinclair
// coefficient entry. It lives only for the duration of one entry
// interaction and is never persisted.
type CoefficientData struct {
	User                *models.User
	Weight              float64
	CoefficientExercise *models.ProfileExercise
	BaseExercise        *models.ProfileExercise
	BaseResult          *models.UserProfileResult
	WorkoutWeight       float64
}

// NotReadyError carries the user-facing reason why a coefficient entry
// cannot be calculated yet. The reason is shown to the user verbatim.
type NotReadyError struct {
	Reason string
}

func (e *NotReadyError) Error() string {
	return e.Reason
}

// RepsOutOfRangeError rejects a repetition count outside the configured
// range, with a distinct message per violated bound.
type RepsOutOfRangeError struct {
	Reps    int
	Bound   int
	TooHigh bool
}

func (e *RepsOutOfRangeError) Error() string {
	if e.TooHigh {
		return fmt.Sprintf("Тут без видео никак 🤥, максимум %d повторений", e.Bound)
	}
	return fmt.Sprintf("Пошутили и хватит 😬, количество повторений не меньше %d", e.Bound)
}

// isWeightedHangVariant detects the assisted/weighted-hang flavour of a
// coefficient exercise by its name. The name marker is how the catalog
// distinguishes the variant today; keep the check in one place so it can
// become an exercise flag without touching the formulas.
func isWeightedHangVariant(exerciseName string) bool {
	return strings.Contains(strings.ToLower(exerciseName), "подвесом")
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// CoefficientData resolves all inputs of a coefficient calculation for
// the user and exercise. It short-circuits at the first unmet
// precondition, returning ready=false with a distinct human-readable
// reason. The error return is reserved for storage faults.
func (e *Engine) CoefficientData(userID, exerciseID int64) (*CoefficientData, bool, string, error) {
	data := &CoefficientData{}

	user, err := e.users.GetByTelegramID(userID)
	if err != nil {
		return data, false, "", err
	}
	weight, hasWeight, err := e.users.Weight(userID)
	if err != nil {
		return data, false, "", err
	}
	if user == nil || !hasWeight || weight <= 0 {
		return data, false, "Для расчёта коэффициента необходимо указать вес тела в биометрии", nil
	}
	data.User = user
	data.Weight = weight

	exercise, err := e.exercises.GetByID(exerciseID)
	if err != nil {
		return data, false, "", err
	}
	data.CoefficientExercise = exercise
	if exercise == nil {
		return data, false, "Упражнение не найдено", nil
	}

	baseName, ok := e.cfg.BaseExercises[exercise.Name]
	if !ok {
		return data, false, fmt.Sprintf("Силовое упражнение для %s не задано!", exercise.Name), nil
	}

	baseExercise, err := e.exercises.GetByName(baseName)
	if err != nil {
		return data, false, "", err
	}
	data.BaseExercise = baseExercise
	if baseExercise == nil {
		return data, false, fmt.Sprintf("Базового упражнения %s нет в базе данных", baseName), nil
	}

	baseResult, err := e.results.Latest(userID, baseExercise.ID)
	if err != nil {
		return data, false, "", err
	}
	data.BaseResult = baseResult
	if baseResult == nil {
		return data, false, fmt.Sprintf("Сперва необходимо указать результат для %s", baseExercise.Name), nil
	}

	data.WorkoutWeight = workoutWeight(exercise.Name, baseResult.Value, weight)
	return data, true, "Готово к расчёту коэффициента", nil
}

// workoutWeight derives the training load from the latest base exercise
// result and the user's body weight. For the weighted-hang variant the
// body weight participates in the load and the result is clamped at zero.
func workoutWeight(exerciseName string, baseValue, userWeight float64) float64 {
	if isWeightedHangVariant(exerciseName) {
		return math.Max(0, (baseValue+userWeight)*0.7-userWeight)
	}
	return baseValue * 0.7
}

// ValidateReps checks the repetition count against the configured range.
func (e *Engine) ValidateReps(reps int) error {
	if reps < e.cfg.MinReps {
		return &RepsOutOfRangeError{Reps: reps, Bound: e.cfg.MinReps}
	}
	if reps > e.cfg.MaxReps {
		return &RepsOutOfRangeError{Reps: reps, Bound: e.cfg.MaxReps, TooHigh: true}
	}
	return nil
}

// CoefficientValue computes the coefficient from resolved data and the
// repetition count, rounded to two decimals.
//
// Weighted-hang variant: reps alone when the workout weight clamps to
// zero, reps * workout weight otherwise. All other coefficient
// exercises: reps * workout weight / body weight.
func CoefficientValue(data *CoefficientData, reps int) float64 {
	if isWeightedHangVariant(data.CoefficientExercise.Name) {
		if data.WorkoutWeight == 0 {
			return float64(reps)
		}
		return round2(float64(reps) * data.WorkoutWeight)
	}
	return round2(float64(reps) * data.WorkoutWeight / data.Weight)
}

// SubmitCoefficient resolves the coefficient data, validates the
// repetition count and stores the computed coefficient as a regular
// profile result. Precondition failures come back as *NotReadyError,
// repetition bound violations as *RepsOutOfRangeError.
func (e *Engine) SubmitCoefficient(userID, exerciseID int64, reps int) (*models.UserProfileResult, *CoefficientData, error) {
	data, ready, reason, err := e.CoefficientData(userID, exerciseID)
	if err != nil {
		return nil, nil, err
	}
	if !ready {
		return nil, data, &NotReadyError{Reason: reason}
	}
	if err := e.ValidateReps(reps); err != nil {
		return nil, data, err
	}

	value := CoefficientValue(data, reps)
	result, err := e.SubmitResult(userID, exerciseID, value)
	if err != nil {
		return nil, data, err
	}
	return result, data, nil
}
