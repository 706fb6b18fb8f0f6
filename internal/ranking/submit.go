package ranking

import (
	"errors"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// ErrNegativeResult rejects a negative result value before it reaches
// the repository.
var ErrNegativeResult = errors.New(
	"Введенное значение не может быть отрицательным.\n\n" +
		"Пожалуйста, введите результат в пределах допустимых значений")

// RangeError rejects a value outside the plausible range of the
// exercise standard for the user's level and gender. The message
// depends on the violated bound; on a timed speed exercise a too-low
// value means an unrealistically fast time.
type RangeError struct {
	Value     float64
	Min, Max  float64
	TooHigh   bool
	SpeedTime bool
}

func (e *RangeError) Error() string {
	switch {
	case e.TooHigh:
		return "Введенное значение слишком большое.\n\n" +
			"Пожалуйста, введите результат в пределах допустимых значений"
	case e.SpeedTime:
		return "Так быстро не бывает 🤨\n\n" +
			"Пожалуйста, введите результат в пределах допустимых значений"
	default:
		return "Введенное значение слишком маленькое.\n\n" +
			"Пожалуйста, введите результат в пределах допустимых значений"
	}
}

// SubmitResult validates a result value and appends it to the user's
// history. Prior rows are never touched. When a standard exists for the
// exercise and the user's level, the value must fall inside the
// gender-specific plausible range.
func (e *Engine) SubmitResult(userID, exerciseID int64, value float64) (*models.UserProfileResult, error) {
	if value < 0 {
		return nil, ErrNegativeResult
	}

	exercise, err := e.exercises.GetByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	user, err := e.users.GetByTelegramID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	standard, err := e.exercises.Standard(exerciseID, user.Level)
	if err != nil {
		return nil, err
	}
	if standard != nil {
		min, max := standard.Range(user.Gender)
		if value > max {
			return nil, &RangeError{Value: value, Min: min, Max: max, TooHigh: true}
		}
		if value < min {
			return nil, &RangeError{
				Value:     value,
				Min:       min,
				Max:       max,
				SpeedTime: exercise.LowerIsBetter(),
			}
		}
	}

	return e.results.Submit(userID, exerciseID, value, time.Now())
}
