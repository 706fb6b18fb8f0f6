package ranking

import (
	"errors"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// Results is the slice of the result repository the engine depends on.
// Implemented by repository.ResultRepository.
type Results interface {
	Latest(userID, exerciseID int64) (*models.UserProfileResult, error)
	History(userID, exerciseID int64) ([]models.UserProfileResult, error)
	CountUniqueExercises(userID int64, categoryName string) (int, error)
	Submit(userID, exerciseID int64, value float64, date time.Time) (*models.UserProfileResult, error)
	ForExercise(exerciseID int64, gender models.Gender) ([]models.ExerciseResult, error)
}

// Exercises is the slice of the exercise repository the engine depends on.
// Implemented by repository.ExerciseRepository.
type Exercises interface {
	GetByID(id int64) (*models.ProfileExercise, error)
	GetByName(name string) (*models.ProfileExercise, error)
	CountInCategory(categoryName string) (int, error)
	Standard(exerciseID int64, level models.UserLevel) (*models.ExerciseStandard, error)
}

// Users is the slice of the user repository the engine depends on.
// Implemented by repository.UserRepository.
type Users interface {
	GetByTelegramID(telegramID int64) (*models.User, error)
	Weight(telegramID int64) (float64, bool, error)
}

// Config holds the static settings of the engine: the mapping from a
// coefficient exercise name to the strength exercise its calculation is
// based on, and the accepted repetition range for coefficient entries.
type Config struct {
	BaseExercises map[string]string
	MinReps       int
	MaxReps       int
}

// DefaultConfig returns the production mapping and repetition bounds.
func DefaultConfig() Config {
	return Config{
		BaseExercises: map[string]string{
			"Жим лёжа на повторения":          "Жим лёжа",
			"Присед на повторения":            "Присед со штангой",
			"Становая тяга на повторения":     "Становая тяга",
			"Подтягивания с подвесом":         "Подтягивания с весом",
			"Отжимания на брусьях с подвесом": "Отжимания на брусьях с весом",
		},
		MinReps: 1,
		MaxReps: 100,
	}
}

// Engine computes leaderboards, single-user ranks and Sinclair-style
// coefficient results on top of the repositories. Nothing is cached:
// every call recomputes from the current stored data.
type Engine struct {
	results   Results
	exercises Exercises
	users     Users
	cfg       Config
}

// NewEngine creates the engine. Zero-value config fields fall back to
// the defaults.
func NewEngine(results Results, exercises Exercises, users Users, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.BaseExercises == nil {
		cfg.BaseExercises = def.BaseExercises
	}
	if cfg.MinReps == 0 {
		cfg.MinReps = def.MinReps
	}
	if cfg.MaxReps == 0 {
		cfg.MaxReps = def.MaxReps
	}
	return &Engine{
		results:   results,
		exercises: exercises,
		users:     users,
		cfg:       cfg,
	}
}

// Not-found errors are reported verbatim, never silently defaulted.
var (
	ErrExerciseNotFound = errors.New("Упражнение не найдено")
	ErrUserNotFound     = errors.New("Пользователь не найден")
)

// CategoryCompletion returns how many exercises of the category the user
// has at least one result for, the total number of exercises in the
// category, and the completion percentage. Repeated submissions of the
// same exercise are counted once.
func (e *Engine) CategoryCompletion(userID int64, categoryName string) (filled, total, percentage int, err error) {
	total, err = e.exercises.CountInCategory(categoryName)
	if err != nil {
		return 0, 0, 0, err
	}
	filled, err = e.results.CountUniqueExercises(userID, categoryName)
	if err != nil {
		return 0, 0, 0, err
	}
	if total > 0 {
		percentage = filled * 100 / total
	}
	return filled, total, percentage, nil
}
