package bot

import (
	"strconv"
	"strings"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// ValidationError представляет ошибку валидации пользовательского ввода
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// parseResultValue разбирает введённый результат.
// Для упражнений на время принимается формат ММ:СС или секунды,
// для остальных число с точкой или запятой
func parseResultValue(text string, timeBased bool) (float64, error) {
	text = strings.TrimSpace(text)

	if timeBased && strings.Contains(text, ":") {
		parts := strings.SplitN(text, ":", 2)
		minutes, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, ValidationError{
				Field:   "result",
				Message: "❌ Некорректный формат. Введите время в формате ММ:СС или в секундах.",
			}
		}
		seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, ValidationError{
				Field:   "result",
				Message: "❌ Некорректный формат. Введите время в формате ММ:СС или в секундах.",
			}
		}
		return minutes*60 + seconds, nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		if timeBased {
			return 0, ValidationError{
				Field:   "result",
				Message: "❌ Некорректный формат. Введите время в формате ММ:СС или в секундах.",
			}
		}
		return 0, ValidationError{
			Field:   "result",
			Message: "❌ Некорректный формат. Введите числовое значение.",
		}
	}
	return value, nil
}

// parseLevel разбирает выбранный уровень подготовки
func parseLevel(text string) (models.UserLevel, error) {
	switch level := models.UserLevel(strings.TrimSpace(text)); level {
	case models.LevelFirst, models.LevelSecond, models.LevelMinkaifa,
		models.LevelCompetition, models.LevelStart:
		return level, nil
	}
	return "", ValidationError{
		Field:   "level",
		Message: "Выбери уровень кнопкой ниже:",
	}
}

// parseReps разбирает количество повторений
func parseReps(text string) (int, error) {
	reps, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ValidationError{
			Field:   "reps",
			Message: "❌ Введите количество повторений целым числом.",
		}
	}
	return reps, nil
}

// Границы правдоподобного веса тела в килограммах
const (
	minBodyWeight = 30
	maxBodyWeight = 250
)

// parseBodyWeight разбирает и проверяет вес тела
func parseBodyWeight(text string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil {
		return 0, ValidationError{
			Field:   "weight",
			Message: "Пожалуйста, введите корректное числовое значение для веса в килограммах.",
		}
	}
	if weight < minBodyWeight || weight > maxBodyWeight {
		return 0, ValidationError{
			Field:   "weight",
			Message: "Вес должен быть от 30 до 250 кг. Пожалуйста, введи корректное значение.",
		}
	}
	return weight, nil
}
