package ranking

import (
	"fmt"
	"strconv"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// FormatSeconds converts raw seconds to the M:SS display form,
// e.g. 150 -> "2:30", 30 -> "0:30".
func FormatSeconds(value float64) string {
	minutes := int(value) / 60
	seconds := int(value) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatValue renders a result value for display: time-based seconds as
// M:SS, time-based minutes with two decimals, integral floats as plain
// integers and everything else as the shortest float form.
func FormatValue(value float64, exercise *models.ProfileExercise) string {
	if exercise.IsTimeBased {
		switch exercise.Unit {
		case models.UnitSeconds:
			return FormatSeconds(value)
		case models.UnitMinutes:
			return strconv.FormatFloat(value, 'f', 2, 64)
		}
	}
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
