package repository

import (
	"database/sql"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// WorkoutRepository работает с тренировками дня и программой СТАРТ
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository создаёт репозиторий тренировок
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// GetForDate возвращает тренировку на дату для уровня подготовки,
// nil без ошибки если тренировки нет
func (r *WorkoutRepository) GetForDate(date time.Time, level models.UserLevel) (*models.Workout, error) {
	workout := &models.Workout{}
	err := r.db.QueryRow(`
		SELECT id, description, date, level
		FROM workouts
		WHERE date = $1 AND level = $2`, date, level).Scan(
		&workout.ID, &workout.Description, &workout.Date, &workout.Level,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// SaveResult сохраняет результат тренировки дня
func (r *WorkoutRepository) SaveResult(workoutID, userID int64, result string) (*models.WorkoutResult, error) {
	wr := &models.WorkoutResult{
		WorkoutID: workoutID,
		UserID:    userID,
		Result:    result,
	}
	err := r.db.QueryRow(`
		INSERT INTO workout_results (workout_id, user_id, result)
		VALUES ($1, $2, $3)
		RETURNING id`,
		workoutID, userID, result,
	).Scan(&wr.ID)
	if err != nil {
		return nil, err
	}
	return wr, nil
}

// GetStartWorkout возвращает тренировку программы СТАРТ по номеру дня,
// nil без ошибки если день не найден
func (r *WorkoutRepository) GetStartWorkout(dayNumber int) (*models.StartWorkout, error) {
	workout := &models.StartWorkout{}
	err := r.db.QueryRow(`
		SELECT id, day_number, description
		FROM start_workouts
		WHERE day_number = $1`, dayNumber).Scan(
		&workout.ID, &workout.DayNumber, &workout.Description,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// GetStartWorkoutDays возвращает номера дней программы СТАРТ,
// для которых загружены тренировки
func (r *WorkoutRepository) GetStartWorkoutDays() ([]int, error) {
	rows, err := r.db.Query(`
		SELECT day_number
		FROM start_workouts
		ORDER BY day_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
