package repository

import (
	"database/sql"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// ResultRepository работает с историей результатов профиля.
// История только дописывается: каждый ввод добавляет новую строку,
// старые результаты никогда не изменяются и не удаляются
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository создаёт репозиторий результатов
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Latest возвращает последний результат пользователя в упражнении,
// nil без ошибки если результатов ещё нет.
// При совпадении даты побеждает строка с большим id
func (r *ResultRepository) Latest(userID, exerciseID int64) (*models.UserProfileResult, error) {
	result := &models.UserProfileResult{}
	err := r.db.QueryRow(`
		SELECT id, user_id, exercise_id, result_value, date
		FROM user_profile_results
		WHERE user_id = $1 AND exercise_id = $2
		ORDER BY date DESC, id DESC
		LIMIT 1`, userID, exerciseID).Scan(
		&result.ID, &result.UserID, &result.ExerciseID, &result.Value, &result.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// History возвращает всю историю результатов пользователя в упражнении,
// новые записи первыми
func (r *ResultRepository) History(userID, exerciseID int64) ([]models.UserProfileResult, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, exercise_id, result_value, date
		FROM user_profile_results
		WHERE user_id = $1 AND exercise_id = $2
		ORDER BY date DESC, id DESC`, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.UserProfileResult
	for rows.Next() {
		var res models.UserProfileResult
		err := rows.Scan(&res.ID, &res.UserID, &res.ExerciseID, &res.Value, &res.Date)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// CountUniqueExercises возвращает количество различных упражнений категории,
// в которых у пользователя есть хотя бы один результат.
// Повторные результаты одного упражнения не учитываются
func (r *ResultRepository) CountUniqueExercises(userID int64, categoryName string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(DISTINCT upr.exercise_id)
		FROM user_profile_results upr
		JOIN profile_exercises pe ON pe.id = upr.exercise_id
		WHERE upr.user_id = $1 AND pe.category_name = $2`,
		userID, categoryName,
	).Scan(&count)
	return count, err
}

// Submit добавляет новый результат, существующие строки не трогаются
func (r *ResultRepository) Submit(
	userID, exerciseID int64,
	value float64,
	date time.Time,
) (*models.UserProfileResult, error) {
	result := &models.UserProfileResult{
		UserID:     userID,
		ExerciseID: exerciseID,
		Value:      value,
		Date:       date,
	}
	err := r.db.QueryRow(`
		INSERT INTO user_profile_results (user_id, exercise_id, result_value, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		userID, exerciseID, value, date,
	).Scan(&result.ID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ForExercise возвращает все результаты упражнения вместе с данными
// пользователей указанного пола, для построения лидерборда
func (r *ResultRepository) ForExercise(
	exerciseID int64,
	gender models.Gender,
) ([]models.ExerciseResult, error) {
	rows, err := r.db.Query(`
		SELECT upr.id, upr.user_id, u.username, u.first_name, u.last_name,
		       u.gender, upr.result_value, upr.date
		FROM user_profile_results upr
		JOIN users u ON u.telegram_id = upr.user_id
		WHERE upr.exercise_id = $1 AND u.gender = $2
		ORDER BY upr.user_id, upr.date, upr.id`, exerciseID, gender)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ExerciseResult
	for rows.Next() {
		var res models.ExerciseResult
		err := rows.Scan(
			&res.ResultID, &res.UserID, &res.Username, &res.FirstName, &res.LastName,
			&res.Gender, &res.Value, &res.Date,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
