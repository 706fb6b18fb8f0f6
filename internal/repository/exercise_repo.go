package repository

import (
	"database/sql"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// ExerciseRepository работает с упражнениями профиля,
// категориями и нормативами
type ExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository создаёт репозиторий упражнений
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// GetByID возвращает упражнение по ID, nil без ошибки если не найдено
func (r *ExerciseRepository) GetByID(id int64) (*models.ProfileExercise, error) {
	exercise := &models.ProfileExercise{}
	err := r.db.QueryRow(`
		SELECT id, name, category_name, description, unit, result_type,
		       is_time_based, is_basic
		FROM profile_exercises
		WHERE id = $1`, id).Scan(
		&exercise.ID, &exercise.Name, &exercise.CategoryName, &exercise.Description,
		&exercise.Unit, &exercise.ResultType, &exercise.IsTimeBased, &exercise.IsBasic,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetByName возвращает упражнение по точному названию,
// nil без ошибки если не найдено. Точное совпадение обязательно:
// базовое упражнение для коэффициента ищется только по нему
func (r *ExerciseRepository) GetByName(name string) (*models.ProfileExercise, error) {
	exercise := &models.ProfileExercise{}
	err := r.db.QueryRow(`
		SELECT id, name, category_name, description, unit, result_type,
		       is_time_based, is_basic
		FROM profile_exercises
		WHERE name = $1`, name).Scan(
		&exercise.ID, &exercise.Name, &exercise.CategoryName, &exercise.Description,
		&exercise.Unit, &exercise.ResultType, &exercise.IsTimeBased, &exercise.IsBasic,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetCategories возвращает все категории упражнений по алфавиту
func (r *ExerciseRepository) GetCategories() ([]models.ProfileCategory, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description
		FROM profile_categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.ProfileCategory
	for rows.Next() {
		var c models.ProfileCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryByID возвращает категорию по ID, nil без ошибки если не найдена
func (r *ExerciseRepository) GetCategoryByID(id int64) (*models.ProfileCategory, error) {
	category := &models.ProfileCategory{}
	err := r.db.QueryRow(`
		SELECT id, name, description
		FROM profile_categories
		WHERE id = $1`, id).Scan(&category.ID, &category.Name, &category.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetByCategory возвращает упражнения категории по алфавиту
func (r *ExerciseRepository) GetByCategory(categoryName string) ([]models.ProfileExercise, error) {
	rows, err := r.db.Query(`
		SELECT id, name, category_name, description, unit, result_type,
		       is_time_based, is_basic
		FROM profile_exercises
		WHERE category_name = $1
		ORDER BY name`, categoryName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.ProfileExercise
	for rows.Next() {
		var e models.ProfileExercise
		err := rows.Scan(
			&e.ID, &e.Name, &e.CategoryName, &e.Description,
			&e.Unit, &e.ResultType, &e.IsTimeBased, &e.IsBasic,
		)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// CountInCategory возвращает количество упражнений в категории
func (r *ExerciseRepository) CountInCategory(categoryName string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM profile_exercises WHERE category_name = $1",
		categoryName,
	).Scan(&count)
	return count, err
}

// Standard возвращает норматив упражнения для уровня подготовки,
// nil без ошибки если норматив не задан
func (r *ExerciseRepository) Standard(
	exerciseID int64,
	level models.UserLevel,
) (*models.ExerciseStandard, error) {
	standard := &models.ExerciseStandard{}
	err := r.db.QueryRow(`
		SELECT id, exercise_id, user_level,
		       male_min_value, male_max_value, female_min_value, female_max_value
		FROM exercise_standards
		WHERE exercise_id = $1 AND user_level = $2`, exerciseID, level).Scan(
		&standard.ID, &standard.ExerciseID, &standard.Level,
		&standard.MaleMinValue, &standard.MaleMaxValue,
		&standard.FemaleMinValue, &standard.FemaleMaxValue,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return standard, nil
}
