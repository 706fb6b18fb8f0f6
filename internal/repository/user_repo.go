package repository

import (
	"database/sql"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// UserRepository работает с таблицами users и biometrics
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт репозиторий пользователей
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByTelegramID возвращает пользователя по Telegram ID,
// nil без ошибки если пользователь не найден
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(`
		SELECT telegram_id, username, first_name, last_name, e_mail,
		       COALESCE(gender, ''), COALESCE(level, ''), role
		FROM users
		WHERE telegram_id = $1`, telegramID).Scan(
		&user.TelegramID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.Gender, &user.Level, &user.Role,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create создаёт нового пользователя с уровнем Старт
func (r *UserRepository) Create(telegramID int64, username, firstName, lastName string) error {
	_, err := r.db.Exec(`
		INSERT INTO users (telegram_id, username, first_name, last_name, level, role)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		ON CONFLICT (telegram_id) DO NOTHING`,
		telegramID, username, firstName, lastName,
		models.LevelStart, models.RoleUser,
	)
	return err
}

// UpdateGender обновляет пол пользователя
func (r *UserRepository) UpdateGender(telegramID int64, gender models.Gender) error {
	_, err := r.db.Exec(
		"UPDATE users SET gender = $1 WHERE telegram_id = $2",
		gender, telegramID,
	)
	return err
}

// UpdateLevel обновляет уровень подготовки пользователя
func (r *UserRepository) UpdateLevel(telegramID int64, level models.UserLevel) error {
	_, err := r.db.Exec(
		"UPDATE users SET level = $1 WHERE telegram_id = $2",
		level, telegramID,
	)
	return err
}

// Biometrics возвращает биометрию пользователя,
// nil без ошибки если запись ещё не создана
func (r *UserRepository) Biometrics(telegramID int64) (*models.Biometrics, error) {
	bio := &models.Biometrics{}
	err := r.db.QueryRow(`
		SELECT user_id, height, weight, birthday
		FROM biometrics
		WHERE user_id = $1`, telegramID).Scan(
		&bio.UserID, &bio.Height, &bio.Weight, &bio.Birthday,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return bio, nil
}

// Weight возвращает вес тела пользователя, ok=false если вес не указан
func (r *UserRepository) Weight(telegramID int64) (float64, bool, error) {
	var weight sql.NullFloat64
	err := r.db.QueryRow(
		"SELECT weight FROM biometrics WHERE user_id = $1",
		telegramID,
	).Scan(&weight)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return weight.Float64, weight.Valid, nil
}

// UpdateWeight обновляет вес тела, создавая запись биометрии при необходимости
func (r *UserRepository) UpdateWeight(telegramID int64, weight float64) error {
	_, err := r.db.Exec(`
		INSERT INTO biometrics (user_id, weight)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET weight = EXCLUDED.weight`,
		telegramID, weight,
	)
	return err
}
