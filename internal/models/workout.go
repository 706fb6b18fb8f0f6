package models

import (
	"database/sql"
	"time"
)

// Workout тренировка дня для уровня подготовки
type Workout struct {
	ID          int64
	Description sql.NullString
	Date        time.Time
	Level       UserLevel
}

// WorkoutResult результат пользователя в тренировке дня
type WorkoutResult struct {
	ID        int64
	WorkoutID int64
	UserID    int64
	Result    string
}

// StartWorkout тренировка программы СТАРТ, привязана к дню программы
type StartWorkout struct {
	ID          int64
	DayNumber   int
	Description string
}
