package models

import (
	"database/sql"
	"time"
)

// MeasurementUnit единица измерения результата упражнения
type MeasurementUnit string

const (
	UnitKilograms   MeasurementUnit = "кг"
	UnitReps        MeasurementUnit = "пвт"
	UnitMeters      MeasurementUnit = "м"
	UnitSeconds     MeasurementUnit = "сек"
	UnitMinutes     MeasurementUnit = "мин"
	UnitCalories    MeasurementUnit = "кал"
	UnitWatts       MeasurementUnit = "ватт"
	UnitCoefficient MeasurementUnit = "слр"
)

// ResultType тип результата упражнения
type ResultType string

const (
	ResultHoldTime    ResultType = "время удержание"
	ResultSpeedTime   ResultType = "время скорость"
	ResultWeight      ResultType = "вес"
	ResultReps        ResultType = "пвт"
	ResultDistance    ResultType = "дистанция"
	ResultCapacity    ResultType = "мощность"
	ResultCalories    ResultType = "калории"
	ResultCoefficient ResultType = "коэффициент Синклера"
)

// ProfileCategory категория упражнений профиля (Сила, Гимнастика и т.д.)
type ProfileCategory struct {
	ID          int64
	Name        string
	Description sql.NullString
}

// ProfileExercise упражнение из профиля пользователя
type ProfileExercise struct {
	ID           int64
	Name         string
	CategoryName string
	Description  sql.NullString
	Unit         MeasurementUnit
	ResultType   ResultType
	IsTimeBased  bool
	IsBasic      bool
}

// LowerIsBetter сообщает, что меньший результат лучше:
// упражнение на время, где засекается скорость выполнения
func (e *ProfileExercise) LowerIsBetter() bool {
	return e.IsTimeBased && e.ResultType == ResultSpeedTime
}

// IsCoefficient сообщает, что результат считается через коэффициент Синклера
func (e *ProfileExercise) IsCoefficient() bool {
	return e.ResultType == ResultCoefficient
}

// ExerciseStandard диапазон допустимых значений упражнения
// для уровня подготовки, по полам
type ExerciseStandard struct {
	ID             int64
	ExerciseID     int64
	Level          UserLevel
	MaleMinValue   float64
	MaleMaxValue   float64
	FemaleMinValue float64
	FemaleMaxValue float64
}

// Range возвращает границы диапазона для пола
func (s *ExerciseStandard) Range(gender Gender) (min, max float64) {
	if gender == GenderFemale {
		return s.FemaleMinValue, s.FemaleMaxValue
	}
	return s.MaleMinValue, s.MaleMaxValue
}

// UserProfileResult результат пользователя в упражнении,
// история не перезаписывается: каждый ввод добавляет новую строку
type UserProfileResult struct {
	ID         int64
	UserID     int64
	ExerciseID int64
	Value      float64
	Date       time.Time
}

// ExerciseResult строка результата вместе с данными пользователя,
// используется при построении лидерборда
type ExerciseResult struct {
	ResultID  int64
	UserID    int64
	Username  sql.NullString
	FirstName sql.NullString
	LastName  sql.NullString
	Gender    Gender
	Value     float64
	Date      time.Time
}

// DisplayName возвращает имя участника для лидерборда
func (r *ExerciseResult) DisplayName() string {
	u := User{Username: r.Username, FirstName: r.FirstName, LastName: r.LastName}
	return u.DisplayName()
}
