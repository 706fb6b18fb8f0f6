package models

import (
	"database/sql"
	"time"
)

// Gender пол пользователя
type Gender string

const (
	GenderMale   Gender = "Мужчина"
	GenderFemale Gender = "Женщина"
)

// UserLevel уровень подготовки пользователя
type UserLevel string

const (
	LevelFirst       UserLevel = "Первый"
	LevelSecond      UserLevel = "Второй"
	LevelMinkaifa    UserLevel = "Минкайфа"
	LevelCompetition UserLevel = "Соревнования"
	LevelStart       UserLevel = "Старт"
)

// UserRole роль пользователя в боте
type UserRole string

const (
	RoleAdmin   UserRole = "Админ"
	RoleCurator UserRole = "Куратор"
	RoleUser    UserRole = "Пользователь"
)

// User представляет пользователя из БД
type User struct {
	TelegramID int64
	Username   sql.NullString
	FirstName  sql.NullString
	LastName   sql.NullString
	Email      sql.NullString
	Gender     Gender
	Level      UserLevel
	Role       UserRole
}

// DisplayName возвращает имя для отображения в списках
func (u *User) DisplayName() string {
	switch {
	case u.FirstName.Valid && u.LastName.Valid:
		return u.FirstName.String + " " + u.LastName.String
	case u.FirstName.Valid:
		return u.FirstName.String
	case u.Username.Valid:
		return u.Username.String
	default:
		return "Аноним"
	}
}

// Biometrics биометрия пользователя
type Biometrics struct {
	UserID   int64
	Height   sql.NullInt64
	Weight   sql.NullFloat64
	Birthday sql.NullTime
}

// SubscriptionType тип подписки
type SubscriptionType string

const (
	SubStandard      SubscriptionType = "Базовая"
	SubWithCurator   SubscriptionType = "С куратором"
	SubStartProgram  SubscriptionType = "Полный Старт"
	SubOneMonthStart SubscriptionType = "Месяц Старт"
)

// SubscriptionStatus статус подписки
type SubscriptionStatus string

const (
	SubActive  SubscriptionStatus = "Активна"
	SubFrozen  SubscriptionStatus = "Заморожена"
	SubExpired SubscriptionStatus = "Истекла"
)

// Subscription подписка пользователя
type Subscription struct {
	UserID         int64
	Type           SubscriptionType
	Status         SubscriptionStatus
	RegisteredDate time.Time
	EndDate        time.Time
}

// IsActive проверяет, что подписка активна на указанную дату
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubActive && !s.EndDate.Before(now.Truncate(24*time.Hour))
}

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Обработка"
	PaymentCompleted PaymentStatus = "Выполнен"
	PaymentFailed    PaymentStatus = "Ошибка"
)

// Payment платёж за подписку
type Payment struct {
	ID          string // uuid
	UserID      int64
	SubType     SubscriptionType
	Amount      int64
	Status      PaymentStatus
	PaymentDate time.Time
}
