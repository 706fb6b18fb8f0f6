package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// SubscriptionRepository работает с подписками и платежами
type SubscriptionRepository struct {
	db *sql.DB
}

// NewSubscriptionRepository создаёт репозиторий подписок
func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetByUserID возвращает подписку пользователя,
// nil без ошибки если подписки нет
func (r *SubscriptionRepository) GetByUserID(userID int64) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := r.db.QueryRow(`
		SELECT user_id, subscription_type, status, registered_date, end_date
		FROM subscriptions
		WHERE user_id = $1`, userID).Scan(
		&sub.UserID, &sub.Type, &sub.Status, &sub.RegisteredDate, &sub.EndDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Create создаёт подписку пользователя или продлевает существующую
func (r *SubscriptionRepository) Create(
	userID int64,
	subType models.SubscriptionType,
	endDate time.Time,
) error {
	_, err := r.db.Exec(`
		INSERT INTO subscriptions (user_id, subscription_type, status, registered_date, end_date)
		VALUES ($1, $2, $3, CURRENT_DATE, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET subscription_type = EXCLUDED.subscription_type,
		    status = EXCLUDED.status,
		    end_date = EXCLUDED.end_date`,
		userID, subType, models.SubActive, endDate,
	)
	return err
}

// UpdateStatus обновляет статус подписки
func (r *SubscriptionRepository) UpdateStatus(userID int64, status models.SubscriptionStatus) error {
	_, err := r.db.Exec(
		"UPDATE subscriptions SET status = $1 WHERE user_id = $2",
		status, userID,
	)
	return err
}

// StartProgramDay возвращает номер дня программы СТАРТ для пользователя,
// отсчёт с первого дня подписки. 0 без ошибки если подписки нет
func (r *SubscriptionRepository) StartProgramDay(userID int64, now time.Time) (int, error) {
	sub, err := r.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	if sub == nil {
		return 0, nil
	}
	days := int(now.Truncate(24*time.Hour).Sub(sub.RegisteredDate.Truncate(24*time.Hour)).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// ActiveSubscriberIDs возвращает telegram id всех пользователей
// с активной не истёкшей подпиской
func (r *SubscriptionRepository) ActiveSubscriberIDs(now time.Time) ([]int64, error) {
	rows, err := r.db.Query(`
		SELECT user_id
		FROM subscriptions
		WHERE status = $1 AND end_date >= $2
		ORDER BY user_id`, models.SubActive, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreatePayment создаёт запись о платеже и возвращает её id
func (r *SubscriptionRepository) CreatePayment(
	userID int64,
	subType models.SubscriptionType,
	amount int64,
) (*models.Payment, error) {
	payment := &models.Payment{
		ID:          uuid.NewString(),
		UserID:      userID,
		SubType:     subType,
		Amount:      amount,
		Status:      models.PaymentPending,
		PaymentDate: time.Now(),
	}
	_, err := r.db.Exec(`
		INSERT INTO payments (id, user_id, sub_type, amount, status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		payment.ID, payment.UserID, payment.SubType,
		payment.Amount, payment.Status, payment.PaymentDate,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment возвращает платёж по id, nil без ошибки если платежа нет
func (r *SubscriptionRepository) GetPayment(paymentID string) (*models.Payment, error) {
	payment := &models.Payment{}
	err := r.db.QueryRow(`
		SELECT id, user_id, sub_type, amount, status, payment_date
		FROM payments
		WHERE id = $1`, paymentID).Scan(
		&payment.ID, &payment.UserID, &payment.SubType,
		&payment.Amount, &payment.Status, &payment.PaymentDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePaymentStatus обновляет статус платежа
func (r *SubscriptionRepository) UpdatePaymentStatus(paymentID string, status models.PaymentStatus) error {
	_, err := r.db.Exec(
		"UPDATE payments SET status = $1 WHERE id = $2",
		status, paymentID,
	)
	return err
}
