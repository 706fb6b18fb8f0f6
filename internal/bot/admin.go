package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// isAdmin проверяет, что telegram id входит в список админов
func (b *Bot) isAdmin(telegramID int64) bool {
	for _, id := range b.config.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// subscriptionEndDate считает дату окончания подписки от даты оплаты.
// Полный СТАРТ длится два месяца, остальные типы — месяц
func subscriptionEndDate(subType models.SubscriptionType, from time.Time) time.Time {
	if subType == models.SubStartProgram {
		return from.AddDate(0, 2, 0)
	}
	return from.AddDate(0, 1, 0)
}

// handleConfirmPayment подтверждает платёж и активирует подписку.
// Формат: /confirm <id платежа>
func (b *Bot) handleConfirmPayment(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.reply(chatID, "Неизвестная команда. Нажми /start")
		return
	}

	paymentID := strings.TrimSpace(message.CommandArguments())
	if paymentID == "" {
		b.reply(chatID, "Укажи id платежа: /confirm <id>")
		return
	}

	payment, err := b.repo.Subscription.GetPayment(paymentID)
	if err != nil {
		log.Printf("Ошибка получения платежа %s: %v", paymentID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if payment == nil {
		b.reply(chatID, fmt.Sprintf("Платёж <code>%s</code> не найден", paymentID))
		return
	}
	if payment.Status != models.PaymentPending {
		b.reply(chatID, fmt.Sprintf("Платёж уже обработан, статус: %s", payment.Status))
		return
	}

	if err := b.repo.Subscription.UpdatePaymentStatus(payment.ID, models.PaymentCompleted); err != nil {
		log.Printf("Ошибка подтверждения платежа %s: %v", payment.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	endDate := subscriptionEndDate(payment.SubType, time.Now())
	if err := b.repo.Subscription.Create(payment.UserID, payment.SubType, endDate); err != nil {
		log.Printf("Ошибка активации подписки пользователя %d: %v", payment.UserID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	log.Printf("Платёж %s подтверждён, подписка %d активна до %s",
		payment.ID, payment.UserID, endDate.Format("02.01.2006"))
	b.reply(chatID, fmt.Sprintf("✅ Подписка пользователя %d активна до %s",
		payment.UserID, endDate.Format("02.01.2006")))
	b.reply(payment.UserID, fmt.Sprintf(
		"✅ Оплата получена! Подписка <b>%s</b> активна до <b>%s</b> 🎉",
		payment.SubType, endDate.Format("02.01.2006")))
}

// handleDeclinePayment отклоняет платёж. Формат: /decline <id платежа>
func (b *Bot) handleDeclinePayment(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.reply(chatID, "Неизвестная команда. Нажми /start")
		return
	}

	paymentID := strings.TrimSpace(message.CommandArguments())
	if paymentID == "" {
		b.reply(chatID, "Укажи id платежа: /decline <id>")
		return
	}

	payment, err := b.repo.Subscription.GetPayment(paymentID)
	if err != nil {
		log.Printf("Ошибка получения платежа %s: %v", paymentID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if payment == nil {
		b.reply(chatID, fmt.Sprintf("Платёж <code>%s</code> не найден", paymentID))
		return
	}

	if err := b.repo.Subscription.UpdatePaymentStatus(payment.ID, models.PaymentFailed); err != nil {
		log.Printf("Ошибка отклонения платежа %s: %v", payment.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	b.reply(chatID, fmt.Sprintf("Платёж <code>%s</code> отклонён", payment.ID))
	b.reply(payment.UserID,
		"❌ Оплата не подтверждена. Проверь перевод или напиши администратору.")
}

// handleFreeze замораживает подписку. Формат: /freeze <telegram id>
func (b *Bot) handleFreeze(message *tgbotapi.Message) {
	b.setSubscriptionStatus(message, models.SubFrozen,
		"Подписка пользователя %d заморожена",
		"❄️ Твоя подписка заморожена. Напиши администратору, чтобы вернуться к тренировкам.")
}

// handleUnfreeze размораживает подписку. Формат: /unfreeze <telegram id>
func (b *Bot) handleUnfreeze(message *tgbotapi.Message) {
	b.setSubscriptionStatus(message, models.SubActive,
		"Подписка пользователя %d снова активна",
		"🔥 Подписка разморожена, погнали тренироваться!")
}

func (b *Bot) setSubscriptionStatus(
	message *tgbotapi.Message,
	status models.SubscriptionStatus,
	adminText, userText string,
) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.reply(chatID, "Неизвестная команда. Нажми /start")
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Укажи telegram id пользователя: /%s <id>", message.Command()))
		return
	}

	sub, err := b.repo.Subscription.GetByUserID(userID)
	if err != nil {
		log.Printf("Ошибка получения подписки пользователя %d: %v", userID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if sub == nil {
		b.reply(chatID, fmt.Sprintf("У пользователя %d нет подписки", userID))
		return
	}

	if err := b.repo.Subscription.UpdateStatus(userID, status); err != nil {
		log.Printf("Ошибка смены статуса подписки пользователя %d: %v", userID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	b.reply(chatID, fmt.Sprintf(adminText, userID))
	b.reply(userID, userText)
}
