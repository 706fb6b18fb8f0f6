package bot

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// requireActiveSubscription проверяет доступ к разделам,
// требующим активной подписки
func (b *Bot) requireActiveSubscription(message *tgbotapi.Message) bool {
	chatID := message.Chat.ID

	sub, err := b.repo.Subscription.GetByUserID(message.From.ID)
	if err != nil {
		log.Printf("Ошибка получения подписки пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return false
	}
	if sub == nil {
		b.replyWithKeyboard(chatID, "У тебя нету подписки 😭", subscriptionKeyboard())
		return false
	}
	if !sub.IsActive(time.Now()) {
		b.replyWithKeyboard(chatID,
			fmt.Sprintf("⚠️ Подписка %s", sub.Status), subscriptionKeyboard())
		return false
	}
	return true
}

// showSubscription показывает состояние подписки пользователя
func (b *Bot) showSubscription(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	sub, err := b.repo.Subscription.GetByUserID(message.From.ID)
	if err != nil {
		log.Printf("Ошибка получения подписки пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	text.WriteString("📅 <b>Подписка</b>\n\n")
	if sub == nil {
		text.WriteString("У тебя нету подписки 😭\n\nОформи подписку, чтобы получить доступ к тренировкам!")
	} else {
		fmt.Fprintf(&text, "Тип: <b>%s</b>\n", sub.Type)
		fmt.Fprintf(&text, "Статус: <b>%s</b>\n", sub.Status)
		fmt.Fprintf(&text, "Действует до: <b>%s</b>\n", sub.EndDate.Format("02.01.2006"))
		if !sub.IsActive(time.Now()) {
			text.WriteString("\n⚠️ Подписка неактивна, продли её, чтобы вернуться к тренировкам.")
		}
	}

	resetInput(chatID)
	b.replyWithKeyboard(chatID, text.String(), subscriptionKeyboard())
}

// handlePayment создаёт платёж и выдаёт инструкцию по оплате
func (b *Bot) handlePayment(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	payment, err := b.repo.Subscription.CreatePayment(
		message.From.ID, models.SubStandard, basicSubscriptionPrice)
	if err != nil {
		log.Printf("Ошибка создания платежа пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	b.reply(chatID, fmt.Sprintf(
		"💳 <b>Оплата подписки</b>\n\n"+
			"Сумма: <b>%d ₽</b>\n"+
			"Номер платежа: <code>%s</code>\n\n"+
			"После оплаты администратор подтвердит платёж и подписка активируется.",
		payment.Amount, payment.ID))
}

const basicSubscriptionPrice int64 = 3500
