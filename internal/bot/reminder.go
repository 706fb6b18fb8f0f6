package bot

import (
	"log"
	"time"

	"github.com/robfig/cron"
)

// StartReminder запускает ежедневную рассылку тренировки дня
// активным подписчикам по расписанию из конфигурации
func (b *Bot) StartReminder() (*cron.Cron, error) {
	c := cron.New()
	if err := c.AddFunc(b.config.ReminderSpec, b.broadcastWorkout); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("Рассылка тренировки дня запущена по расписанию %q", b.config.ReminderSpec)
	return c, nil
}

func (b *Bot) broadcastWorkout() {
	ids, err := b.repo.Subscription.ActiveSubscriberIDs(time.Now())
	if err != nil {
		log.Printf("Ошибка получения активных подписчиков: %v", err)
		return
	}

	for _, userID := range ids {
		user, err := b.repo.User.GetByTelegramID(userID)
		if err != nil || user == nil {
			log.Printf("Ошибка получения пользователя %d для рассылки: %v", userID, err)
			continue
		}
		text, _, err := b.workoutOfTheDay(userID, user.Level)
		if err != nil {
			log.Printf("Ошибка получения тренировки для %d: %v", userID, err)
			continue
		}
		b.reply(userID, text)
	}
	log.Printf("Тренировка дня разослана %d подписчикам", len(ids))
}
