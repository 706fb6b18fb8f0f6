package bot

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// showWorkoutOfTheDay показывает тренировку дня: для уровня СТАРТ —
// по дню программы с начала подписки, для остальных — по дате
func (b *Bot) showWorkoutOfTheDay(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.requireActiveSubscription(message) {
		return
	}

	user, err := b.repo.User.GetByTelegramID(message.From.ID)
	if err != nil || user == nil {
		log.Printf("Ошибка получения пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	text, workoutID, err := b.workoutOfTheDay(message.From.ID, user.Level)
	if err != nil {
		log.Printf("Ошибка получения тренировки дня для %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	// результат записывается только к тренировке по дате,
	// дни программы СТАРТ живут в отдельной таблице
	if workoutID != 0 {
		setWorkout(chatID, workoutID)
		b.replyWithKeyboard(chatID, text, workoutKeyboard())
		return
	}
	b.reply(chatID, text)
}

// workoutOfTheDay возвращает текст тренировки дня и id тренировки,
// 0 вместо id для программы СТАРТ и дней отдыха
func (b *Bot) workoutOfTheDay(userID int64, level models.UserLevel) (string, int64, error) {
	if level == models.LevelStart {
		text, err := b.startWorkoutText(userID)
		return text, 0, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	workout, err := b.repo.Workout.GetForDate(today, level)
	if err != nil {
		return "", 0, err
	}
	if workout == nil || !workout.Description.Valid {
		return "Сегодня тренировки нет, отдыхай 😴", 0, nil
	}
	text := fmt.Sprintf("💪 <b>Тренировка дня — %s</b>\n\n%s",
		workout.Date.Format("02.01.2006"), workout.Description.String)
	return text, workout.ID, nil
}

// startWorkoutText собирает тренировку программы СТАРТ: номер дня
// считается от начала подписки и ограничивается последним
// загруженным днём программы
func (b *Bot) startWorkoutText(userID int64) (string, error) {
	day, err := b.repo.Subscription.StartProgramDay(userID, time.Now())
	if err != nil {
		return "", err
	}

	days, err := b.repo.Workout.GetStartWorkoutDays()
	if err != nil {
		return "", err
	}
	if len(days) == 0 {
		return "Программа СТАРТ пока не загружена, загляни позже 🙏", nil
	}
	if lastDay := days[len(days)-1]; day > lastDay {
		day = lastDay
	}

	workout, err := b.repo.Workout.GetStartWorkout(day)
	if err != nil {
		return "", err
	}
	if workout == nil {
		return "Сегодня тренировки нет, отдыхай 😴", nil
	}
	return fmt.Sprintf("💪 <b>СТАРТ, день %d</b>\n\n%s",
		workout.DayNumber, workout.Description), nil
}

// askWorkoutResult запрашивает результат тренировки дня
func (b *Bot) askWorkoutResult(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if snapshot(chatID).workoutID == 0 {
		b.showWorkoutOfTheDay(message)
		return
	}
	setAwaiting(chatID, awaitingWorkoutResult)
	b.reply(chatID, "✍️ Напиши свой результат тренировки текстом: время, раунды, веса — как выполнил.")
}

// handleWorkoutResultInput сохраняет результат тренировки дня
func (b *Bot) handleWorkoutResultInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.workoutID == 0 {
		resetInput(chatID)
		b.showWorkoutOfTheDay(message)
		return
	}

	if _, err := b.repo.Workout.SaveResult(state.workoutID, message.From.ID, message.Text); err != nil {
		log.Printf("Ошибка сохранения результата тренировки %d: %v", state.workoutID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	resetInput(chatID)
	b.replyWithKeyboard(chatID, "✅ Результат тренировки записан, так держать! 🔥", mainMenuKeyboard())
}
