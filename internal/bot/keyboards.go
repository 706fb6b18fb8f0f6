package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// Тексты кнопок меню
const (
	btnWorkout       = "💪 Тренировка дня"
	btnWorkoutResult = "✍️ Результат тренировки"
	btnProfile       = "👤 Профиль"
	btnSubscription  = "📅 Подписка"
	btnBiometrics    = "📏 Биометрия"
	btnChangeWeight  = "Изменить вес"
	btnAddResult     = "✍️ Добавить результат"
	btnLeaderboard   = "📊 Лидерборд"
	btnPay           = "💳 Оплатить подписку"
	btnBackMain      = "В главное меню"
	btnBackProfile   = "Назад к категориям"
	btnBackCategory  = "Назад к упражнениям"
	btnBackExercise  = "Назад к упражнению"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWorkout),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProfile),
			tgbotapi.NewKeyboardButton(btnSubscription),
		),
	)
}

func genderKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(models.GenderMale)),
			tgbotapi.NewKeyboardButton(string(models.GenderFemale)),
		),
	)
}

func levelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(models.LevelFirst)),
			tgbotapi.NewKeyboardButton(string(models.LevelSecond)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(models.LevelMinkaifa)),
			tgbotapi.NewKeyboardButton(string(models.LevelCompetition)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(string(models.LevelStart)),
		),
	)
}

func workoutKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWorkoutResult),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackMain),
		),
	)
}

func leaderboardKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackExercise),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackCategory),
			tgbotapi.NewKeyboardButton(btnBackMain),
		),
	)
}

// listKeyboard строит клавиатуру из названий по одной кнопке в ряд,
// с дополнительными кнопками навигации внизу
func listKeyboard(names []string, navButtons ...string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(names)+1)
	for _, name := range names {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(name)))
	}
	for _, nav := range navButtons {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(nav)))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func exerciseKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddResult),
			tgbotapi.NewKeyboardButton(btnLeaderboard),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackCategory),
			tgbotapi.NewKeyboardButton(btnBackMain),
		),
	)
}

func biometricsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnChangeWeight),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackProfile),
			tgbotapi.NewKeyboardButton(btnBackMain),
		),
	)
}

func subscriptionKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnPay),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBackMain),
		),
	)
}
