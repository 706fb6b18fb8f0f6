package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/ranking"
)

// showProfile показывает категории упражнений с процентом заполнения
func (b *Bot) showProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.requireActiveSubscription(message) {
		return
	}

	categories, err := b.repo.Exercise.GetCategories()
	if err != nil {
		log.Printf("Ошибка получения категорий: %v", err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	text.WriteString("👤 <b>Профиль</b>\n\n")

	totalFilled, totalExercises := 0, 0
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		filled, total, percentage, err := b.engine.CategoryCompletion(message.From.ID, category.Name)
		if err != nil {
			log.Printf("Ошибка подсчёта заполнения категории %q: %v", category.Name, err)
			b.reply(chatID, "Произошла ошибка, попробуйте позже.")
			return
		}
		if total == 0 {
			continue
		}
		totalFilled += filled
		totalExercises += total
		names = append(names, category.Name)
		fmt.Fprintf(&text, "%s — %d/%d (%d%%)\n", category.Name, filled, total, percentage)
	}

	totalPercentage := 0
	if totalExercises > 0 {
		totalPercentage = totalFilled * 100 / totalExercises
	}
	fmt.Fprintf(&text, "\nПрофиль заполнен на <b>%d%%</b> (%d/%d)\n\nВыбери категорию:",
		totalPercentage, totalFilled, totalExercises)

	resetInput(chatID)
	b.replyWithKeyboard(chatID, text.String(), listKeyboard(names, btnBiometrics, btnBackMain))
}

// selectCategory запоминает категорию и показывает её упражнения
func (b *Bot) selectCategory(message *tgbotapi.Message, categoryID int64) {
	setCategory(message.Chat.ID, categoryID)
	b.showCategory(message)
}

// showCategory показывает упражнения выбранной категории
// с последними результатами пользователя
func (b *Bot) showCategory(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.categoryID == 0 {
		b.showProfile(message)
		return
	}

	category, err := b.repo.Exercise.GetCategoryByID(state.categoryID)
	if err != nil {
		log.Printf("Ошибка получения категории %d: %v", state.categoryID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if category == nil {
		b.showProfile(message)
		return
	}

	exercises, err := b.repo.Exercise.GetByCategory(category.Name)
	if err != nil {
		log.Printf("Ошибка получения упражнений категории %q: %v", category.Name, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	filled, total, percentage, err := b.engine.CategoryCompletion(message.From.ID, category.Name)
	if err != nil {
		log.Printf("Ошибка подсчёта заполнения категории %q: %v", category.Name, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "<b>%s</b>\n", category.Name)
	if category.Description.Valid {
		fmt.Fprintf(&text, "%s\n", category.Description.String)
	}
	fmt.Fprintf(&text, "\n📊 Заполнено <b>%d/%d</b> (%d%%)\n\n", filled, total, percentage)

	names := make([]string, 0, len(exercises))
	for _, exercise := range exercises {
		names = append(names, exercise.Name)
		latest, err := b.repo.Result.Latest(message.From.ID, exercise.ID)
		if err != nil {
			log.Printf("Ошибка получения результата упражнения %d: %v", exercise.ID, err)
			b.reply(chatID, "Произошла ошибка, попробуйте позже.")
			return
		}
		if latest != nil {
			fmt.Fprintf(&text, "%s — %s %s\n",
				exercise.Name, ranking.FormatValue(latest.Value, &exercise), exercise.Unit)
		} else {
			fmt.Fprintf(&text, "%s — (Ноу инфоу)\n", exercise.Name)
		}
	}
	text.WriteString("\nВыбери упражнение:")

	b.replyWithKeyboard(chatID, text.String(), listKeyboard(names, btnBackProfile, btnBackMain))
}

// selectExercise запоминает упражнение и показывает его карточку
func (b *Bot) selectExercise(message *tgbotapi.Message, exerciseID int64) {
	setExercise(message.Chat.ID, exerciseID)
	b.showExercise(message)
}

// showExercise показывает карточку упражнения: описание, норматив
// для уровня пользователя и историю результатов
func (b *Bot) showExercise(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.exerciseID == 0 {
		b.showProfile(message)
		return
	}

	exercise, err := b.repo.Exercise.GetByID(state.exerciseID)
	if err != nil {
		log.Printf("Ошибка получения упражнения %d: %v", state.exerciseID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if exercise == nil {
		b.showProfile(message)
		return
	}

	user, err := b.repo.User.GetByTelegramID(message.From.ID)
	if err != nil || user == nil {
		log.Printf("Ошибка получения пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "<b>%s</b>\n", exercise.Name)
	if exercise.Description.Valid {
		fmt.Fprintf(&text, "%s\n", exercise.Description.String)
	}

	standard, err := b.repo.Exercise.Standard(exercise.ID, user.Level)
	if err != nil {
		log.Printf("Ошибка получения норматива упражнения %d: %v", exercise.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if standard != nil {
		min, max := standard.Range(user.Gender)
		fmt.Fprintf(&text, "\n😱 Диапазон значений: от <b>%s</b> до <b>%s %s</b>\n",
			ranking.FormatValue(min, exercise), ranking.FormatValue(max, exercise), exercise.Unit)
	}

	history, err := b.repo.Result.History(message.From.ID, exercise.ID)
	if err != nil {
		log.Printf("Ошибка получения истории упражнения %d: %v", exercise.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if len(history) == 0 {
		text.WriteString("\nЕще нет результатов для этого упражнения 🫠\n")
	} else {
		text.WriteString("\n<b>История результатов:</b>\n")
		for _, result := range history {
			fmt.Fprintf(&text, "%s: %s %s\n",
				result.Date.Format("02.01.2006"),
				ranking.FormatValue(result.Value, exercise), exercise.Unit)
		}
	}

	b.replyWithKeyboard(chatID, text.String(), exerciseKeyboard())
}

// startAddResult начинает ввод результата. Для коэффициентных
// упражнений сначала собираются данные для расчёта
func (b *Bot) startAddResult(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.exerciseID == 0 {
		b.showProfile(message)
		return
	}

	exercise, err := b.repo.Exercise.GetByID(state.exerciseID)
	if err != nil {
		log.Printf("Ошибка получения упражнения %d: %v", state.exerciseID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if exercise == nil {
		b.showProfile(message)
		return
	}

	if exercise.IsCoefficient() {
		data, ready, reason, err := b.engine.CoefficientData(message.From.ID, exercise.ID)
		if err != nil {
			log.Printf("Ошибка сбора данных коэффициента для %d: %v", exercise.ID, err)
			b.reply(chatID, "Произошла ошибка, попробуйте позже.")
			return
		}
		if !ready {
			b.reply(chatID, reason)
			return
		}
		setCoefficient(chatID, data)
		b.reply(chatID, fmt.Sprintf(
			"<b>✍️ Добавить результат</b>\n\n🏋️ Упражнение: <b>%s</b>\n"+
				"Рабочий вес: <b>%.1f кг</b>\n"+
				"Основан на результате в упражнении <b>%s</b>\n\n"+
				"Введи количество повторений с этим весом:",
			exercise.Name, data.WorkoutWeight, data.BaseExercise.Name))
		return
	}

	setAwaiting(chatID, awaitingResult)
	if exercise.IsTimeBased {
		b.reply(chatID, fmt.Sprintf(
			"<b>✍️ Добавить результат</b>\n\n🏋️ Упражнение: <b>%s</b>\n\n"+
				"Напиши результат в формате ММ:СС (например, 2:30) или в секундах (например, 150)",
			exercise.Name))
	} else {
		b.reply(chatID, fmt.Sprintf(
			"<b>✍️ Добавить результат</b>\n\n🏋️ Упражнение: <b>%s</b>\n\n"+
				"Введи числовое значение (например, 75)",
			exercise.Name))
	}
}

// handleResultInput сохраняет введённый результат
func (b *Bot) handleResultInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)

	exercise, err := b.repo.Exercise.GetByID(state.exerciseID)
	if err != nil || exercise == nil {
		log.Printf("Ошибка получения упражнения %d: %v", state.exerciseID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		resetInput(chatID)
		return
	}

	value, err := parseResultValue(message.Text, exercise.IsTimeBased)
	if err != nil {
		// ввод остаётся у пользователя, пусть исправит и пришлёт снова
		b.reply(chatID, err.Error())
		return
	}

	result, err := b.engine.SubmitResult(message.From.ID, exercise.ID, value)
	if err != nil {
		b.replySubmitError(chatID, err)
		return
	}

	resetInput(chatID)
	b.reply(chatID, fmt.Sprintf(
		"✅ Результат <b>%s %s</b> для упражнения <b>%s</b> успешно добавлен!",
		ranking.FormatValue(result.Value, exercise), exercise.Unit, exercise.Name))
	b.showExercise(message)
}

// handleRepsInput считает и сохраняет коэффициент по количеству повторений
func (b *Bot) handleRepsInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.coefficient == nil {
		resetInput(chatID)
		b.showExercise(message)
		return
	}

	reps, err := parseReps(message.Text)
	if err != nil {
		b.reply(chatID, err.Error())
		return
	}
	if err := b.engine.ValidateReps(reps); err != nil {
		b.reply(chatID, err.Error())
		return
	}

	data := state.coefficient
	coefficient := ranking.CoefficientValue(data, reps)
	result, err := b.engine.SubmitResult(message.From.ID, data.CoefficientExercise.ID, coefficient)
	if err != nil {
		b.replySubmitError(chatID, err)
		return
	}

	resetInput(chatID)
	b.reply(chatID, fmt.Sprintf(
		"✅ Результат сохранен\n\n"+
			"Упражнение: <b>%s</b>\n"+
			"Повторения: <b>%d</b>\n"+
			"Рабочий вес: <b>%.1f кг</b>\n"+
			"Коэффициент Синклера: <b>%v</b>",
		data.CoefficientExercise.Name, reps, data.WorkoutWeight, result.Value))
	b.showExercise(message)
}

// replySubmitError превращает ошибку сохранения результата
// в сообщение пользователю
func (b *Bot) replySubmitError(chatID int64, err error) {
	var rangeErr *ranking.RangeError
	switch {
	case errors.Is(err, ranking.ErrNegativeResult),
		errors.As(err, &rangeErr),
		errors.Is(err, ranking.ErrExerciseNotFound):
		b.reply(chatID, "❌ "+err.Error())
	default:
		log.Printf("Ошибка сохранения результата: %v", err)
		b.reply(chatID, "❌ Произошла ошибка при добавлении результата.\n\n"+
			"Пожалуйста, попробуйте снова или обратитесь к администратору.")
	}
}

// showLeaderboard показывает лидерборд выбранного упражнения
// и место пользователя в нём
func (b *Bot) showLeaderboard(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	state := snapshot(chatID)
	if state.exerciseID == 0 {
		b.showProfile(message)
		return
	}

	exercise, err := b.repo.Exercise.GetByID(state.exerciseID)
	if err != nil || exercise == nil {
		log.Printf("Ошибка получения упражнения %d: %v", state.exerciseID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	user, err := b.repo.User.GetByTelegramID(message.From.ID)
	if err != nil || user == nil {
		log.Printf("Ошибка получения пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	entries, err := b.engine.Leaderboard(exercise.ID, user.Gender)
	if err != nil {
		log.Printf("Ошибка построения лидерборда упражнения %d: %v", exercise.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	rank, err := b.engine.UserRank(message.From.ID, exercise.ID)
	if err != nil {
		log.Printf("Ошибка расчёта места пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📊 <b>Лидерборд: %s</b>\n\n", exercise.Name)
	if rank != nil {
		fmt.Fprintf(&text, "🏆 Твое место: <b>%d</b> из %d\nРезультат: <b>%s %s</b>\n\n",
			rank.Position, rank.TotalUsers, rank.FormattedValue, exercise.Unit)
	} else {
		text.WriteString("❗ Нет результатов в этом упражнении\n\n")
	}

	text.WriteString("<b>🥇 Топ участников:</b>\n")
	for _, entry := range entries {
		fmt.Fprintf(&text, "%d. %s", entry.Position, entry.Name)
		if entry.Username != "" {
			fmt.Fprintf(&text, " @%s", entry.Username)
		}
		fmt.Fprintf(&text, " <b>%s %s</b>\n", entry.FormattedValue, entry.Unit)
	}

	b.replyWithKeyboard(chatID, text.String(), leaderboardKeyboard())
}

// showBiometrics показывает биометрию пользователя
func (b *Bot) showBiometrics(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	bio, err := b.repo.User.Biometrics(message.From.ID)
	if err != nil {
		log.Printf("Ошибка получения биометрии пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	var text strings.Builder
	text.WriteString("<b>Биометрия</b>\n\n")
	if bio != nil && bio.Weight.Valid {
		fmt.Fprintf(&text, "⚖️ Вес: %.1f кг\n", bio.Weight.Float64)
	} else {
		text.WriteString("⚖️ Вес: не указан\n")
	}
	if bio != nil && bio.Height.Valid {
		fmt.Fprintf(&text, "📏 Рост: %d см\n", bio.Height.Int64)
	}
	if bio != nil && bio.Birthday.Valid {
		fmt.Fprintf(&text, "🎂 День рождения: %s\n", bio.Birthday.Time.Format("02.01.2006"))
	}

	resetInput(chatID)
	b.replyWithKeyboard(chatID, text.String(), biometricsKeyboard())
}

// askWeight запрашивает вес тела
func (b *Bot) askWeight(message *tgbotapi.Message) {
	setAwaiting(message.Chat.ID, awaitingWeight)
	b.reply(message.Chat.ID, "⚖️ Введите свой <b>вес</b> в килограммах (например, 70.2):")
}

// handleWeightInput сохраняет вес тела
func (b *Bot) handleWeightInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	weight, err := parseBodyWeight(message.Text)
	if err != nil {
		b.reply(chatID, err.Error())
		return
	}

	if err := b.repo.User.UpdateWeight(message.From.ID, weight); err != nil {
		log.Printf("Ошибка обновления веса пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	resetInput(chatID)
	b.reply(chatID, fmt.Sprintf("✅ Вес обновлен: %.1f кг", weight))
	b.showBiometrics(message)
}
