package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "progress":
		b.handleStart(message)
	case "confirm":
		b.handleConfirmPayment(message)
	case "decline":
		b.handleDeclinePayment(message)
	case "freeze":
		b.handleFreeze(message)
	case "unfreeze":
		b.handleUnfreeze(message)
	default:
		b.reply(message.Chat.ID, "Неизвестная команда. Нажми /start")
	}
}

// handleStart регистрирует пользователя и показывает главное меню.
// У нового пользователя сначала спрашивается пол: без него не
// строятся лидерборды и нормативы
func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	from := message.From

	user, err := b.repo.User.GetByTelegramID(from.ID)
	if err != nil {
		log.Printf("Ошибка получения пользователя %d: %v", from.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}

	if user == nil {
		if err := b.repo.User.Create(from.ID, from.UserName, from.FirstName, from.LastName); err != nil {
			log.Printf("Ошибка регистрации пользователя %d: %v", from.ID, err)
			b.reply(chatID, "Произошла ошибка, попробуйте позже.")
			return
		}
		log.Printf("Зарегистрирован новый пользователь %d", from.ID)
	}

	if user == nil || user.Gender == "" {
		setAwaiting(chatID, awaitingGender)
		b.replyWithKeyboard(chatID, "Привет! 👋 Укажи свой пол:", genderKeyboard())
		return
	}

	b.showMainMenu(chatID)
}

func (b *Bot) showMainMenu(chatID int64) {
	resetInput(chatID)
	b.replyWithKeyboard(chatID, "Поехали! 🚀", mainMenuKeyboard())
}

// handleMessage разбирает текстовые сообщения: сначала ожидаемый ввод,
// затем кнопки меню, затем выбор категории или упражнения по названию
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.Text == "" {
		b.reply(chatID, "❌ Пожалуйста, введите числовое значение в виде текста!")
		return
	}

	switch snapshot(chatID).awaiting {
	case awaitingGender:
		b.handleGenderInput(message)
		return
	case awaitingLevel:
		b.handleLevelInput(message)
		return
	case awaitingWorkoutResult:
		b.handleWorkoutResultInput(message)
		return
	case awaitingResult:
		b.handleResultInput(message)
		return
	case awaitingReps:
		b.handleRepsInput(message)
		return
	case awaitingWeight:
		b.handleWeightInput(message)
		return
	}

	switch message.Text {
	case btnWorkout:
		b.showWorkoutOfTheDay(message)
	case btnWorkoutResult:
		b.askWorkoutResult(message)
	case btnProfile:
		b.showProfile(message)
	case btnSubscription:
		b.showSubscription(message)
	case btnBiometrics:
		b.showBiometrics(message)
	case btnChangeWeight:
		b.askWeight(message)
	case btnAddResult:
		b.startAddResult(message)
	case btnLeaderboard:
		b.showLeaderboard(message)
	case btnPay:
		b.handlePayment(message)
	case btnBackMain:
		b.showMainMenu(chatID)
	case btnBackProfile:
		b.showProfile(message)
	case btnBackCategory:
		b.showCategory(message)
	case btnBackExercise:
		b.showExercise(message)
	default:
		b.handleSelection(message)
	}
}

// handleGenderInput сохраняет выбранный пол
func (b *Bot) handleGenderInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	var gender models.Gender
	switch message.Text {
	case string(models.GenderMale):
		gender = models.GenderMale
	case string(models.GenderFemale):
		gender = models.GenderFemale
	default:
		b.replyWithKeyboard(chatID, "Выбери пол кнопкой ниже:", genderKeyboard())
		return
	}

	if err := b.repo.User.UpdateGender(message.From.ID, gender); err != nil {
		log.Printf("Ошибка обновления пола пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	b.askLevel(chatID)
}

// askLevel запрашивает уровень подготовки: от него зависят
// тренировки дня и нормативы упражнений
func (b *Bot) askLevel(chatID int64) {
	setAwaiting(chatID, awaitingLevel)
	b.replyWithKeyboard(chatID, "Теперь выбери свой уровень подготовки:", levelKeyboard())
}

// handleLevelInput сохраняет выбранный уровень подготовки
func (b *Bot) handleLevelInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	level, err := parseLevel(message.Text)
	if err != nil {
		b.replyWithKeyboard(chatID, err.Error(), levelKeyboard())
		return
	}

	if err := b.repo.User.UpdateLevel(message.From.ID, level); err != nil {
		log.Printf("Ошибка обновления уровня пользователя %d: %v", message.From.ID, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	b.reply(chatID, fmt.Sprintf("Уровень <b>%s</b> сохранен 💪", level))
	b.showMainMenu(chatID)
}

// handleSelection пробует распознать сообщение как выбор категории
// или упражнения по точному названию
func (b *Bot) handleSelection(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	categories, err := b.repo.Exercise.GetCategories()
	if err != nil {
		log.Printf("Ошибка получения категорий: %v", err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	for _, category := range categories {
		if message.Text == category.Name {
			b.selectCategory(message, category.ID)
			return
		}
	}

	exercise, err := b.repo.Exercise.GetByName(message.Text)
	if err != nil {
		log.Printf("Ошибка поиска упражнения %q: %v", message.Text, err)
		b.reply(chatID, "Произошла ошибка, попробуйте позже.")
		return
	}
	if exercise != nil {
		b.selectExercise(message, exercise.ID)
		return
	}

	b.showMainMenu(chatID)
}
