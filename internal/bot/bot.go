package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/F1rebeard/progress-project-bot/internal/config"
	"github.com/F1rebeard/progress-project-bot/internal/ranking"
	"github.com/F1rebeard/progress-project-bot/internal/repository"
)

// Bot представляет Telegram бота
type Bot struct {
	api    *tgbotapi.BotAPI
	repo   *repository.Repository
	engine *ranking.Engine
	config *config.Config
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, repo *repository.Repository, engine *ranking.Engine, cfg *config.Config) *Bot {
	return &Bot{
		api:    api,
		repo:   repo,
		engine: engine,
		config: cfg,
	}
}

// Start запускает цикл обработки обновлений
func (b *Bot) Start() error {
	log.Printf("Бот @%s запущен", b.api.Self.UserName)

	updates := b.initUpdatesChannel()
	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) initUpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u)
}

// send отправляет сообщение и логирует ошибку отправки
func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}

// reply отправляет текст в чат с HTML разметкой
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

// replyWithKeyboard отправляет текст с клавиатурой
func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	b.send(msg)
}
