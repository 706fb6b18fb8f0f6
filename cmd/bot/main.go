package main

import (
	"database/sql"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"github.com/F1rebeard/progress-project-bot/internal/bot"
	"github.com/F1rebeard/progress-project-bot/internal/config"
	"github.com/F1rebeard/progress-project-bot/internal/ranking"
	"github.com/F1rebeard/progress-project-bot/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("База данных недоступна: %v", err)
	}

	repo := repository.New(db)
	engine := ranking.NewEngine(repo.Result, repo.Exercise, repo.User, ranking.DefaultConfig())

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка создания Telegram бота: %v", err)
	}

	tgBot := bot.New(api, repo, engine, cfg)

	reminder, err := tgBot.StartReminder()
	if err != nil {
		log.Fatalf("Ошибка запуска рассылки: %v", err)
	}
	defer reminder.Stop()

	if err := tgBot.Start(); err != nil {
		log.Fatalf("Ошибка работы бота: %v", err)
	}
}
