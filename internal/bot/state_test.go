package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestWorkoutResultStateFlow(t *testing.T) {
	const chatID int64 = 901

	setWorkout(chatID, 7)
	if got := snapshot(chatID); got.workoutID != 7 || got.awaiting != awaitingNothing {
		t.Fatalf("после setWorkout: workoutID = %d, awaiting = %q", got.workoutID, got.awaiting)
	}

	setAwaiting(chatID, awaitingWorkoutResult)
	if got := snapshot(chatID); got.awaiting != awaitingWorkoutResult {
		t.Fatalf("awaiting = %q, want %q", got.awaiting, awaitingWorkoutResult)
	}

	// сброс ввода не забывает показанную тренировку
	resetInput(chatID)
	got := snapshot(chatID)
	if got.awaiting != awaitingNothing {
		t.Errorf("после resetInput awaiting = %q", got.awaiting)
	}
	if got.workoutID != 7 {
		t.Errorf("после resetInput workoutID = %d, want 7", got.workoutID)
	}
}

func hasButton(kb tgbotapi.ReplyKeyboardMarkup, want string) bool {
	for _, row := range kb.Keyboard {
		for _, btn := range row {
			if btn.Text == want {
				return true
			}
		}
	}
	return false
}

// Каждая кнопка из диспетчера сообщений должна быть доступна
// хотя бы с одной клавиатуры
func TestKeyboardButtonsReachable(t *testing.T) {
	tests := []struct {
		name   string
		kb     tgbotapi.ReplyKeyboardMarkup
		button string
	}{
		{"workout result on workout keyboard", workoutKeyboard(), btnWorkoutResult},
		{"back to exercise on leaderboard keyboard", leaderboardKeyboard(), btnBackExercise},
		{"add result on exercise keyboard", exerciseKeyboard(), btnAddResult},
		{"leaderboard on exercise keyboard", exerciseKeyboard(), btnLeaderboard},
		{"change weight on biometrics keyboard", biometricsKeyboard(), btnChangeWeight},
		{"pay on subscription keyboard", subscriptionKeyboard(), btnPay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !hasButton(tt.kb, tt.button) {
				t.Errorf("кнопки %q нет на клавиатуре", tt.button)
			}
		})
	}
}
