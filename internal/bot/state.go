package bot

import (
	"sync"

	"github.com/F1rebeard/progress-project-bot/internal/ranking"
)

// Ожидаемый от пользователя ввод
const (
	awaitingNothing       = ""
	awaitingGender        = "gender"
	awaitingLevel         = "level"
	awaitingResult        = "result"
	awaitingReps          = "reps"
	awaitingWeight        = "weight"
	awaitingWorkoutResult = "workout_result"
)

// chatState хранит состояние диалога одного чата
type chatState struct {
	categoryID  int64
	exerciseID  int64
	workoutID   int64
	awaiting    string
	coefficient *ranking.CoefficientData
}

// profileStates хранит состояния диалогов по чатам
var profileStates = struct {
	sync.RWMutex
	byChat map[int64]*chatState
}{
	byChat: make(map[int64]*chatState),
}

// getState возвращает состояние чата, создавая его при необходимости
func getState(chatID int64) *chatState {
	profileStates.Lock()
	defer profileStates.Unlock()

	state, ok := profileStates.byChat[chatID]
	if !ok {
		state = &chatState{}
		profileStates.byChat[chatID] = state
	}
	return state
}

// snapshot возвращает копию состояния чата
func snapshot(chatID int64) chatState {
	profileStates.RLock()
	defer profileStates.RUnlock()

	if state, ok := profileStates.byChat[chatID]; ok {
		return *state
	}
	return chatState{}
}

// setAwaiting выставляет ожидаемый ввод
func setAwaiting(chatID int64, awaiting string) {
	state := getState(chatID)
	profileStates.Lock()
	state.awaiting = awaiting
	profileStates.Unlock()
}

// setCategory запоминает выбранную категорию
func setCategory(chatID, categoryID int64) {
	state := getState(chatID)
	profileStates.Lock()
	state.categoryID = categoryID
	state.awaiting = awaitingNothing
	profileStates.Unlock()
}

// setExercise запоминает выбранное упражнение
func setExercise(chatID, exerciseID int64) {
	state := getState(chatID)
	profileStates.Lock()
	state.exerciseID = exerciseID
	state.awaiting = awaitingNothing
	state.coefficient = nil
	profileStates.Unlock()
}

// setWorkout запоминает показанную тренировку дня
func setWorkout(chatID, workoutID int64) {
	state := getState(chatID)
	profileStates.Lock()
	state.workoutID = workoutID
	state.awaiting = awaitingNothing
	profileStates.Unlock()
}

// setCoefficient запоминает данные для расчёта коэффициента
// и переводит чат в ожидание количества повторений
func setCoefficient(chatID int64, data *ranking.CoefficientData) {
	state := getState(chatID)
	profileStates.Lock()
	state.coefficient = data
	state.awaiting = awaitingReps
	profileStates.Unlock()
}

// resetInput сбрасывает ожидание ввода, не трогая выбранные категорию и упражнение
func resetInput(chatID int64) {
	profileStates.Lock()
	defer profileStates.Unlock()

	if state, ok := profileStates.byChat[chatID]; ok {
		state.awaiting = awaitingNothing
		state.coefficient = nil
	}
}
