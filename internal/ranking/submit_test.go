package ranking

import (
	"errors"
	"testing"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

func setupSubmit() *fakeStore {
	store := newFakeStore()
	store.addExercise(weightExercise(1))
	store.addUser(10, "Иван", models.GenderMale, models.LevelFirst)
	store.addUser(20, "Анна", models.GenderFemale, models.LevelFirst)
	store.addStandard(models.ExerciseStandard{
		ExerciseID:     1,
		Level:          models.LevelFirst,
		MaleMinValue:   40,
		MaleMaxValue:   250,
		FemaleMinValue: 20,
		FemaleMaxValue: 180,
	})
	return store
}

func TestSubmitResult_AppendsToHistory(t *testing.T) {
	store := setupSubmit()
	engine := newTestEngine(store)

	for i, value := range []float64{100, 110, 105} {
		if _, err := engine.SubmitResult(10, 1, value); err != nil {
			t.Fatalf("SubmitResult(%v) error = %v", value, err)
		}
		history, err := store.History(10, 1)
		if err != nil {
			t.Fatalf("History() error = %v", err)
		}
		if len(history) != i+1 {
			t.Fatalf("history length = %d after %d submissions", len(history), i+1)
		}
	}

	// latest wins regardless of value
	latest, err := store.Latest(10, 1)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.Value != 105 {
		t.Errorf("Latest().Value = %v, want 105", latest.Value)
	}
}

func TestSubmitResult_RejectsNegative(t *testing.T) {
	store := setupSubmit()
	engine := newTestEngine(store)

	_, err := engine.SubmitResult(10, 1, -5)
	if !errors.Is(err, ErrNegativeResult) {
		t.Fatalf("SubmitResult(-5) error = %v, want ErrNegativeResult", err)
	}
	if len(store.results) != 0 {
		t.Error("rejected value must not be stored")
	}
}

func TestSubmitResult_StandardsRange(t *testing.T) {
	tests := []struct {
		name        string
		userID      int64
		value       float64
		wantErr     bool
		wantTooHigh bool
	}{
		{"male inside range", 10, 100, false, false},
		{"male at lower bound", 10, 40, false, false},
		{"male too high", 10, 300, true, true},
		{"male too low", 10, 30, true, false},
		{"female uses female bounds", 20, 170, false, false},
		{"female too high", 20, 200, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupSubmit()
			engine := newTestEngine(store)

			_, err := engine.SubmitResult(tt.userID, 1, tt.value)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("SubmitResult(%v) error = %v, want nil", tt.value, err)
				}
				return
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("SubmitResult(%v) error = %v, want RangeError", tt.value, err)
			}
			if rangeErr.TooHigh != tt.wantTooHigh {
				t.Errorf("TooHigh = %v, want %v", rangeErr.TooHigh, tt.wantTooHigh)
			}
		})
	}
}

func TestSubmitResult_SpeedTimeTooLowMessage(t *testing.T) {
	store := newFakeStore()
	store.addExercise(speedExercise(2))
	store.addUser(10, "Иван", models.GenderMale, models.LevelFirst)
	store.addStandard(models.ExerciseStandard{
		ExerciseID:     2,
		Level:          models.LevelFirst,
		MaleMinValue:   50,
		MaleMaxValue:   300,
		FemaleMinValue: 55,
		FemaleMaxValue: 300,
	})
	engine := newTestEngine(store)

	_, err := engine.SubmitResult(10, 2, 10)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("SubmitResult() error = %v, want RangeError", err)
	}
	if !rangeErr.SpeedTime || rangeErr.TooHigh {
		t.Errorf("RangeError = %+v, want unrealistically-fast rejection", rangeErr)
	}

	slow := &RangeError{}
	if rangeErr.Error() == slow.Error() {
		t.Error("fast rejection must read differently from a plain too-low one")
	}
}

func TestSubmitResult_NoStandardAcceptsAnyNonNegative(t *testing.T) {
	store := newFakeStore()
	store.addExercise(weightExercise(1))
	store.addUser(10, "Иван", models.GenderMale, models.LevelSecond)
	engine := newTestEngine(store)

	if _, err := engine.SubmitResult(10, 1, 9999); err != nil {
		t.Fatalf("SubmitResult() error = %v, want nil without a standard", err)
	}
}

func TestSubmitResult_UnknownExerciseAndUser(t *testing.T) {
	store := setupSubmit()
	engine := newTestEngine(store)

	if _, err := engine.SubmitResult(10, 99, 100); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("unknown exercise error = %v, want ErrExerciseNotFound", err)
	}
	if _, err := engine.SubmitResult(99, 1, 100); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}
}

func TestLatest_TieBrokenByHighestID(t *testing.T) {
	store := setupSubmit()
	sameDay := date(5)
	store.addResult(10, 1, 100, sameDay)
	store.addResult(10, 1, 95, sameDay)

	latest, err := store.Latest(10, 1)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.Value != 95 {
		t.Errorf("Latest().Value = %v, want 95 (higher id wins on equal dates)", latest.Value)
	}
}
