package ranking

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

func coefficientExercise(id int64, name string) models.ProfileExercise {
	return models.ProfileExercise{
		ID:           id,
		Name:         name,
		CategoryName: "Сила",
		Unit:         models.UnitCoefficient,
		ResultType:   models.ResultCoefficient,
	}
}

func baseExercise(id int64, name string) models.ProfileExercise {
	return models.ProfileExercise{
		ID:           id,
		Name:         name,
		CategoryName: "Сила",
		Unit:         models.UnitKilograms,
		ResultType:   models.ResultWeight,
	}
}

// setupCoefficient builds a store where user 10 has body weight and a
// base result for the squat-based coefficient exercise 1.
func setupCoefficient(baseValue, bodyWeight float64) *fakeStore {
	store := newFakeStore()
	store.addUser(10, "Иван", models.GenderMale, models.LevelFirst)
	store.weights[10] = bodyWeight
	store.addExercise(coefficientExercise(1, "Присед на повторения"))
	store.addExercise(baseExercise(2, "Присед со штангой"))
	store.addResult(10, 2, baseValue, date(1))
	return store
}

func TestCoefficientData_Ready(t *testing.T) {
	store := setupCoefficient(100, 80)
	engine := newTestEngine(store)

	data, ready, reason, err := engine.CoefficientData(10, 1)
	if err != nil {
		t.Fatalf("CoefficientData() error = %v", err)
	}
	if !ready {
		t.Fatalf("CoefficientData() not ready: %s", reason)
	}
	if data.WorkoutWeight != 70.0 {
		t.Errorf("WorkoutWeight = %v, want 70.0", data.WorkoutWeight)
	}
	if data.BaseExercise == nil || data.BaseExercise.Name != "Присед со штангой" {
		t.Errorf("BaseExercise = %+v, want Присед со штангой", data.BaseExercise)
	}
}

func TestCoefficientData_Preconditions(t *testing.T) {
	tests := []struct {
		name       string
		setup      func() *fakeStore
		exerciseID int64
		wantReason string
	}{
		{
			name: "missing biometrics",
			setup: func() *fakeStore {
				store := setupCoefficient(100, 80)
				delete(store.weights, 10)
				return store
			},
			exerciseID: 1,
			wantReason: "вес тела в биометрии",
		},
		{
			name:       "exercise not found",
			setup:      func() *fakeStore { return setupCoefficient(100, 80) },
			exerciseID: 99,
			wantReason: "Упражнение не найдено",
		},
		{
			name: "no base exercise configured",
			setup: func() *fakeStore {
				store := setupCoefficient(100, 80)
				store.addExercise(coefficientExercise(5, "Неизвестный коэффициент"))
				return store
			},
			exerciseID: 5,
			wantReason: "не задано",
		},
		{
			name: "base exercise missing from catalog",
			setup: func() *fakeStore {
				store := setupCoefficient(100, 80)
				delete(store.exercises, 2)
				return store
			},
			exerciseID: 1,
			wantReason: "нет в базе данных",
		},
		{
			name: "no base result yet",
			setup: func() *fakeStore {
				store := setupCoefficient(100, 80)
				store.results = nil
				return store
			},
			exerciseID: 1,
			wantReason: "Сперва необходимо указать результат",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(tt.setup())
			_, ready, reason, err := engine.CoefficientData(10, tt.exerciseID)
			if err != nil {
				t.Fatalf("CoefficientData() error = %v", err)
			}
			if ready {
				t.Fatal("CoefficientData() ready = true, want precondition failure")
			}
			if !strings.Contains(reason, tt.wantReason) {
				t.Errorf("reason = %q, want it to mention %q", reason, tt.wantReason)
			}
		})
	}
}

func TestCoefficientValue(t *testing.T) {
	tests := []struct {
		name       string
		exercise   string
		baseValue  float64
		bodyWeight float64
		reps       int
		wantWeight float64
		wantValue  float64
	}{
		{
			// 100 * 0.7 = 70; 5 * 70 / 80 = 4.375 -> 4.38
			name:       "regular coefficient",
			exercise:   "Присед на повторения",
			baseValue:  100,
			bodyWeight: 80,
			reps:       5,
			wantWeight: 70.0,
			wantValue:  4.38,
		},
		{
			// (50+80)*0.7-80 = 11; 10 * 11 = 110
			name:       "weighted hang",
			exercise:   "Подтягивания с подвесом",
			baseValue:  50,
			bodyWeight: 80,
			reps:       10,
			wantWeight: 11.0,
			wantValue:  110.0,
		},
		{
			// (0+80)*0.7-80 = -24 -> clamped to 0; reps-only fallback
			name:       "weighted hang clamped to zero",
			exercise:   "Подтягивания с подвесом",
			baseValue:  0,
			bodyWeight: 80,
			reps:       8,
			wantWeight: 0,
			wantValue:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.addUser(10, "Иван", models.GenderMale, models.LevelFirst)
			store.weights[10] = tt.bodyWeight
			store.addExercise(coefficientExercise(1, tt.exercise))
			baseName := DefaultConfig().BaseExercises[tt.exercise]
			store.addExercise(baseExercise(2, baseName))
			store.addResult(10, 2, tt.baseValue, date(1))

			engine := newTestEngine(store)
			data, ready, reason, err := engine.CoefficientData(10, 1)
			if err != nil {
				t.Fatalf("CoefficientData() error = %v", err)
			}
			if !ready {
				t.Fatalf("CoefficientData() not ready: %s", reason)
			}
			if math.Abs(data.WorkoutWeight-tt.wantWeight) > 1e-9 {
				t.Errorf("WorkoutWeight = %v, want %v", data.WorkoutWeight, tt.wantWeight)
			}
			if got := CoefficientValue(data, tt.reps); got != tt.wantValue {
				t.Errorf("CoefficientValue(reps=%d) = %v, want %v", tt.reps, got, tt.wantValue)
			}
		})
	}
}

func TestValidateReps(t *testing.T) {
	engine := newTestEngine(newFakeStore())

	if err := engine.ValidateReps(5); err != nil {
		t.Errorf("ValidateReps(5) = %v, want nil", err)
	}

	var repsErr *RepsOutOfRangeError
	err := engine.ValidateReps(0)
	if !errors.As(err, &repsErr) || repsErr.TooHigh {
		t.Errorf("ValidateReps(0) = %v, want too-low RepsOutOfRangeError", err)
	}
	err = engine.ValidateReps(101)
	if !errors.As(err, &repsErr) || !repsErr.TooHigh {
		t.Errorf("ValidateReps(101) = %v, want too-high RepsOutOfRangeError", err)
	}
	if engine.ValidateReps(0).Error() == engine.ValidateReps(101).Error() {
		t.Error("bound violations must produce distinct messages")
	}
}

func TestSubmitCoefficient(t *testing.T) {
	store := setupCoefficient(100, 80)
	engine := newTestEngine(store)

	result, data, err := engine.SubmitCoefficient(10, 1, 5)
	if err != nil {
		t.Fatalf("SubmitCoefficient() error = %v", err)
	}
	if result.Value != 4.38 {
		t.Errorf("stored value = %v, want 4.38", result.Value)
	}
	if data.WorkoutWeight != 70.0 {
		t.Errorf("WorkoutWeight = %v, want 70.0", data.WorkoutWeight)
	}

	// the coefficient lands in the normal history of the exercise
	history, err := store.History(10, 1)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 || history[0].Value != 4.38 {
		t.Errorf("history = %+v, want a single 4.38 entry", history)
	}
}

func TestSubmitCoefficient_NotReady(t *testing.T) {
	store := setupCoefficient(100, 80)
	delete(store.weights, 10)
	engine := newTestEngine(store)

	_, _, err := engine.SubmitCoefficient(10, 1, 5)
	var notReady *NotReadyError
	if !errors.As(err, &notReady) {
		t.Fatalf("SubmitCoefficient() error = %v, want NotReadyError", err)
	}
	if !strings.Contains(notReady.Reason, "биометрии") {
		t.Errorf("reason = %q, want the missing-biometrics reason", notReady.Reason)
	}
}

func TestSubmitCoefficient_RepsOutOfRange(t *testing.T) {
	store := setupCoefficient(100, 80)
	engine := newTestEngine(store)

	_, _, err := engine.SubmitCoefficient(10, 1, 200)
	var repsErr *RepsOutOfRangeError
	if !errors.As(err, &repsErr) {
		t.Fatalf("SubmitCoefficient() error = %v, want RepsOutOfRangeError", err)
	}
	if len(store.results) != 1 {
		t.Error("rejected submission must not add a result row")
	}
}

func TestIsWeightedHangVariant(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Подтягивания с подвесом", true},
		{"Отжимания на брусьях с ПОДВЕСОМ", true},
		{"Присед на повторения", false},
		{"Жим лёжа", false},
	}
	for _, tt := range tests {
		if got := isWeightedHangVariant(tt.name); got != tt.want {
			t.Errorf("isWeightedHangVariant(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
