package ranking

import (
	"database/sql"
	"sort"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// fakeStore is an in-memory implementation of the Results, Exercises
// and Users interfaces for engine tests.
type fakeStore struct {
	users     map[int64]*models.User
	weights   map[int64]float64
	exercises map[int64]*models.ProfileExercise
	standards map[int64]map[models.UserLevel]*models.ExerciseStandard
	results   []models.UserProfileResult
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[int64]*models.User),
		weights:   make(map[int64]float64),
		exercises: make(map[int64]*models.ProfileExercise),
		standards: make(map[int64]map[models.UserLevel]*models.ExerciseStandard),
	}
}

func (s *fakeStore) addUser(id int64, name string, gender models.Gender, level models.UserLevel) {
	s.users[id] = &models.User{
		TelegramID: id,
		FirstName:  sql.NullString{String: name, Valid: name != ""},
		Gender:     gender,
		Level:      level,
		Role:       models.RoleUser,
	}
}

func (s *fakeStore) addExercise(e models.ProfileExercise) {
	copied := e
	s.exercises[e.ID] = &copied
}

func (s *fakeStore) addStandard(st models.ExerciseStandard) {
	if s.standards[st.ExerciseID] == nil {
		s.standards[st.ExerciseID] = make(map[models.UserLevel]*models.ExerciseStandard)
	}
	copied := st
	s.standards[st.ExerciseID][st.Level] = &copied
}

func (s *fakeStore) addResult(userID, exerciseID int64, value float64, date time.Time) {
	s.nextID++
	s.results = append(s.results, models.UserProfileResult{
		ID:         s.nextID,
		UserID:     userID,
		ExerciseID: exerciseID,
		Value:      value,
		Date:       date,
	})
}

// Users

func (s *fakeStore) GetByTelegramID(telegramID int64) (*models.User, error) {
	return s.users[telegramID], nil
}

func (s *fakeStore) Weight(telegramID int64) (float64, bool, error) {
	weight, ok := s.weights[telegramID]
	return weight, ok, nil
}

// Exercises

func (s *fakeStore) GetByID(id int64) (*models.ProfileExercise, error) {
	return s.exercises[id], nil
}

func (s *fakeStore) GetByName(name string) (*models.ProfileExercise, error) {
	for _, e := range s.exercises {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CountInCategory(categoryName string) (int, error) {
	count := 0
	for _, e := range s.exercises {
		if e.CategoryName == categoryName {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) Standard(exerciseID int64, level models.UserLevel) (*models.ExerciseStandard, error) {
	return s.standards[exerciseID][level], nil
}

// Results

func (s *fakeStore) Latest(userID, exerciseID int64) (*models.UserProfileResult, error) {
	var latest *models.UserProfileResult
	for i := range s.results {
		r := &s.results[i]
		if r.UserID != userID || r.ExerciseID != exerciseID {
			continue
		}
		if latest == nil || r.Date.After(latest.Date) ||
			(r.Date.Equal(latest.Date) && r.ID > latest.ID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (s *fakeStore) History(userID, exerciseID int64) ([]models.UserProfileResult, error) {
	var history []models.UserProfileResult
	for _, r := range s.results {
		if r.UserID == userID && r.ExerciseID == exerciseID {
			history = append(history, r)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		if history[i].Date.Equal(history[j].Date) {
			return history[i].ID > history[j].ID
		}
		return history[i].Date.After(history[j].Date)
	})
	return history, nil
}

func (s *fakeStore) CountUniqueExercises(userID int64, categoryName string) (int, error) {
	seen := make(map[int64]bool)
	for _, r := range s.results {
		if r.UserID != userID {
			continue
		}
		exercise := s.exercises[r.ExerciseID]
		if exercise != nil && exercise.CategoryName == categoryName {
			seen[r.ExerciseID] = true
		}
	}
	return len(seen), nil
}

func (s *fakeStore) Submit(userID, exerciseID int64, value float64, date time.Time) (*models.UserProfileResult, error) {
	s.addResult(userID, exerciseID, value, date)
	copied := s.results[len(s.results)-1]
	return &copied, nil
}

func (s *fakeStore) ForExercise(exerciseID int64, gender models.Gender) ([]models.ExerciseResult, error) {
	var rows []models.ExerciseResult
	for _, r := range s.results {
		if r.ExerciseID != exerciseID {
			continue
		}
		user := s.users[r.UserID]
		if user == nil || user.Gender != gender {
			continue
		}
		rows = append(rows, models.ExerciseResult{
			ResultID:  r.ID,
			UserID:    r.UserID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Gender:    user.Gender,
			Value:     r.Value,
			Date:      r.Date,
		})
	}
	return rows, nil
}

func newTestEngine(store *fakeStore) *Engine {
	return NewEngine(store, store, store, DefaultConfig())
}

func date(day int) time.Time {
	return time.Date(2025, time.April, day, 12, 0, 0, 0, time.UTC)
}
