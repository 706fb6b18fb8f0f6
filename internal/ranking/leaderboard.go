package ranking

import (
	"sort"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

// Entry is one row of an exercise leaderboard.
type Entry struct {
	Position       int
	UserID         int64
	Name           string
	Username       string
	Value          float64
	FormattedValue string
	Unit           models.MeasurementUnit
}

// Rank is a single user's place in an exercise leaderboard.
type Rank struct {
	Position       int
	TotalUsers     int
	Value          float64
	FormattedValue string
}

type userBest struct {
	userID   int64
	name     string
	username string
	value    float64
}

// bestPerUser reduces raw result rows to one best value per user.
// Higher is better except for timed speed exercises, where lower wins.
func bestPerUser(rows []models.ExerciseResult, lowerIsBetter bool) []userBest {
	byUser := make(map[int64]*userBest)
	for i := range rows {
		row := &rows[i]
		best, ok := byUser[row.UserID]
		if !ok {
			byUser[row.UserID] = &userBest{
				userID:   row.UserID,
				name:     row.DisplayName(),
				username: row.Username.String,
				value:    row.Value,
			}
			continue
		}
		if betterThan(row.Value, best.value, lowerIsBetter) {
			best.value = row.Value
		}
	}

	bests := make([]userBest, 0, len(byUser))
	for _, best := range byUser {
		bests = append(bests, *best)
	}
	return bests
}

// betterThan reports whether a is strictly better than b.
func betterThan(a, b float64, lowerIsBetter bool) bool {
	if lowerIsBetter {
		return a < b
	}
	return a > b
}

// sortBests orders bests from best to worst; equal values are ordered by
// user id so the output is deterministic.
func sortBests(bests []userBest, lowerIsBetter bool) {
	sort.Slice(bests, func(i, j int) bool {
		if bests[i].value == bests[j].value {
			return bests[i].userID < bests[j].userID
		}
		return betterThan(bests[i].value, bests[j].value, lowerIsBetter)
	})
}

// Leaderboard builds the leaderboard of an exercise for one gender.
// Positions are sequential starting from 1; users with equal best values
// still occupy separate consecutive positions. Users without results do
// not appear; an exercise nobody attempted yields an empty list.
func (e *Engine) Leaderboard(exerciseID int64, gender models.Gender) ([]Entry, error) {
	exercise, err := e.exercises.GetByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	rows, err := e.results.ForExercise(exerciseID, gender)
	if err != nil {
		return nil, err
	}

	bests := bestPerUser(rows, exercise.LowerIsBetter())
	sortBests(bests, exercise.LowerIsBetter())

	entries := make([]Entry, 0, len(bests))
	for i, best := range bests {
		entries = append(entries, Entry{
			Position:       i + 1,
			UserID:         best.userID,
			Name:           best.name,
			Username:       best.username,
			Value:          best.value,
			FormattedValue: FormatValue(best.value, exercise),
			Unit:           exercise.Unit,
		})
	}
	return entries, nil
}

// UserRank computes the user's place among same-gender users of the
// exercise by counting users with a strictly better best value. The
// result agrees with the position the user holds in Leaderboard output.
// Returns nil without error when the user has no results yet.
func (e *Engine) UserRank(userID, exerciseID int64) (*Rank, error) {
	user, err := e.users.GetByTelegramID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exercise, err := e.exercises.GetByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	rows, err := e.results.ForExercise(exerciseID, user.Gender)
	if err != nil {
		return nil, err
	}

	bests := bestPerUser(rows, exercise.LowerIsBetter())
	var mine *userBest
	for i := range bests {
		if bests[i].userID == userID {
			mine = &bests[i]
			break
		}
	}
	if mine == nil {
		return nil, nil
	}

	position := 1
	for i := range bests {
		if bests[i].userID == userID {
			continue
		}
		if betterThan(bests[i].value, mine.value, exercise.LowerIsBetter()) {
			position++
		}
	}
	return &Rank{
		Position:       position,
		TotalUsers:     len(bests),
		Value:          mine.value,
		FormattedValue: FormatValue(mine.value, exercise),
	}, nil
}
