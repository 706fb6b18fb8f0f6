package repository

import "database/sql"

// Repository содержит все репозитории
type Repository struct {
	User         *UserRepository
	Exercise     *ExerciseRepository
	Result       *ResultRepository
	Subscription *SubscriptionRepository
	Workout      *WorkoutRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Exercise:     NewExerciseRepository(db),
		Result:       NewResultRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Workout:      NewWorkoutRepository(db),
	}
}
