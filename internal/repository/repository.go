package repository

import (
	"context"
	"errors"
	"fmt"

	"workoutlog/internal/db"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrUserExists      error = errors.New("user already exists")
	ErrWorkoutNotFound error = errors.New("workout not found")
)

// listOrder sorts on the raw timestamp text, not on a parsed time.
const listOrder = "workout_timestamp DESC"

type WorkoutRepository struct {
	db Storage
}

func NewWorkoutRepository(db Storage) *WorkoutRepository {
	return &WorkoutRepository{
		db: db,
	}
}

// MigrateTables makes sure the users and workouts tables exist. The
// workouts.user_id foreign key cascades on user deletion.
func (r *WorkoutRepository) MigrateTables() error {
	err := r.db.MigrateTables(&User{}, &Workout{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *WorkoutRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *WorkoutRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *WorkoutRepository) ListWorkouts(ctx context.Context, userID uint) ([]Workout, error) {
	workouts := []Workout{}

	err := r.db.GetAllBy(ctx, "user_id", userID, listOrder, &workouts)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return workouts, nil
}

func (r *WorkoutRepository) CreateWorkout(ctx context.Context, workout Workout) (Workout, error) {
	err := r.db.Create(ctx, &workout)
	if err != nil {
		return Workout{}, fmt.Errorf("create workout: %w", err)
	}

	return workout, nil
}

// DeleteWorkout removes the workout only when it belongs to userID. A missing
// row and a row owned by someone else are both ErrWorkoutNotFound.
func (r *WorkoutRepository) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	affected, err := r.db.DeleteWhere(ctx, &Workout{}, map[string]any{
		"id":      workoutID,
		"user_id": userID,
	})
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	if affected == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}
