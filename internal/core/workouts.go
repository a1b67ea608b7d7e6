package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"workoutlog/internal/repository"

	"gorm.io/datatypes"
)

// ListWorkouts returns the user's workouts, newest workout timestamp first.
func (w *WorkoutLog) ListWorkouts(ctx context.Context, userID uint) ([]WorkoutRecord, error) {
	workouts, err := w.repo.ListWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	records := make([]WorkoutRecord, 0, len(workouts))
	for _, workout := range workouts {
		records = append(records, toWorkoutRecord(workout))
	}

	return records, nil
}

// CreateWorkout stores the set data exactly as received.
func (w *WorkoutLog) CreateWorkout(ctx context.Context, userID uint, msg WorkoutMessage) (WorkoutRecord, error) {
	workout, err := w.repo.CreateWorkout(ctx, repository.Workout{
		UserID:           userID,
		ExerciseID:       msg.ExerciseID,
		ExerciseName:     msg.ExerciseName,
		SetsData:         datatypes.JSON(msg.Sets),
		WorkoutTimestamp: msg.WorkoutTimestamp,
	})
	if err != nil {
		return WorkoutRecord{}, fmt.Errorf("create workout: %w", err)
	}

	w.logs.Infow("workout created", "user_id", userID, "workout_id", workout.ID)

	return toWorkoutRecord(workout), nil
}

func (w *WorkoutLog) DeleteWorkout(ctx context.Context, userID, workoutID uint) error {
	err := w.repo.DeleteWorkout(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("delete workout: %w", err)
	}

	w.logs.Infow("workout deleted", "user_id", userID, "workout_id", workoutID)

	return nil
}

func toWorkoutRecord(workout repository.Workout) WorkoutRecord {
	return WorkoutRecord{
		ID:               workout.ID,
		UserID:           workout.UserID,
		ExerciseID:       workout.ExerciseID,
		ExerciseName:     workout.ExerciseName,
		SetsData:         json.RawMessage(workout.SetsData),
		WorkoutTimestamp: workout.WorkoutTimestamp,
		CreatedAt:        workout.CreatedAt,
	}
}
