package payload

import (
	"encoding/json"

	"workoutlog/internal/core"

	"github.com/jellydator/validation"
)

type WorkoutRequest struct {
	ExerciseID       string          `json:"exercise_id"`
	ExerciseName     string          `json:"exercise_name"`
	Sets             json.RawMessage `json:"sets"`
	WorkoutTimestamp string          `json:"workout_timestamp"`
}

func (w WorkoutRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ExerciseID, validation.Required),
		validation.Field(&w.ExerciseName, validation.Required),
		validation.Field(&w.Sets, validation.By(jsonArray)),
	)
}

func (w WorkoutRequest) ToCoreMessage() core.WorkoutMessage {
	return core.WorkoutMessage{
		ExerciseID:       w.ExerciseID,
		ExerciseName:     w.ExerciseName,
		Sets:             w.Sets,
		WorkoutTimestamp: w.WorkoutTimestamp,
	}
}
