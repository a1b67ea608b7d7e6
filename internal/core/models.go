package core

import (
	"encoding/json"
	"time"
)

type RegisterMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

type WorkoutMessage struct {
	ExerciseID       string
	ExerciseName     string
	Sets             json.RawMessage
	WorkoutTimestamp string
}

type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  UserRecord `json:"user"`
}

type WorkoutRecord struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"user_id"`
	ExerciseID       string          `json:"exercise_id"`
	ExerciseName     string          `json:"exercise_name"`
	SetsData         json.RawMessage `json:"sets_data"`
	WorkoutTimestamp string          `json:"workout_timestamp"`
	CreatedAt        time.Time       `json:"created_at"`
}
