package handler

import (
	"context"
	"net/http"

	"workoutlog/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WorkoutLogService . WorkoutLogService
type WorkoutLogService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.AuthResult, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.AuthResult, error)
	ListWorkouts(ctx context.Context, userID uint) ([]core.WorkoutRecord, error)
	CreateWorkout(ctx context.Context, userID uint, msg core.WorkoutMessage) (core.WorkoutRecord, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
