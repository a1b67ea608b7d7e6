package handler

import (
	"encoding/json"
	"net/http"

	"workoutlog/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Register      = "POST /api/auth/register"
	Login         = "POST /api/auth/login"
	ListWorkouts  = "GET /api/workouts"
	CreateWorkout = "POST /api/workouts"
	DeleteWorkout = "DELETE /api/workouts/{id}"
	Health        = "GET /health"
)

type WorkoutLogHandler struct {
	logs           *zap.SugaredLogger
	requestDecoder RequestDecoder
	workoutLog     WorkoutLogService
}

func NewWorkoutLogHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, workoutLogService WorkoutLogService) *WorkoutLogHandler {
	return &WorkoutLogHandler{
		logs:           logger,
		requestDecoder: requestDecoder,
		workoutLog:     workoutLogService,
	}
}

func (h *WorkoutLogHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, middleware.RequestID(r.Context()))
}

func (h *WorkoutLogHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// headers are already sent, so an encoding failure can only be logged
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
