package handler

import (
	"errors"
	"net/http"
	"strconv"

	"workoutlog/internal/core"
	"workoutlog/internal/http/handler/middleware"
	"workoutlog/internal/http/payload"
)

func (h *WorkoutLogHandler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	userID, ok := h.userID(w, r, ListWorkouts)
	if !ok {
		return
	}

	workouts, err := h.workoutLog.ListWorkouts(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{Error: errInternal}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list workouts",
			"error", err,
			"user_id", userID,
			"handler", ListWorkouts,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.WorkoutRecord{
		"workouts": workouts,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WorkoutLogHandler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	userID, ok := h.userID(w, r, CreateWorkout)
	if !ok {
		return
	}

	var req payload.WorkoutRequest
	err := h.requestDecoder.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{Error: errInvalidWorkout}, http.StatusBadRequest, requestId)
		h.logs.Infow("invalid workout payload",
			"error", err,
			"user_id", userID,
			"handler", CreateWorkout,
			"request_id", requestId)
		return
	}

	workout, err := h.workoutLog.CreateWorkout(r.Context(), userID, req.ToCoreMessage())
	if err != nil {
		h.respond(w, Response{Error: errInternal}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create workout",
			"error", err,
			"user_id", userID,
			"handler", CreateWorkout,
			"request_id", requestId)
		return
	}

	resp := map[string]core.WorkoutRecord{
		"workout": workout,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WorkoutLogHandler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	userID, ok := h.userID(w, r, DeleteWorkout)
	if !ok {
		return
	}

	// an id that can never match a row is reported like a missing one.
	// ids are bigint columns, so anything above MaxInt64 is out of range.
	workoutID, err := strconv.ParseUint(r.PathValue("id"), 10, 63)
	if err != nil || workoutID == 0 {
		h.respond(w, Response{Error: errWorkoutNotFound}, http.StatusNotFound, requestId)
		return
	}

	err = h.workoutLog.DeleteWorkout(r.Context(), userID, uint(workoutID))
	if err != nil {
		if errors.Is(err, core.ErrWorkoutNotFound) {
			h.respond(w, Response{Error: errWorkoutNotFound}, http.StatusNotFound, requestId)
			return
		}

		h.respond(w, Response{Error: errInternal}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete workout",
			"error", err,
			"user_id", userID,
			"workout_id", workoutID,
			"handler", DeleteWorkout,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgWorkoutDeleted}, http.StatusOK, requestId)
}

// userID reads the id stored by the auth middleware. Routes registered
// without it answer 401.
func (h *WorkoutLogHandler) userID(w http.ResponseWriter, r *http.Request, route string) (uint, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		requestId := middleware.RequestID(r.Context())
		h.respond(w, Response{Error: errUnauthenticated}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("no authenticated user in context",
			"handler", route,
			"request_id", requestId)
		return 0, false
	}

	return userID, true
}
