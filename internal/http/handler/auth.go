package handler

import (
	"errors"
	"net/http"

	"workoutlog/internal/core"
	"workoutlog/internal/http/handler/middleware"
	"workoutlog/internal/http/payload"
)

func (h *WorkoutLogHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.RegisterRequest
	err := h.requestDecoder.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{Error: errMissingFields}, http.StatusBadRequest, requestId)
		h.logs.Infow("invalid register payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	result, err := h.workoutLog.Register(r.Context(), req.ToCoreMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateUser):
			h.respond(w, Response{Error: errUserExists}, http.StatusBadRequest, requestId)
		case errors.Is(err, core.ErrInvalidPassword):
			h.respond(w, Response{Error: errInvalidPassword}, http.StatusBadRequest, requestId)
		default:
			h.respond(w, Response{Error: errInternal}, http.StatusInternalServerError, requestId)
		}
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *WorkoutLogHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.LoginRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{Error: errInvalidBody}, http.StatusBadRequest, requestId)
		h.logs.Infow("failed to decode login payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	// missing fields fail like any other bad credentials
	if err := req.Validate(); err != nil {
		h.respond(w, Response{Error: errInvalidCredentials}, http.StatusUnauthorized, requestId)
		return
	}

	result, err := h.workoutLog.Login(r.Context(), req.ToCoreMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respond(w, Response{Error: errInvalidCredentials}, http.StatusUnauthorized, requestId)
			h.logs.Infow("login rejected",
				"handler", Login,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{Error: errInternal}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}
