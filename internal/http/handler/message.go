package handler

const (
	errInternal           = "Internal server error"
	errMissingFields      = "All fields are required"
	errUserExists         = "Username or email already exists"
	errInvalidPassword    = "Password is too long"
	errInvalidCredentials = "Invalid credentials"
	errInvalidBody        = "Invalid request body"
	errInvalidWorkout     = "Invalid workout data"
	errWorkoutNotFound    = "Workout not found"
	errUnauthenticated    = "Unauthorized"

	msgWorkoutDeleted = "Workout deleted successfully"
)

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}
