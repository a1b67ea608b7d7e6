package core

import (
	"context"

	"workoutlog/internal/repository"
	tokenIssuer "workoutlog/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	ListWorkouts(ctx context.Context, userID uint) ([]repository.Workout, error)
	CreateWorkout(ctx context.Context, workout repository.Workout) (repository.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
