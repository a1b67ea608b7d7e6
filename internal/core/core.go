package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"workoutlog/internal/repository"
	tokenIssuer "workoutlog/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	ErrDuplicateUser      error = errors.New("username or email already exists")
	ErrInvalidCredentials error = errors.New("invalid credentials")
	ErrInvalidPassword    error = errors.New("password cannot be hashed")
	ErrInvalidToken       error = errors.New("invalid token")
	ErrWorkoutNotFound    error = errors.New("workout not found")
)

// WorkoutLog holds the credential and workout operations. Every workout
// operation takes the authenticated user id explicitly.
type WorkoutLog struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewWorkoutLog is a constructor function for the WorkoutLog type.
func NewWorkoutLog(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *WorkoutLog {
	return &WorkoutLog{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register stores a new user with a bcrypt password hash and returns a
// token for it.
func (w *WorkoutLog) Register(ctx context.Context, msg RegisterMessage) (AuthResult, error) {
	hash, err := HashPassword(msg.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := w.repo.CreateUser(ctx, repository.User{
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return AuthResult{}, ErrDuplicateUser
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	w.logs.Infow("user registered", "user_id", user.ID)

	return w.authResult(user)
}

// Login checks the credentials against the stored hash. An unknown email
// and a wrong password produce the same error.
func (w *WorkoutLog) Login(ctx context.Context, msg LoginMessage) (AuthResult, error) {
	user, err := w.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("get user from db: %w", err)
	}

	if !CheckPassword(msg.Password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}

	return w.authResult(user)
}

// IssueToken signs a token for userID that expires in seven days.
func (w *WorkoutLog) IssueToken(userID uint, username string) (string, error) {
	token := w.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   username,
		Subject:    strconv.FormatUint(uint64(userID), 10),
		Expiration: tokenTTL,
	})

	signed, err := w.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// VerifyToken returns the user id carried by a valid token.
func (w *WorkoutLog) VerifyToken(token string) (uint, error) {
	claims, err := w.jwtIssuer.Validate(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	userID, err := strconv.ParseUint(sub, 10, 0)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, sub)
	}

	return uint(userID), nil
}

func (w *WorkoutLog) authResult(user repository.User) (AuthResult, error) {
	token, err := w.IssueToken(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		Token: token,
		User: UserRecord{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", ErrInvalidPassword, err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
