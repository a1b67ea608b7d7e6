package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"workoutlog/internal/config"
	"workoutlog/internal/core"
	"workoutlog/internal/db"
	"workoutlog/internal/http/handler"
	"workoutlog/internal/http/handler/middleware"
	"workoutlog/internal/http/payload"
	"workoutlog/internal/http/server"
	"workoutlog/internal/repository"
	"workoutlog/pkg/jwt"
	"workoutlog/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Service is what the routes need from the workout log: the handler
// operations and token verification for the auth gate.
type Service interface {
	handler.WorkoutLogService
	middleware.TokenVerifier
}

func Start() error {
	logger := log.NewZapLogger("workoutlog", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewWorkoutRepository(dbConn)
	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	workoutLog := core.NewWorkoutLog(logger, repo, jwtService)

	srv := server.NewHTTP(logger, NewRouter(logger, workoutLog), config.Port)
	return run(srv)
}

// NewRouter registers every route and wraps the mux with the logging and
// request id middleware. Workout routes sit behind the auth gate.
func NewRouter(logger *zap.SugaredLogger, service Service) http.Handler {
	workoutHlr := handler.NewWorkoutLogHandler(
		logger,
		payload.Decoder{},
		service)

	authMw := middleware.NewAuthMiddleware(logger, service)

	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc(handler.Register, workoutHlr.HandleRegister)
	mux.HandleFunc(handler.Login, workoutHlr.HandleLogin)
	mux.HandleFunc(handler.Health, workoutHlr.HandleHealth)

	// authenticated routes
	mux.HandleFunc(handler.ListWorkouts, authMw.Authenticate(workoutHlr.HandleListWorkouts))
	mux.HandleFunc(handler.CreateWorkout, authMw.Authenticate(workoutHlr.HandleCreateWorkout))
	mux.HandleFunc(handler.DeleteWorkout, authMw.Authenticate(workoutHlr.HandleDeleteWorkout))

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	return middleware.NewRequestIDMiddleware().RequestID(hdlr)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
