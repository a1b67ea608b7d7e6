package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"workoutlog/internal/core"
	"workoutlog/internal/core/fake"
	"workoutlog/internal/repository"
	tokenIssuer "workoutlog/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WorkoutLog credentials", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		workoutLog *core.WorkoutLog

		genToken *jwt.Token
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		workoutLog = core.NewWorkoutLog(fakeLogger, fakeRepo, fakeJWT)

		genToken = jwt.New(jwt.SigningMethodHS512)
		fakeJWT.GenerateReturns(genToken)
		fakeJWT.SignReturns("signed.token", nil)

		fakeErr = errors.New("fake error")
	})

	Describe("HashPassword and CheckPassword", func() {
		It("should verify the hashed password only", func() {
			hash, err := core.HashPassword("pw123456")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(ContainSubstring("pw123456"))

			Expect(core.CheckPassword("pw123456", hash)).To(BeTrue())
			Expect(core.CheckPassword("wrong", hash)).To(BeFalse())
		})

		It("should salt every hash", func() {
			first, err := core.HashPassword("pw123456")
			Expect(err).NotTo(HaveOccurred())
			second, err := core.HashPassword("pw123456")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should reject passwords bcrypt cannot hash", func() {
			_, err := core.HashPassword(strings.Repeat("x", 100))
			Expect(err).To(MatchError(core.ErrInvalidPassword))
		})
	})

	Describe("Register", func() {
		var (
			msg    core.RegisterMessage
			result core.AuthResult
			err    error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "alice",
				Email:    "a@x.com",
				Password: "pw123456",
			}
		})

		JustBeforeEach(func() {
			result, err = workoutLog.Register(ctx, msg)
		})

		When("the user is new", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = func(ctx context.Context, user repository.User) (repository.User, error) {
					user.ID = 1
					return user, nil
				}
			})

			It("should store a hash and return a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("signed.token"))
				Expect(result.User).To(Equal(core.UserRecord{ID: 1, Username: "alice", Email: "a@x.com"}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.PasswordHash).NotTo(Equal(msg.Password))
				Expect(core.CheckPassword(msg.Password, stored.PasswordHash)).To(BeTrue())

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    "1",
					Expiration: 7 * 24 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrDuplicateUser))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "alice"}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg    core.LoginMessage
			result core.AuthResult
			err    error
			hash   string
		)

		BeforeEach(func() {
			var hashErr error
			hash, hashErr = core.HashPassword("pw123456")
			Expect(hashErr).NotTo(HaveOccurred())

			msg = core.LoginMessage{Email: "a@x.com", Password: "pw123456"}
			fakeRepo.GetUserByEmailReturns(repository.User{
				ID:           5,
				Username:     "alice",
				Email:        "a@x.com",
				PasswordHash: hash,
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = workoutLog.Login(ctx, msg)
		})

		When("the credentials match", func() {
			It("should return a token and the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("signed.token"))
				Expect(result.User.ID).To(Equal(uint(5)))

				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("a@x.com"))
				Expect(fakeJWT.GenerateArgsForCall(0).Subject).To(Equal("5"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				msg.Password = "nope"
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the email is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same error as a wrong password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should not hide the failure as bad credentials", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrInvalidCredentials))
			})
		})
	})

	Describe("VerifyToken", func() {
		var (
			userID uint
			err    error
		)

		JustBeforeEach(func() {
			userID, err = workoutLog.VerifyToken("some.token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "42"}, nil)
			})

			It("should return the user id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(userID).To(Equal(uint(42)))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token fails validation", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the subject is not a user id", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "alice"}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the subject is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})

	Describe("tokens end to end", func() {
		It("should accept its own tokens and reject tampered ones", func() {
			service := core.NewWorkoutLog(fakeLogger, fakeRepo, tokenIssuer.NewJWTService([]byte("secret")))

			token, err := service.IssueToken(9, "alice")
			Expect(err).NotTo(HaveOccurred())

			userID, err := service.VerifyToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(uint(9)))

			_, err = service.VerifyToken(token + "x")
			Expect(err).To(MatchError(core.ErrInvalidToken))
		})
	})
})
