package jwt_test

import (
	"strings"
	"time"

	tokenIssuer "workoutlog/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
		signed  string
		claims  jwt.MapClaims
		err     error
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "42",
			Expiration: 7 * 24 * time.Hour,
		}
	})

	JustBeforeEach(func() {
		var signErr error
		signed, signErr = service.Sign(service.Generate(info))
		Expect(signErr).NotTo(HaveOccurred())
	})

	Describe("Generate", func() {
		It("should sign with HS512 and set the expiry", func() {
			token := service.Generate(info)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			mapClaims := token.Claims.(jwt.MapClaims)
			Expect(mapClaims["sub"]).To(Equal("42"))
			Expect(mapClaims["username"]).To(Equal("alice"))

			exp := mapClaims["exp"].(int64)
			iat := mapClaims["iat"].(int64)
			Expect(exp - iat).To(Equal(int64(7 * 24 * 60 * 60)))
		})
	})

	Describe("Validate", func() {
		When("the token is intact", func() {
			It("should return the claims", func() {
				claims, err = service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("42"))
				Expect(claims["username"]).To(Equal("alice"))
			})
		})

		When("the token was signed with another secret", func() {
			It("should reject it", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				_, err = other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the payload was tampered with", func() {
			It("should reject it", func() {
				parts := strings.Split(signed, ".")
				Expect(parts).To(HaveLen(3))
				forged := service.Generate(tokenIssuer.TokenInfo{UserName: "mallory", Subject: "1", Expiration: time.Hour})
				forgedSigned, signErr := service.Sign(forged)
				Expect(signErr).NotTo(HaveOccurred())
				forgedParts := strings.Split(forgedSigned, ".")

				_, err = service.Validate(parts[0] + "." + forgedParts[1] + "." + parts[2])
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is malformed", func() {
			It("should reject it", func() {
				_, err = service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is unsigned", func() {
			It("should reject it", func() {
				none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub": "42",
					"exp": time.Now().Add(time.Hour).Unix(),
				})
				unsigned, signErr := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(signErr).NotTo(HaveOccurred())

				_, err = service.Validate(unsigned)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has already expired", func() {
			BeforeEach(func() {
				info.Expiration = -time.Hour
			})

			It("should report expiry", func() {
				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the clock moves past the expiry", func() {
			It("should report expiry", func() {
				prev := tokenIssuer.TimeNow
				tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
				DeferCleanup(func() { tokenIssuer.TimeNow = prev })

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})
	})
})
