package jwt_test

import (
	"time"

	tokenIssuer "strokescan/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "7",
			Role:       "user",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("round trips the session claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("7"))
		Expect(claims["username"]).To(Equal("alice"))
		Expect(claims["role"]).To(Equal("user"))
	})

	It("uses HS512", func() {
		token := service.Generate(info)
		Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
	})

	When("the token was signed with another secret", func() {
		It("rejects it", func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("rejects it", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token has expired", func() {
		It("returns ErrTokenExpired", func() {
			tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
			tokenIssuer.TimeNow = time.Now

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the token uses another algorithm", func() {
		It("rejects it", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"iss": tokenIssuer.Issuer,
				"sub": "7",
				"exp": time.Now().Add(time.Hour).Unix(),
			})
			signed, err := token.SignedString([]byte("test-secret"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token was issued elsewhere", func() {
		It("rejects it", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
				"iss": "someone-else",
				"sub": "7",
				"exp": time.Now().Add(time.Hour).Unix(),
			})
			signed, err := token.SignedString([]byte("test-secret"))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token has no subject", func() {
		It("rejects it", func() {
			info.Subject = ""
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
