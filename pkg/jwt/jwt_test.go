package jwt_test

import (
	tokenIssuer "ipregistrar/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		now     time.Time
		info    tokenIssuer.TokenInfo
		signed  string
		claims  jwt.MapClaims
		err     error
	)

	BeforeEach(func() {
		now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		tokenIssuer.TimeNow = func() time.Time { return now }
		service = tokenIssuer.NewJWTService([]byte("secret"), "ipregistrar")
		info = tokenIssuer.TokenInfo{
			UserName: "operator",
			Subject:  "user-1",
			Lifetime: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	JustBeforeEach(func() {
		signed, err = service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate its own tokens", func() {
		claims, err = service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("operator"))
		Expect(claims["iss"]).To(Equal("ipregistrar"))
		Expect(claims["exp"]).To(BeNumerically("==", now.Add(time.Hour).Unix()))
	})

	When("the token has expired", func() {
		It("should return ErrTokenExpired", func() {
			now = now.Add(2 * time.Hour)
			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the token is signed with another secret", func() {
		It("should return ErrTokenNotValid", func() {
			other := tokenIssuer.NewJWTService([]byte("other"), "ipregistrar")
			_, err = other.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token comes from another issuer", func() {
		It("should return ErrWrongIssuer", func() {
			other := tokenIssuer.NewJWTService([]byte("secret"), "someone-else")
			_, err = other.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrWrongIssuer))
		})
	})

	When("the token is garbage", func() {
		It("should return ErrTokenNotValid", func() {
			_, err = service.Validate("not.a.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
