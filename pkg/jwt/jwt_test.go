package jwt_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	tokenIssuer "github.com/nicomenzi/cookie-clicker-2-sub000/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.SessionInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.SessionInfo{
			Subject:    "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
			GasWallet:  "0x2B5AD5c4795c026514f8317c7a215E218DcCD6cF",
			Expiration: time.Hour,
		}
	})

	Describe("Generate and Validate", func() {
		It("round-trips the session claims", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(info.Subject))
			Expect(claims["gas"]).To(Equal(info.GasWallet))
		})

		When("the token is signed with a different secret", func() {
			It("returns ErrTokenNotValid", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("rejects it", func() {
				info.Expiration = -time.Minute
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is garbage", func() {
			It("returns ErrTokenNotValid", func() {
				_, err := service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
