package chain_test

import (
	"context"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain/fake"
)

var _ = Describe("Client", func() {
	var (
		ctx       context.Context
		primary   *fake.RPCClient
		secondary *fake.RPCClient
	)

	BeforeEach(func() {
		ctx = context.Background()
		primary = new(fake.RPCClient)
		secondary = new(fake.RPCClient)
		primary.BlockNumberReturns(100, nil)
		secondary.BlockNumberReturns(200, nil)
	})

	Describe("NewClient", func() {
		When("no endpoints are given", func() {
			It("returns an error", func() {
				_, err := chain.NewClient()
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Switch", func() {
		When("only one endpoint is configured", func() {
			It("reports no alternate", func() {
				client, err := chain.NewClient(primary)
				Expect(err).NotTo(HaveOccurred())
				Expect(client.Switch()).To(BeFalse())
			})
		})

		When("two endpoints are configured", func() {
			It("rotates calls to the alternate and back", func() {
				client, err := chain.NewClient(primary, secondary)
				Expect(err).NotTo(HaveOccurred())
				Expect(client.Endpoints()).To(Equal(2))

				block, err := client.BlockNumber(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(block).To(Equal(uint64(100)))

				Expect(client.Switch()).To(BeTrue())
				block, err = client.BlockNumber(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(block).To(Equal(uint64(200)))

				Expect(client.Switch()).To(BeTrue())
				block, err = client.BlockNumber(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(block).To(Equal(uint64(100)))
			})
		})
	})

	Describe("delegation", func() {
		It("forwards calls to the active endpoint only", func() {
			client, err := chain.NewClient(primary, secondary)
			Expect(err).NotTo(HaveOccurred())

			primary.SuggestGasPriceReturns(big.NewInt(10), nil)
			price, err := client.SuggestGasPrice(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(big.NewInt(10)))

			Expect(primary.SuggestGasPriceCallCount()).To(Equal(1))
			Expect(secondary.SuggestGasPriceCallCount()).To(Equal(0))
		})
	})
})
