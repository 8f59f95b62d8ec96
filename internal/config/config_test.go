package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/config"
)

var _ = Describe("NewApp", func() {
	var required = map[string]string{
		"API_PORT":              "8080",
		"RPC_NODE_URL":          "https://rpc.example.org",
		"GAME_CONTRACT_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"CHAIN_ID":              "31337",
		"SESSION_SECRET":        "super-secret",
	}

	BeforeEach(func() {
		for key, value := range required {
			GinkgoT().Setenv(key, value)
		}
	})

	When("all required variables are set", func() {
		It("builds the config with budget defaults", func() {
			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.NodeURL).To(Equal("https://rpc.example.org"))
			Expect(cfg.ChainID).To(Equal(int64(31337)))
			Expect(cfg.TxPerSecond).To(Equal(9))
			Expect(cfg.InfoPerSecond).To(Equal(1))
			Expect(cfg.MaxPendingTxs).To(Equal(10))
			Expect(cfg.HistoryCap).To(Equal(50))
		})
	})

	When("budget overrides are set", func() {
		It("uses them", func() {
			GinkgoT().Setenv("TX_REQUESTS_PER_SECOND", "4")
			GinkgoT().Setenv("INFO_REQUESTS_PER_SECOND", "2")
			GinkgoT().Setenv("MAX_PENDING_TRANSACTIONS", "3")

			cfg, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.TxPerSecond).To(Equal(4))
			Expect(cfg.InfoPerSecond).To(Equal(2))
			Expect(cfg.MaxPendingTxs).To(Equal(3))
		})
	})

	When("a required variable is missing", func() {
		It("returns an error naming it", func() {
			os.Unsetenv("SESSION_SECRET")

			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("SESSION_SECRET"))
		})
	})

	When("a numeric variable does not parse", func() {
		It("returns an error", func() {
			GinkgoT().Setenv("CHAIN_ID", "not-a-number")

			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
		})
	})
})
