package core_test

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core/fake"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
	walletfake "github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet/fake"
)

const contractAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func uint256Word(value int64) []byte {
	return common.BigToHash(big.NewInt(value)).Bytes()
}

var _ = Describe("Clicker", func() {
	var (
		clicker      *core.Clicker
		fakeLedger   *fake.Ledger
		fakeDispatch *fake.Dispatcher
		fakeSched    *fake.SchedulerControl
		fakeSender   *fake.TxSender
		fakeSession  *fake.SessionIssuer
		fakeSigner   *walletfake.MessageSigner
		cache        *freshcache.Cache
		contract     *chain.Contract
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context
		primary      common.Address
		gasAddr      common.Address
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeDispatch = new(fake.Dispatcher)
		fakeSched = new(fake.SchedulerControl)
		fakeSender = new(fake.TxSender)
		fakeSession = new(fake.SessionIssuer)
		fakeSigner = new(walletfake.MessageSigner)
		fakeLogger = zap.NewNop().Sugar()
		cache = freshcache.New()
		ctx = context.Background()
		primary = common.HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
		gasAddr = common.HexToAddress("0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc")

		var err error
		contract, err = chain.NewContract(contractAddr)
		Expect(err).NotTo(HaveOccurred())

		fakeDispatch.FetchStub = func(ctx context.Context, opts scheduler.FetchOptions, op scheduler.Operation) (any, error) {
			return op(ctx)
		}
		fakeDispatch.TransactStub = func(ctx context.Context, opts scheduler.TransactOptions, op scheduler.Operation) (any, error) {
			return op(ctx)
		}

		fakeSigner.SignMessageReturns(bytes.Repeat([]byte{0xab}, 65), nil)
		fakeSender.AddressReturns(gasAddr)
		fakeSession.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
		fakeSession.SignReturns("session-token", nil)

		// clicksPerToken and getScore both report 10
		fakeLedger.CallContractStub = func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			return uint256Word(10), nil
		}

		fakeSched.StatusReturns("ok")

		factory := func(gasWallet *wallet.GasWallet) core.TxSender { return fakeSender }
		clicker = core.NewClicker(fakeLogger, fakeLedger, fakeDispatch, fakeSched, cache, contract, fakeSession, factory, core.Config{
			HistoryCap: 50,
			MaxPending: 10,
		})
	})

	AfterEach(func() {
		clicker.Stop()
	})

	connect := func() {
		token, addr, err := clicker.Connect(ctx, primary, fakeSigner)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, token).To(Equal("session-token"))
		ExpectWithOffset(1, addr).NotTo(Equal(common.Address{}))
	}

	Describe("Connect", func() {
		It("derives the gas wallet, baselines it and issues a session", func() {
			token, addr, err := clicker.Connect(ctx, primary, fakeSigner)
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("session-token"))
			Expect(addr).NotTo(Equal(common.Address{}))

			Expect(fakeSender.RefreshNonceCallCount()).To(Equal(1))
			info := fakeSession.GenerateArgsForCall(0)
			Expect(info.Subject).To(Equal(primary.Hex()))
			Expect(info.GasWallet).To(Equal(addr.Hex()))

			state := clicker.State()
			Expect(state.Connected).To(BeTrue())
			Expect(state.PrimaryWallet).To(Equal(primary.Hex()))
			Expect(state.ConfirmedScore).To(Equal(int64(10)))
			Expect(state.ClicksPerToken).To(Equal(int64(10)))
		})

		It("rejects a second connection", func() {
			connect()

			_, _, err := clicker.Connect(ctx, primary, fakeSigner)
			Expect(err).To(MatchError(core.ErrAlreadyConnected))
		})

		When("the primary wallet refuses to sign", func() {
			It("fails the derivation", func() {
				fakeSigner.SignMessageReturns(nil, errors.New("user rejected"))

				_, _, err := clicker.Connect(ctx, primary, fakeSigner)
				Expect(err).To(MatchError(wallet.ErrSecureWallet))
			})
		})

		When("the nonce baseline fails", func() {
			It("tears the fresh sender down", func() {
				fakeSender.RefreshNonceReturns(errors.New("rpc down"))

				_, _, err := clicker.Connect(ctx, primary, fakeSigner)
				Expect(err).To(HaveOccurred())
				Expect(fakeSender.StopCallCount()).To(Equal(1))

				Expect(clicker.State().Connected).To(BeFalse())
			})
		})
	})

	Describe("ValidateSession", func() {
		It("returns the subject address of a valid token", func() {
			fakeSession.ValidateReturns(jwt.MapClaims{"sub": primary.Hex()}, nil)

			addr, err := clicker.ValidateSession("session-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(primary))
			Expect(fakeSession.ValidateArgsForCall(0)).To(Equal("session-token"))
		})

		It("rejects tokens without a wallet subject", func() {
			fakeSession.ValidateReturns(jwt.MapClaims{"sub": "not-an-address"}, nil)

			_, err := clicker.ValidateSession("session-token")
			Expect(err).To(HaveOccurred())
		})

		It("relays validation failures", func() {
			validationErr := errors.New("token is expired")
			fakeSession.ValidateReturns(nil, validationErr)

			_, err := clicker.ValidateSession("bad")
			Expect(err).To(MatchError(validationErr))
		})
	})

	Describe("Click", func() {
		It("requires a connected wallet", func() {
			_, err := clicker.Click(ctx)
			Expect(err).To(MatchError(core.ErrNotConnected))
		})

		It("moves the displayed score before any submission settles", func() {
			connect()
			fakeSender.SendReturns(common.HexToHash("0x01"), nil)

			for i := 0; i < 3; i++ {
				_, err := clicker.Click(ctx)
				Expect(err).NotTo(HaveOccurred())
			}

			state := clicker.State()
			Expect(state.PendingClicks).To(Equal(int64(3)))
			Expect(state.ConfirmedScore).To(Equal(int64(10)))
			Expect(state.DisplayedScore).To(Equal(int64(13)))
		})

		It("confirms the click when the receipt lands", func() {
			connect()
			hash := common.HexToHash("0xc1")
			fakeSender.SendReturns(hash, nil)

			recordID, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(fakeSender.SendCallCount).Should(Equal(1))
			_, spec := fakeSender.SendArgsForCall(0)
			Expect(spec.To).To(Equal(contract.Address()))
			Expect(spec.Front).To(BeFalse())
			Expect(spec.OnResult).NotTo(BeNil())

			spec.OnResult(sender.Result{
				Hash:    hash,
				Receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful},
			})

			Eventually(func() int64 { return clicker.State().ConfirmedScore }).Should(Equal(int64(11)))
			Expect(clicker.State().PendingClicks).To(BeZero())

			history := clicker.History()
			Expect(history).To(HaveLen(1))
			Expect(history[0].ID).To(Equal(recordID))
			Expect(history[0].Status).To(Equal(core.StatusConfirmed))
			Expect(history[0].Hash).To(Equal(hash.Hex()))
		})

		It("rolls the optimistic click back when submission fails", func() {
			connect()
			fakeSender.SendReturns(common.Hash{}, sender.ErrNoGas)

			recordID, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() core.TxStatus {
				for _, record := range clicker.History() {
					if record.ID == recordID {
						return record.Status
					}
				}
				return ""
			}).Should(Equal(core.StatusFailed))

			history := clicker.History()
			Expect(history[0].Error).To(Equal("insufficient balance - fund your gas wallet"))

			state := clicker.State()
			Expect(state.PendingClicks).To(BeZero())
			Expect(state.DisplayedScore).To(Equal(int64(10)))
		})

		It("truncates long failure causes without splitting runes", func() {
			connect()
			longErr := errors.New("x" + strings.Repeat("世", 60))
			fakeSender.SendReturns(common.Hash{}, longErr)

			recordID, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() core.TxStatus {
				for _, record := range clicker.History() {
					if record.ID == recordID {
						return record.Status
					}
				}
				return ""
			}).Should(Equal(core.StatusFailed))

			cause := clicker.History()[0].Error
			Expect(len(cause)).To(BeNumerically("<", len(longErr.Error())))
			Expect(cause).To(HaveSuffix("..."))
			Expect(utf8.ValidString(cause)).To(BeTrue())
		})

		It("rolls back on a reverted receipt", func() {
			connect()
			hash := common.HexToHash("0xdead")
			fakeSender.SendReturns(hash, nil)

			_, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(fakeSender.SendCallCount).Should(Equal(1))
			_, spec := fakeSender.SendArgsForCall(0)
			spec.OnResult(sender.Result{
				Hash:    hash,
				Receipt: &types.Receipt{Status: types.ReceiptStatusFailed},
			})

			Eventually(func() core.TxStatus { return clicker.History()[0].Status }).Should(Equal(core.StatusFailed))
			Expect(clicker.State().ConfirmedScore).To(Equal(int64(10)))
			Expect(clicker.State().PendingClicks).To(BeZero())
		})

		When("the pending ceiling is hit", func() {
			It("rejects synchronously", func() {
				connect()
				fakeSender.PendingReturns(10)

				_, err := clicker.Click(ctx)
				Expect(err).To(MatchError(sender.ErrTooManyPending))
				Expect(clicker.State().PendingClicks).To(BeZero())
			})
		})
	})

	Describe("Redeem", func() {
		It("requires a connected wallet", func() {
			_, err := clicker.Redeem(ctx, 10)
			Expect(err).To(MatchError(core.ErrNotConnected))
		})

		It("validates the amount against the confirmed score", func() {
			connect()

			_, err := clicker.Redeem(ctx, 0)
			Expect(err).To(MatchError(core.ErrInvalidAmount))

			_, err = clicker.Redeem(ctx, 7)
			Expect(err).To(MatchError(core.ErrNotMultiple))

			_, err = clicker.Redeem(ctx, 20)
			Expect(err).To(MatchError(core.ErrInsufficientScore))

			Expect(fakeSender.SendCallCount()).To(BeZero())
		})

		It("submits ahead of queued clicks and settles the score", func() {
			connect()
			hash := common.HexToHash("0xa1")
			fakeSender.SendReturns(hash, nil)

			recordID, err := clicker.Redeem(ctx, 10)
			Expect(err).NotTo(HaveOccurred())

			Eventually(fakeSender.SendCallCount).Should(Equal(1))
			_, spec := fakeSender.SendArgsForCall(0)
			Expect(spec.Front).To(BeTrue())
			Expect(spec.To).To(Equal(contract.Address()))

			spec.OnResult(sender.Result{
				Hash:    hash,
				Receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful},
			})

			Eventually(func() int64 { return clicker.State().ConfirmedScore }).Should(BeZero())

			history := clicker.History()
			Expect(history[0].ID).To(Equal(recordID))
			Expect(history[0].Kind).To(Equal(core.KindRedeem))
			Expect(history[0].Status).To(Equal(core.StatusConfirmed))
			Expect(history[0].Tokens).To(Equal(int64(1)))
			Expect(history[0].Points).To(Equal(int64(-10)))
		})

		It("marks the record failed when the submission errors", func() {
			connect()
			fakeSender.SendReturns(common.Hash{}, errors.New("rpc down"))

			recordID, err := clicker.Redeem(ctx, 10)
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() core.TxStatus {
				for _, record := range clicker.History() {
					if record.ID == recordID {
						return record.Status
					}
				}
				return ""
			}).Should(Equal(core.StatusFailed))

			// nothing was confirmed, the score stays
			Expect(clicker.State().ConfirmedScore).To(Equal(int64(10)))
		})
	})

	Describe("FundGasWallet", func() {
		It("requires a connected wallet", func() {
			_, _, err := clicker.FundGasWallet(ctx, big.NewInt(1))
			Expect(err).To(MatchError(core.ErrNotConnected))
		})

		It("rejects non-positive amounts", func() {
			connect()

			_, _, err := clicker.FundGasWallet(ctx, big.NewInt(0))
			Expect(err).To(MatchError(core.ErrInvalidAmount))

			_, _, err = clicker.FundGasWallet(ctx, nil)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
		})

		It("builds the transfer for the primary wallet to send", func() {
			connect()
			fakeLedger.EstimateGasReturns(21_000, nil)

			spec, recordID, err := clicker.FundGasWallet(ctx, big.NewInt(1_000))
			Expect(err).NotTo(HaveOccurred())
			Expect(spec.To).To(Equal(gasAddr.Hex()))
			Expect(spec.ValueWei).To(Equal("1000"))
			Expect(spec.GasLimit).To(Equal(uint64(21_000)))

			history := clicker.History()
			Expect(history[0].ID).To(Equal(recordID))
			Expect(history[0].Kind).To(Equal(core.KindFund))
			Expect(history[0].Status).To(Equal(core.StatusPending))
			Expect(history[0].Amount).To(Equal("1000"))
		})

		It("falls back to the plain transfer gas limit when estimation fails", func() {
			connect()
			fakeLedger.EstimateGasReturns(0, errors.New("rpc down"))

			spec, _, err := clicker.FundGasWallet(ctx, big.NewInt(500))
			Expect(err).NotTo(HaveOccurred())
			Expect(spec.GasLimit).To(Equal(uint64(21_000)))
		})
	})

	Describe("FundSubmitted", func() {
		It("rejects unknown record IDs", func() {
			connect()

			err := clicker.FundSubmitted("nope", common.HexToHash("0xf1"))
			Expect(err).To(MatchError(core.ErrUnknownRecord))
		})

		It("watches the funding transfer to confirmation", func() {
			connect()
			fakeLedger.EstimateGasReturns(21_000, nil)
			fakeLedger.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

			_, recordID, err := clicker.FundGasWallet(ctx, big.NewInt(1_000))
			Expect(err).NotTo(HaveOccurred())

			hash := common.HexToHash("0xf2")
			Expect(clicker.FundSubmitted(recordID, hash)).To(Succeed())

			Eventually(func() core.TxStatus {
				for _, record := range clicker.History() {
					if record.ID == recordID {
						return record.Status
					}
				}
				return ""
			}).WithTimeout(6 * time.Second).Should(Equal(core.StatusConfirmed))

			history := clicker.History()
			Expect(history[0].Hash).To(Equal(hash.Hex()))
		})
	})

	Describe("Reconcile", func() {
		var clickLog func(hash common.Hash, newScore int64) types.Log

		BeforeEach(func() {
			clickLog = func(hash common.Hash, newScore int64) types.Log {
				return types.Log{
					Address:     contract.Address(),
					Topics:      []common.Hash{contract.ClickTopic(), common.BytesToHash(gasAddr.Bytes())},
					Data:        uint256Word(newScore),
					TxHash:      hash,
					BlockNumber: 99_000,
				}
			}
			fakeLedger.BlockNumberReturns(100_000, nil)
		})

		It("requires a connected wallet", func() {
			Expect(clicker.Reconcile(ctx)).To(MatchError(core.ErrNotConnected))
		})

		It("lets confirmed events win over local pending copies", func() {
			connect()
			hash := common.HexToHash("0xc2")
			fakeSender.SendReturns(hash, nil)

			_, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			// wait for the submission to attach the hash
			Eventually(func() string { return clicker.History()[0].Hash }).Should(Equal(hash.Hex()))

			fakeLedger.FilterLogsReturns([]types.Log{clickLog(hash, 11)}, nil)
			Expect(clicker.Reconcile(ctx)).To(Succeed())

			history := clicker.History()
			Expect(history).To(HaveLen(1))
			Expect(history[0].Status).To(Equal(core.StatusConfirmed))

			// the settled click moves from pending into confirmed, so the
			// displayed score holds steady
			state := clicker.State()
			Expect(state.PendingClicks).To(BeZero())
			Expect(state.ConfirmedScore).To(Equal(int64(11)))
			Expect(state.DisplayedScore).To(Equal(int64(11)))
		})

		It("rebuilds confirmed records missing locally", func() {
			connect()
			fakeLedger.FilterLogsReturns([]types.Log{clickLog(common.HexToHash("0xc3"), 11)}, nil)

			Expect(clicker.Reconcile(ctx)).To(Succeed())

			history := clicker.History()
			Expect(history).To(HaveLen(1))
			Expect(history[0].Kind).To(Equal(core.KindClick))
			Expect(history[0].Status).To(Equal(core.StatusConfirmed))
			Expect(history[0].Hash).To(Equal(common.HexToHash("0xc3").Hex()))

			// a second pass must not duplicate the rebuilt record
			Expect(clicker.Reconcile(ctx)).To(Succeed())
			Expect(clicker.History()).To(HaveLen(1))
		})

		It("filters history to the connected wallets", func() {
			connect()
			fakeLedger.FilterLogsReturns(nil, nil)

			Expect(clicker.Reconcile(ctx)).To(Succeed())

			_, query := fakeLedger.FilterLogsArgsForCall(0)
			Expect(query.Addresses).To(Equal([]common.Address{contract.Address()}))
			Expect(query.Topics).To(HaveLen(2))
			Expect(query.Topics[0]).To(ConsistOf(contract.ClickTopic(), contract.RedeemTopic(), contract.ContractFundedTopic()))
			Expect(query.Topics[1]).To(ContainElement(common.BytesToHash(primary.Bytes())))
		})
	})

	Describe("State", func() {
		It("reports scheduler health alongside the game state", func() {
			connect()
			fakeSched.QueueLengthsReturns(2, 3)
			fakeSched.ProcessingReturns(1)
			fakeSender.PendingReturns(4)

			state := clicker.State()
			Expect(state.TxQueueLength).To(Equal(2))
			Expect(state.InfoQueueLength).To(Equal(3))
			Expect(state.Processing).To(Equal(1))
			Expect(state.NetworkStatus).To(Equal("ok"))
			Expect(state.PendingTxs).To(Equal(4))
			Expect(state.GasWallet).To(Equal(gasAddr.Hex()))
		})

		It("serves cached gas balance without network traffic", func() {
			connect()
			cache.Set(freshcache.GasBalance, gasAddr.Hex(), big.NewInt(777))

			Expect(clicker.State().GasBalanceWei).To(Equal("777"))
		})
	})

	Describe("SetVisible", func() {
		It("relays visibility to the scheduler", func() {
			clicker.SetVisible(false)

			Expect(fakeSched.SetVisibleCallCount()).To(Equal(1))
			Expect(fakeSched.SetVisibleArgsForCall(0)).To(BeFalse())
		})
	})

	Describe("History", func() {
		It("returns records newest first", func() {
			connect()
			fakeSender.SendReturns(common.HexToHash("0x01"), nil)

			first, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := clicker.Click(ctx)
			Expect(err).NotTo(HaveOccurred())

			history := clicker.History()
			Expect(history).To(HaveLen(2))
			Expect(history[0].ID).To(Equal(second))
			Expect(history[1].ID).To(Equal(first))
		})
	})
})
