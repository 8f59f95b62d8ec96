package sender_test

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender/fake"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

var _ = Describe("Sender", func() {
	var (
		snd          *sender.Sender
		fakeLedger   *fake.Ledger
		fakeDispatch *fake.Dispatcher
		fakeLogger   *zap.SugaredLogger
		gasWallet    *wallet.GasWallet
		ctx          context.Context
		to           common.Address
		maxPending   int
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeDispatch = new(fake.Dispatcher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		to = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		maxPending = 10

		var err error
		gasWallet, err = wallet.FromSignature(
			common.HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"),
			bytes.Repeat([]byte{0xab}, 65))
		Expect(err).NotTo(HaveOccurred())

		// the dispatcher fake runs operations inline, no budgets involved
		fakeDispatch.FetchStub = func(ctx context.Context, opts scheduler.FetchOptions, op scheduler.Operation) (any, error) {
			return op(ctx)
		}
		fakeDispatch.TransactStub = func(ctx context.Context, opts scheduler.TransactOptions, op scheduler.Operation) (any, error) {
			return op(ctx)
		}

		fakeLedger.PendingNonceAtReturns(5, nil)
		fakeLedger.BalanceAtReturns(big.NewInt(1_000_000_000), nil)
		fakeLedger.SuggestGasPriceReturns(big.NewInt(100), nil)
		fakeLedger.SendTransactionReturns(nil)
		fakeLedger.TransactionReceiptReturns(nil, ethereum.NotFound)
	})

	JustBeforeEach(func() {
		snd = sender.New(fakeLogger, fakeLedger, fakeDispatch, gasWallet, big.NewInt(31337), maxPending)
		Expect(snd.RefreshNonce(ctx)).To(Succeed())
	})

	AfterEach(func() {
		snd.Stop()
	})

	Describe("RefreshNonce", func() {
		It("baselines the local counter from the ledger", func() {
			_, err := snd.Send(ctx, sender.TxSpec{To: to})
			Expect(err).NotTo(HaveOccurred())

			_, tx := fakeLedger.SendTransactionArgsForCall(0)
			Expect(tx.Nonce()).To(Equal(uint64(5)))
		})
	})

	Describe("Send", func() {
		It("assigns strictly increasing nonces without extra round-trips", func() {
			for i := 0; i < 3; i++ {
				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(fakeLedger.SendTransactionCallCount()).To(Equal(3))
			for i := 0; i < 3; i++ {
				_, tx := fakeLedger.SendTransactionArgsForCall(i)
				Expect(tx.Nonce()).To(Equal(uint64(5 + i)))
			}
			// one initial baseline read, none per transaction
			Expect(fakeLedger.PendingNonceAtCallCount()).To(Equal(1))
		})

		It("bumps the suggested gas price", func() {
			_, err := snd.Send(ctx, sender.TxSpec{To: to})
			Expect(err).NotTo(HaveOccurred())

			_, tx := fakeLedger.SendTransactionArgsForCall(0)
			Expect(tx.GasPrice()).To(Equal(big.NewInt(110)))
		})

		It("caches balance and gas price between submissions", func() {
			for i := 0; i < 3; i++ {
				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(fakeLedger.BalanceAtCallCount()).To(Equal(1))
			Expect(fakeLedger.SuggestGasPriceCallCount()).To(Equal(1))
		})

		It("tracks submissions as pending", func() {
			_, err := snd.Send(ctx, sender.TxSpec{To: to})
			Expect(err).NotTo(HaveOccurred())
			Expect(snd.Pending()).To(Equal(1))
		})

		When("the gas wallet is empty", func() {
			It("rejects with ErrNoGas before submitting", func() {
				fakeLedger.BalanceAtReturns(big.NewInt(0), nil)

				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).To(MatchError(sender.ErrNoGas))
				Expect(fakeLedger.SendTransactionCallCount()).To(Equal(0))
				Expect(snd.Pending()).To(Equal(0))
			})
		})

		When("the pending ceiling is reached", func() {
			BeforeEach(func() {
				maxPending = 1
			})

			It("rejects with ErrTooManyPending", func() {
				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).NotTo(HaveOccurred())

				_, err = snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).To(MatchError(sender.ErrTooManyPending))
				Expect(fakeLedger.SendTransactionCallCount()).To(Equal(1))
			})
		})

		When("submission hits a nonce error", func() {
			It("refreshes the nonce and reports ErrNonceRetry", func() {
				fakeLedger.SendTransactionReturns(errors.New("nonce too low"))
				fakeLedger.PendingNonceAtReturnsOnCall(1, 9, nil)

				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).To(MatchError(sender.ErrNonceRetry))
				Expect(fakeLedger.PendingNonceAtCallCount()).To(Equal(2))
				Expect(snd.Pending()).To(Equal(0))

				// the next submission uses the re-baselined nonce
				fakeLedger.SendTransactionReturns(nil)
				_, err = snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).NotTo(HaveOccurred())
				_, tx := fakeLedger.SendTransactionArgsForCall(1)
				Expect(tx.Nonce()).To(Equal(uint64(9)))
			})

			It("hands the admission slot back when the refresh also fails", func() {
				fakeLedger.SendTransactionReturns(errors.New("nonce too low"))
				fakeLedger.PendingNonceAtReturnsOnCall(1, 0, errors.New("rpc down"))

				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).To(MatchError(sender.ErrNonceRetry))
				Expect(snd.Pending()).To(Equal(0))
			})
		})

		When("submission fails outright", func() {
			It("rolls the in-flight count back", func() {
				fakeLedger.SendTransactionReturns(errors.New("connection refused"))

				_, err := snd.Send(ctx, sender.TxSpec{To: to})
				Expect(err).To(HaveOccurred())
				Expect(snd.Pending()).To(Equal(0))
			})
		})
	})

	Describe("confirmation watching", func() {
		It("reports the receipt and releases the pending slot", func() {
			receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(77)}
			fakeLedger.TransactionReceiptReturns(receipt, nil)

			results := make(chan sender.Result, 1)
			hash, err := snd.Send(ctx, sender.TxSpec{
				To: to,
				OnResult: func(res sender.Result) {
					results <- res
				},
			})
			Expect(err).NotTo(HaveOccurred())

			var res sender.Result
			Eventually(results).WithTimeout(5 * time.Second).Should(Receive(&res))
			Expect(res.Hash).To(Equal(hash))
			Expect(res.Receipt).To(Equal(receipt))
			Expect(res.Err).NotTo(HaveOccurred())

			Eventually(snd.Pending).Should(Equal(0))
		})

		It("keeps polling while the transaction is unmined", func() {
			_, err := snd.Send(ctx, sender.TxSpec{To: to})
			Expect(err).NotTo(HaveOccurred())

			Eventually(fakeLedger.TransactionReceiptCallCount).
				WithTimeout(5 * time.Second).
				Should(BeNumerically(">=", 2))
			Expect(snd.Pending()).To(Equal(1))
		})
	})

	Describe("Balance", func() {
		It("serves a cached value without re-fetching", func() {
			first, err := snd.Balance(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(big.NewInt(1_000_000_000)))

			_, err = snd.Balance(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLedger.BalanceAtCallCount()).To(Equal(1))
		})

		When("the fetch fails with nothing cached", func() {
			It("surfaces the error", func() {
				fakeLedger.BalanceAtReturns(nil, errors.New("boom"))

				_, err := snd.Balance(ctx)
				Expect(err).To(MatchError(ContainSubstring("boom")))
			})
		})
	})

	Describe("Address", func() {
		It("is the gas wallet address", func() {
			Expect(snd.Address()).To(Equal(gasWallet.Address()))
		})
	})
})
