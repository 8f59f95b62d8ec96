package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/handler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/handler/fake"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

var _ = Describe("ClickerHandler", func() {
	var (
		ch            *handler.ClickerHandler
		fakeGame      *fake.GameService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		primary       common.Address
		gasWallet     common.Address
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeGame = new(fake.GameService)
		fakeValidator = new(fake.RequestValidator)
		primary = common.HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
		gasWallet = common.HexToAddress("0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc")

		fakeGame.ValidateSessionReturns(primary, nil)
		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ch = handler.NewClickerHandler(fakeLogger, fakeValidator, fakeGame)
	})

	Describe("HandleGetChallenge", func() {
		JustBeforeEach(func() {
			ch.HandleGetChallenge(w, req)
		})

		When("the address is valid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/clicker/challenge?address="+primary.Hex(), nil)
			})

			It("should return the derivation message", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["message"]).To(Equal(wallet.DerivationMessage(primary)))
			})
		})

		When("the address is missing or malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/clicker/challenge?address=nope", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("hex address"))
			})
		})
	})

	Describe("HandleConnect", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"address":"0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf","signature":"0xabab"}`)
			req = httptest.NewRequest("POST", "/clicker/connect", body)
			req.Header.Set("Content-Type", "application/json")

			fakeGame.ConnectReturns("session-token", gasWallet, nil)
		})

		JustBeforeEach(func() {
			ch.HandleConnect(w, req)
		})

		When("the connection succeeds", func() {
			It("should return the session token and gas wallet", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal("session-token"))
				Expect(response["gas_wallet"]).To(Equal(gasWallet.Hex()))

				Expect(fakeGame.ConnectCallCount()).To(Equal(1))
				_, argPrimary, _ := fakeGame.ConnectArgsForCall(0)
				Expect(argPrimary).To(Equal(primary))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeGame.ConnectCallCount()).To(Equal(0))
			})
		})

		When("a wallet is already connected", func() {
			BeforeEach(func() {
				fakeGame.ConnectReturns("", common.Address{}, core.ErrAlreadyConnected)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrAlreadyConnected.Error()))
			})
		})

		When("the signature cannot derive a wallet", func() {
			BeforeEach(func() {
				fakeGame.ConnectReturns("", common.Address{}, wallet.ErrSecureWallet)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the engine fails unexpectedly", func() {
			BeforeEach(func() {
				fakeGame.ConnectReturns("", common.Address{}, fakeErr)
			})

			It("should return status 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleClick", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/clicker/click", nil)
			req.Header.Set("AUTH_TOKEN", "session-token")

			fakeGame.ClickReturns("record-1", nil)
		})

		JustBeforeEach(func() {
			ch.HandleClick(w, req)
		})

		When("the click is accepted", func() {
			It("should return status 202 with the record id", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["record_id"]).To(Equal("record-1"))
				Expect(fakeGame.ClickCallCount()).To(Equal(1))
				Expect(fakeGame.ValidateSessionArgsForCall(0)).To(Equal("session-token"))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeGame.ClickCallCount()).To(Equal(0))
			})
		})

		When("the session token is not valid", func() {
			BeforeEach(func() {
				fakeGame.ValidateSessionReturns(common.Address{}, fakeErr)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeGame.ClickCallCount()).To(Equal(0))
			})
		})

		When("too many transactions are pending", func() {
			BeforeEach(func() {
				fakeGame.ClickReturns("", sender.ErrTooManyPending)
			})

			It("should return status 429", func() {
				Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeGame.ClickReturns("", core.ErrNotConnected)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleRedeem", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"amount":10}`)
			req = httptest.NewRequest("POST", "/clicker/redeem", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("AUTH_TOKEN", "session-token")

			fakeGame.RedeemReturns("record-2", nil)
		})

		JustBeforeEach(func() {
			ch.HandleRedeem(w, req)
		})

		When("the redemption is accepted", func() {
			It("should return status 202 with the record id", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["record_id"]).To(Equal("record-2"))

				_, argAmount := fakeGame.RedeemArgsForCall(0)
				Expect(argAmount).To(Equal(int64(10)))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeGame.RedeemCallCount()).To(Equal(0))
			})
		})

		When("the amount fails a game rule", func() {
			BeforeEach(func() {
				fakeGame.RedeemReturns("", core.ErrNotMultiple)
			})

			It("should return status 400 with the rule", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrNotMultiple.Error()))
			})
		})

		When("the confirmed score is too low", func() {
			BeforeEach(func() {
				fakeGame.RedeemReturns("", core.ErrInsufficientScore)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleFund", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"amountWei":"1000"}`)
			req = httptest.NewRequest("POST", "/clicker/fund", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("AUTH_TOKEN", "session-token")

			fakeGame.FundGasWalletReturns(core.FundingSpec{
				To:       gasWallet.Hex(),
				ValueWei: "1000",
				GasLimit: 21_000,
			}, "record-3", nil)
		})

		JustBeforeEach(func() {
			ch.HandleFund(w, req)
		})

		When("the funding spec is built", func() {
			It("should return the transfer for the primary wallet to send", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response struct {
					RecordID string           `json:"record_id"`
					Funding  core.FundingSpec `json:"funding"`
				}
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.RecordID).To(Equal("record-3"))
				Expect(response.Funding.To).To(Equal(gasWallet.Hex()))
				Expect(response.Funding.GasLimit).To(Equal(uint64(21_000)))

				_, argAmount := fakeGame.FundGasWalletArgsForCall(0)
				Expect(argAmount.String()).To(Equal("1000"))
			})
		})

		When("no wallet is connected", func() {
			BeforeEach(func() {
				fakeGame.FundGasWalletReturns(core.FundingSpec{}, "", core.ErrNotConnected)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleFundSubmitted", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"recordId":"record-3","hash":"0xf2"}`)
			req = httptest.NewRequest("POST", "/clicker/fund/submitted", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("AUTH_TOKEN", "session-token")

			fakeGame.FundSubmittedReturns(nil)
		})

		JustBeforeEach(func() {
			ch.HandleFundSubmitted(w, req)
		})

		When("the record exists", func() {
			It("should start tracking and return status 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				argRecordID, argHash := fakeGame.FundSubmittedArgsForCall(0)
				Expect(argRecordID).To(Equal("record-3"))
				Expect(argHash).To(Equal(common.HexToHash("0xf2")))
			})
		})

		When("the record is unknown", func() {
			BeforeEach(func() {
				fakeGame.FundSubmittedReturns(core.ErrUnknownRecord)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetState", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/clicker/state", nil)

			fakeGame.StateReturns(core.State{
				Connected:      true,
				ConfirmedScore: 10,
				PendingClicks:  3,
				DisplayedScore: 13,
			})
		})

		JustBeforeEach(func() {
			ch.HandleGetState(w, req)
		})

		It("should return the state and count as activity", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var response map[string]core.State
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response["state"].DisplayedScore).To(Equal(int64(13)))
			Expect(fakeGame.MarkActivityCallCount()).To(Equal(1))
		})
	})

	Describe("HandleGetHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/clicker/history", nil)

			fakeGame.HistoryReturns([]core.TxRecord{
				{ID: "record-2", Kind: core.KindRedeem, Status: core.StatusPending},
				{ID: "record-1", Kind: core.KindClick, Status: core.StatusConfirmed},
			})
		})

		JustBeforeEach(func() {
			ch.HandleGetHistory(w, req)
		})

		It("should return the records newest first", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var response map[string][]core.TxRecord
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response["transactions"]).To(HaveLen(2))
			Expect(response["transactions"][0].ID).To(Equal("record-2"))
		})
	})

	Describe("HandleVisibility", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"visible":false}`)
			req = httptest.NewRequest("POST", "/clicker/visibility", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			ch.HandleVisibility(w, req)
		})

		When("the payload is valid", func() {
			It("should relay the visibility", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeGame.SetVisibleCallCount()).To(Equal(1))
				Expect(fakeGame.SetVisibleArgsForCall(0)).To(BeFalse())
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeGame.SetVisibleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleActivity", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/clicker/activity", nil)
		})

		JustBeforeEach(func() {
			ch.HandleActivity(w, req)
		})

		It("should record the interaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeGame.MarkActivityCallCount()).To(Equal(1))
		})
	})
})
