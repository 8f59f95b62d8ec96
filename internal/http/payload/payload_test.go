package payload_test

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/payload"
)

var _ = Describe("Payload", func() {
	Describe("ConnectRequest", func() {
		It("accepts a hex address with a hex signature", func() {
			req := payload.ConnectRequest{
				Address:   "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
				Signature: "0xabab",
			}
			Expect(req.Validate()).To(Succeed())
			Expect(req.SignatureBytes()).To(Equal([]byte{0xab, 0xab}))
		})

		It("rejects a malformed address", func() {
			req := payload.ConnectRequest{
				Address:   "not-an-address",
				Signature: "0xabab",
			}
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("rejects a non-hex signature", func() {
			req := payload.ConnectRequest{
				Address:   "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
				Signature: "0xzz",
			}
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("rejects missing fields", func() {
			Expect(payload.ConnectRequest{}.Validate()).To(HaveOccurred())
		})
	})

	Describe("RedeemRequest", func() {
		It("accepts a positive amount", func() {
			Expect(payload.RedeemRequest{Amount: 10}.Validate()).To(Succeed())
		})

		It("rejects zero and negative amounts", func() {
			Expect(payload.RedeemRequest{Amount: 0}.Validate()).To(HaveOccurred())
			Expect(payload.RedeemRequest{Amount: -5}.Validate()).To(HaveOccurred())
		})
	})

	Describe("FundRequest", func() {
		It("accepts a positive decimal wei amount", func() {
			req := payload.FundRequest{AmountWei: "1000000000000000"}
			Expect(req.Validate()).To(Succeed())
			Expect(req.Amount().String()).To(Equal("1000000000000000"))
		})

		It("rejects zero and non-numeric amounts", func() {
			Expect(payload.FundRequest{AmountWei: "0"}.Validate()).To(HaveOccurred())
			Expect(payload.FundRequest{AmountWei: "lots"}.Validate()).To(HaveOccurred())
		})
	})

	Describe("FundSubmittedRequest", func() {
		It("accepts a uuid record id with a hex hash", func() {
			req := payload.FundSubmittedRequest{
				RecordID: "7f9c24e8-3b12-40d5-9bc5-02a6c7b816d1",
				Hash:     "0xabcdef",
			}
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a record id that is not a uuid", func() {
			req := payload.FundSubmittedRequest{
				RecordID: "record-3",
				Hash:     "0xabcdef",
			}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("VisibilityRequest", func() {
		It("requires the visible flag to be present", func() {
			Expect(payload.VisibilityRequest{}.Validate()).To(HaveOccurred())

			visible := false
			Expect(payload.VisibilityRequest{Visible: &visible}.Validate()).To(Succeed())
		})
	})

	Describe("DecodeValidator", func() {
		var dv payload.DecodeValidator

		newRequest := func(body string) *http.Request {
			req, err := http.NewRequest("POST", "/clicker/redeem", strings.NewReader(body))
			ExpectWithOffset(1, err).NotTo(HaveOccurred())
			return req
		}

		It("decodes and validates in one pass", func() {
			var redeem payload.RedeemRequest
			Expect(dv.DecodeAndValidateJSONPayload(newRequest(`{"amount":10}`), &redeem)).To(Succeed())
			Expect(redeem.Amount).To(Equal(int64(10)))
		})

		It("rejects unknown fields", func() {
			var redeem payload.RedeemRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"amount":10,"bonus":true}`), &redeem)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("surfaces validation failures", func() {
			var redeem payload.RedeemRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"amount":0}`), &redeem)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})
	})
})
