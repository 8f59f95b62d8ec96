package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/handler/middleware"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/payload"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

var (
	GetChallenge  = "GET /clicker/challenge"
	Connect       = "POST /clicker/connect"
	Click         = "POST /clicker/click"
	Redeem        = "POST /clicker/redeem"
	Fund          = "POST /clicker/fund"
	FundSubmitted = "POST /clicker/fund/submitted"
	GetState      = "GET /clicker/state"
	GetHistory    = "GET /clicker/history"
	Visibility    = "POST /clicker/visibility"
	Activity      = "POST /clicker/activity"
)

type ClickerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	game             GameService
}

func NewClickerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, gameService GameService) *ClickerHandler {
	return &ClickerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		game:             gameService,
	}
}

// staticSigner replays a signature the browser wallet already produced.
type staticSigner struct {
	signature []byte
}

func (s staticSigner) SignMessage(_ context.Context, _ string) ([]byte, error) {
	return s.signature, nil
}

func (h *ClickerHandler) HandleGetChallenge(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build challenge",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetChallenge, "request_id", requestId)
		return
	}

	address := values.Get("address")
	if !common.IsHexAddress(address) {
		h.respond(w, Response{
			Message: "Could not build challenge",
			Error:   "address parameter must be a valid hex address",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid address parameter", "address", address, "handler", GetChallenge, "request_id", requestId)
		return
	}

	resp := map[string]string{
		"message": wallet.DerivationMessage(common.HexToAddress(address)),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var connectPayload payload.ConnectRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &connectPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	primary := common.HexToAddress(connectPayload.Address)
	signer := staticSigner{signature: connectPayload.SignatureBytes()}

	token, gasWallet, err := h.game.Connect(r.Context(), primary, signer)
	if err != nil {
		resp := Response{
			Message: "Connect failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAlreadyConnected) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else if errors.Is(err, wallet.ErrSecureWallet) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("wallet connect failed",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet connected",
		"primary", primary.Hex(),
		"gas_wallet", gasWallet.Hex(),
		"handler", Connect,
		"request_id", requestId)

	resp := map[string]string{
		"token":      token,
		"gas_wallet": gasWallet.Hex(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	if !h.authorized(w, r, Click, requestId) {
		return
	}

	recordID, err := h.game.Click(r.Context())
	if err != nil {
		resp := Response{
			Message: "Click rejected",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotConnected) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else if errors.Is(err, sender.ErrTooManyPending) {
			httpCode = http.StatusTooManyRequests
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("click rejected",
			"error", err,
			"handler", Click,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"record_id": recordID,
	}
	h.respond(w, resp, http.StatusAccepted, requestId)
}

func (h *ClickerHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	if !h.authorized(w, r, Redeem, requestId) {
		return
	}

	var redeemPayload payload.RedeemRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &redeemPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not redeem",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Redeem,
			"request_id", requestId)
		return
	}

	recordID, err := h.game.Redeem(r.Context(), redeemPayload.Amount)
	if err != nil {
		resp := Response{
			Message: "Redeem rejected",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrNotConnected):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		case errors.Is(err, core.ErrInvalidAmount),
			errors.Is(err, core.ErrNotMultiple),
			errors.Is(err, core.ErrInsufficientScore):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, sender.ErrTooManyPending):
			httpCode = http.StatusTooManyRequests
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("redeem rejected",
			"error", err,
			"handler", Redeem,
			"request_id", requestId)
		return
	}

	h.logs.Infow("redeem submitted",
		"amount", redeemPayload.Amount,
		"record_id", recordID,
		"handler", Redeem,
		"request_id", requestId)

	resp := map[string]string{
		"record_id": recordID,
	}
	h.respond(w, resp, http.StatusAccepted, requestId)
}

func (h *ClickerHandler) HandleFund(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	if !h.authorized(w, r, Fund, requestId) {
		return
	}

	var fundPayload payload.FundRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &fundPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not prepare funding",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Fund,
			"request_id", requestId)
		return
	}

	spec, recordID, err := h.game.FundGasWallet(r.Context(), fundPayload.Amount())
	if err != nil {
		resp := Response{
			Message: "Funding failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNotConnected) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("funding preparation failed",
			"error", err,
			"handler", Fund,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"record_id": recordID,
		"funding":   spec,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleFundSubmitted(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	if !h.authorized(w, r, FundSubmitted, requestId) {
		return
	}

	var submittedPayload payload.FundSubmittedRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &submittedPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record funding transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", FundSubmitted,
			"request_id", requestId)
		return
	}

	err = h.game.FundSubmitted(submittedPayload.RecordID, common.HexToHash(submittedPayload.Hash))
	if err != nil {
		resp := Response{
			Message: "Could not record funding transaction",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnknownRecord) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to record funding transaction",
			"error", err,
			"handler", FundSubmitted,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Funding transaction is being tracked"}, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	h.game.MarkActivity()

	resp := map[string]core.State{
		"state": h.game.State(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	resp := map[string][]core.TxRecord{
		"transactions": h.game.History(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleVisibility(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var visibilityPayload payload.VisibilityRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &visibilityPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update visibility",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Visibility,
			"request_id", requestId)
		return
	}

	h.game.SetVisible(*visibilityPayload.Visible)

	h.logs.Infow("visibility updated",
		"visible", *visibilityPayload.Visible,
		"handler", Visibility,
		"request_id", requestId)

	h.respond(w, Response{Message: "Visibility updated"}, http.StatusOK, requestId)
}

func (h *ClickerHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	h.game.MarkActivity()
	h.respond(w, Response{Message: "Activity recorded"}, http.StatusOK, requestId)
}

func (h *ClickerHandler) authorized(w http.ResponseWriter, r *http.Request, route string, requestId string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return false
	}

	if _, err := h.game.ValidateSession(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "session token is not valid",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("session validation failed", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	return true
}

func (h *ClickerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
