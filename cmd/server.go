package cmd

import (
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/config"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/handler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/handler/middleware"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/payload"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/http/server"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
	"github.com/nicomenzi/cookie-clicker-2-sub000/pkg/jwt"
	"github.com/nicomenzi/cookie-clicker-2-sub000/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("clicker", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	endpoints := make([]chain.RPCClient, 0, 2)
	primary, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("rpc node connection failed", "error", err, "url", config.NodeURL)
		return err
	}
	endpoints = append(endpoints, primary)

	if config.FallbackNodeURL != "" {
		fallback, err := ethclient.Dial(config.FallbackNodeURL)
		if err != nil {
			logger.Errorw("fallback rpc node connection failed", "error", err, "url", config.FallbackNodeURL)
			return err
		}
		endpoints = append(endpoints, fallback)
	}

	client, err := chain.NewClient(endpoints...)
	if err != nil {
		logger.Errorw("failed to create rpc client", "error", err)
		return err
	}

	contract, err := chain.NewContract(config.ContractAddress)
	if err != nil {
		logger.Errorw("failed to create game contract binding", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	cache := freshcache.New()

	sched := scheduler.New(logger, cache, client, scheduler.Config{
		TxPerSecond:   config.TxPerSecond,
		InfoPerSecond: config.InfoPerSecond,
	})
	sched.Run()

	chainID := big.NewInt(config.ChainID)
	senderFactory := func(gasWallet *wallet.GasWallet) core.TxSender {
		return sender.New(logger, client, sched, gasWallet, chainID, config.MaxPendingTxs)
	}

	// game engine
	clicker := core.NewClicker(
		logger,
		client,
		sched,
		sched,
		cache,
		contract,
		jwtService,
		senderFactory,
		core.Config{
			HistoryCap: config.HistoryCap,
			MaxPending: config.MaxPendingTxs,
		})
	clicker.Run()

	// handler
	clickerHlr := handler.NewClickerHandler(
		logger,
		payload.DecodeValidator{},
		clicker)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetChallenge, clickerHlr.HandleGetChallenge)
	mux.HandleFunc(handler.Connect, clickerHlr.HandleConnect)
	mux.HandleFunc(handler.Click, clickerHlr.HandleClick)
	mux.HandleFunc(handler.Redeem, clickerHlr.HandleRedeem)
	mux.HandleFunc(handler.Fund, clickerHlr.HandleFund)
	mux.HandleFunc(handler.FundSubmitted, clickerHlr.HandleFundSubmitted)
	mux.HandleFunc(handler.GetState, clickerHlr.HandleGetState)
	mux.HandleFunc(handler.GetHistory, clickerHlr.HandleGetHistory)
	mux.HandleFunc(handler.Visibility, clickerHlr.HandleVisibility)
	mux.HandleFunc(handler.Activity, clickerHlr.HandleActivity)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv, clicker, sched)
}

func run(server *server.HTTPServer, clicker *core.Clicker, sched *scheduler.Scheduler) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	clicker.Stop()
	sched.Stop()

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
