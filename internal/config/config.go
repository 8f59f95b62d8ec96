package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	rpcNodeEnvKey         = "RPC_NODE_URL"
	rpcFallbackEnvKey     = "RPC_FALLBACK_URL"
	contractAddressEnvKey = "GAME_CONTRACT_ADDRESS"
	chainIDEnvKey         = "CHAIN_ID"
	sessionSecretEnvKey   = "SESSION_SECRET"

	txBudgetEnvKey   = "TX_REQUESTS_PER_SECOND"
	infoBudgetEnvKey = "INFO_REQUESTS_PER_SECOND"
	maxPendingEnvKey = "MAX_PENDING_TRANSACTIONS"
	historyCapEnvKey = "HISTORY_CAP"
)

// defaults match the public RPC plan: 10 requests per second total, split
// 9 transactional / 1 informational.
const (
	defaultTxBudget   = 9
	defaultInfoBudget = 1
	defaultMaxPending = 10
	defaultHistoryCap = 50
)

type App struct {
	Port            string
	NodeURL         string
	FallbackNodeURL string
	ContractAddress string
	ChainID         int64
	SessionSecret   string

	TxPerSecond   int
	InfoPerSecond int
	MaxPendingTxs int
	HistoryCap    int
}

func NewApp() (App, error) {
	// optional .env for local development
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(rpcNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcNodeEnvKey)
	}

	contractAddress, ok := os.LookupEnv(contractAddressEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, contractAddressEnvKey)
	}

	chainIDRaw, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}
	chainID, err := strconv.ParseInt(chainIDRaw, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", chainIDEnvKey, err)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	// fallback endpoint is optional
	fallbackURL := os.Getenv(rpcFallbackEnvKey)

	txBudget, err := intEnv(txBudgetEnvKey, defaultTxBudget)
	if err != nil {
		return App{}, err
	}
	infoBudget, err := intEnv(infoBudgetEnvKey, defaultInfoBudget)
	if err != nil {
		return App{}, err
	}
	maxPending, err := intEnv(maxPendingEnvKey, defaultMaxPending)
	if err != nil {
		return App{}, err
	}
	historyCap, err := intEnv(historyCapEnvKey, defaultHistoryCap)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		FallbackNodeURL: fallbackURL,
		ContractAddress: contractAddress,
		ChainID:         chainID,
		SessionSecret:   sessionSecret,
		TxPerSecond:     txBudget,
		InfoPerSecond:   infoBudget,
		MaxPendingTxs:   maxPending,
		HistoryCap:      historyCap,
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
