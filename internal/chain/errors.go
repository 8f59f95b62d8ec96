package chain

import (
	"errors"
	"strings"
)

var ErrUnknownEvent error = errors.New("log entry is not a known game event")

var rateLimitMarkers = []string{
	"429",
	"rate limit",
	"too many requests",
	"request limit",
	"exceeded",
	"throttl",
}

var nonceMarkers = []string{
	"nonce",
	"replacement transaction underpriced",
	"already known",
	"known transaction",
}

// IsRateLimited classifies an RPC error as endpoint throttling. Providers are
// not consistent about this, so matching is on message substrings.
func IsRateLimited(err error) bool {
	return matchesAny(err, rateLimitMarkers)
}

// IsNonceError classifies an RPC error as nonce desynchronization, which the
// sender recovers from by refreshing its counter from the ledger.
func IsNonceError(err error) bool {
	return matchesAny(err, nonceMarkers)
}

func matchesAny(err error, markers []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
