package payload

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// ConnectRequest carries the primary wallet address and its signature over
// the derivation challenge message.
type ConnectRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, validation.By(isHexAddress)),
		validation.Field(&c.Signature, validation.Required, validation.By(isHexBytes)),
	)
}

// SignatureBytes decodes the hex signature; Validate must pass first.
func (c ConnectRequest) SignatureBytes() []byte {
	raw, _ := hex.DecodeString(strings.TrimPrefix(c.Signature, "0x"))
	return raw
}

func isHexAddress(value any) error {
	addr, _ := value.(string)
	if !common.IsHexAddress(addr) {
		return errors.New("must be a hex address")
	}
	return nil
}

func isHexBytes(value any) error {
	raw, _ := value.(string)
	raw = strings.TrimPrefix(raw, "0x")
	if raw == "" {
		return errors.New("must not be empty")
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return errors.New("must be hex encoded bytes")
	}
	return nil
}
