package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrSecureWallet error = errors.New("failed to create secure wallet")

// domainSalt pins derived keys to this application. Changing it changes every
// player's gas wallet address.
const domainSalt = "cookie-clicker-2:gas-wallet:v1"

const strengtheningRounds = 1000

const messageTemplate = "Create my Cookie Clicker gas wallet\n\nPrimary wallet: %s\nApplication: %s\n\nThis signature derives a dedicated in-game signing key. It costs nothing and sends no transaction."

// GasWallet is the secondary signing identity derived from one primary-wallet
// signature. The private key never leaves process memory; the same primary
// address and signature always re-derive the same key.
type GasWallet struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

// DerivationMessage returns the exact text the primary wallet must sign for
// the given address.
func DerivationMessage(primary common.Address) string {
	return fmt.Sprintf(messageTemplate, primary.Hex(), domainSalt)
}

// Derive requests one signature from the primary wallet and stretches it into
// a secp256k1 private key. Deterministic for a fixed (primary, signature) pair.
func Derive(ctx context.Context, primary common.Address, signer MessageSigner) (*GasWallet, error) {
	signature, err := signer.SignMessage(ctx, DerivationMessage(primary))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecureWallet, err)
	}
	if len(signature) == 0 {
		return nil, fmt.Errorf("%w: empty signature", ErrSecureWallet)
	}

	return FromSignature(primary, signature)
}

// FromSignature derives the gas wallet from an already obtained signature.
func FromSignature(primary common.Address, signature []byte) (*GasWallet, error) {
	seed := crypto.Keccak256(signature)

	// stretch the seed so a low-entropy signature cannot be shortcut; each
	// round mixes in a primary-address-bound digest
	mixin := crypto.Keccak256(append(primary.Bytes(), []byte(domainSalt)...))
	for i := 0; i < strengtheningRounds; i++ {
		seed = crypto.Keccak256(seed, mixin)
	}

	key, err := seedToKey(seed, mixin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecureWallet, err)
	}

	return &GasWallet{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}, nil
}

// seedToKey interprets the digest as a private scalar. Digests outside the
// curve order are astronomically rare but must be re-hashed, not truncated,
// to keep derivation deterministic.
func seedToKey(seed []byte, mixin []byte) (*ecdsa.PrivateKey, error) {
	for attempt := 0; attempt < 16; attempt++ {
		key, err := crypto.ToECDSA(seed)
		if err == nil {
			return key, nil
		}
		seed = crypto.Keccak256(seed, mixin)
	}
	return nil, errors.New("could not map seed onto curve")
}

func (w *GasWallet) Address() common.Address {
	return w.address
}

// Key exposes the signing key to the transaction sender only.
func (w *GasWallet) Key() *ecdsa.PrivateKey {
	return w.key
}
