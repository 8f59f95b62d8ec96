package wallet

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// MessageSigner is the capability the primary wallet exposes: sign an
// arbitrary text message and return the raw signature bytes.
//
//counterfeiter:generate -o fake -fake-name MessageSigner . MessageSigner
type MessageSigner interface {
	SignMessage(ctx context.Context, message string) ([]byte, error)
}
