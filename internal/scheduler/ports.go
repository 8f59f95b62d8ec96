package scheduler

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// EndpointSwitcher rotates the RPC client to an alternate endpoint when the
// active one throttles us. Switch reports whether an alternate exists.
//
//counterfeiter:generate -o fake -fake-name EndpointSwitcher . EndpointSwitcher
type EndpointSwitcher interface {
	Switch() bool
}
