package lib

import "errors"

var (
	// ErrNoNetwork means no override, connected network or default network was available.
	ErrNoNetwork = errors.New("no network selected and no default network set")
	// ErrNoDeployment means the deployment table has no entry for the resolved network.
	ErrNoDeployment = errors.New("no deployment for network")

	ErrUnknownMember    = errors.New("unknown member")
	ErrCapability       = errors.New("member does not support this capability")
	ErrNotPayable       = errors.New("member is not payable")
	ErrPreparedMismatch = errors.New("prepared request does not match call")
	ErrNetworkMismatch  = errors.New("provider is connected to a different network")
	ErrNoSigner         = errors.New("transact opts with a signer are required")
	ErrNoResult         = errors.New("no result recorded for member")
	ErrNoCallback       = errors.New("callback is nil")
)
