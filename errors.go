package pace

import "errors"

// Setup errors.
var (
	errSetupLongLocalID   = errors.New("setup - local identity is too long")
	errSetupLongRemoteID  = errors.New("setup - remote identity is too long")
	errSetupLongSessionID = errors.New("setup - session id is too long")
)

// Parameter encoding errors.
var (
	errEncodingShort   = errors.New("parameter encoding is too short")
	errEncodingInvalid = errors.New("invalid parameter encoding")
)

// Errors resulting from invalid peer data or misuse of the Exchanger.
var (
	// ErrPeerElementNil is returned when the peer element is nil or empty.
	ErrPeerElementNil = errors.New("peer data - peer element is either nil or of size 0")

	// ErrPeerElementInvalid is returned when the peer element is not a canonical encoding of a valid
	// group element.
	ErrPeerElementInvalid = errors.New("peer data - peer element decoding error")

	// ErrPeerElementIdentity is returned when the shared point is the group's identity element, i.e.
	// the peer attempted to force a predictable shared secret.
	ErrPeerElementIdentity = errors.New("peer data - derived shared element is the identity element")

	// ErrExchangerConsumed is returned when Receive is called on an already consumed Exchanger.
	ErrExchangerConsumed = errors.New("exchanger consumed by a previous call to Receive")
)
