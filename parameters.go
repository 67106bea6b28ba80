package pace

import (
	"github.com/bytemare/ksf"
	"golang.org/x/crypto/cryptobyte"

	"github.com/bytemare/pace/duplex"
	"github.com/bytemare/pace/group"
)

const (
	maxIDLength   = 1<<16 - 1
	stretchLength = 64
)

// Parameters groups a party's session context. It can be built once, serialized, stored, and reused
// across both roles of a party, but the session id must be unique to each protocol run.
type Parameters struct {
	// LocalID is this party's identifier.
	LocalID []byte

	// RemoteID is the remote peer's identifier.
	RemoteID []byte

	// SessionID is a caller-supplied session identifier, e.g. a nonce, that must be unique per session
	// and agreed on by both parties. An empty session id is a valid context, distinct from any
	// non-empty one. Reusing a session id across runs with the same identities and password voids
	// cross-session unlinkability.
	SessionID []byte

	// KSF optionally identifies a key stretching function applied to the password before it enters
	// the transcript, with the session id as salt. The zero value applies no stretching. Both parties
	// must agree on it.
	KSF ksf.Identifier

	// Group overrides the group to operate in. If nil, ristretto255 is used.
	Group group.Group

	// Duplex overrides the transcript construction, given a domain separation label. If nil, STROBE-256
	// is used.
	Duplex func(protocol string) duplex.Duplex
}

// Initiator returns a new Exchanger for the protocol's initiator role.
func (p *Parameters) Initiator(password []byte) (*Exchanger, error) {
	return newExchanger(Initiator, p, password)
}

// Responder returns a new Exchanger for the protocol's responder role.
func (p *Parameters) Responder(password []byte) (*Exchanger, error) {
	return newExchanger(Responder, p, password)
}

func (p *Parameters) validate() error {
	switch {
	case len(p.LocalID) > maxIDLength:
		return errSetupLongLocalID
	case len(p.RemoteID) > maxIDLength:
		return errSetupLongRemoteID
	case len(p.SessionID) > maxIDLength:
		return errSetupLongSessionID
	default:
		return nil
	}
}

// stretch hardens the password through the configured key stretching function, salted with the session
// id. An unset KSF returns the password untouched.
func (p *Parameters) stretch(password []byte) []byte {
	if p.KSF == 0 {
		return password
	}

	return p.KSF.Get().Harden(password, p.SessionID, stretchLength)
}

// Serialize returns a byte string serialization of p. Group and Duplex overrides are not serialized.
func (p *Parameters) Serialize() []byte {
	b := cryptobyte.NewBuilder(make([]byte, 0, 7+len(p.LocalID)+len(p.RemoteID)+len(p.SessionID)))
	b.AddUint8(uint8(p.KSF))
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.LocalID) })
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.RemoteID) })
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.SessionID) })

	return b.BytesOrPanic()
}

// DeserializeParameters attempts to decode input into a Parameters structure.
func DeserializeParameters(input []byte) (*Parameters, error) {
	s := cryptobyte.String(input)

	var k uint8
	if !s.ReadUint8(&k) {
		return nil, errEncodingShort
	}

	var localID, remoteID, sessionID cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&localID) ||
		!s.ReadUint16LengthPrefixed(&remoteID) ||
		!s.ReadUint16LengthPrefixed(&sessionID) ||
		!s.Empty() {
		return nil, errEncodingInvalid
	}

	return &Parameters{
		LocalID:   append([]byte(nil), localID...),
		RemoteID:  append([]byte(nil), remoteID...),
		SessionID: append([]byte(nil), sessionID...),
		KSF:       ksf.Identifier(k),
	}, nil
}
