package pace

import (
	"fmt"

	"github.com/bytemare/pace/duplex"
	"github.com/bytemare/pace/group"
)

// Role in the protocol. A party's role is fixed for the lifetime of its Exchanger, and determines the
// direction in which exchanged values are recorded in the transcript.
type Role bool

const (
	// Initiator is the role that initiates (starts) the protocol.
	Initiator Role = true

	// Responder is the role that receives the request.
	Responder Role = false

	// Protocol is the transcript's domain separation label.
	Protocol = "PACE-ristretto255-STROBE"
)

func (r Role) String() string {
	if r == Initiator {
		return "Initiator"
	}

	return "Responder"
}

// Exchanger holds a party's live session state. It is single-use: Receive consumes it, and afterwards
// only the returned transcript is usable.
type Exchanger struct {
	role     Role
	group    group.Group
	duplex   duplex.Duplex
	scalar   group.Scalar
	epk      []byte
	consumed bool
}

func newExchanger(role Role, p *Parameters, password []byte) (*Exchanger, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	g := p.Group
	if g == nil {
		g = group.Ristretto255(nil)
	}

	newDuplex := p.Duplex
	if newDuplex == nil {
		newDuplex = duplex.NewStrobe
	}

	x := &Exchanger{
		role:   role,
		group:  g,
		duplex: newDuplex(Protocol),
	}

	// Bind the exchange to the two parties and the session context before the password enters.
	x.record(p.LocalID, p.RemoteID)
	x.duplex.AD(p.SessionID)

	// The single point where the low-entropy secret enters the protocol.
	x.duplex.Key(p.stretch(password))

	// The generator is a function of identities, session id, and password, so it is unique per
	// session and per pair of parties.
	x.scalar = g.RandomScalar()
	generator := g.FromUniform(x.duplex.PRF(group.UniformLength))
	x.epk = generator.Mult(x.scalar).Bytes()

	return x, nil
}

// record absorbs a local and a remote value into the transcript in role-fixed order. Both parties of a
// correct run absorb the same content in the same sequence, each send lining up with the other's
// receive, while a party's own message echoed back to it lands in the wrong directional slot and
// diverges the transcript.
func (x *Exchanger) record(local, remote []byte) {
	switch x.role {
	case Initiator:
		x.duplex.SendCLR(local)
		x.duplex.RecvCLR(remote)
	case Responder:
		x.duplex.RecvCLR(remote)
		x.duplex.SendCLR(local)
	}
}

// Send returns the public element to be transmitted to the remote party. It does not modify the
// Exchanger and can be called any number of times.
func (x *Exchanger) Send() []byte {
	return x.epk
}

// Receive takes the public element from the remote party and unwraps the exchange into the
// synchronized transcript, keyed with the shared secret and ready for key extraction.
//
// It consumes the Exchanger: the ephemeral scalar is wiped on every return path, and any further call
// returns ErrExchangerConsumed. There is no partial success, and no error here may be retried with the
// same peer input.
func (x *Exchanger) Receive(peer []byte) (duplex.Duplex, error) {
	if x.consumed {
		return nil, ErrExchangerConsumed
	}

	x.consumed = true
	defer x.drop()

	if len(peer) == 0 {
		return nil, ErrPeerElementNil
	}

	element, err := x.group.NewElement(peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPeerElementInvalid, err)
	}

	x.record(x.epk, peer)

	// Reject degenerate peer elements forcing a predictable shared secret.
	k := element.Mult(x.scalar)
	if k.IsIdentity() {
		return nil, ErrPeerElementIdentity
	}

	x.duplex.Key(k.Bytes())

	return x.duplex, nil
}

// drop wipes the ephemeral scalar.
func (x *Exchanger) drop() {
	x.scalar.Zero()
	x.scalar = nil
}
