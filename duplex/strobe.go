package duplex

import (
	"fmt"

	"github.com/sammyne/strobe"
)

// Strobe is a Duplex over a STROBE protocol at the 256-bit security level.
//
// STROBE's internal operations only fail on misuse of the framework itself, never on input data, so
// failures here are programming errors and panic.
type Strobe struct {
	s *strobe.Strobe
}

// NewStrobe initializes a STROBE protocol with the given domain separation label.
func NewStrobe(protocol string) Duplex {
	s, err := strobe.New(protocol, strobe.Bit256)
	if err != nil {
		panic(fmt.Sprintf("duplex - strobe initialization: %v", err))
	}

	return &Strobe{s: s}
}

// AD absorbs associated data into the transcript.
func (d *Strobe) AD(data []byte) {
	if err := d.s.AD(data, &strobe.Options{}); err != nil {
		panic(err)
	}
}

// Key permanently rekeys the transcript with key.
func (d *Strobe) Key(key []byte) {
	if err := d.s.KEY(key, false); err != nil {
		panic(err)
	}
}

// SendCLR records data as cleartext sent to the peer.
func (d *Strobe) SendCLR(data []byte) {
	if err := d.s.SendCLR(data, &strobe.Options{}); err != nil {
		panic(err)
	}
}

// RecvCLR records data as cleartext received from the peer.
func (d *Strobe) RecvCLR(data []byte) {
	if err := d.s.RecvCLR(data, &strobe.Options{}); err != nil {
		panic(err)
	}
}

// PRF produces length bytes of pseudorandom output, a function of all preceding operations.
func (d *Strobe) PRF(length int) []byte {
	out := make([]byte, length)
	if err := d.s.PRF(out, false); err != nil {
		panic(err)
	}

	return out
}
