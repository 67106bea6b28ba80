package group

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

const (
	// UniformLength is the byte length of uniform input to FromUniform and to wide scalar reduction.
	UniformLength = 64

	elementLength = 32
)

// Ristretto255 returns a Group over the ristretto255 prime-order group. Scalars are sampled from rng,
// which defaults to the system's secure random source when nil. Tests may inject a deterministic reader.
func Ristretto255(rng io.Reader) Group {
	if rng == nil {
		rng = rand.Reader
	}

	return &ristretto{rng: rng}
}

type ristretto struct {
	rng io.Reader
}

func (g *ristretto) RandomScalar() Scalar {
	uniform := make([]byte, UniformLength)
	if _, err := io.ReadFull(g.rng, uniform); err != nil {
		panic(fmt.Sprintf("group - random source failure: %v", err))
	}

	s, err := ristretto255.NewScalar().SetUniformBytes(uniform)
	if err != nil {
		panic(fmt.Sprintf("group - wide scalar reduction: %v", err))
	}

	return &ristrettoScalar{scalar: s}
}

func (g *ristretto) FromUniform(uniform []byte) Element {
	e, err := ristretto255.NewIdentityElement().SetUniformBytes(uniform)
	if err != nil {
		panic(fmt.Sprintf("group - uniform map expects %d bytes: %v", UniformLength, err))
	}

	return &ristrettoElement{element: e}
}

func (g *ristretto) NewElement(encoded []byte) (Element, error) {
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid ristretto255 encoding: %w", err)
	}

	return &ristrettoElement{element: e}, nil
}

func (g *ristretto) ElementLength() int {
	return elementLength
}

type ristrettoScalar struct {
	scalar *ristretto255.Scalar
}

func (s *ristrettoScalar) Bytes() []byte {
	return s.scalar.Bytes()
}

func (s *ristrettoScalar) Zero() {
	_, _ = s.scalar.SetUniformBytes(make([]byte, UniformLength))
}

type ristrettoElement struct {
	element *ristretto255.Element
}

func (e *ristrettoElement) Mult(s Scalar) Element {
	return &ristrettoElement{
		element: ristretto255.NewIdentityElement().ScalarMult(s.(*ristrettoScalar).scalar, e.element),
	}
}

func (e *ristrettoElement) IsIdentity() bool {
	return e.element.Equal(ristretto255.NewIdentityElement()) == 1
}

func (e *ristrettoElement) Bytes() []byte {
	return e.element.Bytes()
}
