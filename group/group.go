// Package group exposes the operations over a prime-order elliptic curve group that the exchange engine
// relies on, and provides a production implementation over ristretto255.
//
// All operations are constant-time with respect to secret data, and deterministic except scalar sampling.
package group

// Scalar is an integer modulo the group order. It is secret, never transmitted, and wiped after use.
type Scalar interface {
	// Bytes returns the canonical encoding of the scalar.
	Bytes() []byte

	// Zero wipes the scalar value.
	Zero()
}

// Element is a group element.
type Element interface {
	// Mult returns the scalar multiplication of the element by s, without modifying the receiver.
	Mult(s Scalar) Element

	// IsIdentity reports whether the element is the group's identity element.
	IsIdentity() bool

	// Bytes returns the canonical compressed encoding of the element.
	Bytes() []byte
}

// Group abstracts the group operations so alternative curves can be substituted without touching the
// exchange engine.
type Group interface {
	// RandomScalar samples a scalar uniformly over the scalar field, by wide reduction of at least
	// 512 bits of secure random input. It panics if the random source fails, since falling back to
	// weaker randomness would be unsafe.
	RandomScalar() Scalar

	// FromUniform deterministically maps UniformLength uniformly random bytes to a group element.
	FromUniform(uniform []byte) Element

	// NewElement decodes a canonical element encoding, and returns an error if the encoding is
	// non-canonical or does not represent a valid element.
	NewElement(encoded []byte) (Element, error)

	// ElementLength returns the byte length of a canonical element encoding.
	ElementLength() int
}
