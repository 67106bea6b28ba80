package group

import (
	"bytes"
	"errors"
	"testing"
)

var testSeed = bytes.Repeat([]byte{0x2a}, UniformLength)

func TestElementEncoding(t *testing.T) {
	g := Ristretto255(nil)

	e := g.FromUniform(testSeed)
	encoded := e.Bytes()

	if len(encoded) != g.ElementLength() {
		t.Fatalf("unexpected encoding length - got %d, want %d", len(encoded), g.ElementLength())
	}

	d, err := g.NewElement(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(d.Bytes(), encoded) {
		t.Error("decoded element re-encodes differently")
	}
}

func TestElementDecodeRejection(t *testing.T) {
	g := Ristretto255(nil)

	tests := []struct {
		Name    string
		Encoded []byte
	}{
		{Name: "Nil", Encoded: nil},
		{Name: "Short", Encoded: []byte("short")},
		{Name: "Long", Encoded: make([]byte, elementLength+1)},
		{Name: "Non-canonical", Encoded: bytes.Repeat([]byte{0xff}, elementLength)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			if _, err := g.NewElement(tt.Encoded); err == nil {
				t.Error("expected decoding error")
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	g := Ristretto255(nil)

	identity, err := g.NewElement(make([]byte, elementLength))
	if err != nil {
		t.Fatal(err)
	}

	if !identity.IsIdentity() {
		t.Error("all-zero encoding is supposed to decode to the identity element")
	}

	if g.FromUniform(testSeed).IsIdentity() {
		t.Error("uniformly mapped element is not supposed to be the identity element")
	}

	// Multiplication by a wiped scalar yields the identity element.
	s := g.RandomScalar()
	s.Zero()

	if !g.FromUniform(testSeed).Mult(s).IsIdentity() {
		t.Error("multiplication by a zero scalar is supposed to yield the identity element")
	}
}

func TestFromUniformDeterminism(t *testing.T) {
	g := Ristretto255(nil)

	if !bytes.Equal(g.FromUniform(testSeed).Bytes(), g.FromUniform(testSeed).Bytes()) {
		t.Error("uniform mapping is supposed to be deterministic")
	}

	other := bytes.Repeat([]byte{0x2b}, UniformLength)
	if bytes.Equal(g.FromUniform(testSeed).Bytes(), g.FromUniform(other).Bytes()) {
		t.Error("distinct uniform inputs mapped to the same element")
	}
}

func TestRandomScalar(t *testing.T) {
	g := Ristretto255(nil)

	if bytes.Equal(g.RandomScalar().Bytes(), g.RandomScalar().Bytes()) {
		t.Error("two sampled scalars are equal")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("depleted")
}

func TestRandomScalarFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on random source failure")
		}
	}()

	_ = Ristretto255(failingReader{}).RandomScalar()
}

func TestFromUniformFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on short uniform input")
		}
	}()

	_ = Ristretto255(nil).FromUniform([]byte("short"))
}
