// Package duplex exposes the keyed transcript operations the exchange engine relies on, and provides a
// production implementation over the STROBE protocol framework.
//
// A duplex transcript is stateful and order-sensitive: every operation deterministically mutates the
// internal state, and none of them commute. Two transcripts driven by operation sequences whose sends
// and receives are pairwise matched, absorbing the same content at the same positions, and rekeyed with
// the same keys at the same points, produce identical PRF output; any divergence in content, order, or
// direction yields unrelated output.
package duplex

// Duplex is a keyed, stateful, order-sensitive protocol transcript.
type Duplex interface {
	// AD absorbs associated data into the transcript.
	AD(data []byte)

	// Key permanently rekeys the transcript with key.
	Key(key []byte)

	// SendCLR records data as cleartext sent to the peer.
	SendCLR(data []byte)

	// RecvCLR records data as cleartext received from the peer.
	RecvCLR(data []byte)

	// PRF produces length bytes of pseudorandom output, a function of all preceding operations.
	PRF(length int) []byte
}
