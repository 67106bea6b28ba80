// Package pace provides a CPace-style password-authenticated key exchange (PAKE) over the ristretto255
// group, bound to a STROBE duplex transcript.
//
// Two parties sharing a common low-entropy secret, like a password, derive a high-entropy mutually
// authenticated session secret with a single exchange of group elements. The password is never
// transmitted, and an active network attacker gets exactly one password guess per online exchange.
//
// On success both parties hold synchronized transcripts from which session keys of any length can be
// extracted. A mismatch in password, identities, or session id is deliberately not signalled by an
// error: both parties simply derive unrelated keys, to be detected by a higher-level key confirmation
// step.
// NB: Password registration and the transport of the exchanged elements are not in the scope of this
// implementation.
package pace
