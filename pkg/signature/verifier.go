package signature

import (
	"github.com/pkg/errors"

	"github.com/hooksig/hooksig/pkg/util"
)

// ErrSignatureMismatch is returned by Check when every input is well-formed
// but the signature does not cover timestamp||body under the given key.
var ErrSignatureMismatch = errors.New("signature does not match message under the given key")

// Verifier checks Ed25519 webhook signatures over timestamp||body. It holds
// only its Provider and no per-call state, so it is safe for concurrent use.
type Verifier struct {
	provider Provider
}

// NewVerifier returns a Verifier bound to the given Provider. A nil provider
// selects the default Ed25519 provider.
func NewVerifier(provider Provider) *Verifier {
	if provider == nil {
		provider = NewEd25519Provider()
	}
	return &Verifier{provider: provider}
}

// Verify reports whether signature is authentic over timestamp||rawBody
// under publicKey. rawBody may be a UTF-8 string, a []byte, a byte array, or
// nil (treated as empty); signature is a hex string.
//
// Every failure mode collapses to false: malformed hex, an unsupported body
// type, a rejected key, and a genuine mismatch are indistinguishable to the
// caller. Use Check when the reason matters.
func (v *Verifier) Verify(rawBody any, signature, timestamp string, publicKey PublicKey) bool {
	return v.Check(rawBody, signature, timestamp, publicKey) == nil
}

// Check runs the same pipeline as Verify but returns the typed failure
// instead of collapsing it. A nil return means the signature is valid.
func (v *Verifier) Check(rawBody any, signature, timestamp string, publicKey PublicKey) error {
	tsBytes, err := util.ToBytes(timestamp, "")
	if err != nil {
		return errors.Wrap(err, "failed to normalize timestamp")
	}
	bodyBytes, err := util.ToBytes(rawBody, "")
	if err != nil {
		return errors.Wrap(err, "failed to normalize body")
	}
	msg := SignedMessage(tsBytes, bodyBytes)

	key, err := publicKey.resolve(v.provider)
	if err != nil {
		return err
	}
	sigBytes, err := util.ToBytes(signature, util.FormatHex)
	if err != nil {
		return errors.Wrap(err, "failed to decode signature hex")
	}

	ok, err := v.provider.VerifySignature(key, sigBytes, msg)
	if err != nil {
		return errors.Wrap(err, "signature verification failed")
	}
	if !ok {
		return ErrSignatureMismatch
	}
	return nil
}

// Verify checks a webhook signature with the default Ed25519 provider and a
// hex-encoded public key. Drop-in entry point for the common case.
func Verify(rawBody any, signature, timestamp, publicKeyHex string) bool {
	return NewVerifier(nil).Verify(rawBody, signature, timestamp, RawHexKey(publicKeyHex))
}
