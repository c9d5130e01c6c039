package signature

import (
	"crypto"
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// Provider is the cryptographic capability the verifier delegates to. It
// covers exactly two operations: importing raw public key bytes into an
// opaque verify-only handle, and checking a signature over a message.
type Provider interface {
	ImportPublicKey(raw []byte) (crypto.PublicKey, error)
	VerifySignature(key crypto.PublicKey, sig []byte, message []byte) (bool, error)
}

// NewEd25519Provider returns the default Provider, backed by the process's
// Ed25519 implementation.
func NewEd25519Provider() Provider {
	return ed25519Provider{}
}

type ed25519Provider struct{}

func (ed25519Provider) ImportPublicKey(raw []byte) (crypto.PublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid ed25519 public key: got %d bytes, want %d", len(raw), ed25519.PublicKeySize)
	}
	// Copy so the handle doesn't alias caller-owned key material.
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, raw)
	return key, nil
}

func (ed25519Provider) VerifySignature(key crypto.PublicKey, sig []byte, message []byte) (bool, error) {
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return false, errors.Errorf("unexpected public key type %T, want ed25519.PublicKey", key)
	}
	if len(pub) != ed25519.PublicKeySize {
		return false, errors.Errorf("invalid ed25519 public key: got %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}
	return ed25519.Verify(pub, message, sig), nil
}
