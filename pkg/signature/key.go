package signature

import (
	"crypto"
	"crypto/ed25519"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/pkg/errors"

	"github.com/hooksig/hooksig/pkg/util"
)

// PublicKey is a tagged variant over the two accepted key forms: a
// hex-encoded string that gets imported per call, or a previously imported
// provider handle. Supplying an imported handle skips the import step, which
// is the only way for a caller to amortize that cost across calls.
type PublicKey struct {
	hex      string
	key      crypto.PublicKey
	imported bool
}

// RawHexKey wraps a hex-encoded public key string. The bytes are decoded and
// imported fresh on every verification.
func RawHexKey(hexKey string) PublicKey {
	return PublicKey{hex: hexKey}
}

// ImportedKey wraps an already-imported provider key handle.
func ImportedKey(key crypto.PublicKey) PublicKey {
	return PublicKey{key: key, imported: true}
}

// PublicKeyFromJWK parses a single JWK document holding an Ed25519 public
// key (kty OKP, crv Ed25519) and returns it as an imported key.
func PublicKeyFromJWK(data []byte) (PublicKey, error) {
	parsed, err := jwk.ParseKey(data)
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "failed to parse JWK")
	}
	if parsed.KeyType() != jwa.OKP() {
		return PublicKey{}, errors.Errorf("unexpected JWK key type %q, want OKP", parsed.KeyType())
	}

	var raw ed25519.PublicKey
	if err := jwk.Export(parsed, &raw); err != nil {
		return PublicKey{}, errors.Wrap(err, "JWK does not hold an ed25519 public key")
	}
	return ImportedKey(raw), nil
}

// resolve reduces the variant to a single provider handle.
func (k PublicKey) resolve(provider Provider) (crypto.PublicKey, error) {
	if k.imported {
		return k.key, nil
	}

	raw, err := util.ToBytes(k.hex, util.FormatHex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode public key hex")
	}
	key, err := provider.ImportPublicKey(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import public key")
	}
	return key, nil
}
