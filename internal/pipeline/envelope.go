package pipeline

import (
	"encoding/base64"
	"fmt"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
)

// Byte sizes shared by both cipher suites.
const (
	KeySize   = 32 // 256-bit symmetric key
	NonceSize = 12 // 96-bit nonce
	TagSize   = 16 // 128-bit authentication tag
)

// minBlobBytes is the smallest decodable blob: a nonce and a tag around an
// empty ciphertext.
const minBlobBytes = NonceSize + TagSize

// CipherEnvelope is the output of one authenticated encryption: total wire
// length is always NonceSize + len(Ciphertext) + TagSize, no padding.
type CipherEnvelope struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
	Tag        [TagSize]byte
}

// newEnvelope splits a provider's sealed output (ciphertext ‖ tag) around
// the nonce used to produce it.
func newEnvelope(nonce, sealed []byte) (*CipherEnvelope, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", kerrors.ErrEncryptFailed, len(nonce), NonceSize)
	}
	if len(sealed) < TagSize {
		return nil, fmt.Errorf("%w: sealed output is %d bytes, shorter than the tag", kerrors.ErrEncryptFailed, len(sealed))
	}

	env := &CipherEnvelope{
		Ciphertext: append([]byte(nil), sealed[:len(sealed)-TagSize]...),
	}
	copy(env.Nonce[:], nonce)
	copy(env.Tag[:], sealed[len(sealed)-TagSize:])
	return env, nil
}

// Encode packs nonce ‖ ciphertext ‖ tag in that fixed order and applies
// standard base64 with no line wraps. Deterministic and pure.
func (e *CipherEnvelope) Encode() string {
	raw := make([]byte, 0, NonceSize+len(e.Ciphertext)+TagSize)
	raw = append(raw, e.Nonce[:]...)
	raw = append(raw, e.Ciphertext...)
	raw = append(raw, e.Tag[:]...)
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode is the inverse of Encode. Blobs whose decoded length is below
// minBlobBytes are rejected as malformed. Decode reconstructs the envelope
// layout only; there is no decryption path.
func Decode(blob string) (*CipherEnvelope, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrMalformedBlob, err)
	}
	if len(raw) < minBlobBytes {
		return nil, fmt.Errorf("%w: decoded length %d is below the %d byte minimum", kerrors.ErrMalformedBlob, len(raw), minBlobBytes)
	}

	env := &CipherEnvelope{
		Ciphertext: append([]byte(nil), raw[NonceSize:len(raw)-TagSize]...),
	}
	copy(env.Nonce[:], raw[:NonceSize])
	copy(env.Tag[:], raw[len(raw)-TagSize:])
	return env, nil
}
