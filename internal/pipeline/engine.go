package pipeline

import (
	"fmt"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
)

// Engine performs one authenticated encryption with a fresh single-use key.
type Engine struct {
	provider Provider
}

// NewEngine returns an engine backed by the given provider.
func NewEngine(p Provider) *Engine {
	return &Engine{provider: p}
}

// Cipher returns the cipher suite name of the backing provider.
func (e *Engine) Cipher() string {
	return e.provider.Name()
}

// Encrypt seals normalized text with a fresh key and nonce.
//
// The key is requested before any plaintext is touched; a failure there
// returns ErrKeyGenFailed. Any later failure returns ErrEncryptFailed. The
// key handle and plaintext buffer are registered with the guard as they are
// created, and the handle is additionally released before Encrypt returns,
// success or failure, so the key never outlives the call.
func (e *Engine) Encrypt(normalized string, guard *Guard) (*CipherEnvelope, error) {
	key, err := e.provider.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyGenFailed, err)
	}
	guard.TrackKey(key)
	defer key.Release()

	nonce, err := e.provider.RandomBytes(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	plaintext := []byte(normalized)
	guard.TrackPlaintext(plaintext)

	sealed, err := e.provider.Seal(key, nonce, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	return newEnvelope(nonce, sealed)
}
