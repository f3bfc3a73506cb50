package pipeline

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
)

// Cipher suite names accepted by ProviderFor and the --cipher flag.
const (
	CipherAESGCM   = "aes-gcm"
	CipherChaCha20 = "chacha20"
)

// KeyHandle is an opaque, non-exportable handle to single-use symmetric key
// material. The only operations are one Seal call through a Provider and
// Release. Key bytes never leave the pipeline package.
type KeyHandle struct {
	mu       sync.Mutex
	material []byte
	used     bool
	released bool
}

func newKeyHandle(material []byte) *KeyHandle {
	return &KeyHandle{material: material}
}

// use hands out the key material exactly once. Providers call it at the
// start of Seal; a second call, or a call after Release, fails.
func (k *KeyHandle) use() ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.released {
		return nil, kerrors.ErrKeyReleased
	}
	if k.used {
		return nil, kerrors.ErrKeyAlreadyUsed
	}
	k.used = true
	return k.material, nil
}

// Release zeroes the key material and makes the handle permanently
// unusable. Safe to call multiple times.
func (k *KeyHandle) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.released {
		return
	}
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
	k.released = true
}

// Released reports whether the handle has been released.
func (k *KeyHandle) Released() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.released
}

// Provider is the boundary to the cryptographic backend. Any failure from a
// provider is treated as an opaque crypto failure; its detail never reaches
// the user.
type Provider interface {
	// Name returns the cipher suite name, e.g. "aes-gcm".
	Name() string

	// GenerateKey returns a fresh 256-bit single-use key.
	GenerateKey() (*KeyHandle, error)

	// RandomBytes draws n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)

	// Seal performs authenticated encryption and returns ciphertext ‖ tag
	// as one buffer. The key handle is consumed by the call.
	Seal(key *KeyHandle, nonce, plaintext []byte) ([]byte, error)
}

// ProviderFor returns the provider for a cipher suite name.
func ProviderFor(name string) (Provider, error) {
	switch name {
	case CipherAESGCM:
		return aesGCMProvider{}, nil
	case CipherChaCha20:
		return chaCha20Provider{}, nil
	}
	return nil, fmt.Errorf("%w: %q", kerrors.ErrUnknownCipher, name)
}

// Ciphers lists the supported cipher suite names.
func Ciphers() []string {
	return []string{CipherAESGCM, CipherChaCha20}
}

func generateKeyMaterial() (*KeyHandle, error) {
	material := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return nil, err
	}
	return newKeyHandle(material), nil
}

func secureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// aesGCMProvider seals with AES-256-GCM.
type aesGCMProvider struct{}

func (aesGCMProvider) Name() string { return CipherAESGCM }

func (aesGCMProvider) GenerateKey() (*KeyHandle, error) {
	return generateKeyMaterial()
}

func (aesGCMProvider) RandomBytes(n int) ([]byte, error) {
	return secureRandomBytes(n)
}

func (aesGCMProvider) Seal(key *KeyHandle, nonce, plaintext []byte) ([]byte, error) {
	material, err := key.use()
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, fmt.Errorf("creating block cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("nonce is %d bytes, want %d", len(nonce), aead.NonceSize())
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// chaCha20Provider seals with ChaCha20-Poly1305. Same nonce and tag sizes
// as GCM, so the envelope layout is identical.
type chaCha20Provider struct{}

func (chaCha20Provider) Name() string { return CipherChaCha20 }

func (chaCha20Provider) GenerateKey() (*KeyHandle, error) {
	return generateKeyMaterial()
}

func (chaCha20Provider) RandomBytes(n int) ([]byte, error) {
	return secureRandomBytes(n)
}

func (chaCha20Provider) Seal(key *KeyHandle, nonce, plaintext []byte) ([]byte, error) {
	material, err := key.use()
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(material)
	if err != nil {
		return nil, fmt.Errorf("creating ChaCha20-Poly1305: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("nonce is %d bytes, want %d", len(nonce), aead.NonceSize())
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}
