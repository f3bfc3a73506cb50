package pipeline

import "sync"

// Guard tracks the sensitive state of one in-flight seal request: the
// single live key handle and the plaintext buffer. Release must run on
// every exit path before the pipeline hands control back to its caller.
type Guard struct {
	mu        sync.Mutex
	key       *KeyHandle
	plaintext []byte
	released  bool
}

// NewGuard returns a guard with nothing tracked yet.
func NewGuard() *Guard {
	return &Guard{}
}

// TrackKey registers the request's key handle for release.
func (g *Guard) TrackKey(k *KeyHandle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.key = k
}

// TrackPlaintext registers the request's plaintext buffer for zeroing.
func (g *Guard) TrackPlaintext(b []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.plaintext = b
}

// Release zeroes the plaintext buffer, releases the key handle, and drops
// both references. Idempotent: calling it again is a no-op.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return
	}
	for i := range g.plaintext {
		g.plaintext[i] = 0
	}
	g.plaintext = nil
	if g.key != nil {
		g.key.Release()
		g.key = nil
	}
	g.released = true
}

// Released reports whether Release has run.
func (g *Guard) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}
