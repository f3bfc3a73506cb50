package pipeline

import (
	"bytes"
	"testing"
)

func TestGuard_ReleaseZeroesPlaintext(t *testing.T) {
	plaintext := []byte("sensitive text")
	guard := NewGuard()
	guard.TrackPlaintext(plaintext)

	guard.Release()

	if !guard.Released() {
		t.Error("Expected guard to report released")
	}
	if !bytes.Equal(plaintext, make([]byte, len(plaintext))) {
		t.Error("Expected plaintext buffer to be zeroed")
	}
}

func TestGuard_ReleasesKeyHandle(t *testing.T) {
	key := newKeyHandle(make([]byte, KeySize))
	guard := NewGuard()
	guard.TrackKey(key)

	guard.Release()

	if !key.Released() {
		t.Error("Expected key handle to be released with the guard")
	}
}

func TestGuard_ReleaseIdempotent(t *testing.T) {
	plaintext := []byte("text")
	key := newKeyHandle(make([]byte, KeySize))

	guard := NewGuard()
	guard.TrackKey(key)
	guard.TrackPlaintext(plaintext)

	// Second release must be a no-op: no panic, no double-free semantics.
	guard.Release()
	guard.Release()

	if !guard.Released() {
		t.Error("Expected guard to stay released")
	}
}

func TestGuard_ReleaseWithNothingTracked(t *testing.T) {
	guard := NewGuard()
	guard.Release()
	if !guard.Released() {
		t.Error("Expected empty guard to release cleanly")
	}
}

func TestGuard_ReleaseAfterKeyAlreadyReleased(t *testing.T) {
	// The engine releases the key before the pipeline releases the guard;
	// the guard's release must tolerate that.
	key := newKeyHandle(make([]byte, KeySize))
	guard := NewGuard()
	guard.TrackKey(key)

	key.Release()
	guard.Release()

	if !key.Released() {
		t.Error("Expected key to remain released")
	}
}
