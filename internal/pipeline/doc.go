// Package pipeline implements the seal request pipeline for Pounamu.
//
// A seal request is the sequenced, fail-safe orchestration of
// validation → key/nonce generation → authenticated encryption → encoding,
// with sensitive state erased on every exit path.
//
// # Request Flow
//
// One request flows strictly through:
//
//  1. Validate: length and control-byte checks, normalization
//  2. Engine.Encrypt: fresh single-use 256-bit key, fresh 96-bit nonce,
//     AEAD seal producing ciphertext plus a 128-bit tag
//  3. CipherEnvelope.Encode: base64 of nonce ‖ ciphertext ‖ tag
//
// A Guard wraps the whole span and releases the key handle and plaintext
// buffer whether the request succeeds or fails.
//
// # Cipher Suites
//
// Two providers implement the cryptographic boundary:
//
//   - aes-gcm: AES-256-GCM (default)
//   - chacha20: ChaCha20-Poly1305
//
// Both use a 12-byte nonce and 16-byte tag, so sealed blobs share one wire
// layout regardless of suite: [0..12) nonce, [12..len-16) ciphertext,
// [len-16..len) tag. Consumers must reject blobs decoding to fewer than
// 28 bytes.
//
// # Single-Flight
//
// At most one request may be processing at a time. A request arriving while
// another is in flight is rejected immediately with ErrPipelineBusy and has
// no effect on the in-flight request. Callers treat the rejection as a
// no-op, not a user-facing error.
//
// # Key Lifecycle
//
// Keys are opaque single-use handles. A handle supports exactly one Seal
// call and is released (zeroed) immediately after the encrypt step returns,
// success or failure. Keys are never cached, logged, or reused across
// requests. Because each key lives for one encryption, the random nonce can
// never repeat under the same key.
//
// # Error Policy
//
// Validation failures surface their reason verbatim (reasons are
// pre-sanitized and safe to display). Crypto failures cross the CLI
// boundary only as the fixed UserMessageCryptoFailure text; underlying
// detail stays in the debug log. No error ever carries plaintext, key
// material, or a nonce.
package pipeline
