// Package audit provides an append-only operation log for Pounamu.
//
// Entries are written as JSON Lines to audit.jsonl under the user data
// directory. Each entry records what happened and when, never the content:
// no input text, no sealed blob, no key material.
//
// # Entry Format
//
//	{"ts":"2025-01-15T10:30:00.000000Z","op":"seal","cipher":"aes-gcm","input_len":13,"blob_len":56}
//
// # Design Notes
//
// Audit logging is best-effort: a seal operation never fails because the
// log could not be written. Malformed lines are skipped when reading, so a
// partially corrupted log stays readable.
package audit
