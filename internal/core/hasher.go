// ABOUTME: Content fingerprinting for raw memo text
// ABOUTME: Produces an irreversible sha256 digest for audit logging without retaining text
package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a stable "sha256-<hex>" digest of text. The raw
// text of a memo is never persisted; this fingerprint is what shows up
// in the audit log instead.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "sha256-" + hex.EncodeToString(sum[:])
}
