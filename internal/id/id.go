// Package id generates identifiers for resolved units and routers.
package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 string.
func UUID() string {
	return uuid.NewString()
}

// Short generates a 16-character hex ID for user-facing contexts where
// brevity matters.
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
