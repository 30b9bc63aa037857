package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ShortUID returns an 8-character opaque display id for articles.
// Display-only, never used for lookups.
func ShortUID() string {
	return uuid.NewString()[:8]
}

// RandomFileName returns a 32-character hex name for uploaded files.
// Client-supplied filenames are never trusted.
func RandomFileName() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
