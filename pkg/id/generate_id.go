package id

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var reID32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns a random v4 UUID as 32 lowercase hex characters.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Valid reports whether s has the NewID32 shape. Ids issued elsewhere only
// need to match the shape, not the UUID version bits.
func Valid(s string) bool { return reID32.MatchString(s) }
