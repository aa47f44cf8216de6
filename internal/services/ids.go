package services

import (
	"strings"

	"github.com/google/uuid"
)

// NewShortID returns a 4-character uppercase id for users and tickets,
// short enough to type back at a prompt. Collisions are unlikely at this
// catalog size and harmless across collections.
func NewShortID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:4])
}
