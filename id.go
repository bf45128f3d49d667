package dashboard

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a short unique identifier for a record.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
