package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random (v4) UUID in canonical string form. Every entity id
// is produced here, once, before the first write.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC instant at microsecond precision, the precision
// timestamps keep once they have been stored.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
