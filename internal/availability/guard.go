package availability

import (
	"fmt"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingFinder
type BookingFinder interface {
	BookingExistsAt(artistID int, at time.Time, excludeID int) (bool, error)
}

// ConflictGuard re-checks a proposed (artist, datetime) pair at write time,
// closing the gap between a client reading availability and submitting a
// booking. The storage-level unique constraint stays authoritative; the
// guard exists to reject early with a friendly error.
type ConflictGuard struct {
	finder BookingFinder
}

func NewConflictGuard(finder BookingFinder) *ConflictGuard {
	return &ConflictGuard{finder: finder}
}

// Check reports whether a booking other than excludeID already occupies the
// exact slot. excludeID = 0 excludes nothing; pass the booking's own id when
// moving an existing booking so it does not conflict with itself.
func (g *ConflictGuard) Check(artistID int, at time.Time, excludeID int) (bool, error) {
	exists, err := g.finder.BookingExistsAt(artistID, at.UTC(), excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	return exists, nil
}
