package release

import "time"

// IsComingSoon decides whether a release should currently display its
// "coming soon" badge. An explicit false flag always wins, even with a
// future timestamp — content owners can force an early reveal. When the
// flag is true, the badge stays up until the resolved instant (releaseAt,
// falling back to releaseDate) is at or before now.
//
// The predicate is read-only and idempotent; the stored flag is never
// flipped here. Callers re-sample now on each evaluation so a badge
// visible at page load disappears once the instant passes.
func IsComingSoon(comingSoon bool, releaseAt, releaseDate *time.Time, now time.Time) bool {
	if !comingSoon {
		return false
	}
	instant := releaseAt
	if instant == nil {
		instant = releaseDate
	}
	if instant != nil && !instant.After(now) {
		return false
	}
	return true
}
