package stores

import "errors"

// ErrCorrupt is returned by Load when the persisted task file exists but
// cannot be parsed. The store recovers by seeding; callers decide whether
// to log or surface the error.
var ErrCorrupt = errors.New("task file is corrupt")

// IsCorruptError reports whether err wraps ErrCorrupt.
func IsCorruptError(err error) bool {
	return errors.Is(err, ErrCorrupt)
}
