package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID for use as a note ID. ULIDs sort
// lexicographically by creation time, so listings stay roughly
// chronological without a separate sort key.
func New() string {
	return ulid.Make().String()
}
