// Package validate holds the pure field predicates used as pre-condition
// gates before any persistence call. Request bodies are checked with
// validator/v10 tags; these cover path params and fields the tags cannot
// express.
package validate

import (
	"strings"

	"github.com/google/uuid"
)

// NotValidString reports whether s is empty or whitespace only.
func NotValidString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NotValidNonNegativeInt reports whether n is negative.
func NotValidNonNegativeInt(n int) bool {
	return n < 0
}

// NotValidUUID reports whether s is not a well-formed uuid. Path ids are
// rejected here so lookups never hit the database with garbage.
func NotValidUUID(s string) bool {
	if NotValidString(s) {
		return true
	}
	_, err := uuid.Parse(s)
	return err != nil
}

// NotValidMeetingURL reports whether u is unusable as a course meeting
// link. Only https links are accepted.
func NotValidMeetingURL(u string) bool {
	return NotValidString(u) || !strings.HasPrefix(u, "https")
}
