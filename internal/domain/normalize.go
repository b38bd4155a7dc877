package domain

import "strings"

// NormalizeWord prepares a vocabulary word for storage:
//   - trims leading/trailing whitespace
//   - compresses internal whitespace runs into a single space
//
// Case, diacritics, hyphens, and apostrophes are preserved — vocabulary
// entries are emitted verbatim into generated sentences.
func NormalizeWord(word string) string {
	fields := strings.Fields(word)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
