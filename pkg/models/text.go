package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// clean trims surrounding whitespace and normalizes s to NFC so that
// names typed on different systems compare equal.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
