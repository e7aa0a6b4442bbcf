package document

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the document format written by this version of tur.
const FormatVersion = "1.0.0"

// supportedFormats is the range of document formats tur can read.
const supportedFormats = "^1"

var formatConstraint = mustConstraint(supportedFormats)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(fmt.Sprintf("document: invalid format constraint %q: %v", s, err))
	}
	return c
}

// checkFormat returns a problem message for an unreadable format, or "".
// Documents without a format are accepted as the current one.
func checkFormat(format string) string {
	if format == "" {
		return ""
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return fmt.Sprintf("invalid format version %q", format)
	}
	if !formatConstraint.Check(v) {
		return fmt.Sprintf("unsupported format version %s (supported: %s)", v, supportedFormats)
	}
	return ""
}
