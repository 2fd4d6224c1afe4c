package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// MaxDimension bounds the width and height accepted for a rendered chart.
const MaxDimension = 16384

// ValidateDimensions checks that a requested output size is finite and
// within bounds. Zero or negative sizes are rejected here even though the
// layout engine itself treats them as a no-op: an artifact of that size
// would be empty.
func ValidateDimensions(width, height float64) error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return New(ErrCodeInvalidDimensions, "%s must be a finite number", v.name)
		}
		if v.val <= 0 {
			return New(ErrCodeInvalidDimensions, "%s must be positive, got %g", v.name, v.val)
		}
		if v.val > MaxDimension {
			return New(ErrCodeInvalidDimensions, "%s too large (max %d)", v.name, MaxDimension)
		}
	}
	return nil
}

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateChartID checks that id looks like a UUID as issued by the chart store.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "chart id cannot be empty")
	}
	if !idPattern.MatchString(id) {
		return New(ErrCodeInvalidID, "malformed chart id: %q", id)
	}
	return nil
}

// ValidateText validates free text embedded in a chart (titles, labels).
// Control characters other than newline and tab are rejected because they
// cannot be measured or written to SVG.
func ValidateText(field, s string) error {
	const maxTextLength = 1024
	if len(s) > maxTextLength {
		return Field(field, "text too long (max %d characters)", maxTextLength)
	}
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return Field(field, "text contains control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a base path used for writing artifacts.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains null byte")
	}
	return nil
}
