package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// presetNameRegex matches names usable as file names and URL path segments.
var presetNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidatePresetName validates a preset name for safety and correctness.
// Preset names become file names and URL path segments, so the rules are
// conservative:
//   - No empty names
//   - Maximum length of 128 characters
//   - No control characters or path separators
//   - Letters, digits, '.', '_' and '-' only, not starting with '.'
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidPreset, "preset name cannot contain path components: %q", name)
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}

	return nil
}

// ValidateValue checks that a normalized slider value is finite and within
// [0, 1]. The planner clamps silently; this is for user-facing input.
func ValidateValue(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	if v < 0 || v > 1 {
		return New(ErrCodeInvalidInput, "%s must be between 0 and 1, got %g", field, v)
	}
	return nil
}

// ValidateSize checks that a size is finite and non-negative.
func ValidateSize(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative, got %g", field, v)
	}
	return nil
}

// ValidatePath validates a relative output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
