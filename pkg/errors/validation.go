package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLayoutIndex is the highest layout variant index.
const MaxLayoutIndex = 12

// chartIDRegex matches chart identifiers usable as map keys and DOM ids.
var chartIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateChartID validates a chart identifier from a dashboard file.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - Letters, digits, dot, dash and underscore only, starting alphanumeric
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidChart, "chart id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidChart, "chart id too long (max 128 characters)")
	}
	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidChart, "invalid chart id: %q", id)
	}
	return nil
}

// ValidateChartType validates a chart type tag.
// Type tags are matched by substring, so only their shape is checked here.
func ValidateChartType(chartType string) error {
	if chartType == "" {
		return New(ErrCodeInvalidChart, "chart type cannot be empty")
	}
	for _, r := range chartType {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "chart type contains invalid characters: %q", chartType)
		}
	}
	return nil
}

// ValidateTitle validates a dashboard title.
// Titles are escaped when rendered; this only rejects control characters.
func ValidateTitle(title string) error {
	if len(title) > 256 {
		return New(ErrCodeInvalidInput, "title too long (max 256 characters)")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}
	return nil
}

// ValidateLayoutIndex checks that n names one of the thirteen layout variants.
func ValidateLayoutIndex(n int) error {
	if n < 0 || n > MaxLayoutIndex {
		return New(ErrCodeInvalidLayout, "unknown layout: %d (must be 0-%d)", n, MaxLayoutIndex)
	}
	return nil
}

// ValidatePath validates a file path referenced from a dashboard file
// (theme files, images) for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates an image or link URL for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
