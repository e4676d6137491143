// Package validation checks user-supplied paths and names before the CLI
// touches the filesystem or the registry.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
)

// Limits on user-supplied input.
const (
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// MaxNameLength is the maximum allowed versification name length.
	MaxNameLength = 64
)

// Common validation errors.
var (
	ErrEmptyPath        = fmt.Errorf("path cannot be empty: %w", errors.ErrInvalidInput)
	ErrPathTooLong      = fmt.Errorf("path too long: %w", errors.ErrInvalidInput)
	ErrInvalidCharacter = fmt.Errorf("invalid character: %w", errors.ErrInvalidInput)
	ErrBadExtension     = fmt.Errorf("unexpected file extension: %w", errors.ErrInvalidInput)
	ErrInvalidName      = fmt.Errorf("invalid versification name: %w", errors.ErrInvalidInput)
)

// ValidatePath checks a path for length limits, null bytes and control
// characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateOutputPath is ValidatePath plus a check that the file name ends
// in one of exts. Extensions are compared case-insensitively and may be
// compound, e.g. ".tsv.xz".
func ValidateOutputPath(path string, exts ...string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	base := filepath.Base(path)
	if strings.HasPrefix(base, "-") {
		return fmt.Errorf("%w: file name cannot start with hyphen", ErrInvalidCharacter)
	}
	if len(exts) == 0 {
		return nil
	}
	lower := strings.ToLower(base)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s, want one of %s", ErrBadExtension, base, strings.Join(exts, ", "))
}

// ValidateName checks a versification name from a definition file. Names
// are short identifiers: letters, digits, '-', '_' and '.'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxNameLength)
	}
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
		}
	}
	return nil
}
