package v11n

import (
	"fmt"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
	"github.com/FocuswithJustin/JuniperV11n/core/errors"
)

// Sentinel errors. Each wraps one of the generic core/errors sentinels so
// callers that only care about the broad class can match on those instead.
var (
	// ErrUnknownBook indicates a book that is not part of the versification.
	ErrUnknownBook = fmt.Errorf("unknown book: %w", errors.ErrNotFound)
	// ErrInvalidChapter indicates a chapter outside 0..LastChapter.
	ErrInvalidChapter = fmt.Errorf("invalid chapter: %w", errors.ErrInvalidInput)
	// ErrInvalidVerse indicates a verse outside 0..LastVerse.
	ErrInvalidVerse = fmt.Errorf("invalid verse: %w", errors.ErrInvalidInput)
	// ErrOutOfRange indicates an ordinal or patch count outside 0..MaximumOrdinal.
	ErrOutOfRange = fmt.Errorf("ordinal %w", errors.ErrOutOfRange)
	// ErrUnknownCanon indicates a registry lookup miss.
	ErrUnknownCanon = fmt.Errorf("unknown versification: %w", errors.ErrNotFound)
	// ErrMalformedCanon indicates a broken canon definition.
	ErrMalformedCanon = fmt.Errorf("malformed versification: %w", errors.ErrInternal)
	// ErrVersificationMismatch indicates a Verse produced by another versification.
	ErrVersificationMismatch = fmt.Errorf("verse belongs to another versification: %w", errors.ErrInvalidInput)
)

// ReferenceError describes a reference that could not be resolved. Limit is
// the highest valid value for the component that failed, or -1 when it does
// not apply.
type ReferenceError struct {
	Versification string
	Book          bible.Book
	Chapter       int
	Verse         int
	Limit         int
	Err           error
}

func (e *ReferenceError) Error() string {
	switch e.Err {
	case ErrUnknownBook:
		return fmt.Sprintf("unknown book %s in %s", e.Book.OSIS(), e.Versification)
	case ErrInvalidChapter:
		return fmt.Sprintf("invalid chapter %s %d: %s has chapters 0-%d in %s",
			e.Book.OSIS(), e.Chapter, e.Book.OSIS(), e.Limit, e.Versification)
	case ErrInvalidVerse:
		return fmt.Sprintf("invalid verse %s %d:%d: chapter has verses 0-%d in %s",
			e.Book.OSIS(), e.Chapter, e.Verse, e.Limit, e.Versification)
	}
	return fmt.Sprintf("%v: %s %d:%d in %s", e.Err, e.Book.OSIS(), e.Chapter, e.Verse, e.Versification)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// OrdinalError reports an ordinal, or a patch target, outside the canon.
type OrdinalError struct {
	Versification string
	Ordinal       int
	Maximum       int
}

func (e *OrdinalError) Error() string {
	return fmt.Sprintf("ordinal %d outside 0-%d in %s", e.Ordinal, e.Maximum, e.Versification)
}

func (e *OrdinalError) Unwrap() error {
	return ErrOutOfRange
}

// malformed builds the construction-time error for a bad definition.
func malformed(name, field, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if name != "" {
		msg = name + ": " + msg
	}
	return &errors.ValidationError{
		Field:   field,
		Message: msg,
		Err:     ErrMalformedCanon,
	}
}
