package v11n

import (
	"strconv"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
)

// Verse is a validated reference within one versification. Chapter 0 and
// verse 0 are the introduction positions. The zero Verse belongs to no
// versification and is rejected by every operation.
//
// Verses are comparable with ==; two Verses are equal only if they come from
// the same Versification instance.
type Verse struct {
	v11n    *Versification
	book    bible.Book
	chapter int
	verse   int
}

// Versification returns the versification the verse belongs to.
func (vs Verse) Versification() *Versification { return vs.v11n }

// Book returns the book.
func (vs Verse) Book() bible.Book { return vs.book }

// Chapter returns the chapter number.
func (vs Verse) Chapter() int { return vs.chapter }

// Verse returns the verse number.
func (vs Verse) Verse() int { return vs.verse }

// IsValid reports whether vs was produced by a Versification.
func (vs Verse) IsValid() bool { return vs.v11n != nil }

// OSISID returns the OSIS form, e.g. "Gen.1.1".
func (vs Verse) OSISID() string {
	if !vs.IsValid() {
		return ""
	}
	return vs.book.OSIS() + "." + strconv.Itoa(vs.chapter) + "." + strconv.Itoa(vs.verse)
}

// String returns a human-readable form, e.g. "Genesis 1:1".
func (vs Verse) String() string {
	if !vs.IsValid() {
		return ""
	}
	return vs.book.String() + " " + strconv.Itoa(vs.chapter) + ":" + strconv.Itoa(vs.verse)
}
