package v11n

import (
	"github.com/FocuswithJustin/JuniperV11n/core/bible"
)

// Versification maps book/chapter/verse references onto a dense, zero-based
// ordinal space for one canon layout, and back.
//
// Ordinals are assigned by walking the books in canon order, chapters 0..N,
// verses 0..M. The whole-work introduction (IntroBible 0:0) is ordinal 0,
// followed by IntroOT and the Old Testament books, then IntroNT and the New
// Testament books.
//
// A Versification is immutable and safe for concurrent use.
type Versification struct {
	l           *layout
	description string
}

// New builds a versification from a definition. A bad definition fails with
// an error wrapping ErrMalformedCanon.
func New(def *Definition) (*Versification, error) {
	l, err := newLayout(def)
	if err != nil {
		return nil, err
	}
	return &Versification{l: l, description: def.Description}, nil
}

// Name returns the versification name, e.g. "KJV".
func (v *Versification) Name() string { return v.l.name }

// Description returns the optional description from the definition.
func (v *Versification) Description() string { return v.description }

// Fingerprint returns a BLAKE3 digest of the canon order and verse counts.
// Two versifications with equal fingerprints share the same ordinal space.
func (v *Versification) Fingerprint() string { return v.l.fingerprint }

// BookCount returns the number of books in the canon, introductions included.
func (v *Versification) BookCount() int { return len(v.l.books) }

// Books returns the books of the canon in order.
func (v *Versification) Books() []bible.Book {
	return append([]bible.Book(nil), v.l.books...)
}

// ContainsBook reports whether b is part of the canon.
func (v *Versification) ContainsBook(b bible.Book) bool {
	return v.l.bookIndex(b) >= 0
}

// FirstBook returns the first book of the canon.
func (v *Versification) FirstBook() bible.Book { return v.l.books[0] }

// LastBook returns the last book of the canon.
func (v *Versification) LastBook() bible.Book { return v.l.books[len(v.l.books)-1] }

// NextBook returns the book after b in canon order. The second result is
// false for the last book or a book outside the canon.
func (v *Versification) NextBook(b bible.Book) (bible.Book, bool) {
	i := v.l.bookIndex(b)
	if i < 0 || i+1 >= len(v.l.books) {
		return 0, false
	}
	return v.l.books[i+1], true
}

// PreviousBook returns the book before b in canon order. The second result
// is false for the first book or a book outside the canon.
func (v *Versification) PreviousBook(b bible.Book) (bible.Book, bool) {
	i := v.l.bookIndex(b)
	if i <= 0 {
		return 0, false
	}
	return v.l.books[i-1], true
}

// LastChapter returns the highest chapter number of b.
func (v *Versification) LastChapter(b bible.Book) (int, error) {
	i := v.l.bookIndex(b)
	if i < 0 {
		return 0, v.refError(b, 0, 0, -1, ErrUnknownBook)
	}
	return v.l.lastChapter(i), nil
}

// LastVerse returns the highest verse number of chapter c of b.
func (v *Versification) LastVerse(b bible.Book, c int) (int, error) {
	i := v.l.bookIndex(b)
	if i < 0 {
		return 0, v.refError(b, c, 0, -1, ErrUnknownBook)
	}
	if last := v.l.lastChapter(i); c < 0 || c > last {
		return 0, v.refError(b, c, 0, last, ErrInvalidChapter)
	}
	return v.l.lastVerse[v.l.chapterBase[i]+c], nil
}

// Validate checks that b c:n exists. The error wraps ErrUnknownBook,
// ErrInvalidChapter or ErrInvalidVerse; it is never repaired.
func (v *Versification) Validate(b bible.Book, c, n int) error {
	last, err := v.LastVerse(b, c)
	if err != nil {
		return err
	}
	if n < 0 || n > last {
		return v.refError(b, c, n, last, ErrInvalidVerse)
	}
	return nil
}

// Verse returns the validated reference b c:n.
func (v *Versification) Verse(b bible.Book, c, n int) (Verse, error) {
	if err := v.Validate(b, c, n); err != nil {
		return Verse{}, err
	}
	return Verse{v11n: v, book: b, chapter: c, verse: n}, nil
}

// Ordinal returns the ordinal of vs.
func (v *Versification) Ordinal(vs Verse) (int, error) {
	if vs.v11n != v {
		return 0, v.refError(vs.book, vs.chapter, vs.verse, -1, ErrVersificationMismatch)
	}
	return v.ordinal(v.l.position[vs.book], vs.chapter, vs.verse), nil
}

// OrdinalOf validates b c:n and returns its ordinal.
func (v *Versification) OrdinalOf(b bible.Book, c, n int) (int, error) {
	if err := v.Validate(b, c, n); err != nil {
		return 0, err
	}
	return v.ordinal(v.l.position[b], c, n), nil
}

func (v *Versification) ordinal(i, c, n int) int {
	return v.l.chapterStart[v.l.chapterBase[i]+c] + n
}

// DecodeOrdinal returns the verse with the given ordinal.
func (v *Versification) DecodeOrdinal(ordinal int) (Verse, error) {
	if err := v.checkOrdinal(ordinal); err != nil {
		return Verse{}, err
	}
	return v.decode(ordinal), nil
}

func (v *Versification) decode(ordinal int) Verse {
	i, c, n := v.l.locate(ordinal)
	return Verse{v11n: v, book: v.l.books[i], chapter: c, verse: n}
}

// MaximumOrdinal returns the highest ordinal in the canon.
func (v *Versification) MaximumOrdinal() int { return v.l.total - 1 }

// Count returns the number of ordinals in testament t, or in the whole canon
// for NoTestament. The whole-work introduction is counted with the first
// testament of the canon, so Count(bible.Intro) is always 0.
func (v *Versification) Count(t bible.Testament) int {
	switch t {
	case bible.NoTestament:
		return v.l.total
	case bible.Old:
		if !v.l.hasOT {
			return 0
		}
		if v.l.ntStart < 0 {
			return v.l.total
		}
		return v.l.ntStart
	case bible.New:
		if v.l.ntStart < 0 {
			return 0
		}
		if !v.l.hasOT {
			return v.l.total
		}
		return v.l.total - v.l.ntStart
	}
	return 0
}

// BookVerseCount returns the number of ordinals in b, introductions included.
func (v *Versification) BookVerseCount(b bible.Book) (int, error) {
	i := v.l.bookIndex(b)
	if i < 0 {
		return 0, v.refError(b, 0, 0, -1, ErrUnknownBook)
	}
	end := v.l.total
	if i+1 < len(v.l.books) {
		end = v.ordinal(i+1, 0, 0)
	}
	return end - v.ordinal(i, 0, 0), nil
}

// Distance returns Ordinal(b) - Ordinal(a). It is negative when b precedes a;
// the inclusive length of a range a..b is Distance(a, b) + 1.
func (v *Versification) Distance(a, b Verse) (int, error) {
	oa, err := v.Ordinal(a)
	if err != nil {
		return 0, err
	}
	ob, err := v.Ordinal(b)
	if err != nil {
		return 0, err
	}
	return ob - oa, nil
}

// Add returns the verse n positions after vs (before it when n < 0).
func (v *Versification) Add(vs Verse, n int) (Verse, error) {
	o, err := v.Ordinal(vs)
	if err != nil {
		return Verse{}, err
	}
	return v.DecodeOrdinal(o + n)
}

// Patch repairs a reference whose chapter or verse overflows. Chapters beyond
// the end of b spill into the following books, then verses beyond the end of
// a chapter spill into the following chapters; negative components walk
// backwards. Patch(bible.IntroBible, 0, n) is the n-th ordinal of the canon.
//
// Patch fails only when b is not in the canon or the result falls outside
// the canon (ErrOutOfRange).
func (v *Versification) Patch(b bible.Book, c, n int) (Verse, error) {
	i := v.l.bookIndex(b)
	if i < 0 {
		return Verse{}, v.refError(b, c, n, -1, ErrUnknownBook)
	}

	g := v.l.chapterBase[i] + c
	if g < 0 {
		return Verse{}, v.ordinalError(-1)
	}
	if g >= len(v.l.chapterStart) {
		return Verse{}, v.ordinalError(v.l.total)
	}

	ordinal := v.l.chapterStart[g] + n
	if err := v.checkOrdinal(ordinal); err != nil {
		return Verse{}, err
	}
	return v.decode(ordinal), nil
}

// Testament returns the testament containing the ordinal. The whole-work
// introduction belongs to the first testament of the canon.
func (v *Versification) Testament(ordinal int) (bible.Testament, error) {
	if err := v.checkOrdinal(ordinal); err != nil {
		return bible.NoTestament, err
	}
	if v.l.hasOT && (v.l.ntStart < 0 || ordinal < v.l.ntStart) {
		return bible.Old, nil
	}
	return bible.New, nil
}

// TestamentOrdinal returns the position of the ordinal within its testament.
// Slot 0 of each testament is the whole-work introduction, so Old Testament
// ordinals are unchanged and New Testament ordinals restart at 1. In a
// single-testament canon the result equals the ordinal.
func (v *Versification) TestamentOrdinal(ordinal int) (int, error) {
	if err := v.checkOrdinal(ordinal); err != nil {
		return 0, err
	}
	if v.l.hasOT && v.l.ntStart >= 0 && ordinal >= v.l.ntStart {
		return ordinal - v.l.ntStart + 1, nil
	}
	return ordinal, nil
}

// IsStartOfChapter reports whether vs is a chapter introduction (verse 0).
func (v *Versification) IsStartOfChapter(vs Verse) bool {
	return vs.v11n == v && vs.verse == 0
}

// IsEndOfChapter reports whether vs is the last verse of its chapter.
func (v *Versification) IsEndOfChapter(vs Verse) bool {
	if vs.v11n != v {
		return false
	}
	last, err := v.LastVerse(vs.book, vs.chapter)
	return err == nil && vs.verse == last
}

// IsStartOfBook reports whether vs is the book introduction (0:0).
func (v *Versification) IsStartOfBook(vs Verse) bool {
	return vs.v11n == v && vs.chapter == 0 && vs.verse == 0
}

// IsEndOfBook reports whether vs is the last verse of its book.
func (v *Versification) IsEndOfBook(vs Verse) bool {
	if vs.v11n != v {
		return false
	}
	last, err := v.LastChapter(vs.book)
	return err == nil && vs.chapter == last && v.IsEndOfChapter(vs)
}

func (v *Versification) checkOrdinal(ordinal int) error {
	if ordinal < 0 || ordinal >= v.l.total {
		return v.ordinalError(ordinal)
	}
	return nil
}

func (v *Versification) ordinalError(ordinal int) error {
	return &OrdinalError{Versification: v.l.name, Ordinal: ordinal, Maximum: v.l.total - 1}
}

func (v *Versification) refError(b bible.Book, c, n, limit int, err error) error {
	return &ReferenceError{
		Versification: v.l.name,
		Book:          b,
		Chapter:       c,
		Verse:         n,
		Limit:         limit,
		Err:           err,
	}
}
