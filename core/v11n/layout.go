package v11n

import (
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
)

// layout is the frozen table behind a Versification.
//
// Chapters are numbered globally in canon order ("global chapter index"),
// chapter 0 of every book included. For each global chapter the layout keeps
// its highest verse number and the ordinal of its verse 0, so every lookup is
// a table read or a binary search.
type layout struct {
	name string

	// books in canon order, introduction pseudo-books included.
	books []bible.Book

	// position maps a catalog book to its index in books, -1 if absent.
	position [bible.BookCount]int

	// chapterBase[i] is the global chapter index of chapter 0 of books[i].
	// It has len(books)+1 entries; the last one is the total chapter count.
	chapterBase []int

	// lastVerse[g] is the highest verse number of global chapter g.
	lastVerse []int

	// chapterStart[g] is the ordinal of verse 0 of global chapter g.
	chapterStart []int

	// total is the number of ordinals.
	total int

	// ntStart is the first ordinal of the New Testament (IntroNT), or -1.
	ntStart int

	hasOT bool

	fingerprint string
}

// newLayout validates def and builds the tables in one pass.
func newLayout(def *Definition) (*layout, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, malformed("", "name", "versification name is empty")
	}
	if len(def.Books) == 0 {
		return nil, malformed(name, "books", "no books")
	}

	var (
		ot, nt [][]int
		otB    []bible.Book
		ntB    []bible.Book
		seen   [bible.BookCount]bool
	)
	for i, bd := range def.Books {
		field := "books[" + strconv.Itoa(i) + "]"
		b, ok := bible.ParseOSIS(bd.OSIS)
		if !ok {
			return nil, malformed(name, field+".osis", "unknown book %q", bd.OSIS)
		}
		if b.IsIntro() {
			return nil, malformed(name, field+".osis", "%s is added automatically", b.OSIS())
		}
		if seen[b] {
			return nil, malformed(name, field+".osis", "duplicate book %s", b.OSIS())
		}
		seen[b] = true

		for c, n := range bd.Chapters {
			if n < 0 {
				return nil, malformed(name, field+".chapters", "%s chapter %d has %d verses", b.OSIS(), c+1, n)
			}
		}

		// Chapter 0 holds only the book introduction.
		lv := make([]int, len(bd.Chapters)+1)
		copy(lv[1:], bd.Chapters)

		switch b.Testament() {
		case bible.Old:
			if len(ntB) > 0 {
				return nil, malformed(name, field+".osis", "%s follows New Testament books", b.OSIS())
			}
			otB = append(otB, b)
			ot = append(ot, lv)
		case bible.New:
			ntB = append(ntB, b)
			nt = append(nt, lv)
		}
	}

	l := &layout{name: name, ntStart: -1, hasOT: len(otB) > 0}
	for i := range l.position {
		l.position[i] = -1
	}

	add := func(b bible.Book, lv []int) {
		l.position[b] = len(l.books)
		l.books = append(l.books, b)
		l.chapterBase = append(l.chapterBase, len(l.lastVerse))
		for _, n := range lv {
			l.chapterStart = append(l.chapterStart, l.total)
			l.lastVerse = append(l.lastVerse, n)
			l.total += n + 1
		}
	}
	intro := []int{0}

	add(bible.IntroBible, intro)
	if len(otB) > 0 {
		add(bible.IntroOT, intro)
		for i, b := range otB {
			add(b, ot[i])
		}
	}
	if len(ntB) > 0 {
		l.ntStart = l.total
		add(bible.IntroNT, intro)
		for i, b := range ntB {
			add(b, nt[i])
		}
	}
	l.chapterBase = append(l.chapterBase, len(l.lastVerse))
	l.fingerprint = l.hash()
	return l, nil
}

// bookIndex returns the canon position of b, or -1.
func (l *layout) bookIndex(b bible.Book) int {
	if !b.Valid() {
		return -1
	}
	return l.position[b]
}

// lastChapter returns the highest chapter of the book at canon position i.
func (l *layout) lastChapter(i int) int {
	return l.chapterBase[i+1] - l.chapterBase[i] - 1
}

// locate splits an ordinal into canon position, chapter and verse.
// The ordinal must be in range.
func (l *layout) locate(ordinal int) (int, int, int) {
	g := sort.SearchInts(l.chapterStart, ordinal+1) - 1
	i := sort.Search(len(l.books), func(i int) bool {
		return l.chapterBase[i+1] > g
	})
	return i, g - l.chapterBase[i], ordinal - l.chapterStart[g]
}

// hash returns the BLAKE3 digest of the canon order and verse table.
func (l *layout) hash() string {
	h := blake3.New()
	var buf [binary.MaxVarintLen64]byte
	for i, b := range l.books {
		h.Write([]byte(b.OSIS()))
		h.Write([]byte{0})
		for g := l.chapterBase[i]; g < l.chapterBase[i+1]; g++ {
			n := binary.PutUvarint(buf[:], uint64(l.lastVerse[g]))
			h.Write(buf[:n])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
