// Package bible defines the closed catalog of canonical book identifiers.
//
// The catalog is independent of any versification: it fixes which books can
// exist, their stable ordering, OSIS identifiers and testament. A concrete
// versification (see core/v11n) selects a subset of these books and assigns
// chapter and verse boundaries to them.
package bible

import (
	"strconv"
	"strings"
)

// Book identifies a canonical book. The numeric order is the catalog order
// and is stable across releases.
type Book int

// Catalog order. The three introduction pseudo-books carry front matter for
// the whole work and for each testament.
const (
	IntroBible Book = iota
	IntroOT
	Gen
	Exod
	Lev
	Num
	Deut
	Josh
	Judg
	Ruth
	Sam1
	Sam2
	Kgs1
	Kgs2
	Chr1
	Chr2
	Ezra
	Neh
	Esth
	Job
	Ps
	Prov
	Eccl
	Song
	Isa
	Jer
	Lam
	Ezek
	Dan
	Hos
	Joel
	Amos
	Obad
	Jonah
	Mic
	Nah
	Hab
	Zeph
	Hag
	Zech
	Mal
	IntroNT
	Matt
	Mark
	Luke
	John
	Acts
	Rom
	Cor1
	Cor2
	Gal
	Eph
	Phil
	Col
	Thess1
	Thess2
	Tim1
	Tim2
	Titus
	Phlm
	Heb
	Jas
	Pet1
	Pet2
	John1
	John2
	John3
	Jude
	Rev
	// Deuterocanonical books.
	Tob
	Jdt
	AddEsth
	Wis
	Sir
	Bar
	EpJer
	PrAzar
	Sus
	Bel
	Macc1
	Macc2
	Macc3
	Macc4
	PrMan
	Esd1
	Esd2
	AddPs
)

type bookInfo struct {
	osis      string
	name      string
	testament Testament
}

var catalog = [...]bookInfo{
	IntroBible: {"Intro.Bible", "Preface", Intro},
	IntroOT:    {"Intro.OT", "Old Testament", Old},
	Gen:        {"Gen", "Genesis", Old},
	Exod:       {"Exod", "Exodus", Old},
	Lev:        {"Lev", "Leviticus", Old},
	Num:        {"Num", "Numbers", Old},
	Deut:       {"Deut", "Deuteronomy", Old},
	Josh:       {"Josh", "Joshua", Old},
	Judg:       {"Judg", "Judges", Old},
	Ruth:       {"Ruth", "Ruth", Old},
	Sam1:       {"1Sam", "1 Samuel", Old},
	Sam2:       {"2Sam", "2 Samuel", Old},
	Kgs1:       {"1Kgs", "1 Kings", Old},
	Kgs2:       {"2Kgs", "2 Kings", Old},
	Chr1:       {"1Chr", "1 Chronicles", Old},
	Chr2:       {"2Chr", "2 Chronicles", Old},
	Ezra:       {"Ezra", "Ezra", Old},
	Neh:        {"Neh", "Nehemiah", Old},
	Esth:       {"Esth", "Esther", Old},
	Job:        {"Job", "Job", Old},
	Ps:         {"Ps", "Psalms", Old},
	Prov:       {"Prov", "Proverbs", Old},
	Eccl:       {"Eccl", "Ecclesiastes", Old},
	Song:       {"Song", "Song of Solomon", Old},
	Isa:        {"Isa", "Isaiah", Old},
	Jer:        {"Jer", "Jeremiah", Old},
	Lam:        {"Lam", "Lamentations", Old},
	Ezek:       {"Ezek", "Ezekiel", Old},
	Dan:        {"Dan", "Daniel", Old},
	Hos:        {"Hos", "Hosea", Old},
	Joel:       {"Joel", "Joel", Old},
	Amos:       {"Amos", "Amos", Old},
	Obad:       {"Obad", "Obadiah", Old},
	Jonah:      {"Jonah", "Jonah", Old},
	Mic:        {"Mic", "Micah", Old},
	Nah:        {"Nah", "Nahum", Old},
	Hab:        {"Hab", "Habakkuk", Old},
	Zeph:       {"Zeph", "Zephaniah", Old},
	Hag:        {"Hag", "Haggai", Old},
	Zech:       {"Zech", "Zechariah", Old},
	Mal:        {"Mal", "Malachi", Old},
	IntroNT:    {"Intro.NT", "New Testament", New},
	Matt:       {"Matt", "Matthew", New},
	Mark:       {"Mark", "Mark", New},
	Luke:       {"Luke", "Luke", New},
	John:       {"John", "John", New},
	Acts:       {"Acts", "Acts", New},
	Rom:        {"Rom", "Romans", New},
	Cor1:       {"1Cor", "1 Corinthians", New},
	Cor2:       {"2Cor", "2 Corinthians", New},
	Gal:        {"Gal", "Galatians", New},
	Eph:        {"Eph", "Ephesians", New},
	Phil:       {"Phil", "Philippians", New},
	Col:        {"Col", "Colossians", New},
	Thess1:     {"1Thess", "1 Thessalonians", New},
	Thess2:     {"2Thess", "2 Thessalonians", New},
	Tim1:       {"1Tim", "1 Timothy", New},
	Tim2:       {"2Tim", "2 Timothy", New},
	Titus:      {"Titus", "Titus", New},
	Phlm:       {"Phlm", "Philemon", New},
	Heb:        {"Heb", "Hebrews", New},
	Jas:        {"Jas", "James", New},
	Pet1:       {"1Pet", "1 Peter", New},
	Pet2:       {"2Pet", "2 Peter", New},
	John1:      {"1John", "1 John", New},
	John2:      {"2John", "2 John", New},
	John3:      {"3John", "3 John", New},
	Jude:       {"Jude", "Jude", New},
	Rev:        {"Rev", "Revelation", New},
	Tob:        {"Tob", "Tobit", Old},
	Jdt:        {"Jdt", "Judith", Old},
	AddEsth:    {"AddEsth", "Additions to Esther", Old},
	Wis:        {"Wis", "Wisdom", Old},
	Sir:        {"Sir", "Sirach", Old},
	Bar:        {"Bar", "Baruch", Old},
	EpJer:      {"EpJer", "Letter of Jeremiah", Old},
	PrAzar:     {"PrAzar", "Prayer of Azariah", Old},
	Sus:        {"Sus", "Susanna", Old},
	Bel:        {"Bel", "Bel and the Dragon", Old},
	Macc1:      {"1Macc", "1 Maccabees", Old},
	Macc2:      {"2Macc", "2 Maccabees", Old},
	Macc3:      {"3Macc", "3 Maccabees", Old},
	Macc4:      {"4Macc", "4 Maccabees", Old},
	PrMan:      {"PrMan", "Prayer of Manasseh", Old},
	Esd1:       {"1Esd", "1 Esdras", Old},
	Esd2:       {"2Esd", "2 Esdras", Old},
	AddPs:      {"AddPs", "Psalm 151", Old},
}

// BookCount is the number of books in the catalog.
const BookCount = len(catalog)

// osisIndex maps lower-cased OSIS ids to books.
var osisIndex = func() map[string]Book {
	m := make(map[string]Book, BookCount)
	for b := range catalog {
		m[strings.ToLower(catalog[b].osis)] = Book(b)
	}
	return m
}()

// FirstBook returns the first book of the catalog.
func FirstBook() Book { return IntroBible }

// LastBook returns the last book of the catalog.
func LastBook() Book { return Book(BookCount - 1) }

// Books returns every book in catalog order.
func Books() []Book {
	books := make([]Book, BookCount)
	for i := range books {
		books[i] = Book(i)
	}
	return books
}

// ParseOSIS looks up a book by its OSIS id, ignoring case.
func ParseOSIS(s string) (Book, bool) {
	b, ok := osisIndex[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

// Valid reports whether b is a member of the catalog.
func (b Book) Valid() bool {
	return b >= 0 && int(b) < BookCount
}

// Next returns the book following b in catalog order.
// The second result is false when b is the last book.
func (b Book) Next() (Book, bool) {
	if !b.Valid() || b == LastBook() {
		return 0, false
	}
	return b + 1, true
}

// Previous returns the book preceding b in catalog order.
// The second result is false when b is the first book.
func (b Book) Previous() (Book, bool) {
	if !b.Valid() || b == FirstBook() {
		return 0, false
	}
	return b - 1, true
}

// Testament returns the testament the book belongs to.
func (b Book) Testament() Testament {
	if !b.Valid() {
		return NoTestament
	}
	return catalog[b].testament
}

// IsIntro reports whether b is one of the introduction pseudo-books.
func (b Book) IsIntro() bool {
	return b == IntroBible || b == IntroOT || b == IntroNT
}

// OSIS returns the OSIS book id, e.g. "Gen" or "1John".
func (b Book) OSIS() string {
	if !b.Valid() {
		return ""
	}
	return catalog[b].osis
}

// String returns the English book name.
func (b Book) String() string {
	if !b.Valid() {
		return "Book(" + strconv.Itoa(int(b)) + ")"
	}
	return catalog[b].name
}
