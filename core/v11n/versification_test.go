package v11n

import (
	"errors"
	"testing"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
)

// allSystems returns every built-in versification from a fresh registry.
func allSystems(t *testing.T) []*Versification {
	t.Helper()
	r := NewRegistry()
	var out []*Versification
	for _, name := range r.Names() {
		v, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		out = append(out, v)
	}
	return out
}

// forEachVerse walks every valid reference in canon order.
func forEachVerse(t *testing.T, v *Versification, fn func(b bible.Book, c, n int)) {
	t.Helper()
	for b, ok := v.FirstBook(), true; ok; b, ok = v.NextBook(b) {
		lastChapter, err := v.LastChapter(b)
		if err != nil {
			t.Fatalf("%s LastChapter(%v): %v", v.Name(), b, err)
		}
		for c := 0; c <= lastChapter; c++ {
			lastVerse, err := v.LastVerse(b, c)
			if err != nil {
				t.Fatalf("%s LastVerse(%v, %d): %v", v.Name(), b, c, err)
			}
			for n := 0; n <= lastVerse; n++ {
				fn(b, c, n)
			}
		}
	}
}

func mustVerse(t *testing.T, v *Versification, b bible.Book, c, n int) Verse {
	t.Helper()
	vs, err := v.Verse(b, c, n)
	if err != nil {
		t.Fatalf("Verse(%v, %d, %d): %v", b, c, n, err)
	}
	return vs
}

func TestVerseCountMatchesMaximumOrdinal(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			count := 0
			forEachVerse(t, v, func(bible.Book, int, int) { count++ })

			if count != v.MaximumOrdinal()+1 {
				t.Errorf("walked %d verses, MaximumOrdinal()+1 = %d", count, v.MaximumOrdinal()+1)
			}
			if count != v.Count(bible.NoTestament) {
				t.Errorf("walked %d verses, Count(none) = %d", count, v.Count(bible.NoTestament))
			}
			if sum := v.Count(bible.Old) + v.Count(bible.New) + v.Count(bible.Intro); sum != count {
				t.Errorf("testament counts sum to %d, want %d", sum, count)
			}
		})
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			want := 0
			forEachVerse(t, v, func(b bible.Book, c, n int) {
				vs := mustVerse(t, v, b, c, n)
				got, err := v.Ordinal(vs)
				if err != nil {
					t.Fatalf("Ordinal(%s): %v", vs.OSISID(), err)
				}
				if got != want {
					t.Fatalf("Ordinal(%s) = %d, want %d", vs.OSISID(), got, want)
				}
				decoded, err := v.DecodeOrdinal(got)
				if err != nil {
					t.Fatalf("DecodeOrdinal(%d): %v", got, err)
				}
				if decoded != vs {
					t.Fatalf("DecodeOrdinal(%d) = %s, want %s", got, decoded.OSISID(), vs.OSISID())
				}
				want++
			})
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			for b, ok := v.FirstBook(), true; ok; b, ok = v.NextBook(b) {
				lastChapter, _ := v.LastChapter(b)

				if err := v.Validate(b, -1, 0); !errors.Is(err, ErrInvalidChapter) {
					t.Errorf("Validate(%v, -1, 0) = %v, want ErrInvalidChapter", b, err)
				}
				if err := v.Validate(b, lastChapter+1, 0); !errors.Is(err, ErrInvalidChapter) {
					t.Errorf("Validate(%v, %d, 0) = %v, want ErrInvalidChapter", b, lastChapter+1, err)
				}
				if err := v.Validate(b, lastChapter, 0); err != nil {
					t.Errorf("Validate(%v, %d, 0) = %v", b, lastChapter, err)
				}

				for c := 0; c <= lastChapter; c++ {
					lastVerse, _ := v.LastVerse(b, c)
					if err := v.Validate(b, c, -1); !errors.Is(err, ErrInvalidVerse) {
						t.Errorf("Validate(%v, %d, -1) = %v, want ErrInvalidVerse", b, c, err)
					}
					if err := v.Validate(b, c, lastVerse); err != nil {
						t.Errorf("Validate(%v, %d, %d) = %v", b, c, lastVerse, err)
					}
					if err := v.Validate(b, c, lastVerse+1); !errors.Is(err, ErrInvalidVerse) {
						t.Errorf("Validate(%v, %d, %d) = %v, want ErrInvalidVerse", b, c, lastVerse+1, err)
					}
				}
			}
		})
	}
}

func TestPatchEnumeratesCanon(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			all := 0
			forEachVerse(t, v, func(b bible.Book, c, n int) {
				pv, err := v.Patch(bible.IntroBible, 0, all)
				if err != nil {
					t.Fatalf("Patch(IntroBible, 0, %d): %v", all, err)
				}
				if pv.Book() != b || pv.Chapter() != c || pv.Verse() != n {
					t.Fatalf("Patch(IntroBible, 0, %d) = %s, want %s.%d.%d", all, pv.OSISID(), b.OSIS(), c, n)
				}
				all++
			})

			if _, err := v.Patch(bible.IntroBible, 0, all); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Patch past the end = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestPatchEquivalences(t *testing.T) {
	v := NewRegistry().MustGet(KJV)
	gen11 := mustVerse(t, v, bible.Gen, 1, 1)

	tests := []struct {
		name    string
		book    bible.Book
		chapter int
		verse   int
	}{
		{"exact", bible.Gen, 1, 1},
		{"verse spills from intro", bible.Gen, 0, 2},
		{"chapter spills from whole-work intro", bible.IntroBible, 3, 1},
		{"count from start", bible.IntroBible, 0, 4},
		{"negative verse walks back", bible.Gen, 2, -31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Patch(tt.book, tt.chapter, tt.verse)
			if err != nil {
				t.Fatalf("Patch: %v", err)
			}
			if got != gen11 {
				t.Errorf("Patch(%v, %d, %d) = %s, want Gen.1.1", tt.book, tt.chapter, tt.verse, got.OSISID())
			}
		})
	}
}

func TestPatchSpillover(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	tests := []struct {
		name    string
		book    bible.Book
		chapter int
		verse   int
		want    string
	}{
		{"verse overflow into next chapter", bible.Gen, 1, 32, "Gen.2.0"},
		{"verse overflow two chapters", bible.Gen, 1, 58, "Gen.3.0"},
		{"chapter overflow into next book", bible.Gen, 51, 0, "Exod.0.0"},
		{"chapter overflow into New Testament intro", bible.Mal, 5, 0, "Intro.NT.0.0"},
		{"chapter overflow past intro", bible.Mal, 5, 1, "Matt.0.0"},
		{"into New Testament", bible.Mal, 4, 7, "Intro.NT.0.0"},
		{"end of book", bible.Gen, 50, 26, "Gen.50.26"},
		{"negative chapter", bible.Exod, -1, 26, "Gen.50.26"},
		{"negative verse crosses book", bible.Exod, 0, -1, "Gen.50.26"},
		{"last verse of canon", bible.Rev, 22, 21, "Rev.22.21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Patch(tt.book, tt.chapter, tt.verse)
			if err != nil {
				t.Fatalf("Patch: %v", err)
			}
			if got.OSISID() != tt.want {
				t.Errorf("Patch(%v, %d, %d) = %s, want %s", tt.book, tt.chapter, tt.verse, got.OSISID(), tt.want)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	if _, err := v.Patch(bible.Rev, 22, 22); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Patch beyond Rev 22:21 = %v, want ErrOutOfRange", err)
	}
	if _, err := v.Patch(bible.Rev, 23, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Patch beyond last chapter = %v, want ErrOutOfRange", err)
	}
	if _, err := v.Patch(bible.IntroBible, 0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Patch before start = %v, want ErrOutOfRange", err)
	}
	if _, err := v.Patch(bible.IntroBible, -1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Patch with chapter before start = %v, want ErrOutOfRange", err)
	}
	if _, err := v.Patch(bible.Tob, 1, 1); !errors.Is(err, ErrUnknownBook) {
		t.Errorf("Patch(Tob) in KJV = %v, want ErrUnknownBook", err)
	}
}

func TestDistance(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			first := mustVerse(t, v, v.FirstBook(), 0, 0)
			last, err := v.DecodeOrdinal(v.MaximumOrdinal())
			if err != nil {
				t.Fatal(err)
			}

			up := 0
			down := v.MaximumOrdinal()
			forEachVerse(t, v, func(b bible.Book, c, n int) {
				cur := mustVerse(t, v, b, c, n)
				d, err := v.Distance(first, cur)
				if err != nil {
					t.Fatal(err)
				}
				up++
				if d+1 != up {
					t.Fatalf("Distance(first, %s)+1 = %d, want %d", cur.OSISID(), d+1, up)
				}
				d, _ = v.Distance(cur, last)
				if d != down {
					t.Fatalf("Distance(%s, last) = %d, want %d", cur.OSISID(), d, down)
				}
				back, _ := v.Distance(last, cur)
				if back != -d {
					t.Fatalf("Distance is not antisymmetric at %s", cur.OSISID())
				}
				down--
			})

			if d, _ := v.Distance(first, first); d != 0 {
				t.Errorf("Distance(a, a) = %d", d)
			}
		})
	}
}

func TestNavigationClosure(t *testing.T) {
	for _, v := range allSystems(t) {
		t.Run(v.Name(), func(t *testing.T) {
			steps := 0
			b := v.FirstBook()
			for {
				next, ok := v.NextBook(b)
				if !ok {
					break
				}
				if prev, ok := v.PreviousBook(next); !ok || prev != b {
					t.Fatalf("PreviousBook(%v) = %v, %v; want %v", next, prev, ok, b)
				}
				b = next
				steps++
			}
			if b != v.LastBook() {
				t.Errorf("walk ended at %v, want %v", b, v.LastBook())
			}
			if steps != v.BookCount()-1 {
				t.Errorf("steps = %d, want %d", steps, v.BookCount()-1)
			}
			if _, ok := v.NextBook(v.LastBook()); ok {
				t.Error("NextBook(LastBook()) should report none")
			}
			if _, ok := v.PreviousBook(v.FirstBook()); ok {
				t.Error("PreviousBook(FirstBook()) should report none")
			}
		})
	}
}

func TestKJVLandmarks(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	if got := v.MaximumOrdinal(); got != 32359 {
		t.Errorf("MaximumOrdinal() = %d, want 32359", got)
	}
	if got := v.BookCount(); got != 69 {
		t.Errorf("BookCount() = %d, want 69", got)
	}
	if got := v.Count(bible.Old); got != 24115 {
		t.Errorf("Count(Old) = %d, want 24115", got)
	}
	if got := v.Count(bible.New); got != 8245 {
		t.Errorf("Count(New) = %d, want 8245", got)
	}
	if got := v.Count(bible.Intro); got != 0 {
		t.Errorf("Count(Intro) = %d, want 0", got)
	}

	tests := []struct {
		book             bible.Book
		chapter, verse   int
		ordinal          int
		testament        bible.Testament
		testamentOrdinal int
	}{
		{bible.IntroBible, 0, 0, 0, bible.Old, 0},
		{bible.IntroOT, 0, 0, 1, bible.Old, 1},
		{bible.Gen, 0, 0, 2, bible.Old, 2},
		{bible.Gen, 1, 0, 3, bible.Old, 3},
		{bible.Gen, 1, 1, 4, bible.Old, 4},
		{bible.IntroNT, 0, 0, 24115, bible.New, 1},
		{bible.Matt, 1, 1, 24118, bible.New, 4},
		{bible.Rev, 22, 21, 32359, bible.New, 8245},
	}

	for _, tt := range tests {
		got, err := v.OrdinalOf(tt.book, tt.chapter, tt.verse)
		if err != nil {
			t.Fatalf("OrdinalOf(%v %d:%d): %v", tt.book, tt.chapter, tt.verse, err)
		}
		if got != tt.ordinal {
			t.Errorf("OrdinalOf(%v %d:%d) = %d, want %d", tt.book, tt.chapter, tt.verse, got, tt.ordinal)
		}
		testament, _ := v.Testament(got)
		if testament != tt.testament {
			t.Errorf("Testament(%d) = %v, want %v", got, testament, tt.testament)
		}
		to, _ := v.TestamentOrdinal(got)
		if to != tt.testamentOrdinal {
			t.Errorf("TestamentOrdinal(%d) = %d, want %d", got, to, tt.testamentOrdinal)
		}
	}
}

func TestOldTestamentOnlyCanon(t *testing.T) {
	r := NewRegistry()
	mt := r.MustGet(MT)
	kjv := r.MustGet(KJV)

	gen11, err := kjv.OrdinalOf(bible.Gen, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	testament, err := mt.Testament(gen11)
	if err != nil {
		t.Fatal(err)
	}
	if testament != bible.Old {
		t.Errorf("Gen 1:1 in MT is %v, want old", testament)
	}

	for n := 0; n <= mt.MaximumOrdinal(); n++ {
		testament, _ := mt.Testament(n)
		if testament != bible.Old {
			t.Fatalf("MT Testament(%d) = %v, want old", n, testament)
		}
		if to, _ := mt.TestamentOrdinal(n); to != n {
			t.Fatalf("MT TestamentOrdinal(%d) = %d, want %d", n, to, n)
		}
	}
	if mt.Count(bible.New) != 0 {
		t.Errorf("MT Count(New) = %d, want 0", mt.Count(bible.New))
	}
	if mt.ContainsBook(bible.IntroNT) || mt.ContainsBook(bible.Matt) {
		t.Error("MT should not contain New Testament books")
	}
	if mt.LastBook() != bible.Chr2 {
		t.Errorf("MT LastBook() = %v, want 2 Chronicles", mt.LastBook())
	}
	if last, _ := mt.LastChapter(bible.Joel); last != 4 {
		t.Errorf("MT Joel has %d chapters, want 4", last)
	}
}

func TestOrdinalOutOfRange(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	for _, n := range []int{-1, v.MaximumOrdinal() + 1} {
		if _, err := v.DecodeOrdinal(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DecodeOrdinal(%d) = %v, want ErrOutOfRange", n, err)
		}
		if _, err := v.Testament(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Testament(%d) = %v, want ErrOutOfRange", n, err)
		}
		if _, err := v.TestamentOrdinal(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("TestamentOrdinal(%d) = %v, want ErrOutOfRange", n, err)
		}
	}

	var oe *OrdinalError
	_, err := v.DecodeOrdinal(40000)
	if !errors.As(err, &oe) || oe.Ordinal != 40000 || oe.Maximum != 32359 {
		t.Errorf("DecodeOrdinal(40000) error = %#v", err)
	}
}

func TestReferenceErrors(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	tests := []struct {
		name    string
		book    bible.Book
		chapter int
		verse   int
		want    error
		limit   int
		msg     string
	}{
		{"unknown book", bible.Tob, 1, 1, ErrUnknownBook, -1, "unknown book Tob in KJV"},
		{"invalid book value", bible.Book(999), 1, 1, ErrUnknownBook, -1, ""},
		{"chapter", bible.Gen, 51, 1, ErrInvalidChapter, 50, "invalid chapter Gen 51: Gen has chapters 0-50 in KJV"},
		{"verse", bible.Gen, 1, 32, ErrInvalidVerse, 31, "invalid verse Gen 1:32: chapter has verses 0-31 in KJV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.book, tt.chapter, tt.verse)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate = %v, want %v", err, tt.want)
			}
			var re *ReferenceError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not a *ReferenceError", err)
			}
			if re.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", re.Limit, tt.limit)
			}
			if tt.msg != "" && err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}

	if _, err := v.LastChapter(bible.Sir); !errors.Is(err, ErrUnknownBook) {
		t.Errorf("LastChapter(Sir) = %v", err)
	}
	if _, err := v.LastVerse(bible.Gen, 51); !errors.Is(err, ErrInvalidChapter) {
		t.Errorf("LastVerse(Gen, 51) = %v", err)
	}
}

func TestForeignVerse(t *testing.T) {
	r := NewRegistry()
	kjv := r.MustGet(KJV)
	nrsv := r.MustGet(NRSV)

	vs := mustVerse(t, nrsv, bible.Gen, 1, 1)
	if _, err := kjv.Ordinal(vs); !errors.Is(err, ErrVersificationMismatch) {
		t.Errorf("Ordinal of NRSV verse in KJV = %v, want ErrVersificationMismatch", err)
	}
	if _, err := kjv.Ordinal(Verse{}); !errors.Is(err, ErrVersificationMismatch) {
		t.Errorf("Ordinal of zero verse = %v, want ErrVersificationMismatch", err)
	}
	if _, err := kjv.Distance(mustVerse(t, kjv, bible.Gen, 1, 1), vs); !errors.Is(err, ErrVersificationMismatch) {
		t.Errorf("Distance across canons = %v, want ErrVersificationMismatch", err)
	}
	if kjv.IsStartOfBook(mustVerse(t, nrsv, bible.Gen, 0, 0)) {
		t.Error("IsStartOfBook should reject a foreign verse")
	}
}

func TestAdd(t *testing.T) {
	v := NewRegistry().MustGet(KJV)
	gen131 := mustVerse(t, v, bible.Gen, 1, 31)

	next, err := v.Add(gen131, 1)
	if err != nil {
		t.Fatal(err)
	}
	if next.OSISID() != "Gen.2.0" {
		t.Errorf("Add(Gen.1.31, 1) = %s, want Gen.2.0", next.OSISID())
	}
	prev, err := v.Add(next, -1)
	if err != nil {
		t.Fatal(err)
	}
	if prev != gen131 {
		t.Errorf("Add(Gen.2.0, -1) = %s, want Gen.1.31", prev.OSISID())
	}
	if _, err := v.Add(gen131, v.MaximumOrdinal()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Add past the end = %v, want ErrOutOfRange", err)
	}
}

func TestChapterAndBookEdges(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	tests := []struct {
		verse                                  Verse
		startChapter, endChapter, start, end bool
	}{
		{mustVerse(t, v, bible.Gen, 0, 0), true, true, true, false},
		{mustVerse(t, v, bible.Gen, 1, 0), true, false, false, false},
		{mustVerse(t, v, bible.Gen, 1, 31), false, true, false, false},
		{mustVerse(t, v, bible.Gen, 50, 26), false, true, false, true},
		{mustVerse(t, v, bible.Obad, 1, 21), false, true, false, true},
	}

	for _, tt := range tests {
		if got := v.IsStartOfChapter(tt.verse); got != tt.startChapter {
			t.Errorf("IsStartOfChapter(%s) = %v", tt.verse.OSISID(), got)
		}
		if got := v.IsEndOfChapter(tt.verse); got != tt.endChapter {
			t.Errorf("IsEndOfChapter(%s) = %v", tt.verse.OSISID(), got)
		}
		if got := v.IsStartOfBook(tt.verse); got != tt.start {
			t.Errorf("IsStartOfBook(%s) = %v", tt.verse.OSISID(), got)
		}
		if got := v.IsEndOfBook(tt.verse); got != tt.end {
			t.Errorf("IsEndOfBook(%s) = %v", tt.verse.OSISID(), got)
		}
	}
}

func TestBookVerseCount(t *testing.T) {
	v := NewRegistry().MustGet(KJV)

	tests := []struct {
		book bible.Book
		want int
	}{
		{bible.IntroBible, 1},
		{bible.Gen, 1533 + 50 + 1},
		{bible.Obad, 21 + 1 + 1},
		{bible.Rev, 404 + 22 + 1},
	}
	for _, tt := range tests {
		got, err := v.BookVerseCount(tt.book)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("BookVerseCount(%v) = %d, want %d", tt.book, got, tt.want)
		}
	}

	total := 0
	for _, b := range v.Books() {
		n, _ := v.BookVerseCount(b)
		total += n
	}
	if total != v.Count(bible.NoTestament) {
		t.Errorf("book counts sum to %d, want %d", total, v.Count(bible.NoTestament))
	}
	if _, err := v.BookVerseCount(bible.Tob); !errors.Is(err, ErrUnknownBook) {
		t.Errorf("BookVerseCount(Tob) = %v", err)
	}
}

func TestVerseValue(t *testing.T) {
	v := NewRegistry().MustGet(KJV)
	vs := mustVerse(t, v, bible.John1, 3, 16)

	if vs.OSISID() != "1John.3.16" {
		t.Errorf("OSISID() = %q", vs.OSISID())
	}
	if vs.String() != "1 John 3:16" {
		t.Errorf("String() = %q", vs.String())
	}
	if vs.Versification() != v || !vs.IsValid() {
		t.Error("verse should belong to KJV")
	}

	var zero Verse
	if zero.IsValid() || zero.OSISID() != "" || zero.String() != "" {
		t.Error("zero verse should be invalid and render empty")
	}
}

func TestBuiltinShapes(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name      string
		books     int
		maxOrd    int
		firstReal bible.Book
		lastBook  bible.Book
	}{
		{KJV, 69, 32359, bible.Gen, bible.Rev},
		{NRSV, 69, 32360, bible.Gen, bible.Rev},
		{Vulgate, 76, 37226, bible.Gen, bible.Rev},
		{MT, 41, 24114, bible.Gen, bible.Chr2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := r.MustGet(tt.name)
			if v.BookCount() != tt.books {
				t.Errorf("BookCount() = %d, want %d", v.BookCount(), tt.books)
			}
			if v.MaximumOrdinal() != tt.maxOrd {
				t.Errorf("MaximumOrdinal() = %d, want %d", v.MaximumOrdinal(), tt.maxOrd)
			}
			if v.FirstBook() != bible.IntroBible {
				t.Errorf("FirstBook() = %v", v.FirstBook())
			}
			if b, _ := v.NextBook(bible.IntroOT); b != tt.firstReal {
				t.Errorf("book after IntroOT = %v, want %v", b, tt.firstReal)
			}
			if v.LastBook() != tt.lastBook {
				t.Errorf("LastBook() = %v, want %v", v.LastBook(), tt.lastBook)
			}
			if v.Description() == "" {
				t.Error("missing description")
			}
		})
	}

	nrsv := r.MustGet(NRSV)
	if last, _ := nrsv.LastVerse(bible.John3, 1); last != 15 {
		t.Errorf("NRSV 3 John 1 ends at %d, want 15", last)
	}
	vul := r.MustGet(Vulgate)
	if !vul.ContainsBook(bible.Tob) || !vul.ContainsBook(bible.Macc2) {
		t.Error("Vulgate should contain Tobit and 2 Maccabees")
	}
	if tob, _ := vul.Testament(mustOrdinal(t, vul, bible.Tob, 1, 1)); tob != bible.Old {
		t.Errorf("Tobit testament = %v, want old", tob)
	}
}

func mustOrdinal(t *testing.T, v *Versification, b bible.Book, c, n int) int {
	t.Helper()
	o, err := v.OrdinalOf(b, c, n)
	if err != nil {
		t.Fatalf("OrdinalOf(%v, %d, %d): %v", b, c, n, err)
	}
	return o
}

func BenchmarkOrdinalOf(b *testing.B) {
	v := NewRegistry().MustGet(KJV)
	for i := 0; i < b.N; i++ {
		_, _ = v.OrdinalOf(bible.Ps, 119, 176)
	}
}

func BenchmarkDecodeOrdinal(b *testing.B) {
	v := NewRegistry().MustGet(KJV)
	last := v.MaximumOrdinal()
	for i := 0; i < b.N; i++ {
		_, _ = v.DecodeOrdinal(i % (last + 1))
	}
}
