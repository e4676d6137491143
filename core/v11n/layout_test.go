package v11n

import (
	"errors"
	"testing"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
	coreerrors "github.com/FocuswithJustin/JuniperV11n/core/errors"
)

func tinyDefinition() *Definition {
	return &Definition{
		Name: "Tiny",
		Books: []BookDefinition{
			{OSIS: "Gen", Chapters: []int{2, 1}},
			{OSIS: "Matt", Chapters: []int{1}},
		},
	}
}

func TestTinyCanonOrdinals(t *testing.T) {
	v, err := New(tinyDefinition())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{
		"Intro.Bible.0.0",
		"Intro.OT.0.0",
		"Gen.0.0",
		"Gen.1.0",
		"Gen.1.1",
		"Gen.1.2",
		"Gen.2.0",
		"Gen.2.1",
		"Intro.NT.0.0",
		"Matt.0.0",
		"Matt.1.0",
		"Matt.1.1",
	}
	if v.MaximumOrdinal() != len(want)-1 {
		t.Fatalf("MaximumOrdinal() = %d, want %d", v.MaximumOrdinal(), len(want)-1)
	}
	for n, id := range want {
		vs, err := v.DecodeOrdinal(n)
		if err != nil {
			t.Fatalf("DecodeOrdinal(%d): %v", n, err)
		}
		if vs.OSISID() != id {
			t.Errorf("DecodeOrdinal(%d) = %s, want %s", n, vs.OSISID(), id)
		}
	}

	if got := v.Count(bible.Old); got != 8 {
		t.Errorf("Count(Old) = %d, want 8", got)
	}
	if got := v.Count(bible.New); got != 4 {
		t.Errorf("Count(New) = %d, want 4", got)
	}
	if to, _ := v.TestamentOrdinal(11); to != 4 {
		t.Errorf("TestamentOrdinal(Matt 1:1) = %d, want 4", to)
	}
	if to, _ := v.TestamentOrdinal(4); to != 4 {
		t.Errorf("TestamentOrdinal(Gen 1:1) = %d, want 4", to)
	}
}

func TestNewTestamentOnlyCanon(t *testing.T) {
	v, err := New(&Definition{
		Name:  "Gospel",
		Books: []BookDefinition{{OSIS: "Matt", Chapters: []int{1}}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	books := v.Books()
	if len(books) != 3 || books[0] != bible.IntroBible || books[1] != bible.IntroNT || books[2] != bible.Matt {
		t.Errorf("Books() = %v", books)
	}
	if v.ContainsBook(bible.IntroOT) {
		t.Error("IntroOT should be absent without Old Testament books")
	}
	if v.Count(bible.New) != 5 || v.Count(bible.Old) != 0 {
		t.Errorf("Count(New) = %d, Count(Old) = %d", v.Count(bible.New), v.Count(bible.Old))
	}
	for n := 0; n <= v.MaximumOrdinal(); n++ {
		if testament, _ := v.Testament(n); testament != bible.New {
			t.Errorf("Testament(%d) = %v, want new", n, testament)
		}
		if to, _ := v.TestamentOrdinal(n); to != n {
			t.Errorf("TestamentOrdinal(%d) = %d, want %d", n, to, n)
		}
	}
}

func TestEmptyChapter(t *testing.T) {
	v, err := New(&Definition{
		Name:  "Gap",
		Books: []BookDefinition{{OSIS: "Gen", Chapters: []int{1, 0, 1}}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if last, _ := v.LastVerse(bible.Gen, 2); last != 0 {
		t.Errorf("LastVerse(Gen, 2) = %d, want 0", last)
	}
	got, err := v.Patch(bible.Gen, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.OSISID() != "Gen.2.0" {
		t.Errorf("Patch(Gen, 1, 2) = %s, want Gen.2.0", got.OSISID())
	}
	got, _ = v.Patch(bible.Gen, 1, 3)
	if got.OSISID() != "Gen.3.0" {
		t.Errorf("Patch(Gen, 1, 3) = %s, want Gen.3.0", got.OSISID())
	}
}

func TestMalformedDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
	}{
		{"empty name", &Definition{Name: " ", Books: []BookDefinition{{OSIS: "Gen", Chapters: []int{1}}}}},
		{"no books", &Definition{Name: "None"}},
		{"unknown book", &Definition{Name: "X", Books: []BookDefinition{{OSIS: "Foo", Chapters: []int{1}}}}},
		{"listed introduction", &Definition{Name: "X", Books: []BookDefinition{{OSIS: "Intro.OT", Chapters: []int{1}}}}},
		{"duplicate book", &Definition{Name: "X", Books: []BookDefinition{
			{OSIS: "Gen", Chapters: []int{1}},
			{OSIS: "gen", Chapters: []int{1}},
		}}},
		{"negative verse count", &Definition{Name: "X", Books: []BookDefinition{{OSIS: "Gen", Chapters: []int{3, -1}}}}},
		{"old after new", &Definition{Name: "X", Books: []BookDefinition{
			{OSIS: "Matt", Chapters: []int{1}},
			{OSIS: "Gen", Chapters: []int{1}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.def)
			if !errors.Is(err, ErrMalformedCanon) {
				t.Fatalf("New = %v, want ErrMalformedCanon", err)
			}
			var ve *coreerrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if ve.Field == "" {
				t.Error("ValidationError.Field is empty")
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	r := NewRegistry()
	kjv := r.MustGet(KJV)

	copyDef := kjvDefinition()
	copyDef.Name = "KJVCopy"
	copyDef.Description = "same table, new name"
	copyV, err := New(copyDef)
	if err != nil {
		t.Fatal(err)
	}

	if kjv.Fingerprint() == "" || len(kjv.Fingerprint()) != 64 {
		t.Errorf("Fingerprint() = %q, want 64 hex digits", kjv.Fingerprint())
	}
	if kjv.Fingerprint() != copyV.Fingerprint() {
		t.Error("identical tables should share a fingerprint")
	}
	if kjv.Fingerprint() == r.MustGet(NRSV).Fingerprint() {
		t.Error("KJV and NRSV should differ")
	}
	if kjv.Fingerprint() == r.MustGet(MT).Fingerprint() {
		t.Error("KJV and MT should differ")
	}
}

func TestLocateMatchesWalk(t *testing.T) {
	v := NewRegistry().MustGet(Vulgate)
	l := v.l
	n := 0
	for i := range l.books {
		for c := 0; c <= l.lastChapter(i); c++ {
			for vn := 0; vn <= l.lastVerse[l.chapterBase[i]+c]; vn++ {
				gi, gc, gv := l.locate(n)
				if gi != i || gc != c || gv != vn {
					t.Fatalf("locate(%d) = (%d, %d, %d), want (%d, %d, %d)", n, gi, gc, gv, i, c, vn)
				}
				n++
			}
		}
	}
	if n != l.total {
		t.Errorf("walked %d ordinals, total %d", n, l.total)
	}
}
