package v11n

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
	"github.com/FocuswithJustin/JuniperV11n/core/errors"
)

// osisGrammar is the participle grammar for OSIS-style references.
// Examples: "Gen", "Gen.1", "Gen.1.1", "1John.3.16", "Ps.119.-1"
//
//nolint:govet // participle grammar tags are not standard struct tags
type osisGrammar struct {
	BookPrefix string       `@Int?`
	BookName   string       `@Ident`
	ChapterRef *osisChapter `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisChapter struct {
	Chapter *osisComponent `@@`
	Verse   *osisComponent `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisComponent struct {
	Negative bool `@"-"?`
	Value    int  `@Int`
}

func (c *osisComponent) value() int {
	if c == nil {
		return 0
	}
	if c.Negative {
		return -c.Value
	}
	return c.Value
}

var osisLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var osisParser = participle.MustBuild[osisGrammar](
	participle.Lexer(osisLexer),
	participle.Elide("Whitespace"),
)

// parseOSIS splits an OSIS reference into book, chapter and verse. Missing
// components are 0. Negative components are accepted for Patch.
func parseOSIS(s string) (bible.Book, int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, errors.NewParse("OSIS", "", "empty reference")
	}

	parsed, err := osisParser.ParseString("", s)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{
			Format:  "OSIS",
			Message: fmt.Sprintf("invalid reference %q: %v", s, err),
			Err:     err,
		}
	}

	id := parsed.BookPrefix + parsed.BookName
	b, ok := bible.ParseOSIS(id)
	if !ok || b.IsIntro() {
		return 0, 0, 0, &errors.ParseError{
			Format:  "OSIS",
			Message: fmt.Sprintf("unknown book %q", id),
			Err:     ErrUnknownBook,
		}
	}
	if parsed.ChapterRef == nil {
		return b, 0, 0, nil
	}
	return b, parsed.ChapterRef.Chapter.value(), parsed.ChapterRef.Verse.value(), nil
}

// ParseVerse parses and validates an OSIS reference such as "Gen.1.1".
// "Gen" and "Gen.1" address the book and chapter introductions.
func (v *Versification) ParseVerse(s string) (Verse, error) {
	b, c, n, err := parseOSIS(s)
	if err != nil {
		return Verse{}, err
	}
	return v.Verse(b, c, n)
}

// PatchVerse parses an OSIS reference and repairs it with Patch.
func (v *Versification) PatchVerse(s string) (Verse, error) {
	b, c, n, err := parseOSIS(s)
	if err != nil {
		return Verse{}, err
	}
	return v.Patch(b, c, n)
}
