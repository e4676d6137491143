package v11n

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
)

// Definition is the declarative table a versification is built from.
// Books are listed in canon order; the introduction pseudo-books are added
// during construction and must not be listed.
type Definition struct {
	// Name is the registry key, e.g. "KJV".
	Name string `yaml:"name" json:"name"`

	// Description is an optional human-readable summary.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Books lists the books of the canon in order.
	Books []BookDefinition `yaml:"books" json:"books"`
}

// BookDefinition holds the verse counts of one book.
type BookDefinition struct {
	// OSIS is the OSIS book id (e.g., "Gen", "1John").
	OSIS string `yaml:"osis" json:"osis"`

	// Chapters holds the number of verses in chapters 1..N. Chapter 0 and
	// verse 0 (introductions) are implicit.
	Chapters []int `yaml:"chapters" json:"chapters"`
}

// clone returns a deep copy so registered definitions cannot be changed
// behind the registry's back.
func (d *Definition) clone() *Definition {
	c := &Definition{
		Name:        d.Name,
		Description: d.Description,
		Books:       make([]BookDefinition, len(d.Books)),
	}
	for i, b := range d.Books {
		c.Books[i] = BookDefinition{
			OSIS:     b.OSIS,
			Chapters: append([]int(nil), b.Chapters...),
		}
	}
	return c
}

// ParseDefinitionYAML decodes a definition from YAML:
//
//	name: Custom
//	books:
//	  - osis: Gen
//	    chapters: [31, 25, 24]
func ParseDefinitionYAML(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, &errors.ParseError{Format: "YAML", Message: err.Error(), Err: err}
	}
	return &def, nil
}

var (
	rootExpr    = xpath.MustCompile("/versification")
	bookExpr    = xpath.MustCompile("book")
	chapterExpr = xpath.MustCompile("chapter")
)

// ParseDefinitionXML decodes a definition from XML:
//
//	<versification name="Custom">
//	  <book osis="Gen">
//	    <chapter verses="31"/>
//	    <chapter verses="25"/>
//	  </book>
//	</versification>
func ParseDefinitionXML(r io.Reader) (*Definition, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Message: err.Error(), Err: err}
	}

	root := xmlquery.QuerySelector(doc, rootExpr)
	if root == nil {
		return nil, errors.NewParse("XML", "", "missing <versification> root element")
	}

	def := &Definition{
		Name:        strings.TrimSpace(root.SelectAttr("name")),
		Description: strings.TrimSpace(root.SelectAttr("description")),
	}
	for _, bookNode := range xmlquery.QuerySelectorAll(root, bookExpr) {
		book := BookDefinition{OSIS: strings.TrimSpace(bookNode.SelectAttr("osis"))}
		for i, ch := range xmlquery.QuerySelectorAll(bookNode, chapterExpr) {
			verses, err := strconv.Atoi(strings.TrimSpace(ch.SelectAttr("verses")))
			if err != nil {
				return nil, errors.NewParse("XML", "",
					fmt.Sprintf("book %s chapter %d: bad verses attribute", book.OSIS, i+1))
			}
			book.Chapters = append(book.Chapters, verses)
		}
		def.Books = append(def.Books, book)
	}
	return def, nil
}

// LoadDefinitionFile reads a YAML (.yaml, .yml) or XML (.xml) definition.
func LoadDefinitionFile(path string) (*Definition, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".xml" {
		return nil, errors.NewUnsupported("definition format", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	var def *Definition
	if ext == ".xml" {
		def, err = ParseDefinitionXML(bytes.NewReader(data))
	} else {
		def, err = ParseDefinitionYAML(data)
	}
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return def, nil
}
