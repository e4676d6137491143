// Command v11n inspects versifications: it maps references to ordinals and
// back, repairs overflowing references and exports ordinal indexes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperV11n/core/bible"
	"github.com/FocuswithJustin/JuniperV11n/core/errors"
	"github.com/FocuswithJustin/JuniperV11n/core/sqlite"
	"github.com/FocuswithJustin/JuniperV11n/core/v11n"
	"github.com/FocuswithJustin/JuniperV11n/internal/index"
	"github.com/FocuswithJustin/JuniperV11n/internal/logging"
	"github.com/FocuswithJustin/JuniperV11n/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for v11n.
type CLI struct {
	// Global flags
	LogLevel    string   `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"V11N_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat   string   `name:"log-format" default:"text" enum:"text,json" env:"V11N_LOG_FORMAT" help:"Log format (${enum})"`
	Definitions []string `name:"definition" short:"d" type:"existingfile" env:"V11N_DEFINITIONS" sep:"," help:"Extra versification definition (.yaml, .yml, .xml); repeatable"`

	List     ListCmd     `cmd:"" help:"List known versifications"`
	Info     InfoCmd     `cmd:"" help:"Describe a versification"`
	Ordinal  OrdinalCmd  `cmd:"" help:"Print the ordinal of an OSIS reference"`
	Decode   DecodeCmd   `cmd:"" help:"Print the reference at an ordinal"`
	Patch    PatchCmd    `cmd:"" help:"Repair an overflowing reference (use -- before negative numbers)"`
	Validate ValidateCmd `cmd:"" help:"Check that an OSIS reference exists"`
	Export   ExportGroup `cmd:"" help:"Export the ordinal index"`
	Verify   VerifyCmd   `cmd:"" help:"Check an exported SQLite index against a versification"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ExportGroup contains index export operations.
type ExportGroup struct {
	SQLite ExportSQLiteCmd `cmd:"" name:"sqlite" help:"Write the ordinal index to a SQLite database"`
	TSV    ExportTSVCmd    `cmd:"" name:"tsv" help:"Write the ordinal index as tab-separated text"`
}

// app carries the state shared by all commands.
type app struct {
	ctx      context.Context
	registry *v11n.Registry
	out      io.Writer
}

// newApp builds the registry, adding every --definition file.
func newApp(ctx context.Context, cli *CLI, out io.Writer) (*app, error) {
	reg := v11n.NewRegistry()
	for _, path := range cli.Definitions {
		if err := validation.ValidatePath(path); err != nil {
			return nil, fmt.Errorf("definition %s: %w", path, err)
		}
		def, err := v11n.LoadDefinitionFile(path)
		if err != nil {
			return nil, err
		}
		if err := validation.ValidateName(def.Name); err != nil {
			return nil, fmt.Errorf("definition %s: %w", path, err)
		}
		if err := reg.Register(def); err != nil {
			logging.CanonError(def.Name, "register", err, "path", path)
			return nil, fmt.Errorf("definition %s: %w", path, err)
		}
		logging.CanonRegistered(def.Name, path)
	}
	return &app{ctx: ctx, registry: reg, out: out}, nil
}

// ListCmd lists the registered versifications.
type ListCmd struct{}

func (c *ListCmd) Run(a *app) error {
	for _, name := range a.registry.Names() {
		v, err := a.registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-10s %3d books %6d ordinals  %s\n",
			v.Name(), v.BookCount(), v.MaximumOrdinal()+1, v.Description())
	}
	return nil
}

// InfoCmd describes one versification.
type InfoCmd struct {
	Canon string `arg:"" help:"Versification name"`
	Books bool   `help:"List every book with its chapter and ordinal counts"`
	JSON  bool   `name:"json" help:"Output as JSON"`
}

type bookInfo struct {
	OSIS     string `json:"osis"`
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
	Ordinals int    `json:"ordinals"`
}

type canonInfo struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fingerprint string     `json:"fingerprint"`
	Books       int        `json:"books"`
	Ordinals    int        `json:"ordinals"`
	OldOrdinals int        `json:"old_testament_ordinals"`
	NewOrdinals int        `json:"new_testament_ordinals"`
	BookList    []bookInfo `json:"book_list,omitempty"`
}

func (c *InfoCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}

	info := canonInfo{
		Name:        v.Name(),
		Description: v.Description(),
		Fingerprint: v.Fingerprint(),
		Books:       v.BookCount(),
		Ordinals:    v.MaximumOrdinal() + 1,
		OldOrdinals: v.Count(bible.Old),
		NewOrdinals: v.Count(bible.New),
	}
	if c.Books {
		for _, b := range v.Books() {
			chapters, err := v.LastChapter(b)
			if err != nil {
				return err
			}
			ordinals, err := v.BookVerseCount(b)
			if err != nil {
				return err
			}
			info.BookList = append(info.BookList, bookInfo{OSIS: b.OSIS(), Name: b.String(), Chapters: chapters, Ordinals: ordinals})
		}
	}

	if c.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(a.out, "Name:        %s\n", info.Name)
	if info.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", info.Description)
	}
	fmt.Fprintf(a.out, "Fingerprint: %s\n", info.Fingerprint)
	fmt.Fprintf(a.out, "Books:       %d\n", info.Books)
	fmt.Fprintf(a.out, "Ordinals:    %d (old %d, new %d)\n", info.Ordinals, info.OldOrdinals, info.NewOrdinals)
	for _, b := range info.BookList {
		fmt.Fprintf(a.out, "  %-12s %-28s %3d chapters %6d ordinals\n", b.OSIS, b.Name, b.Chapters, b.Ordinals)
	}
	return nil
}

// OrdinalCmd prints the ordinal of a reference.
type OrdinalCmd struct {
	Canon string `arg:"" help:"Versification name"`
	OSIS  string `arg:"" help:"OSIS reference, e.g. Gen.1.1"`
}

func (c *OrdinalCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}
	vs, err := v.ParseVerse(c.OSIS)
	if err != nil {
		return err
	}
	n, err := v.Ordinal(vs)
	if err != nil {
		return err
	}
	testament, _ := v.Testament(n)
	to, _ := v.TestamentOrdinal(n)
	fmt.Fprintf(a.out, "%s\t%d\t%s\t%d\n", vs.OSISID(), n, testament, to)
	return nil
}

// DecodeCmd prints the reference at an ordinal.
type DecodeCmd struct {
	Canon   string `arg:"" help:"Versification name"`
	Ordinal int    `arg:"" help:"Ordinal"`
}

func (c *DecodeCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}
	vs, err := v.DecodeOrdinal(c.Ordinal)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%s\n", vs.OSISID(), vs)
	return nil
}

// PatchCmd repairs an overflowing reference.
type PatchCmd struct {
	Canon   string `arg:"" help:"Versification name"`
	Book    string `arg:"" help:"OSIS book id"`
	Chapter int    `arg:"" help:"Chapter, may overflow or be negative"`
	Verse   int    `arg:"" help:"Verse, may overflow or be negative"`
}

func (c *PatchCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}
	b, ok := bible.ParseOSIS(c.Book)
	if !ok {
		return &errors.NotFoundError{Resource: "book", ID: c.Book, Err: v11n.ErrUnknownBook}
	}
	vs, err := v.Patch(b, c.Chapter, c.Verse)
	if err != nil {
		return err
	}
	n, _ := v.Ordinal(vs)
	fmt.Fprintf(a.out, "%s\t%d\n", vs.OSISID(), n)
	return nil
}

// ValidateCmd checks that a reference exists.
type ValidateCmd struct {
	Canon string `arg:"" help:"Versification name"`
	OSIS  string `arg:"" help:"OSIS reference, e.g. Gen.1.1"`
}

func (c *ValidateCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}
	vs, err := v.ParseVerse(c.OSIS)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is valid in %s\n", vs.OSISID(), v.Name())
	return nil
}

// ExportSQLiteCmd writes the ordinal index to SQLite.
type ExportSQLiteCmd struct {
	Canon string `arg:"" help:"Versification name"`
	Out   string `required:"" help:"Output database path (.db, .sqlite)" type:"path"`
}

func (c *ExportSQLiteCmd) Run(a *app) error {
	if err := validation.ValidateOutputPath(c.Out, ".db", ".sqlite", ".sqlite3"); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(c.Out)
	if err != nil {
		return err
	}
	defer db.Close()

	meta, err := index.Export(a.ctx, db, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "exported %s (%d ordinals) to %s, export %s\n", meta.Name, meta.MaxOrdinal+1, c.Out, meta.ExportID)
	return nil
}

// ExportTSVCmd writes the ordinal index as TSV.
type ExportTSVCmd struct {
	Canon string `arg:"" help:"Versification name"`
	Out   string `required:"" help:"Output file path, - for stdout"`
	XZ    bool   `name:"xz" help:"Compress the output with xz"`
}

func (c *ExportTSVCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}

	write := index.WriteTSV
	if c.XZ {
		write = index.WriteTSVXZ
	}

	if c.Out == "-" {
		return write(a.out, v)
	}

	ext := ".tsv"
	if c.XZ {
		ext = ".tsv.xz"
	}
	if err := validation.ValidateOutputPath(c.Out, ext); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return errors.NewIO("create", c.Out, err)
	}
	if err := write(f, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.NewIO("close", c.Out, err)
	}
	fmt.Fprintf(a.out, "exported %s to %s\n", v.Name(), c.Out)
	return nil
}

// VerifyCmd checks an exported index.
type VerifyCmd struct {
	Canon string `arg:"" help:"Versification name"`
	DB    string `arg:"" name:"db" help:"SQLite index path" type:"existingfile"`
}

func (c *VerifyCmd) Run(a *app) error {
	v, err := a.registry.Get(c.Canon)
	if err != nil {
		return err
	}
	db, err := sqlite.OpenReadOnly(c.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := index.Verify(a.ctx, db, v); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s matches %s\n", c.DB, v.Name())
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	info := sqlite.GetInfo()
	fmt.Fprintf(a.out, "v11n version %s (sqlite driver %s)\n", version, info.Package)
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("v11n"),
		kong.Description("Versification tools: ordinals, patching and index export"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logging.ParseLevel(cli.LogLevel), logging.ParseFormat(cli.LogFormat))

	a, err := newApp(context.Background(), &cli, os.Stdout)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(a)
	kctx.FatalIfErrorf(err)
}
