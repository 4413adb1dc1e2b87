// Command lookup prints the declension, article forms, possessives and
// gender hint of Irish nouns, or example phrases for adjectives.
//
//	lookup [-data dir] [-format terminal|html|plain] word...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phuslu/log"

	irish "github.com/cuplamilefocal/lookup-irish"
	"github.com/cuplamilefocal/lookup-irish/internal/config"
	"github.com/cuplamilefocal/lookup-irish/internal/logging"
	"github.com/cuplamilefocal/lookup-irish/render"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	dataDir := flag.String("data", "", "path to the lexicon data directory (overrides config)")
	formatName := flag.String("format", "terminal", "output format: terminal, html or plain")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lookup [-data dir] [-format terminal|html|plain] word...")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	f, err := render.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := "error"
	if *verbose {
		level = "debug"
	}
	logger := logging.New(level, cfg.Logging.Format)

	lex, err := irish.New(cfg.Data.Dir,
		irish.WithLogger(logger),
		irish.WithExampleNouns(irish.ExampleNouns{
			Neutral:             cfg.Examples.Neutral,
			StrongPlural:        cfg.Examples.StrongPlural,
			PluralWeakConsonant: cfg.Examples.PluralWeakConsonant,
			Masculine:           cfg.Examples.Masculine,
			Feminine:            cfg.Examples.Feminine,
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", cfg.Data.Dir, err)
		os.Exit(1)
	}

	failed := false
	for i, word := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		if err := lookup(os.Stdout, lex, logger, word, f); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", word, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// lookup prints everything known about word. Nouns are tried first, then
// adjectives, then mutated forms of nouns.
func lookup(w io.Writer, lex *irish.Lexicon, logger *log.Logger, word string, f render.Format) error {
	if lex.Noun(word) != nil {
		return printNoun(w, lex, word, f)
	}

	if lex.Adjective(word) != nil {
		ex, err := lex.AdjectiveExamples(word)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, render.Adjective(ex, f))
		return nil
	}

	matches := lex.Lookup(word)
	if len(matches) == 0 {
		return irish.ErrNotFound
	}
	for i, m := range matches {
		if i > 0 {
			fmt.Fprintln(w)
		}
		logger.Debug().Str("form", word).Str("headword", m.Noun.Word).Str("mutation", string(m.Mutation)).Msg("resolved mutated form")
		fmt.Fprintf(w, "%s ← %s (%s)\n", word, m.Noun.Word, m.Mutation)
		if err := printNoun(w, lex, m.Noun.Word, f); err != nil {
			return err
		}
	}
	return nil
}

func printNoun(w io.Writer, lex *irish.Lexicon, word string, f render.Format) error {
	a, err := lex.Analyze(word)
	if err != nil {
		if errors.Is(err, irish.ErrMissingData) {
			return fmt.Errorf("incomplete record: %w", err)
		}
		return err
	}

	if d := render.Declension(a.Declension, f); d != "" {
		fmt.Fprintln(w, d)
	}
	if a.Prediction.Found() {
		fmt.Fprintf(w, "hint: %s (%s)\n", render.Inline(a.Prediction.Annotated, a.Gender, f), a.Prediction.Source)
	}

	var cells []string
	for _, d := range irish.Descriptors {
		if c := a.Articles.Cell(d); c != "" {
			cells = append(cells, render.Inline(c, a.Gender, f))
		}
	}
	if len(cells) > 0 {
		fmt.Fprintln(w, strings.Join(cells, ", "))
	}
	fmt.Fprintf(w, "%s, %s\n", render.Inline(a.My, a.Gender, f), render.Inline(a.Your, a.Gender, f))
	return nil
}
