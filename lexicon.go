// Package irish computes surface forms of Irish nouns and adjectives:
// initial mutations (eclipsis, lenition), definite-article agreement,
// possessives with mo/do, gender hints from a noun's ending, and
// declension flags for a renderer.
package irish

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// Lexicon holds the loaded nouns and adjectives. It is read-only after New
// and safe for concurrent use.
type Lexicon struct {
	// nouns maps NormalizeKey(headword) → *Noun.
	nouns map[string]*Noun

	// adjectives maps NormalizeKey(headword) → *Adjective.
	adjectives map[string]*Adjective

	// examples are the nouns shown before adjective forms.
	examples ExampleNouns

	// workers bounds AnalyzeAll concurrency.
	workers int

	logger *log.Logger
}

// Option configures a Lexicon.
type Option func(*Lexicon)

// WithLogger sets the logger for load warnings and analysis diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Lexicon) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithExampleNouns replaces the default adjective example nouns.
func WithExampleNouns(ex ExampleNouns) Option {
	return func(l *Lexicon) { l.examples = ex }
}

// WithWorkers bounds the number of concurrent analyses in AnalyzeAll.
func WithWorkers(n int) Option {
	return func(l *Lexicon) {
		if n > 0 {
			l.workers = n
		}
	}
}

// New loads nouns.txt and adjectives.txt from dataDir and returns a
// ready-to-use Lexicon.
func New(dataDir string, opts ...Option) (*Lexicon, error) {
	l := &Lexicon{
		nouns:      make(map[string]*Noun),
		adjectives: make(map[string]*Adjective),
		examples:   DefaultExampleNouns(),
		workers:    4,
		logger:     &log.Logger{Writer: &log.IOWriter{Writer: io.Discard}},
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.loadNouns(dataDir); err != nil {
		return nil, err
	}
	if err := l.loadAdjectives(dataDir); err != nil {
		return nil, err
	}
	l.logger.Info().Int("nouns", len(l.nouns)).Int("adjectives", len(l.adjectives)).Str("dir", dataDir).Msg("lexicon loaded")
	return l, nil
}

// Noun looks up a noun by headword.
func (l *Lexicon) Noun(word string) *Noun {
	return l.nouns[NormalizeKey(word)]
}

// Adjective looks up an adjective by headword.
func (l *Lexicon) Adjective(word string) *Adjective {
	return l.adjectives[NormalizeKey(word)]
}

// Len returns the number of nouns and adjectives loaded.
func (l *Lexicon) Len() (nouns, adjectives int) {
	return len(l.nouns), len(l.adjectives)
}

// Words returns all noun headwords in sorted order.
func (l *Lexicon) Words() []string {
	out := make([]string, 0, len(l.nouns))
	for _, n := range l.nouns {
		out = append(out, n.Word)
	}
	sort.Strings(out)
	return out
}

// Analyze returns the annotated analysis of a lexicon noun. An unknown
// word fails with ErrNotFound. A gender hint that cannot be determined is
// logged and leaves the nominative singular unannotated.
func (l *Lexicon) Analyze(word string) (*NounAnalysis, error) {
	n := l.Noun(word)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return l.analyze(n)
}

func (l *Lexicon) analyze(n *Noun) (*NounAnalysis, error) {
	rec := n.Record
	singular := rec.NominativeSingular

	pred, err := PredictGender(singular, rec.Gender)
	if err != nil {
		return nil, err
	}
	if err := pred.Err(); err != nil {
		l.logger.Warn().Str("word", singular).Err(err).Msg("no gender hint")
	}

	annotated := rec
	annotated.NominativeSingular = pred.Annotated
	decl, err := FormatDeclension(n.Word, annotated, "")
	if err != nil {
		return nil, err
	}
	class, err := ClassifyDeclension(n.Word, rec, "")
	if err != nil {
		return nil, err
	}
	articles, err := ArticleForms(n.Word, rec, "", Annotated)
	if err != nil {
		return nil, err
	}
	my, err := PossessiveMo(singular, Annotated)
	if err != nil {
		return nil, err
	}
	your, err := PossessiveDo(singular, Annotated)
	if err != nil {
		return nil, err
	}

	return &NounAnalysis{
		Word:       n.Word,
		Gender:     rec.Gender,
		Prediction: pred,
		Declension: decl,
		Class:      class,
		Articles:   articles,
		My:         my,
		Your:       your,
	}, nil
}

// AnalysisResult is one entry of a batch analysis.
type AnalysisResult struct {
	Word     string
	Analysis *NounAnalysis
	Err      error
}

// AnalyzeAll analyzes words concurrently, at most WithWorkers at a time.
// Per-word failures are reported in the results; the returned error is
// only set when ctx is done before every word was analyzed.
func (l *Lexicon) AnalyzeAll(ctx context.Context, words []string) ([]AnalysisResult, error) {
	results := make([]AnalysisResult, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := l.Analyze(word)
			results[i] = AnalysisResult{Word: word, Analysis: a, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// AdjectiveExamples returns example phrases for a lexicon adjective. A
// missing strong plural is logged and omitted.
func (l *Lexicon) AdjectiveExamples(word string) (AdjectiveExamples, error) {
	a := l.Adjective(word)
	if a == nil {
		return AdjectiveExamples{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	ex := FormatAdjective(a.Word, a.Variants, l.examples)
	for _, m := range ex.Missing {
		l.logger.Warn().Str("adjective", a.Word).Str("variant", m).Msg("missing adjective variant")
	}
	return ex, nil
}
