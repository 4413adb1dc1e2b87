package irish

import "errors"

var (
	// ErrInvalidInput reports an empty word, or a gender code without an
	// nf/nm prefix where the requested form depends on gender.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingData reports a record field needed by the requested render.
	ErrMissingData = errors.New("missing data")

	// ErrAmbiguousClassification is never returned by the core; it tags the
	// gender predictor's "no determining vowel" outcome for diagnostics.
	ErrAmbiguousClassification = errors.New("cannot determine broad/slender")

	// ErrNotFound reports a word absent from the lexicon.
	ErrNotFound = errors.New("word not found")
)
