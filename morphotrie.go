// Package morphotrie analyzes Russian text morphologically and indexes
// the result in a syllable-keyed prefix tree.
//
// The pipeline tokenizes a document, annotates every word through a
// dictionary lookup with context-based homonym resolution, splits the
// word into syllables and inserts the syllable sequence with its
// annotation into a PrefixTree. The tree supports exact search, prefix
// queries over syllable sequences, structural statistics, merging, and
// a JSON wire form for persistence.
package morphotrie

import (
	"errors"
	"log/slog"
)

// Sentinel errors callers are expected to branch on with errors.Is.
var (
	// ErrUnsupportedFormat reports an input file extension outside the
	// recognized set.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrMalformedTreeData reports serialized tree data that is not
	// valid JSON or is missing required fields.
	ErrMalformedTreeData = errors.New("malformed tree data")

	// ErrLexiconLoad reports an unreadable or unparseable homonym
	// lexicon file.
	ErrLexiconLoad = errors.New("load homonym lexicon")
)

// defaultContextWindow is the number of tokens inspected on each side of
// a word during homonym resolution.
const defaultContextWindow = 3

// Analyzer ties the pipeline together: tokenization, dictionary lookup,
// homonym resolution, syllabification and tree construction.
type Analyzer struct {
	dict     *Dictionary
	resolver *Resolver
	log      *slog.Logger
	window   int
	workers  int
	maxWords int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger routes the analyzer's diagnostics to log.
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// WithContextWindow sets how many tokens on each side of a word feed
// homonym resolution. Values below zero are ignored.
func WithContextWindow(n int) Option {
	return func(a *Analyzer) {
		if n >= 0 {
			a.window = n
		}
	}
}

// WithWorkers sets the number of shards used to build the tree in
// parallel. Values below two keep the build sequential.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithMaxWords caps how many words of a document are analyzed; zero or
// negative means no cap.
func WithMaxWords(n int) Option {
	return func(a *Analyzer) {
		a.maxWords = n
	}
}

// New builds an Analyzer from data files. An empty dictPath selects the
// built-in dictionary; a broken dictionary file is an error. An empty
// lexiconPath selects the built-in homonym rules, while a configured but
// broken lexicon only logs a warning and disables disambiguation.
func New(dictPath, lexiconPath string, opts ...Option) (*Analyzer, error) {
	a := newAnalyzer(opts...)

	dict := DefaultDictionary()
	if dictPath != "" {
		loaded, err := LoadDictionary(dictPath)
		if err != nil {
			return nil, err
		}
		dict = loaded
	}

	lexicon := DefaultLexicon()
	if lexiconPath != "" {
		lexicon = LoadLexicon(lexiconPath, a.log)
	}

	a.dict = dict
	a.resolver = NewResolver(lexicon, dict.Analyze)
	a.log.Debug("analyzer ready",
		"dictionary_entries", dict.Len(),
		"homonym_forms", len(lexicon),
	)
	return a, nil
}

// NewFromParts wires an Analyzer from already-built components.
func NewFromParts(dict *Dictionary, lexicon HomonymLexicon, opts ...Option) *Analyzer {
	a := newAnalyzer(opts...)
	if dict == nil {
		dict = NewDictionary(nil)
	}
	a.dict = dict
	a.resolver = NewResolver(lexicon, dict.Analyze)
	return a
}

func newAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:    slog.Default(),
		window: defaultContextWindow,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Dictionary exposes the analyzer's word dictionary.
func (a *Analyzer) Dictionary() *Dictionary {
	return a.dict
}

// Resolve analyzes a single word against an explicit context window.
func (a *Analyzer) Resolve(word string, context []string) Record {
	return a.resolver.Resolve(word, context)
}
