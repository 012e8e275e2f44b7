package morphotrie

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadLexicon reads the homonym lexicon at path. Lexicon trouble is
// never fatal: a missing or unparseable file is logged as a warning and
// an empty lexicon comes back, which simply disables contextual
// disambiguation.
func LoadLexicon(path string, log *slog.Logger) HomonymLexicon {
	if log == nil {
		log = slog.Default()
	}
	lex, err := readLexicon(path)
	if err != nil {
		log.Warn("homonym lexicon unavailable, continuing without it", "path", path, "err", err)
		return HomonymLexicon{}
	}
	return lex
}

// readLexicon does the actual load and keeps the error for callers that
// want to branch on ErrLexiconLoad.
func readLexicon(path string) (HomonymLexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconLoad, err)
	}
	var lex HomonymLexicon
	if err := json.Unmarshal(b, &lex); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrLexiconLoad, path, err)
	}
	return lex, nil
}

// DefaultLexicon returns the built-in homonym rules used when no lexicon
// file is configured. It currently knows the classic стекло ambiguity:
// the noun (glass) against the past form of стечь (to flow down).
func DefaultLexicon() HomonymLexicon {
	return HomonymLexicon{
		"стекло": {
			{
				Lemma:        "стекло",
				PartOfSpeech: POSNoun,
				Tags:         map[string]string{"gender": "neut", "number": "sing", "case": "nomn"},
				Sense:        "стекло (материал)",
				Markers:      []string{"разбилось", "окно"},
			},
			{
				Lemma:        "стечь",
				PartOfSpeech: POSVerb,
				Tags:         map[string]string{"gender": "neut", "number": "sing", "tense": "past"},
				Sense:        "стечь (течь вниз)",
				Markers:      []string{"медленно", "по", "вниз", "стене"},
			},
		},
	}
}
