package morphotrie

// SenseCandidate is one competing reading of an ambiguous word form.
type SenseCandidate struct {
	// Lemma is the dictionary headword of this reading.
	Lemma string `json:"lemma"`
	// PartOfSpeech is the reading's POS tag.
	PartOfSpeech string `json:"partOfSpeech"`
	// Tags holds the grammatical attributes of the reading.
	Tags map[string]string `json:"tags,omitempty"`
	// Sense is an optional human-readable label for the reading.
	Sense string `json:"sense,omitempty"`
	// Markers lists context words counted as evidence for this reading.
	Markers []string `json:"markers"`
}

// HomonymLexicon maps a normalized word form to its candidate readings.
// Candidate order matters: the first entry is the default reading and
// wins every tie.
type HomonymLexicon map[string][]SenseCandidate

// Resolver picks a reading for ambiguous words by scoring each
// candidate's markers against the tokens observed around the word.
type Resolver struct {
	lexicon  HomonymLexicon
	fallback func(word string) Record
}

// NewResolver builds a resolver over lexicon. Words absent from the
// lexicon are delegated to fallback; a nil fallback yields UnknownRecord.
func NewResolver(lexicon HomonymLexicon, fallback func(word string) Record) *Resolver {
	if lexicon == nil {
		lexicon = HomonymLexicon{}
	}
	if fallback == nil {
		fallback = func(word string) Record {
			w := Clean(word)
			if w == "" {
				return Record{}
			}
			return UnknownRecord(w)
		}
	}
	return &Resolver{lexicon: lexicon, fallback: fallback}
}

// Resolve chooses the best reading of word given the surrounding tokens.
// A candidate scores one point per context token found among its markers,
// repeated tokens counting each time. The strictly highest score wins;
// on a tie, including the no-evidence case of an empty context, the
// earliest candidate in lexicon order is kept.
func (r *Resolver) Resolve(word string, context []string) Record {
	w := Clean(word)
	candidates, ok := r.lexicon[w]
	if !ok || len(candidates) == 0 {
		return r.fallback(word)
	}

	best, bestScore := 0, -1
	for i, cand := range candidates {
		markers := make(map[string]struct{}, len(cand.Markers))
		for _, m := range cand.Markers {
			markers[Clean(m)] = struct{}{}
		}
		score := 0
		for _, tok := range context {
			key := Clean(tok)
			if key == "" {
				continue
			}
			if _, hit := markers[key]; hit {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return senseRecord(w, candidates[best])
}

// Known reports whether the resolver has candidate readings for word.
func (r *Resolver) Known(word string) bool {
	candidates, ok := r.lexicon[Clean(word)]
	return ok && len(candidates) > 0
}

// senseRecord materializes a chosen reading as a standalone record. Tags
// are copied so callers can mutate the result without corrupting the
// lexicon.
func senseRecord(word string, cand SenseCandidate) Record {
	rec := Record{
		KeyWord:  StringValue(word),
		KeyLemma: StringValue(cand.Lemma),
		KeyPOS:   StringValue(cand.PartOfSpeech),
		KeyTags:  MapValue(cand.Tags),
	}
	if cand.Sense != "" {
		rec[KeySense] = StringValue(cand.Sense)
	}
	return rec
}
