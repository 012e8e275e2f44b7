package morphotrie

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary is the non-contextual word analyzer: a plain lookup table
// from normalized word forms to annotation records.
type Dictionary struct {
	entries map[string]Record
}

// NewDictionary wraps an in-memory entry map.
func NewDictionary(entries map[string]Record) *Dictionary {
	if entries == nil {
		entries = map[string]Record{}
	}
	return &Dictionary{entries: entries}
}

// LoadDictionary reads a JSON object mapping word forms to records.
func LoadDictionary(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	var entries map[string]Record
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return NewDictionary(entries), nil
}

// Len reports the number of dictionary entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Analyze looks up the normalized form of word. A known form yields a
// copy of its record; an unknown one yields UnknownRecord, never a
// guess. A word that normalizes to nothing yields an empty record.
func (d *Dictionary) Analyze(word string) Record {
	w := Clean(word)
	if w == "" {
		return Record{}
	}
	if rec, ok := d.entries[w]; ok {
		return rec.Clone()
	}
	return UnknownRecord(w)
}

// AnalyzeToken analyzes a raw token: punctuation characters are split
// off first and recorded under the punctuation key of the result.
func (d *Dictionary) AnalyzeToken(token string) Record {
	word, punct := splitPunctuation(token)
	rec := d.Analyze(word)
	if punct != "" {
		rec[KeyPunctuation] = StringValue(punct)
	}
	return rec
}

func dictEntry(word, lemma, pos string, tags map[string]string) Record {
	return Record{
		KeyWord:  StringValue(word),
		KeyLemma: StringValue(lemma),
		KeyPOS:   StringValue(pos),
		KeyTags:  MapValue(tags),
	}
}

// DefaultDictionary returns the small built-in word list used when no
// dictionary file is configured. It covers a handful of frequent forms,
// enough to exercise the pipeline on demo texts.
func DefaultDictionary() *Dictionary {
	return NewDictionary(map[string]Record{
		"книга":    dictEntry("книга", "книга", POSNoun, map[string]string{"gender": "femn", "number": "sing", "case": "nomn"}),
		"книги":    dictEntry("книги", "книга", POSNoun, map[string]string{"gender": "femn", "number": "plur", "case": "gent"}),
		"книге":    dictEntry("книге", "книга", POSNoun, map[string]string{"gender": "femn", "number": "sing", "case": "datv"}),
		"читает":   dictEntry("читает", "читать", POSVerb, map[string]string{"tense": "pres", "person": "3per", "number": "sing"}),
		"читают":   dictEntry("читают", "читать", POSVerb, map[string]string{"tense": "pres", "person": "3per", "number": "plur"}),
		"читал":    dictEntry("читал", "читать", POSVerb, map[string]string{"tense": "past", "gender": "masc", "number": "sing"}),
		"читала":   dictEntry("читала", "читать", POSVerb, map[string]string{"tense": "past", "gender": "femn", "number": "sing"}),
		"читали":   dictEntry("читали", "читать", POSVerb, map[string]string{"tense": "past", "number": "plur"}),
		"читать":   dictEntry("читать", "читать", POSInfinitive, map[string]string{"aspect": "impf"}),
		"стекло":   dictEntry("стекло", "стекло", POSNoun, map[string]string{"gender": "neut", "number": "sing", "case": "nomn"}),
		"красивый": dictEntry("красивый", "красивый", POSAdjective, map[string]string{"gender": "masc", "number": "sing", "case": "nomn"}),
		"красивая": dictEntry("красивая", "красивый", POSAdjective, map[string]string{"gender": "femn", "number": "sing", "case": "nomn"}),
		"красивое": dictEntry("красивое", "красивый", POSAdjective, map[string]string{"gender": "neut", "number": "sing", "case": "nomn"}),
		"красивые": dictEntry("красивые", "красивый", POSAdjective, map[string]string{"number": "plur", "case": "nomn"}),
		"быстро":   dictEntry("быстро", "быстро", POSAdverb, nil),
		"я":        dictEntry("я", "я", POSPronoun, map[string]string{"person": "1per", "number": "sing", "case": "nomn"}),
		"мы":       dictEntry("мы", "мы", POSPronoun, map[string]string{"person": "1per", "number": "plur", "case": "nomn"}),
		"и":        dictEntry("и", "и", POSConj, nil),
		"в":        dictEntry("в", "в", POSPrep, nil),
	})
}
