package morphotrie

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Part-of-speech tags follow the OpenCorpora convention used by Russian
// morphological dictionaries.
const (
	POSNoun       = "NOUN"
	POSVerb       = "VERB"
	POSInfinitive = "INFN"
	POSAdjective  = "ADJF"
	POSAdverb     = "ADVB"
	POSPronoun    = "NPRO"
	POSPrep       = "PREP"
	POSConj       = "CONJ"
	POSUnknown    = "UNKN"
)

// Keys commonly present in annotation records.
const (
	KeyWord        = "word"
	KeyLemma       = "lemma"
	KeyPOS         = "pos"
	KeyTags        = "tags"
	KeySense       = "sense"
	KeyPunctuation = "punctuation"
)

// ValueKind selects which payload field of a Value is meaningful.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindMap
)

// Value is one slot of an annotation record. A slot holds a string, an
// integer or a flat string-to-string map, selected by Kind; the other
// payload fields are zero.
type Value struct {
	Kind ValueKind
	Str  string
	Num  int
	Map  map[string]string
}

// StringValue wraps s as a record value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IntValue wraps n as a record value.
func IntValue(n int) Value {
	return Value{Kind: KindInt, Num: n}
}

// MapValue wraps a copy of m as a record value. A nil m yields an empty
// map so callers can range over it without checks.
func MapValue(m map[string]string) Value {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{Kind: KindMap, Map: cp}
}

// MarshalJSON writes the payload selected by Kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindInt:
		return json.Marshal(v.Num)
	case KindMap:
		if v.Map == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Map)
	}
	return nil, fmt.Errorf("record value: unknown kind %d", v.Kind)
}

// UnmarshalJSON accepts a JSON string, integer or string map. Any other
// shape is rejected so records stay within the three supported kinds.
func (v *Value) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return fmt.Errorf("record value: empty input")
	}
	switch s[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = StringValue(str)
		return nil
	case '{':
		var m map[string]string
		if err := json.Unmarshal(b, &m); err != nil {
			return fmt.Errorf("record value: %w", err)
		}
		*v = Value{Kind: KindMap, Map: m}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("record value: unsupported payload %s", s)
	}
	*v = IntValue(n)
	return nil
}

// Record is the per-word annotation payload stored at terminal trie
// nodes: lemma, part of speech, grammatical tags and, for resolved
// homonyms, the chosen sense.
type Record map[string]Value

// GetString returns the string payload under key, or "" when the key is
// absent or holds a different kind.
func (r Record) GetString(key string) string {
	v, ok := r[key]
	if !ok || v.Kind != KindString {
		return ""
	}
	return v.Str
}

// Tags returns a copy of the grammatical tag map, empty when the record
// has none.
func (r Record) Tags() map[string]string {
	v, ok := r[KeyTags]
	if !ok || v.Kind != KindMap {
		return map[string]string{}
	}
	cp := make(map[string]string, len(v.Map))
	for k, val := range v.Map {
		cp[k] = val
	}
	return cp
}

// Clone returns a deep copy: mutating the copy's maps never touches the
// original.
func (r Record) Clone() Record {
	cp := make(Record, len(r))
	for k, v := range r {
		if v.Kind == KindMap {
			v = MapValue(v.Map)
		}
		cp[k] = v
	}
	return cp
}

// FormatTags renders a tag map as "k=v" pairs in key order, the form
// used by reports and spreadsheet exports.
func FormatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+tags[k])
	}
	return strings.Join(parts, ", ")
}

// UnknownRecord is the explicit annotation for a word the dictionary
// does not know: the word doubles as its own lemma and the part of
// speech is POSUnknown.
func UnknownRecord(word string) Record {
	return Record{
		KeyWord:  StringValue(word),
		KeyLemma: StringValue(word),
		KeyPOS:   StringValue(POSUnknown),
		KeyTags:  MapValue(nil),
	}
}
