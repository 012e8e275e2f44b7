package morphotrie

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reToken matches one word, one number, or one punctuation mark.
var reToken = regexp.MustCompile(`[^\W\d_]+|\d+|[.,!?;:«»()\[\]{}]`)

// Token is a tokenizer output unit: a word together with the punctuation
// mark that directly follows it, if any. A mark with no word to attach
// to (say, an opening quote) yields a Token with an empty Word.
type Token struct {
	Word        string
	Punctuation string
}

// NormalizeText collapses whitespace runs into single spaces and trims
// the ends.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// TokenizePairs splits text into word/punctuation pairs in document
// order. A punctuation mark attaches to the preceding token when that
// token is a word still missing its mark; otherwise it stands alone.
func TokenizePairs(text string) []Token {
	var tokens []Token
	for _, m := range reToken.FindAllString(text, -1) {
		if isPunctToken(m) {
			if n := len(tokens); n > 0 && tokens[n-1].Word != "" && tokens[n-1].Punctuation == "" {
				tokens[n-1].Punctuation = m
			} else {
				tokens = append(tokens, Token{Punctuation: m})
			}
		} else {
			tokens = append(tokens, Token{Word: m})
		}
	}
	return tokens
}

// Tokenize returns the flat token stream: words, numbers and standalone
// punctuation marks, in document order.
func Tokenize(text string) []string {
	return reToken.FindAllString(text, -1)
}

// Words returns only the word tokens of text, dropping numbers and
// punctuation.
func Words(text string) []string {
	var out []string
	for _, m := range Tokenize(text) {
		if isWordToken(m) {
			out = append(out, m)
		}
	}
	return out
}

// isWordToken reports whether tok starts with a letter.
func isWordToken(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLetter(r)
}

func isPunctToken(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ContextWindow slices out up to size tokens on each side of position i.
// The returned slices view the input; they are empty at the edges of the
// stream rather than padded.
func ContextWindow(tokens []string, i, size int) (prev, next []string) {
	lo := i - size
	if lo < 0 {
		lo = 0
	}
	hi := i + 1 + size
	if hi > len(tokens) {
		hi = len(tokens)
	}
	return tokens[lo:i], tokens[i+1 : hi]
}

// splitPunctuation separates a raw token into its word part and the
// punctuation characters it carries. Hyphens and underscores stay with
// the word.
func splitPunctuation(token string) (word, punct string) {
	var w, p strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' || r == '-' {
			w.WriteRune(r)
		} else {
			p.WriteRune(r)
		}
	}
	return w.String(), p.String()
}
