package morphotrie

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  Мама \n\t мыла   раму.  ")
	want := "Мама мыла раму."
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Привет, мир!", []string{"Привет", ",", "мир", "!"}},
		{"«Слово»", []string{"«", "Слово", "»"}},
		{"абв 123 где", []string{"абв", "123", "где"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenizePairs(t *testing.T) {
	got := TokenizePairs("Привет, мир!")
	want := []Token{
		{Word: "Привет", Punctuation: ","},
		{Word: "мир", Punctuation: "!"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizePairs = %v, want %v", got, want)
	}

	got = TokenizePairs("«Слово»")
	want = []Token{
		{Punctuation: "«"},
		{Word: "Слово", Punctuation: "»"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizePairs = %v, want %v", got, want)
	}
}

func TestWords(t *testing.T) {
	got := Words("Числа 123 и слова.")
	want := []string{"Числа", "и", "слова"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestContextWindow(t *testing.T) {
	tokens := []string{"мама", "мыла", "раму", "и", "пела"}

	prev, next := ContextWindow(tokens, 2, 3)
	if want := []string{"мама", "мыла"}; !reflect.DeepEqual(prev, want) {
		t.Errorf("prev = %v, want %v", prev, want)
	}
	if want := []string{"и", "пела"}; !reflect.DeepEqual(next, want) {
		t.Errorf("next = %v, want %v", next, want)
	}

	prev, next = ContextWindow(tokens, 0, 3)
	if len(prev) != 0 {
		t.Errorf("prev at start = %v, want empty", prev)
	}
	if want := []string{"мыла", "раму", "и"}; !reflect.DeepEqual(next, want) {
		t.Errorf("next at start = %v, want %v", next, want)
	}

	prev, next = ContextWindow(tokens, 4, 3)
	if len(next) != 0 {
		t.Errorf("next at end = %v, want empty", next)
	}
	if want := []string{"мыла", "раму", "и"}; !reflect.DeepEqual(prev, want) {
		t.Errorf("prev at end = %v, want %v", prev, want)
	}

	prev, next = ContextWindow(tokens, 2, 0)
	if len(prev) != 0 || len(next) != 0 {
		t.Errorf("zero window = %v / %v, want empty", prev, next)
	}
}

func TestSplitPunctuation(t *testing.T) {
	tests := []struct {
		in        string
		wantWord  string
		wantPunct string
	}{
		{"стекло.", "стекло", "."},
		{"во-первых", "во-первых", ""},
		{"(скобки)", "скобки", "()"},
		{"мир", "мир", ""},
	}
	for _, tt := range tests {
		word, punct := splitPunctuation(tt.in)
		if word != tt.wantWord || punct != tt.wantPunct {
			t.Errorf("splitPunctuation(%q) = (%q, %q), want (%q, %q)",
				tt.in, word, punct, tt.wantWord, tt.wantPunct)
		}
	}
}
