package morphotrie

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Молоко!", "молоко"},
		{"Ёж", "ёж"},
		{"при-мер", "пример"},
		{"abc123", ""},
		{"стекло, ", "стекло"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"молоко", []string{"мо", "ло", "ко"}},
		{"стол", []string{"стол"}},
		{"я", []string{"я"}},
		{"", []string{""}},
		{"пст", []string{"пст"}},
		{"учитель", []string{"у", "чи", "тель"}},
		{"наука", []string{"на", "у", "ка"}},
		{"окно", []string{"ок", "но"}},
		{"игра", []string{"и", "гра"}},
		{"мороз", []string{"мор", "оз"}},
		{"поэт", []string{"по", "эт"}},
		{"спортсмен", []string{"спор", "тсмен"}},
		{"подставка", []string{"под", "став", "ка"}},
		{"ощрение", []string{"о", "щре", "ни", "е"}},
		{"Молоко!", []string{"мо", "ло", "ко"}},
		{"hello", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Segment(tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestSegmentConcatenation(t *testing.T) {
	words := []string{
		"молоко", "книга", "яблоко", "дерево", "встреча",
		"окно", "игра", "мороз", "поэт", "спортсмен", "подставка",
		"стекло", "читает", "быстро", "мы",
	}
	for _, w := range words {
		if got := strings.Join(Segment(w), ""); got != Clean(w) {
			t.Errorf("Segment(%q) concatenates to %q, want %q", w, got, Clean(w))
		}
	}
}

func TestSegmentSimple(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"молоко", []string{"мо", "ло", "ко"}},
		{"стол", []string{"стол"}},
		{"игра", []string{"и", "гра"}},
		{"мороз", []string{"мо", "роз"}},
		{"я", []string{"я"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := SegmentSimple(tt.word); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentSimple(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"молоко", 3},
		{"стол", 1},
		{"", 1},
		{"подставка", 3},
	}
	for _, tt := range tests {
		if got := SyllableCount(tt.word); got != tt.want {
			t.Errorf("SyllableCount(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func BenchmarkSegment(b *testing.B) {
	words := []string{"молоко", "спортсмен", "подставка", "учительница", "я"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Segment(words[i%len(words)])
	}
}
