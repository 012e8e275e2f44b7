package morphotrie

import (
	"reflect"
	"testing"
)

func rec(word, lemma string) Record {
	return Record{
		KeyWord:  StringValue(word),
		KeyLemma: StringValue(lemma),
		KeyPOS:   StringValue(POSNoun),
		KeyTags:  MapValue(nil),
	}
}

// threeWordTree inserts мо-ло-ко, мо-ло-дой and мо-ре.
func threeWordTree() *PrefixTree {
	t := NewPrefixTree()
	t.Insert([]string{"мо", "ло", "ко"}, rec("молоко", "молоко"))
	t.Insert([]string{"мо", "ло", "дой"}, rec("молодой", "молодой"))
	t.Insert([]string{"мо", "ре"}, rec("море", "море"))
	return t
}

func TestInsertAndSearch(t *testing.T) {
	tree := threeWordTree()

	records, ok := tree.Search([]string{"мо", "ло", "ко"})
	if !ok {
		t.Fatal("Search(мо-ло-ко) reported absent")
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0].GetString(KeyLemma); got != "молоко" {
		t.Errorf("lemma = %q, want %q", got, "молоко")
	}

	if _, ok := tree.Search([]string{"сто"}); ok {
		t.Error("Search(сто) reported present")
	}
}

func TestSearchDistinguishesPrefixFromWord(t *testing.T) {
	tree := threeWordTree()
	// The path exists but no word ends there.
	if _, ok := tree.Search([]string{"мо", "ло"}); ok {
		t.Error("Search(мо-ло) reported a word at a pure prefix node")
	}
	if _, ok := tree.Search([]string{"мо"}); ok {
		t.Error("Search(мо) reported a word at a pure prefix node")
	}
}

func TestInsertDuplicatePath(t *testing.T) {
	tree := NewPrefixTree()
	tree.Insert([]string{"сте", "кло"}, rec("стекло", "стекло"))
	tree.Insert([]string{"сте", "кло"}, rec("стекло", "стечь"))

	records, ok := tree.Search([]string{"сте", "кло"})
	if !ok {
		t.Fatal("Search(сте-кло) reported absent")
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got := records[0].GetString(KeyLemma); got != "стекло" {
		t.Errorf("first lemma = %q, want insertion order kept", got)
	}
	if got := records[1].GetString(KeyLemma); got != "стечь" {
		t.Errorf("second lemma = %q, want insertion order kept", got)
	}
	if got := tree.WordCount(); got != 2 {
		t.Errorf("WordCount() = %d, want 2", got)
	}
}

func TestInsertEmptySequence(t *testing.T) {
	tree := NewPrefixTree()
	tree.Insert(nil, rec("", ""))

	records, ok := tree.Search(nil)
	if !ok || len(records) != 1 {
		t.Fatalf("Search(nil) = %d records, ok=%v; want 1 record", len(records), ok)
	}
	if got := tree.WordCount(); got != 1 {
		t.Errorf("WordCount() = %d, want 1", got)
	}
	// The root is never entered through an edge.
	if got := tree.Serialize().Root.OccurrenceCount; got != 0 {
		t.Errorf("root occurrence count = %d, want 0", got)
	}
}

func TestPrefixQuery(t *testing.T) {
	tree := threeWordTree()

	entries := tree.PrefixQuery([]string{"мо"})
	wantPaths := [][]string{
		{"мо", "ло", "дой"},
		{"мо", "ло", "ко"},
		{"мо", "ре"},
	}
	if len(entries) != len(wantPaths) {
		t.Fatalf("PrefixQuery(мо) returned %d entries, want %d", len(entries), len(wantPaths))
	}
	for i, want := range wantPaths {
		if !reflect.DeepEqual(entries[i].Syllables, want) {
			t.Errorf("entry %d path = %v, want %v", i, entries[i].Syllables, want)
		}
	}

	if got := len(tree.PrefixQuery([]string{"мо", "ло"})); got != 2 {
		t.Errorf("PrefixQuery(мо-ло) returned %d entries, want 2", got)
	}
	if got := tree.PrefixQuery([]string{"нет"}); len(got) != 0 {
		t.Errorf("PrefixQuery(нет) returned %d entries, want none", len(got))
	}
	if got := len(tree.AllWords()); got != 3 {
		t.Errorf("AllWords() returned %d entries, want 3", got)
	}
}

func TestOccurrenceCounts(t *testing.T) {
	data := threeWordTree().Serialize()

	mo := data.Root.Children["мо"]
	if mo == nil {
		t.Fatal("serialized tree has no мо child")
	}
	if mo.OccurrenceCount != 3 {
		t.Errorf("count(мо) = %d, want 3", mo.OccurrenceCount)
	}
	lo := mo.Children["ло"]
	if lo == nil || lo.OccurrenceCount != 2 {
		t.Fatalf("count(ло) = %+v, want 2", lo)
	}
	if ko := lo.Children["ко"]; ko == nil || ko.OccurrenceCount != 1 {
		t.Fatalf("count(ко) = %+v, want 1", ko)
	}
}

func TestMerge(t *testing.T) {
	a := NewPrefixTree()
	a.Insert([]string{"мо", "ре"}, rec("море", "море"))

	b := NewPrefixTree()
	b.Insert([]string{"мо", "ло", "ко"}, rec("молоко", "молоко"))
	b.Insert([]string{"мо", "ре"}, rec("море", "море"))

	a.Merge(b)

	if got := a.WordCount(); got != 3 {
		t.Errorf("merged WordCount() = %d, want 3", got)
	}
	records, ok := a.Search([]string{"мо", "ре"})
	if !ok || len(records) != 2 {
		t.Fatalf("Search(мо-ре) after merge = %d records, ok=%v; want 2", len(records), ok)
	}
	if _, ok := a.Search([]string{"мо", "ло", "ко"}); !ok {
		t.Error("Search(мо-ло-ко) missing after merge")
	}
	if got := a.Serialize().Root.Children["мо"].OccurrenceCount; got != 3 {
		t.Errorf("count(мо) after merge = %d, want 3", got)
	}

	// The source tree stays intact.
	if got := b.WordCount(); got != 2 {
		t.Errorf("source WordCount() = %d, want 2", got)
	}
	if _, ok := b.Search([]string{"мо", "ре"}); !ok {
		t.Error("source tree lost мо-ре after merge")
	}
}

func TestMergeIntoEmpty(t *testing.T) {
	a := NewPrefixTree()
	a.Merge(threeWordTree())
	if got := a.WordCount(); got != 3 {
		t.Errorf("WordCount() = %d, want 3", got)
	}
	if got := len(a.AllWords()); got != 3 {
		t.Errorf("AllWords() = %d entries, want 3", got)
	}
	a.Merge(nil)
	if got := a.WordCount(); got != 3 {
		t.Errorf("WordCount() after nil merge = %d, want 3", got)
	}
}

func BenchmarkInsert(b *testing.B) {
	words := [][]string{
		{"мо", "ло", "ко"},
		{"мо", "ло", "дой"},
		{"мо", "ре"},
		{"под", "став", "ка"},
	}
	record := rec("слово", "слово")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree := NewPrefixTree()
		for _, w := range words {
			tree.Insert(w, record)
		}
	}
}
