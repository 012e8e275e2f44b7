package morphotrie

import (
	"math"
	"reflect"
	"testing"
)

func TestStatistics(t *testing.T) {
	stats := threeWordTree().Statistics()

	if stats.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", stats.WordCount)
	}
	if stats.NodeCount != 6 {
		t.Errorf("NodeCount = %d, want 6", stats.NodeCount)
	}
	if stats.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", stats.MaxDepth)
	}
	wantLevels := map[int]int{0: 1, 1: 1, 2: 2, 3: 2}
	if !reflect.DeepEqual(stats.LevelDistribution, wantLevels) {
		t.Errorf("LevelDistribution = %v, want %v", stats.LevelDistribution, wantLevels)
	}
	// Root, мо and ло have children: (1+2+2)/3.
	if want := 5.0 / 3.0; math.Abs(stats.AvgBranching-want) > 1e-9 {
		t.Errorf("AvgBranching = %f, want %f", stats.AvgBranching, want)
	}
	wantTop := []SyllableFrequency{
		{Syllable: "мо", Frequency: 3},
		{Syllable: "ло", Frequency: 2},
		{Syllable: "дой", Frequency: 1},
		{Syllable: "ко", Frequency: 1},
		{Syllable: "ре", Frequency: 1},
	}
	if !reflect.DeepEqual(stats.TopSyllables, wantTop) {
		t.Errorf("TopSyllables = %v, want %v", stats.TopSyllables, wantTop)
	}
}

func TestStatisticsEmptyTree(t *testing.T) {
	stats := NewPrefixTree().Statistics()

	if stats.WordCount != 0 || stats.NodeCount != 1 || stats.MaxDepth != 0 {
		t.Errorf("empty tree stats = %+v", stats)
	}
	if stats.AvgBranching != 0 {
		t.Errorf("AvgBranching = %f, want 0", stats.AvgBranching)
	}
	if len(stats.TopSyllables) != 0 {
		t.Errorf("TopSyllables = %v, want none", stats.TopSyllables)
	}
	if !reflect.DeepEqual(stats.LevelDistribution, map[int]int{0: 1}) {
		t.Errorf("LevelDistribution = %v, want root only", stats.LevelDistribution)
	}
}

func TestStatisticsDeterministic(t *testing.T) {
	tree := threeWordTree()
	first := tree.Statistics()
	for i := 0; i < 10; i++ {
		if got := tree.Statistics(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestSyllableStatsOf(t *testing.T) {
	stats := SyllableStatsOf([]string{"молоко", "стол", "я"})

	if stats.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", stats.TotalWords)
	}
	if want := 5.0 / 3.0; math.Abs(stats.AvgSyllables-want) > 1e-9 {
		t.Errorf("AvgSyllables = %f, want %f", stats.AvgSyllables, want)
	}
	wantDist := map[int]int{3: 1, 1: 2}
	if !reflect.DeepEqual(stats.Distribution, wantDist) {
		t.Errorf("Distribution = %v, want %v", stats.Distribution, wantDist)
	}
	wantTop := []SyllableFrequency{
		{Syllable: "мо", Frequency: 1},
		{Syllable: "ло", Frequency: 1},
		{Syllable: "ко", Frequency: 1},
		{Syllable: "стол", Frequency: 1},
		{Syllable: "я", Frequency: 1},
	}
	if !reflect.DeepEqual(stats.TopSyllables, wantTop) {
		t.Errorf("TopSyllables = %v, want %v", stats.TopSyllables, wantTop)
	}
}

func TestSyllableStatsOfEmpty(t *testing.T) {
	stats := SyllableStatsOf(nil)
	if stats.TotalWords != 0 || stats.AvgSyllables != 0 {
		t.Errorf("stats over no words = %+v", stats)
	}

	// Words with no Russian letters segment to one empty syllable, which
	// counts toward the distribution but never the frequency ranking.
	stats = SyllableStatsOf([]string{""})
	if got := stats.Distribution[1]; got != 1 {
		t.Errorf("Distribution[1] = %d, want 1", got)
	}
	if len(stats.TopSyllables) != 0 {
		t.Errorf("TopSyllables = %v, want none", stats.TopSyllables)
	}
}
