package morphotrie

import "sort"

// SyllableFrequency pairs a syllable with how often it occurs.
type SyllableFrequency struct {
	Syllable  string `json:"syllable"`
	Frequency int    `json:"frequency"`
}

// Stats summarizes the shape of a PrefixTree.
type Stats struct {
	// WordCount is the number of insertions, duplicates included.
	WordCount int `json:"wordCount"`
	// NodeCount counts every node including the root.
	NodeCount int `json:"nodeCount"`
	// MaxDepth is the deepest node's distance from the root (root = 0).
	MaxDepth int `json:"maxDepth"`
	// LevelDistribution maps depth to the number of nodes at that depth.
	LevelDistribution map[int]int `json:"levelDistribution"`
	// AvgBranching is the mean child count over nodes that have children.
	AvgBranching float64 `json:"avgBranching"`
	// TopSyllables lists the most frequent syllables, weighted by node
	// occurrence counts and capped at twenty entries.
	TopSyllables []SyllableFrequency `json:"topSyllables"`
}

const topSyllableLimit = 20

// Statistics walks the whole tree once and reports its shape. The walk
// visits children in sorted label order, so ties in the syllable ranking
// resolve the same way on every run.
func (t *PrefixTree) Statistics() Stats {
	s := Stats{
		WordCount:         t.wordCount,
		LevelDistribution: make(map[int]int),
	}
	freq := make(map[string]int)
	var order []string
	var branching, childSum int

	var walk func(node *TrieNode, depth int)
	walk = func(node *TrieNode, depth int) {
		s.NodeCount++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		s.LevelDistribution[depth]++
		if node.Syllable != "" {
			if _, seen := freq[node.Syllable]; !seen {
				order = append(order, node.Syllable)
			}
			freq[node.Syllable] += node.Count
		}
		if len(node.Children) > 0 {
			branching++
			childSum += len(node.Children)
		}
		for _, syl := range sortedChildLabels(node) {
			walk(node.Children[syl], depth+1)
		}
	}
	walk(t.root, 0)

	if branching > 0 {
		s.AvgBranching = float64(childSum) / float64(branching)
	}
	s.TopSyllables = rankSyllables(order, freq, topSyllableLimit)
	return s
}

// rankSyllables orders syllables by descending frequency, keeping the
// first-seen order among equals, and truncates to limit entries.
func rankSyllables(order []string, freq map[string]int, limit int) []SyllableFrequency {
	ranked := make([]SyllableFrequency, 0, len(order))
	for _, syl := range order {
		ranked = append(ranked, SyllableFrequency{Syllable: syl, Frequency: freq[syl]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SyllableStats aggregates segmentation results over a word list.
type SyllableStats struct {
	// TotalWords is the number of words fed in.
	TotalWords int `json:"totalWords"`
	// AvgSyllables is the mean syllable count per word, 0 for no words.
	AvgSyllables float64 `json:"avgSyllables"`
	// Distribution maps a syllable count to how many words have it.
	Distribution map[int]int `json:"distribution"`
	// TopSyllables lists the most common syllables across all words,
	// capped at twenty entries. Empty segments are not counted.
	TopSyllables []SyllableFrequency `json:"topSyllables"`
}

// SyllableStatsOf segments every word and aggregates the results.
func SyllableStatsOf(words []string) SyllableStats {
	stats := SyllableStats{
		TotalWords:   len(words),
		Distribution: make(map[int]int),
	}
	freq := make(map[string]int)
	var order []string
	total := 0
	for _, w := range words {
		syllables := Segment(w)
		total += len(syllables)
		stats.Distribution[len(syllables)]++
		for _, syl := range syllables {
			if syl == "" {
				continue
			}
			if _, seen := freq[syl]; !seen {
				order = append(order, syl)
			}
			freq[syl]++
		}
	}
	if len(words) > 0 {
		stats.AvgSyllables = float64(total) / float64(len(words))
	}
	stats.TopSyllables = rankSyllables(order, freq, topSyllableLimit)
	return stats
}
