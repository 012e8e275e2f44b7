package morphotrie

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// AnalysisDump is the JSON document written for a completed run: the
// per-word annotations, the corpus syllable statistics and the tree in
// its wire form.
type AnalysisDump struct {
	AnalyzedText  []WordAnalysis `json:"analyzedText"`
	SyllableStats SyllableStats  `json:"syllableStats"`
	Trie          *TreeData      `json:"trie"`
}

// Dump converts the analysis into its serializable form.
func (ta *TextAnalysis) Dump() *AnalysisDump {
	return &AnalysisDump{
		AnalyzedText:  ta.Words,
		SyllableStats: ta.SyllableStats,
		Trie:          ta.Tree.Serialize(),
	}
}

// WriteJSON writes the indented JSON dump to w.
func (ta *TextAnalysis) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(ta.Dump())
}

// posNames maps OpenCorpora POS tags to their Russian display names.
var posNames = map[string]string{
	"NOUN": "Существительное",
	"ADJF": "Прилагательное (полное)",
	"ADJS": "Прилагательное (краткое)",
	"VERB": "Глагол",
	"INFN": "Глагол (инфинитив)",
	"PRTF": "Причастие (полное)",
	"PRTS": "Причастие (краткое)",
	"GRND": "Деепричастие",
	"NUMR": "Числительное",
	"ADVB": "Наречие",
	"NPRO": "Местоимение",
	"PREP": "Предлог",
	"CONJ": "Союз",
	"PRCL": "Частица",
	"INTJ": "Междометие",
}

// posName returns the display name of a POS tag, or the tag itself when
// it has no translation.
func posName(tag string) string {
	if name, ok := posNames[tag]; ok {
		return name
	}
	return tag
}

// Report renders a human-readable markdown summary of the analysis.
func (ta *TextAnalysis) Report() string {
	stats := ta.Tree.Statistics()

	posCounts := make(map[string]int)
	for _, wa := range ta.Words {
		if pos := wa.Record.GetString(KeyPOS); pos != "" {
			posCounts[pos]++
		}
	}

	var b strings.Builder
	b.WriteString("# Отчет о морфологическом анализе текста\n\n")

	b.WriteString("## 1. Общая статистика\n\n")
	fmt.Fprintf(&b, "- Всего слов: %d\n", len(ta.Words))
	fmt.Fprintf(&b, "- Уникальных слов в дереве: %d\n", stats.WordCount)
	fmt.Fprintf(&b, "- Средняя длина слова в слогах: %.2f\n", ta.SyllableStats.AvgSyllables)
	fmt.Fprintf(&b, "- Всего узлов в дереве: %d\n", stats.NodeCount)
	fmt.Fprintf(&b, "- Максимальная глубина дерева: %d\n", stats.MaxDepth)
	fmt.Fprintf(&b, "- Средняя разветвленность: %.2f\n", stats.AvgBranching)

	b.WriteString("\n## 2. Распределение частей речи\n\n")
	for _, pc := range sortedPOSCounts(posCounts) {
		share := float64(pc.count) / float64(len(ta.Words)) * 100
		fmt.Fprintf(&b, "- %s: %d слов (%.1f%%)\n", posName(pc.tag), pc.count, share)
	}

	b.WriteString("\n## 3. Распределение слов по количеству слогов\n\n")
	counts := make([]int, 0, len(ta.SyllableStats.Distribution))
	for n := range ta.SyllableStats.Distribution {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(&b, "- %d слогов: %d слов\n", n, ta.SyllableStats.Distribution[n])
	}

	b.WriteString("\n## 4. Наиболее частые слоги\n\n")
	top := ta.SyllableStats.TopSyllables
	if len(top) > 10 {
		top = top[:10]
	}
	for i, sf := range top {
		fmt.Fprintf(&b, "%d. «%s»: %d раз\n", i+1, sf.Syllable, sf.Frequency)
	}

	return b.String()
}

type posCount struct {
	tag   string
	count int
}

// sortedPOSCounts orders tags by descending count, then by tag name so
// the report is stable.
func sortedPOSCounts(counts map[string]int) []posCount {
	out := make([]posCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, posCount{tag: tag, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].tag < out[j].tag
	})
	return out
}
