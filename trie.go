package morphotrie

import "sort"

// TrieNode is one node of a PrefixTree. The zero syllable marks the root.
type TrieNode struct {
	// Syllable is the label of the edge leading into this node.
	Syllable string
	// Children maps the next syllable to the owned child node.
	Children map[string]*TrieNode
	// Terminal is set when at least one inserted word ends here.
	Terminal bool
	// Records accumulates one annotation per insertion ending here, in
	// insertion order.
	Records []Record
	// Count is incremented every time an insertion walks into this node.
	// The root is never entered through an edge, so its count stays 0.
	Count int
}

func newTrieNode(syllable string) *TrieNode {
	return &TrieNode{Syllable: syllable, Children: make(map[string]*TrieNode)}
}

// PrefixTree indexes words by their syllable sequence. Each inserted
// word contributes one record at the node its last syllable leads to;
// inserting the same sequence twice keeps both records.
//
// A tree is safe for concurrent readers once fully built. Interleaving
// Insert or Merge with reads needs external locking.
type PrefixTree struct {
	root      *TrieNode
	wordCount int
}

// NewPrefixTree returns an empty tree.
func NewPrefixTree() *PrefixTree {
	return &PrefixTree{root: newTrieNode("")}
}

// WordCount reports how many insertions the tree has absorbed,
// duplicates included.
func (t *PrefixTree) WordCount() int {
	return t.wordCount
}

// Insert stores record under the given syllable sequence, creating nodes
// as needed. An empty sequence is legal and lands the record on the root.
func (t *PrefixTree) Insert(syllables []string, record Record) {
	node := t.root
	for _, syl := range syllables {
		child, ok := node.Children[syl]
		if !ok {
			child = newTrieNode(syl)
			node.Children[syl] = child
		}
		node = child
		node.Count++
	}
	node.Terminal = true
	node.Records = append(node.Records, record)
	t.wordCount++
}

// Search returns the records stored under exactly the given sequence.
// The boolean distinguishes "never inserted" from a genuine hit: a path
// that exists only as a prefix of longer words reports false.
func (t *PrefixTree) Search(syllables []string) ([]Record, bool) {
	node := t.root
	for _, syl := range syllables {
		child, ok := node.Children[syl]
		if !ok {
			return nil, false
		}
		node = child
	}
	if !node.Terminal {
		return nil, false
	}
	return node.Records, true
}

// WordEntry pairs a complete syllable path with the records stored at
// its terminal node.
type WordEntry struct {
	Syllables []string `json:"syllables"`
	Records   []Record `json:"records"`
}

// PrefixQuery collects every stored word whose syllable sequence starts
// with prefix, in depth-first order with children visited by sorted
// label. A prefix not present in the tree yields no entries.
func (t *PrefixTree) PrefixQuery(prefix []string) []WordEntry {
	node := t.root
	for _, syl := range prefix {
		child, ok := node.Children[syl]
		if !ok {
			return nil
		}
		node = child
	}
	var out []WordEntry
	path := append([]string(nil), prefix...)
	collectWords(node, path, &out)
	return out
}

// AllWords lists every stored word; equivalent to PrefixQuery(nil).
func (t *PrefixTree) AllWords() []WordEntry {
	return t.PrefixQuery(nil)
}

func collectWords(node *TrieNode, path []string, out *[]WordEntry) {
	if node.Terminal {
		entry := WordEntry{
			Syllables: append([]string(nil), path...),
			Records:   node.Records,
		}
		*out = append(*out, entry)
	}
	for _, syl := range sortedChildLabels(node) {
		path = append(path, syl)
		collectWords(node.Children[syl], path, out)
		path = path[:len(path)-1]
	}
}

func sortedChildLabels(node *TrieNode) []string {
	labels := make([]string, 0, len(node.Children))
	for syl := range node.Children {
		labels = append(labels, syl)
	}
	sort.Strings(labels)
	return labels
}

// Merge folds other into t: node sets are united, occurrence counts
// summed, and record lists concatenated with t's entries first. other
// is read but never modified, and the trees share no nodes afterwards.
func (t *PrefixTree) Merge(other *PrefixTree) {
	if other == nil {
		return
	}
	mergeNodes(t.root, other.root)
	t.wordCount += other.wordCount
}

func mergeNodes(dst, src *TrieNode) {
	dst.Count += src.Count
	if src.Terminal {
		dst.Terminal = true
		dst.Records = append(dst.Records, src.Records...)
	}
	for syl, schild := range src.Children {
		dchild, ok := dst.Children[syl]
		if !ok {
			dchild = newTrieNode(syl)
			dst.Children[syl] = dchild
		}
		mergeNodes(dchild, schild)
	}
}
