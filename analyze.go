package morphotrie

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// WordAnalysis is one analyzed word occurrence in reading order.
type WordAnalysis struct {
	// Record is the annotation chosen for this occurrence.
	Record Record `json:"record"`
	// Syllables is the segmentation used as the tree key.
	Syllables []string `json:"syllables"`
	// Prev and Next are the context tokens the resolver saw, nearest
	// last in Prev and nearest first in Next.
	Prev []string `json:"prev,omitempty"`
	Next []string `json:"next,omitempty"`
}

// TextAnalysis is the complete result of analyzing one document.
type TextAnalysis struct {
	// Words lists every analyzed occurrence in document order.
	Words []WordAnalysis
	// Tree is the syllable tree built from Words.
	Tree *PrefixTree
	// SyllableStats aggregates the segmentations of Words.
	SyllableStats SyllableStats
}

// AnalyzeText runs the whole pipeline over text: tokenize, annotate each
// word with its ±window context, segment it into syllables, and build
// the tree. Punctuation and numbers take part in context windows but are
// never analyzed or inserted themselves.
func (a *Analyzer) AnalyzeText(text string) *TextAnalysis {
	tokens := Tokenize(NormalizeText(text))
	var words []WordAnalysis
	for i, tok := range tokens {
		if !isWordToken(tok) {
			continue
		}
		if a.maxWords > 0 && len(words) >= a.maxWords {
			break
		}
		prev, next := ContextWindow(tokens, i, a.window)
		context := make([]string, 0, len(prev)+len(next))
		context = append(context, prev...)
		context = append(context, next...)

		rec := a.resolver.Resolve(tok, context)
		if len(rec) == 0 {
			// The token has no Russian letters at all.
			continue
		}
		words = append(words, WordAnalysis{
			Record:    rec,
			Syllables: Segment(tok),
			Prev:      prev,
			Next:      next,
		})
	}

	forms := make([]string, len(words))
	for i, wa := range words {
		forms[i] = wa.Record.GetString(KeyWord)
	}

	a.log.Info("text analyzed", "tokens", len(tokens), "words", len(words))
	return &TextAnalysis{
		Words:         words,
		Tree:          a.buildTree(words),
		SyllableStats: SyllableStatsOf(forms),
	}
}

// AnalyzeFile loads the document at path and analyzes it.
func (a *Analyzer) AnalyzeFile(path string) (*TextAnalysis, error) {
	text, err := ReadTextFile(path)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	return a.AnalyzeText(text), nil
}

func (a *Analyzer) buildTree(words []WordAnalysis) *PrefixTree {
	if a.workers > 1 && len(words) >= a.workers {
		tree, err := buildTreeSharded(words, a.workers)
		if err == nil {
			return tree
		}
		a.log.Warn("sharded tree build failed, building sequentially", "err", err)
	}
	tree := NewPrefixTree()
	for _, wa := range words {
		tree.Insert(wa.Syllables, wa.Record)
	}
	return tree
}

// buildTreeSharded splits words into contiguous shards, builds one
// subtree per shard concurrently, and merges the subtrees in shard
// order. Merging in order keeps record order identical to a sequential
// build.
func buildTreeSharded(words []WordAnalysis, shards int) (*PrefixTree, error) {
	subtrees := make([]*PrefixTree, shards)
	chunk := (len(words) + shards - 1) / shards

	var g errgroup.Group
	for s := 0; s < shards; s++ {
		lo := s * chunk
		if lo >= len(words) {
			break
		}
		hi := min(lo+chunk, len(words))
		g.Go(func() error {
			sub := NewPrefixTree()
			for _, wa := range words[lo:hi] {
				sub.Insert(wa.Syllables, wa.Record)
			}
			subtrees[s] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tree := NewPrefixTree()
	for _, sub := range subtrees {
		if sub != nil {
			tree.Merge(sub)
		}
	}
	return tree, nil
}
