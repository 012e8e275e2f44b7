package morphotrie

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TreeData is the persisted form of a PrefixTree.
type TreeData struct {
	WordCount int       `json:"wordCount"`
	Root      *NodeData `json:"root"`
}

// NodeData is the persisted form of a single trie node. TerminalRecords
// is present only on terminal nodes.
type NodeData struct {
	Syllable        string               `json:"syllable"`
	IsTerminal      bool                 `json:"isTerminal"`
	OccurrenceCount int                  `json:"occurrenceCount"`
	TerminalRecords []Record             `json:"terminalRecords,omitempty"`
	Children        map[string]*NodeData `json:"children"`
}

// UnmarshalJSON enforces the presence of every required field; a node
// object missing one fails with ErrMalformedTreeData.
func (n *NodeData) UnmarshalJSON(b []byte) error {
	var aux struct {
		Syllable        *string              `json:"syllable"`
		IsTerminal      *bool                `json:"isTerminal"`
		OccurrenceCount *int                 `json:"occurrenceCount"`
		TerminalRecords []Record             `json:"terminalRecords"`
		Children        map[string]*NodeData `json:"children"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Syllable == nil || aux.IsTerminal == nil || aux.OccurrenceCount == nil || aux.Children == nil {
		return fmt.Errorf("%w: node object missing a required field", ErrMalformedTreeData)
	}
	n.Syllable = *aux.Syllable
	n.IsTerminal = *aux.IsTerminal
	n.OccurrenceCount = *aux.OccurrenceCount
	n.TerminalRecords = aux.TerminalRecords
	n.Children = aux.Children
	return nil
}

// UnmarshalJSON requires both wordCount and root.
func (td *TreeData) UnmarshalJSON(b []byte) error {
	var aux struct {
		WordCount *int      `json:"wordCount"`
		Root      *NodeData `json:"root"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.WordCount == nil || aux.Root == nil {
		return fmt.Errorf("%w: document missing wordCount or root", ErrMalformedTreeData)
	}
	td.WordCount = *aux.WordCount
	td.Root = aux.Root
	return nil
}

// Serialize converts the tree into its persisted form. Records are
// copied shallowly; the wire structure shares no nodes with the tree.
func (t *PrefixTree) Serialize() *TreeData {
	return &TreeData{
		WordCount: t.wordCount,
		Root:      serializeNode(t.root),
	}
}

func serializeNode(node *TrieNode) *NodeData {
	nd := &NodeData{
		Syllable:        node.Syllable,
		IsTerminal:      node.Terminal,
		OccurrenceCount: node.Count,
		Children:        make(map[string]*NodeData, len(node.Children)),
	}
	if node.Terminal {
		nd.TerminalRecords = append([]Record(nil), node.Records...)
	}
	for syl, child := range node.Children {
		nd.Children[syl] = serializeNode(child)
	}
	return nd
}

// Deserialize rebuilds a tree from its persisted form. A nil document or
// missing root fails with ErrMalformedTreeData.
func Deserialize(data *TreeData) (*PrefixTree, error) {
	if data == nil || data.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrMalformedTreeData)
	}
	t := NewPrefixTree()
	t.wordCount = data.WordCount
	if err := restoreNode(t.root, data.Root); err != nil {
		return nil, err
	}
	return t, nil
}

func restoreNode(node *TrieNode, data *NodeData) error {
	node.Syllable = data.Syllable
	node.Terminal = data.IsTerminal
	node.Count = data.OccurrenceCount
	if data.IsTerminal {
		node.Records = append([]Record(nil), data.TerminalRecords...)
	}
	for syl, childData := range data.Children {
		if childData == nil {
			return fmt.Errorf("%w: child %q is null", ErrMalformedTreeData, syl)
		}
		child := newTrieNode(syl)
		if err := restoreNode(child, childData); err != nil {
			return err
		}
		node.Children[syl] = child
	}
	return nil
}

// EncodeTree renders the tree as JSON in its wire shape.
func EncodeTree(t *PrefixTree) ([]byte, error) {
	return json.Marshal(t.Serialize())
}

// DecodeTree parses a JSON document produced by EncodeTree and rebuilds
// the tree. Every parse failure surfaces as ErrMalformedTreeData.
func DecodeTree(b []byte) (*PrefixTree, error) {
	var data TreeData
	if err := json.Unmarshal(b, &data); err != nil {
		if errors.Is(err, ErrMalformedTreeData) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedTreeData, err)
	}
	return Deserialize(&data)
}
