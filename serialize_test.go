package morphotrie

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestTreeRoundTrip(t *testing.T) {
	tree := threeWordTree()
	tree.Insert([]string{"мо", "ре"}, rec("море", "море"))

	b, err := EncodeTree(tree)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	back, err := DecodeTree(b)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}

	if !reflect.DeepEqual(back.Statistics(), tree.Statistics()) {
		t.Errorf("statistics diverged after round trip:\n got %+v\nwant %+v",
			back.Statistics(), tree.Statistics())
	}
	records, ok := back.Search([]string{"мо", "ре"})
	if !ok || len(records) != 2 {
		t.Fatalf("Search(мо-ре) = %d records, ok=%v; want 2", len(records), ok)
	}
	if got := records[0].GetString(KeyLemma); got != "море" {
		t.Errorf("restored lemma = %q, want море", got)
	}
}

func TestWireShape(t *testing.T) {
	b, err := EncodeTree(threeWordTree())
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"wordCount", "root"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing %q", key)
		}
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(doc["root"], &root); err != nil {
		t.Fatalf("unmarshal root: %v", err)
	}
	for _, key := range []string{"syllable", "isTerminal", "occurrenceCount", "children"} {
		if _, ok := root[key]; !ok {
			t.Errorf("root node missing %q", key)
		}
	}
	// Non-terminal nodes carry no record list.
	if _, ok := root["terminalRecords"]; ok {
		t.Error("non-terminal root has terminalRecords")
	}
}

func TestDecodeTreeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{{{`},
		{"missing wordCount", `{"root":{"syllable":"","isTerminal":false,"occurrenceCount":0,"children":{}}}`},
		{"missing root", `{"wordCount":1}`},
		{"node missing occurrenceCount", `{"wordCount":1,"root":{"syllable":"","isTerminal":false,"children":{}}}`},
		{"node missing children", `{"wordCount":1,"root":{"syllable":"","isTerminal":false,"occurrenceCount":0}}`},
		{"wrong field type", `{"wordCount":"много","root":{"syllable":"","isTerminal":false,"occurrenceCount":0,"children":{}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTree([]byte(tt.in)); !errors.Is(err, ErrMalformedTreeData) {
				t.Errorf("DecodeTree error = %v, want ErrMalformedTreeData", err)
			}
		})
	}
}

func TestDeserializeNil(t *testing.T) {
	if _, err := Deserialize(nil); !errors.Is(err, ErrMalformedTreeData) {
		t.Errorf("Deserialize(nil) error = %v, want ErrMalformedTreeData", err)
	}
	if _, err := Deserialize(&TreeData{WordCount: 1}); !errors.Is(err, ErrMalformedTreeData) {
		t.Errorf("Deserialize without root error = %v, want ErrMalformedTreeData", err)
	}
}

func TestDecodeEmptyTree(t *testing.T) {
	b, err := EncodeTree(NewPrefixTree())
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	back, err := DecodeTree(b)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	if got := back.WordCount(); got != 0 {
		t.Errorf("WordCount = %d, want 0", got)
	}
	if got := back.Statistics().NodeCount; got != 1 {
		t.Errorf("NodeCount = %d, want 1", got)
	}
}
