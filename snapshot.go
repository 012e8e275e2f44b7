package morphotrie

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// snapshotMagic opens every snapshot file; the trailing digit is the
// format version.
var snapshotMagic = []byte("MTRIE1")

// WriteSnapshot stores the tree at path in its binary form: the magic
// header followed by a gzip-compressed gob encoding of the wire shape.
func WriteSnapshot(path string, t *PrefixTree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := f.Write(snapshotMagic); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	zw := gzip.NewWriter(f)
	if err := gob.NewEncoder(zw).Encode(t.Serialize()); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot maps the file at path read-only and rebuilds the tree
// from it. Header or payload corruption surfaces as ErrMalformedTreeData.
func LoadSnapshot(path string) (*PrefixTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap snapshot: %w", err)
	}
	defer m.Unmap()

	if len(m) < len(snapshotMagic) || !bytes.Equal(m[:len(snapshotMagic)], snapshotMagic) {
		return nil, fmt.Errorf("%w: bad snapshot header", ErrMalformedTreeData)
	}
	zr, err := gzip.NewReader(bytes.NewReader(m[len(snapshotMagic):]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTreeData, err)
	}
	defer zr.Close()

	var data TreeData
	if err := gob.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTreeData, err)
	}
	return Deserialize(&data)
}
