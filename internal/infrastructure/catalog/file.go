package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// document is the on-disk layout of a catalog file.
type document struct {
	Research []domain.Research `yaml:"research"`
}

// File reads the catalog from a YAML document on every Load.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) ([]domain.Research, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", f.path, err)
	}
	defer fh.Close()

	records, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.path, err)
	}
	return records, nil
}

// Decode parses a catalog document and checks that record ids are present
// and unique.
func Decode(r io.Reader) ([]domain.Research, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Research))
	for i, rec := range doc.Research {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	if doc.Research == nil {
		return []domain.Research{}, nil
	}
	return doc.Research, nil
}

// Encode writes records in the layout Decode reads.
func Encode(w io.Writer, records []domain.Research) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Research: records}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
