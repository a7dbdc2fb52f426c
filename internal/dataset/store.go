package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
)

//go:embed foods.json
var defaultDocument []byte

// Store is the read-only disease dataset. It is safe to share once built;
// every accessor returns copies.
type Store struct {
	version  string
	diseases []Disease
	byID     map[string]int
}

// Default returns the store built from the embedded dataset.
func Default() (*Store, error) {
	return Parse(defaultDocument)
}

// DefaultDocument returns the raw embedded dataset.
func DefaultDocument() []byte {
	return slices.Clone(defaultDocument)
}

// LoadFile reads and validates a dataset file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Open returns the dataset at path, or the embedded one when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func newStore(doc document) *Store {
	s := &Store{
		version:  doc.Version,
		diseases: doc.Diseases,
		byID:     make(map[string]int, len(doc.Diseases)),
	}
	for i, d := range s.diseases {
		s.byID[d.ID] = i
	}
	return s
}

// Version returns the dataset's semantic version.
func (s *Store) Version() string {
	return s.version
}

// Len returns the number of diseases.
func (s *Store) Len() int {
	return len(s.diseases)
}

// Has reports whether id is a disease in the store.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Diseases returns all diseases in dataset order.
func (s *Store) Diseases() []Disease {
	out := make([]Disease, len(s.diseases))
	for i, d := range s.diseases {
		out[i] = cloneDisease(d)
	}
	return out
}

// Disease returns the disease with the given id.
func (s *Store) Disease(id string) (Disease, error) {
	i, ok := s.byID[id]
	if !ok {
		return Disease{}, fmt.Errorf("%w: %q", ErrInvalidDiseaseID, id)
	}
	return cloneDisease(s.diseases[i]), nil
}

// Food returns a single food of a disease.
func (s *Store) Food(diseaseID, foodID string) (Food, error) {
	i, ok := s.byID[diseaseID]
	if !ok {
		return Food{}, fmt.Errorf("%w: %q", ErrInvalidDiseaseID, diseaseID)
	}
	for _, f := range s.diseases[i].Foods {
		if f.ID == foodID {
			return f, nil
		}
	}
	return Food{}, fmt.Errorf("%w: %q in %q", ErrUnknownFood, foodID, diseaseID)
}

func cloneDisease(d Disease) Disease {
	d.Foods = slices.Clone(d.Foods)
	return d
}
