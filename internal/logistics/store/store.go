// Package store holds the static processor catalog.
package store

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"kisan/internal/logistics/models"
	"kisan/internal/sentinel"
	strutil "kisan/pkg/platform/strings"
)

// Error Contract:
// - ErrNotFound when no processor has the requested id
// - ErrConflict when a catalog repeats a processor id
// - wrapped errors for decoding, I/O and invalid entries

//go:embed seed/processors.yaml
var defaultSeed []byte

// Catalog is the on-disk shape of a processor catalog.
type Catalog struct {
	Version    string             `yaml:"version"`
	Region     string             `yaml:"region"`
	Processors []models.Processor `yaml:"processors"`
}

// InMemoryStore keeps processors in catalog order.
type InMemoryStore struct {
	mu      sync.RWMutex
	ordered []models.Processor
	byID    map[string]int
}

func New() *InMemoryStore {
	return &InMemoryStore{byID: make(map[string]int)}
}

// NewDefault returns a store loaded from the embedded Odisha catalog.
func NewDefault() (*InMemoryStore, error) {
	s := New()
	if _, err := s.Load(bytes.NewReader(defaultSeed)); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromFile returns a store loaded from a YAML catalog on disk.
func NewFromFile(path string) (*InMemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open processor catalog %s: %w", path, err)
	}
	defer f.Close()

	s := New()
	if _, err := s.Load(f); err != nil {
		return nil, fmt.Errorf("load processor catalog %s: %w", path, err)
	}
	return s, nil
}

// Load decodes a catalog and adds every processor. It returns the catalog
// version.
func (s *InMemoryStore) Load(r io.Reader) (string, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return "", fmt.Errorf("decode processor catalog: %w", err)
	}
	for _, p := range c.Processors {
		if err := s.Add(context.Background(), p); err != nil {
			return "", fmt.Errorf("processor %q: %w", p.ID, err)
		}
	}
	return c.Version, nil
}

// Add appends a processor. Crop names are trimmed, lowercased and deduplicated.
func (s *InMemoryStore) Add(_ context.Context, p models.Processor) error {
	p.ID = strings.TrimSpace(p.ID)
	p.Crops = strutil.DedupeAndTrimLower(p.Crops)
	if err := check(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; ok {
		return sentinel.ErrConflict
	}
	s.byID[p.ID] = len(s.ordered)
	s.ordered = append(s.ordered, p)
	return nil
}

func check(p models.Processor) error {
	switch {
	case p.ID == "":
		return errors.New("id is required")
	case !p.Location.Valid():
		return fmt.Errorf("location %v is out of range", p.Location)
	case len(p.Crops) == 0:
		return errors.New("at least one crop is required")
	case p.Price.Min < 0 || p.Price.Max < p.Price.Min:
		return fmt.Errorf("price range %d-%d is invalid", p.Price.Min, p.Price.Max)
	}
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Processor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	p := clone(s.ordered[i])
	return &p, nil
}

// List returns every processor in catalog order.
func (s *InMemoryStore) List(_ context.Context) []models.Processor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Processor, 0, len(s.ordered))
	for _, p := range s.ordered {
		out = append(out, clone(p))
	}
	return out
}

// Crops returns the distinct crops handled by any processor, sorted.
func (s *InMemoryStore) Crops(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []string
	for _, p := range s.ordered {
		all = append(all, p.Crops...)
	}
	slices.Sort(all)
	return slices.Compact(all)
}

func (s *InMemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}

func clone(p models.Processor) models.Processor {
	p.Crops = slices.Clone(p.Crops)
	return p
}
