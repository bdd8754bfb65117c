package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"kisan/internal/sentinel"
	"kisan/internal/verification/models"
)

// Error Contract:
// - ErrNotFound when no entry exists for the key
// - ErrConflict when a mobile is already bound to a different DID
// - wrapped errors for seed decoding and I/O failures

//go:embed seed/farmers.json
var defaultSeed []byte

// InMemoryStore indexes farmer entries by mobile number and by DID.
type InMemoryStore struct {
	mu          sync.RWMutex
	mobileToDID map[string]string
	byDID       map[string]models.FarmerEntry
}

// New constructs an empty registry.
func New() *InMemoryStore {
	return &InMemoryStore{
		mobileToDID: make(map[string]string),
		byDID:       make(map[string]models.FarmerEntry),
	}
}

// NewDefault returns a registry loaded from the embedded seed.
func NewDefault() (*InMemoryStore, error) {
	s := New()
	if _, err := s.Load(bytes.NewReader(defaultSeed)); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromFile returns a registry loaded from a JSON seed on disk.
func NewFromFile(path string) (*InMemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open farmer registry %s: %w", path, err)
	}
	defer f.Close()

	s := New()
	if _, err := s.Load(f); err != nil {
		return nil, fmt.Errorf("load farmer registry %s: %w", path, err)
	}
	return s, nil
}

// Load decodes a seed database and adds every entry. It returns the
// snapshot metadata.
func (s *InMemoryStore) Load(r io.Reader) (models.Metadata, error) {
	var db models.Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return models.Metadata{}, fmt.Errorf("decode farmer registry: %w", err)
	}
	for _, f := range db.Farmers {
		if err := s.Add(context.Background(), f); err != nil {
			return models.Metadata{}, fmt.Errorf("farmer %s: %w", f.FarmerDID, err)
		}
	}
	return db.Metadata, nil
}

// Add inserts or replaces an entry. Mobile is normalized and a missing DID is
// derived from it.
func (s *InMemoryStore) Add(_ context.Context, f models.FarmerEntry) error {
	f.Mobile = models.NormalizeMobile(f.Mobile)
	if f.FarmerDID == "" {
		f.FarmerDID = models.DeriveDID(f.Mobile)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if did, ok := s.mobileToDID[f.Mobile]; ok && did != f.FarmerDID {
		return sentinel.ErrConflict
	}
	if prev, ok := s.byDID[f.FarmerDID]; ok && prev.Mobile != f.Mobile {
		delete(s.mobileToDID, prev.Mobile)
	}
	s.mobileToDID[f.Mobile] = f.FarmerDID
	s.byDID[f.FarmerDID] = f
	return nil
}

func (s *InMemoryStore) FindByMobile(_ context.Context, mobile string) (*models.FarmerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	did, ok := s.mobileToDID[models.NormalizeMobile(mobile)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	entry, ok := s.byDID[did]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &entry, nil
}

func (s *InMemoryStore) FindByDID(_ context.Context, did string) (*models.FarmerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.byDID[did]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &entry, nil
}

// UpdateIPFSCID sets the content identifier of the entry bound to did.
func (s *InMemoryStore) UpdateIPFSCID(_ context.Context, did, cid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.byDID[did]
	if !ok {
		return sentinel.ErrNotFound
	}
	entry.IPFSCID = cid
	s.byDID[did] = entry
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byDID)
}

// List returns every entry ordered by DID.
func (s *InMemoryStore) List(_ context.Context) []models.FarmerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FarmerEntry, 0, len(s.byDID))
	for _, e := range s.byDID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FarmerDID < out[j].FarmerDID })
	return out
}
