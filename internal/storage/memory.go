package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/kleafrog-source/research-resin/internal/model"
)

type MemoryStore struct {
	mu        sync.RWMutex
	resins    map[string]model.Resin
	states    map[string][]model.StateRecord
	summaries map[string]model.TrainingSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resins = make(map[string]model.Resin)
	s.states = make(map[string][]model.StateRecord)
	s.summaries = make(map[string]model.TrainingSummary)
	return nil
}

func (s *MemoryStore) SaveResin(_ context.Context, resin model.Resin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resins[resin.Name] = resin
	return nil
}

func (s *MemoryStore) GetResin(_ context.Context, name string) (model.Resin, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resin, ok := s.resins[name]
	return resin, ok, nil
}

func (s *MemoryStore) ListResins(_ context.Context) ([]model.Resin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.resins))
	for name := range s.resins {
		names = append(names, name)
	}
	sort.Strings(names)

	resins := make([]model.Resin, 0, len(names))
	for _, name := range names {
		resins = append(resins, s.resins[name])
	}
	return resins, nil
}

func (s *MemoryStore) SaveIonStates(_ context.Context, runID string, records []model.StateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := append([]model.StateRecord(nil), records...)
	s.states[runID] = copied
	return nil
}

func (s *MemoryStore) GetIonStates(_ context.Context, runID string) ([]model.StateRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.states[runID]
	if !ok {
		return nil, false, nil
	}
	copied := append([]model.StateRecord(nil), records...)
	return copied, true, nil
}

func (s *MemoryStore) SaveTrainingSummary(_ context.Context, summary model.TrainingSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries[summary.RunID] = summary
	return nil
}

func (s *MemoryStore) GetTrainingSummary(_ context.Context, runID string) (model.TrainingSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[runID]
	return summary, ok, nil
}
