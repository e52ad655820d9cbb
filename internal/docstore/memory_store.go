package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. Data goes through a JSON round trip on
// every write and read, so callers see the same value types as with PsqlStore.
type MemoryStore struct {
	mutex  sync.Mutex
	docs   map[string]map[string]*Document
	now    func() time.Time
	unique []uniqueField
}

type uniqueField struct {
	collectionSuffix string
	field            string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]map[string]*Document),
		now:  time.Now,
	}
}

// WithClock replaces the clock used for created/updated timestamps.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.now = now
	return s
}

// WithUniqueField makes Create fail with ErrConflict when another document in
// a collection ending with collectionSuffix has the same value for field.
func (s *MemoryStore) WithUniqueField(collectionSuffix, field string) *MemoryStore {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.unique = append(s.unique, uniqueField{collectionSuffix: collectionSuffix, field: field})
	return s
}

func (s *MemoryStore) Get(_ context.Context, ref Ref) (*Document, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, ok := s.docs[ref.Collection][ref.ID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDocument(doc)
}

func (s *MemoryStore) Set(_ context.Context, ref Ref, data map[string]any) error {
	if !ref.valid() {
		return errInvalidRef
	}
	normalized, err := normalize(data)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	if doc, ok := s.docs[ref.Collection][ref.ID]; ok {
		doc.Data = normalized
		doc.UpdatedAt = now
		return nil
	}
	s.put(&Document{Ref: ref, Data: normalized, CreatedAt: now, UpdatedAt: now})
	return nil
}

func (s *MemoryStore) Create(_ context.Context, ref Ref, data map[string]any) (bool, error) {
	if !ref.valid() {
		return false, errInvalidRef
	}
	normalized, err := normalize(data)
	if err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.docs[ref.Collection][ref.ID]; ok {
		return false, nil
	}
	if s.conflicts(ref.Collection, normalized) {
		return false, ErrConflict
	}
	now := s.now()
	s.put(&Document{Ref: ref, Data: normalized, CreatedAt: now, UpdatedAt: now})
	return true, nil
}

func (s *MemoryStore) Update(_ context.Context, ref Ref, fn UpdateFunc) (*Document, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, ok := s.docs[ref.Collection][ref.ID]
	if !ok {
		return nil, ErrNotFound
	}
	current, err := normalize(doc.Data)
	if err != nil {
		return nil, err
	}

	newData, err := fn(current)
	if err != nil {
		return nil, err
	}
	normalized, err := normalize(newData)
	if err != nil {
		return nil, err
	}

	doc.Data = normalized
	doc.UpdatedAt = s.now()
	return copyDocument(doc)
}

func (s *MemoryStore) Delete(_ context.Context, ref Ref) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.docs[ref.Collection][ref.ID]; !ok {
		return ErrNotFound
	}
	delete(s.docs[ref.Collection], ref.ID)
	return nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	return s.filter(collection, func(*Document) bool { return true })
}

func (s *MemoryStore) FindByField(_ context.Context, collection, field string, value any) ([]Document, error) {
	match, err := fieldMatcher(field, value)
	if err != nil {
		return nil, err
	}
	return s.filter(collection, match)
}

func (s *MemoryStore) DeleteByField(_ context.Context, collection, field string, value any) (int64, error) {
	match, err := fieldMatcher(field, value)
	if err != nil {
		return 0, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted int64
	for id, doc := range s.docs[collection] {
		if match(doc) {
			delete(s.docs[collection], id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) DeleteBeforeID(_ context.Context, collectionSuffix, beforeID string) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted int64
	for collection, docs := range s.docs {
		if !strings.HasSuffix(collection, collectionSuffix) {
			continue
		}
		for id := range docs {
			if id < beforeID {
				delete(docs, id)
				deleted++
			}
		}
	}
	return deleted, nil
}

func (s *MemoryStore) put(doc *Document) {
	if s.docs[doc.Collection] == nil {
		s.docs[doc.Collection] = make(map[string]*Document)
	}
	s.docs[doc.Collection][doc.ID] = doc
}

func (s *MemoryStore) filter(collection string, match func(*Document) bool) ([]Document, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var docs []Document
	for _, doc := range s.docs[collection] {
		if !match(doc) {
			continue
		}
		docCopy, err := copyDocument(doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *docCopy)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

func (s *MemoryStore) conflicts(collection string, data map[string]any) bool {
	for _, u := range s.unique {
		if !strings.HasSuffix(collection, u.collectionSuffix) {
			continue
		}
		value, ok := data[u.field]
		if !ok || value == nil {
			continue
		}
		for _, doc := range s.docs[collection] {
			if reflect.DeepEqual(doc.Data[u.field], value) {
				return true
			}
		}
	}
	return false
}

func fieldMatcher(field string, value any) (func(*Document) bool, error) {
	filter, err := normalize(map[string]any{field: value})
	if err != nil {
		return nil, err
	}
	want := filter[field]
	return func(doc *Document) bool {
		got, ok := doc.Data[field]
		return ok && reflect.DeepEqual(got, want)
	}, nil
}

func copyDocument(doc *Document) (*Document, error) {
	data, err := normalize(doc.Data)
	if err != nil {
		return nil, err
	}
	docCopy := *doc
	docCopy.Data = data
	return &docCopy, nil
}

func normalize(data map[string]any) (map[string]any, error) {
	raw, err := marshalData(data)
	if err != nil {
		return nil, err
	}
	normalized := map[string]any{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("unmarshal document data: %w", err)
	}
	return normalized, nil
}
