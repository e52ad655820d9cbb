package docstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// CachedStore is a read-through cache in front of another Store. Single
// document reads are cached, every write through it invalidates.
type CachedStore struct {
	store         Store
	cache         *freecache.Cache
	expireSeconds int

	// writes is bumped after every write; a read only fills the cache when
	// no write finished while it was in flight.
	mutex  sync.Mutex
	writes uint64
}

type cachedDocument struct {
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func NewCachedStore(store Store, cacheSizeMegabytes int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		store:         store,
		cache:         freecache.NewCache(cacheSizeMegabytes * megabyte),
		expireSeconds: int(ttl.Seconds()),
	}
}

func (s *CachedStore) Get(ctx context.Context, ref Ref) (*Document, error) {
	key := []byte(ref.String())
	if cachedBytes, err := s.cache.Get(key); err == nil {
		var cached cachedDocument
		if err := json.Unmarshal(cachedBytes, &cached); err == nil {
			return &Document{
				Ref:       ref,
				Data:      cached.Data,
				CreatedAt: cached.CreatedAt,
				UpdatedAt: cached.UpdatedAt,
			}, nil
		} else {
			log.Errorf("unmarshal cached document %s: %s", ref, err)
		}
	}

	s.mutex.Lock()
	writesBefore := s.writes
	s.mutex.Unlock()

	doc, err := s.store.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	docBytes, err := json.Marshal(cachedDocument{
		Data:      doc.Data,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		log.Errorf("marshal document %s for cache: %s", ref, err)
		return doc, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.writes != writesBefore {
		return doc, nil
	}
	if err := s.cache.Set(key, docBytes, s.expireSeconds); err != nil {
		log.Warnf("cache document %s: %s", ref, err)
	}

	return doc, nil
}

func (s *CachedStore) Set(ctx context.Context, ref Ref, data map[string]any) error {
	defer s.invalidate(ref)
	return s.store.Set(ctx, ref, data)
}

func (s *CachedStore) Create(ctx context.Context, ref Ref, data map[string]any) (bool, error) {
	defer s.invalidate(ref)
	return s.store.Create(ctx, ref, data)
}

func (s *CachedStore) Update(ctx context.Context, ref Ref, fn UpdateFunc) (*Document, error) {
	defer s.invalidate(ref)
	return s.store.Update(ctx, ref, fn)
}

func (s *CachedStore) Delete(ctx context.Context, ref Ref) error {
	defer s.invalidate(ref)
	return s.store.Delete(ctx, ref)
}

func (s *CachedStore) List(ctx context.Context, collection string) ([]Document, error) {
	return s.store.List(ctx, collection)
}

func (s *CachedStore) FindByField(ctx context.Context, collection, field string, value any) ([]Document, error) {
	return s.store.FindByField(ctx, collection, field, value)
}

func (s *CachedStore) DeleteByField(ctx context.Context, collection, field string, value any) (int64, error) {
	defer s.clear()
	return s.store.DeleteByField(ctx, collection, field, value)
}

func (s *CachedStore) DeleteBeforeID(ctx context.Context, collectionSuffix, id string) (int64, error) {
	defer s.clear()
	return s.store.DeleteBeforeID(ctx, collectionSuffix, id)
}

func (s *CachedStore) invalidate(ref Ref) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.writes++
	s.cache.Del([]byte(ref.String()))
}

func (s *CachedStore) clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.writes++
	s.cache.Clear()
}
