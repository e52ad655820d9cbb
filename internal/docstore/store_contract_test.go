package docstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract runs the behaviour every Store implementation must have.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("get missing", func(t *testing.T) {
		store := newStore(t)
		doc, err := store.Get(context.Background(), UserDoc("nobody"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, doc)
	})

	t.Run("set and get", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := Ref{Collection: UserCollection("u1", "activity"), ID: "2025-05-05"}

		require.NoError(t, store.Set(ctx, ref, map[string]any{"steps": 1200, "note": "walk"}))
		doc, err := store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, ref, doc.Ref)
		assert.Equal(t, float64(1200), doc.Data["steps"])
		assert.Equal(t, "walk", doc.Data["note"])
		assert.False(t, doc.CreatedAt.IsZero())

		require.NoError(t, store.Set(ctx, ref, map[string]any{"steps": 1500}))
		doc, err = store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, float64(1500), doc.Data["steps"])
		_, hasNote := doc.Data["note"]
		assert.False(t, hasNote)
	})

	t.Run("invalid ref", func(t *testing.T) {
		store := newStore(t)
		err := store.Set(context.Background(), Ref{Collection: "users", ID: "a/b"}, nil)
		assert.Error(t, err)
		_, err = store.Create(context.Background(), Ref{Collection: "users"}, nil)
		assert.Error(t, err)
	})

	t.Run("create if absent", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := Ref{Collection: UserCollection("u1", "weeklyWorkoutPlans"), ID: "week-2025-05-05"}

		created, err := store.Create(ctx, ref, map[string]any{"v": "first"})
		require.NoError(t, err)
		assert.True(t, created)

		created, err = store.Create(ctx, ref, map[string]any{"v": "second"})
		require.NoError(t, err)
		assert.False(t, created)

		doc, err := store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, "first", doc.Data["v"])
	})

	t.Run("concurrent create has one winner", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := Ref{Collection: UserCollection("u1", "weeklyWorkoutPlans"), ID: "week-2025-05-12"}

		var wg sync.WaitGroup
		var mutex sync.Mutex
		createdCount := 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				created, err := store.Create(ctx, ref, map[string]any{"n": 1})
				assert.NoError(t, err)
				if created {
					mutex.Lock()
					createdCount++
					mutex.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, createdCount)
	})

	t.Run("update", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := UserDoc("u2")

		_, err := store.Update(ctx, ref, func(data map[string]any) (map[string]any, error) {
			return data, nil
		})
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, store.Set(ctx, ref, map[string]any{"count": 1}))
		doc, err := store.Update(ctx, ref, func(data map[string]any) (map[string]any, error) {
			data["count"] = data["count"].(float64) + 1
			return data, nil
		})
		require.NoError(t, err)
		assert.Equal(t, float64(2), doc.Data["count"])

		errAbort := errors.New("abort")
		_, err = store.Update(ctx, ref, func(data map[string]any) (map[string]any, error) {
			data["count"] = 100
			return nil, errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		doc, err = store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, float64(2), doc.Data["count"])
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := UserDoc("u3")
		require.NoError(t, store.Set(ctx, ref, map[string]any{"count": 0}))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, ref, func(data map[string]any) (map[string]any, error) {
					data["count"] = data["count"].(float64) + 1
					return data, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		doc, err := store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, float64(10), doc.Data["count"])
	})

	t.Run("delete", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		ref := UserDoc("u4")
		assert.ErrorIs(t, store.Delete(ctx, ref), ErrNotFound)

		require.NoError(t, store.Set(ctx, ref, map[string]any{}))
		require.NoError(t, store.Delete(ctx, ref))
		_, err := store.Get(ctx, ref)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list and find by field", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		collection := UserCollection("u5", "templates")
		require.NoError(t, store.Set(ctx, Ref{Collection: collection, ID: "b"}, map[string]any{"title": "Legs"}))
		require.NoError(t, store.Set(ctx, Ref{Collection: collection, ID: "a"}, map[string]any{"title": "Push"}))
		require.NoError(t, store.Set(ctx, Ref{Collection: collection, ID: "c"}, map[string]any{"title": "Legs"}))
		require.NoError(t, store.Set(ctx, Ref{Collection: UserCollection("u6", "templates"), ID: "d"}, map[string]any{"title": "Legs"}))

		docs, err := store.List(ctx, collection)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "a", docs[0].ID)
		assert.Equal(t, "b", docs[1].ID)
		assert.Equal(t, "c", docs[2].ID)
		assert.Equal(t, collection, docs[0].Collection)

		found, err := store.FindByField(ctx, collection, "title", "Legs")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "b", found[0].ID)
		assert.Equal(t, "c", found[1].ID)

		deleted, err := store.DeleteByField(ctx, collection, "title", "Legs")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		docs, err = store.List(ctx, collection)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		empty, err := store.List(ctx, UserCollection("nobody", "templates"))
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("delete before id", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		require.NoError(t, store.Set(ctx, Ref{Collection: UserCollection("u7", "weeklyWorkoutPlans"), ID: "week-2025-04-28"}, nil))
		require.NoError(t, store.Set(ctx, Ref{Collection: UserCollection("u7", "weeklyWorkoutPlans"), ID: "week-2025-05-05"}, nil))
		require.NoError(t, store.Set(ctx, Ref{Collection: UserCollection("u8", "weeklyWorkoutPlans"), ID: "week-2025-05-05"}, nil))
		require.NoError(t, store.Set(ctx, Ref{Collection: UserCollection("u7", "workoutModules"), ID: "a1"}, nil))

		deleted, err := store.DeleteBeforeID(ctx, "/weeklyWorkoutPlans", "week-2025-04-28")
		require.NoError(t, err)
		assert.Zero(t, deleted)

		deleted, err = store.DeleteBeforeID(ctx, "/weeklyWorkoutPlans", "week-2025-05-05")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = store.Get(ctx, Ref{Collection: UserCollection("u7", "weeklyWorkoutPlans"), ID: "week-2025-05-05"})
		assert.NoError(t, err)

		deleted, err = store.DeleteBeforeID(ctx, "/weeklyWorkoutPlans", "week-2025-05-12")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		_, err = store.Get(ctx, Ref{Collection: UserCollection("u7", "workoutModules"), ID: "a1"})
		assert.NoError(t, err)
	})
}
