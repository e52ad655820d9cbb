// Package docstore is a small document store modeled on collections of JSON
// documents, addressed by collection path and document id.
package docstore

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned by Create when a unique field of the new
	// document is already taken in its collection.
	ErrConflict = errors.New("document conflicts with an existing one")
)

const usersCollection = "users"

// Ref addresses a single document.
type Ref struct {
	Collection string
	ID         string
}

func (r Ref) String() string {
	return r.Collection + "/" + r.ID
}

func (r Ref) valid() bool {
	return r.Collection != "" && r.ID != "" && !strings.Contains(r.ID, "/")
}

// UserDoc is the root document of a user: users/{uid}.
func UserDoc(uid string) Ref {
	return Ref{Collection: usersCollection, ID: uid}
}

// UserCollection is a sub collection of the user document: users/{uid}/{name}.
func UserCollection(uid, name string) string {
	return usersCollection + "/" + uid + "/" + name
}

type Document struct {
	Ref
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateFunc receives the current document data and returns the data to store.
// Returning an error aborts the update and leaves the document unchanged.
type UpdateFunc func(data map[string]any) (map[string]any, error)

type Store interface {
	Get(ctx context.Context, ref Ref) (*Document, error)
	Set(ctx context.Context, ref Ref, data map[string]any) error
	// Create stores data only if the document does not exist yet.
	Create(ctx context.Context, ref Ref, data map[string]any) (bool, error)
	Update(ctx context.Context, ref Ref, fn UpdateFunc) (*Document, error)
	Delete(ctx context.Context, ref Ref) error
	List(ctx context.Context, collection string) ([]Document, error)
	FindByField(ctx context.Context, collection, field string, value any) ([]Document, error)
	DeleteByField(ctx context.Context, collection, field string, value any) (int64, error)
	// DeleteBeforeID removes documents whose id sorts (byte order) before id,
	// from every collection whose path ends with collectionSuffix.
	DeleteBeforeID(ctx context.Context, collectionSuffix, id string) (int64, error)
}

var errInvalidRef = errors.New("invalid document ref")
