package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitgenius/internal/db"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// PsqlStore keeps documents as JSONB rows in the document table.
type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) Get(ctx context.Context, ref Ref) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	doc := &Document{Ref: ref}
	err = s.db.QueryRow(
		ctx,
		`SELECT data, created_at, updated_at FROM document WHERE collection = $1 AND id = $2`,
		ref.Collection, ref.ID,
	).Scan(&doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *PsqlStore) Set(ctx context.Context, ref Ref, data map[string]any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	if !ref.valid() {
		return errInvalidRef
	}
	dataJson, err := marshalData(data)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO document (collection, id, data) VALUES ($1, $2, $3)
			ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		ref.Collection, ref.ID, dataJson,
	)
	return err
}

func (s *PsqlStore) Create(ctx context.Context, ref Ref, data map[string]any) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	if !ref.valid() {
		return false, errInvalidRef
	}
	dataJson, err := marshalData(data)
	if err != nil {
		return false, err
	}

	tag, err := s.db.Exec(
		ctx,
		`INSERT INTO document (collection, id, data) VALUES ($1, $2, $3)
			ON CONFLICT (collection, id) DO NOTHING`,
		ref.Collection, ref.ID, dataJson,
	)
	if db.IsUniqueViolation(err) {
		return false, ErrConflict
	}
	if err != nil {
		return false, err
	}

	created := tag.RowsAffected() == 1
	span.SetAttributes(attribute.Bool("created", created))
	return created, nil
}

func (s *PsqlStore) Update(ctx context.Context, ref Ref, fn UpdateFunc) (_ *Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	doc := &Document{Ref: ref}
	err = tx.QueryRow(
		ctx,
		`SELECT data, created_at FROM document WHERE collection = $1 AND id = $2 FOR UPDATE`,
		ref.Collection, ref.ID,
	).Scan(&doc.Data, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select for update: %w", err)
	}

	newData, err := fn(doc.Data)
	if err != nil {
		return nil, err
	}
	dataJson, err := marshalData(newData)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(
		ctx,
		`UPDATE document SET data = $3, updated_at = now() WHERE collection = $1 AND id = $2 RETURNING updated_at`,
		ref.Collection, ref.ID, dataJson,
	).Scan(&doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	doc.Data = newData
	return doc, nil
}

func (s *PsqlStore) Delete(ctx context.Context, ref Ref) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ref", ref.String()))

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM document WHERE collection = $1 AND id = $2`,
		ref.Collection, ref.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PsqlStore) List(ctx context.Context, collection string) (_ []Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	rows, err := s.db.Query(
		ctx,
		`SELECT id, data, created_at, updated_at FROM document WHERE collection = $1 ORDER BY id`,
		collection,
	)
	if err != nil {
		return nil, err
	}
	return scanDocuments(rows, collection)
}

func (s *PsqlStore) FindByField(ctx context.Context, collection, field string, value any) (_ []Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.findByField")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.String("field", field),
	)

	filterJson, err := json.Marshal(map[string]any{field: value})
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}

	rows, err := s.db.Query(
		ctx,
		`SELECT id, data, created_at, updated_at FROM document
			WHERE collection = $1 AND data @> $2::jsonb ORDER BY id`,
		collection, filterJson,
	)
	if err != nil {
		return nil, err
	}
	return scanDocuments(rows, collection)
}

func (s *PsqlStore) DeleteByField(ctx context.Context, collection, field string, value any) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.deleteByField")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.String("field", field),
	)

	filterJson, err := json.Marshal(map[string]any{field: value})
	if err != nil {
		return 0, fmt.Errorf("marshal filter: %w", err)
	}

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM document WHERE collection = $1 AND data @> $2::jsonb`,
		collection, filterJson,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *PsqlStore) DeleteBeforeID(ctx context.Context, collectionSuffix, beforeID string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.psql.deleteBeforeID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("collection.suffix", collectionSuffix),
		attribute.String("before.id", beforeID),
	)

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM document WHERE right(collection, $1) = $2 AND id COLLATE "C" < $3`,
		len(collectionSuffix), collectionSuffix, beforeID,
	)
	if err != nil {
		return 0, err
	}

	deleted := tag.RowsAffected()
	span.SetAttributes(attribute.Int64("deleted", deleted))
	return deleted, nil
}

func scanDocuments(rows pgx.Rows, collection string) ([]Document, error) {
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc := Document{Ref: Ref{Collection: collection}}
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func marshalData(data map[string]any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	dataJson, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document data: %w", err)
	}
	return dataJson, nil
}
